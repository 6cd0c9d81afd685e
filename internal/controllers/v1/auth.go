package v1

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/auth"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the authentication routes with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", Login)
}

// Credentials are the parameters for both register and login.
type Credentials struct {
	Username string `json:"username" binding:"required" example:"owner"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

type SessionData struct {
	Token    string `json:"token"`                       // Bearer token for subsequent requests
	Username string `json:"username" example:"owner"`
}

type SessionResponse struct {
	Data  *SessionData `json:"data"`                                             // The session, if one was created
	Error *string      `json:"error" example:"invalid username or password"` // The error, if any occurred
}

// @Summary		Register the account
// @Description	Creates the single dashboard account. Fails once an account exists.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	// This is a single account server
	var count int64
	err = models.DB.Model(&models.User{}).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}
	if count > 0 {
		s := errUserAlreadyRegistered.Error()
		c.JSON(http.StatusBadRequest, SessionResponse{
			Error: &s,
		})
		return
	}

	hash, err := auth.HashPassword(credentials.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	user := models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
	}
	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	token, err := auth.NewToken(os.Getenv("JWT_SECRET"), user.ID, user.Username)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		Data: &SessionData{
			Token:    token,
			Username: user.Username,
		},
	})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a session token.
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	SessionResponse
// @Failure		401			{object}	SessionResponse
// @Failure		500			{object}	SessionResponse
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	var user models.User
	err = models.DB.Where(&models.User{Username: credentials.Username}).First(&user).Error
	if err != nil {
		// The response must not give away whether the username exists
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			err = auth.ErrInvalidCredentials
		}

		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		s := err.Error()
		c.JSON(status(err), SessionResponse{
			Error: &s,
		})
		return
	}

	token, err := auth.NewToken(os.Getenv("JWT_SECRET"), user.ID, user.Username)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, SessionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SessionResponse{
		Data: &SessionData{
			Token:    token,
			Username: user.Username,
		},
	})
}
