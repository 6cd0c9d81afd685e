package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterOwnerRoutes registers the routes for the owner settings with
// the RouterGroup that is passed.
func RegisterOwnerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsOwner)
	r.GET("", GetOwner)
	r.PUT("", UpdateOwner)
}

// OwnerEditable represents all user configurable parameters
type OwnerEditable struct {
	BusinessName       string `json:"businessName" example:"Reyes Spaces" default:""`            // Name printed on receipts and reports
	Address            string `json:"address" example:"123 Mabini St, Quezon City" default:""`   // Business address for receipts
	Proprietor         string `json:"proprietor" example:"Maria Reyes" default:""`               // Name of the signing proprietor
	ProprietorPhone    string `json:"proprietorPhone" example:"+639171234567" default:""`
	ProprietorEmail    string `json:"proprietorEmail" example:"maria@example.com" default:""`
	Logo               string `json:"logo" default:""`                                           // Base64 encoded logo image
	ThemeColor         string `json:"themeColor" example:"#4f46e5" default:""`                   // Dashboard accent color
	ReminderDaysBefore int    `json:"reminderDaysBefore" example:"3" default:"3"`                // Days before the due day a tenant shows up as due soon
	ReminderTemplate   string `json:"reminderTemplate" default:""`                               // Reminder message template, empty uses the default
}

func (editable OwnerEditable) model() models.Owner {
	return models.Owner{
		BusinessName:       editable.BusinessName,
		Address:            editable.Address,
		Proprietor:         editable.Proprietor,
		ProprietorPhone:    editable.ProprietorPhone,
		ProprietorEmail:    editable.ProprietorEmail,
		Logo:               editable.Logo,
		ThemeColor:         editable.ThemeColor,
		ReminderDaysBefore: editable.ReminderDaysBefore,
		ReminderTemplate:   editable.ReminderTemplate,
	}
}

type Owner struct {
	models.Model
	OwnerEditable

	// Configured is false as long as the settings have never been saved.
	// The other fields then hold the defaults.
	Configured bool `json:"configured" example:"true"`
}

func newOwner(model models.Owner, configured bool) Owner {
	return Owner{
		Model: model.Model,
		OwnerEditable: OwnerEditable{
			BusinessName:       model.BusinessName,
			Address:            model.Address,
			Proprietor:         model.Proprietor,
			ProprietorPhone:    model.ProprietorPhone,
			ProprietorEmail:    model.ProprietorEmail,
			Logo:               model.Logo,
			ThemeColor:         model.ThemeColor,
			ReminderDaysBefore: model.LeadDays(),
			ReminderTemplate:   model.Template(),
		},
		Configured: configured,
	}
}

type OwnerResponse struct {
	Data  *Owner  `json:"data"`                                     // The owner settings
	Error *string `json:"error" example:"invalid owner settings"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Owner
// @Success		204
// @Router			/v1/owner [options]
func OptionsOwner(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get owner settings
// @Description	Returns the owner settings. When nothing has been saved yet, defaults are returned with configured set to false.
// @Tags			Owner
// @Produce		json
// @Success		200	{object}	OwnerResponse
// @Failure		500	{object}	OwnerResponse
// @Router			/v1/owner [get]
func GetOwner(c *gin.Context) {
	var owner models.Owner
	err := models.DB.First(&owner).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			s := err.Error()
			c.JSON(status(err), OwnerResponse{
				Error: &s,
			})
			return
		}

		data := newOwner(models.Owner{}, false)
		c.JSON(http.StatusOK, OwnerResponse{Data: &data})
		return
	}

	data := newOwner(owner, true)
	c.JSON(http.StatusOK, OwnerResponse{Data: &data})
}

// @Summary		Update owner settings
// @Description	Replaces the owner settings. Creates them on first call.
// @Tags			Owner
// @Accept			json
// @Produce		json
// @Success		200		{object}	OwnerResponse
// @Failure		400		{object}	OwnerResponse
// @Failure		500		{object}	OwnerResponse
// @Param			owner	body		OwnerEditable	true	"Owner settings"
// @Router			/v1/owner [put]
func UpdateOwner(c *gin.Context) {
	var data OwnerEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OwnerResponse{
			Error: &s,
		})
		return
	}

	var owner models.Owner
	err = models.DB.First(&owner).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		s := err.Error()
		c.JSON(status(err), OwnerResponse{
			Error: &s,
		})
		return
	}

	updated := data.model()
	updated.Model = owner.Model

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), OwnerResponse{
			Error: &s,
		})
		return
	}

	apiResource := newOwner(updated, true)
	c.JSON(http.StatusOK, OwnerResponse{Data: &apiResource})
}
