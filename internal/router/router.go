package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	docs "github.com/spacerent/backend/api"
	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/internal/httputil"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

func Config() (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, map[string]string{
			"error": "This HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	if err := v1.RegisterValidators(); err != nil {
		return nil, err
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Title = "SpaceRent"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for SpaceRent, a bookkeeping tool for small rental property businesses."

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	apiV1 := group.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.DELETE("", v1.Cleanup)
		apiV1.OPTIONS("", OptionsV1)
	}

	v1.RegisterAuthRoutes(apiV1.Group("/auth"))
	v1.RegisterTenantRoutes(apiV1.Group("/tenants"))
	v1.RegisterPaymentRoutes(apiV1.Group("/payments"))
	v1.RegisterExpenseRoutes(apiV1.Group("/expenses"))
	v1.RegisterBlockRoutes(apiV1.Group("/blocks"))
	v1.RegisterOwnerRoutes(apiV1.Group("/owner"))
	v1.RegisterDashboardRoutes(apiV1.Group("/dashboard"))
	v1.RegisterInsightsRoutes(apiV1.Group("/insights"))
	v1.RegisterExportRoutes(apiV1.Group("/export"), version)
	v1.RegisterImportRoutes(apiV1.Group("/import"))
	v1.RegisterDocumentRoutes(apiV1.Group("/documents"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    httputil.RequestHost(c) + "/docs/index.html",
			Version: httputil.RequestHost(c) + "/version",
			V1:      httputil.RequestHost(c) + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Auth      string `json:"auth" example:"https://example.com/api/v1/auth"`           // URL of the auth endpoints
	Tenants   string `json:"tenants" example:"https://example.com/api/v1/tenants"`     // URL of tenant list endpoint
	Payments  string `json:"payments" example:"https://example.com/api/v1/payments"`   // URL of payment list endpoint
	Expenses  string `json:"expenses" example:"https://example.com/api/v1/expenses"`   // URL of expense list endpoint
	Blocks    string `json:"blocks" example:"https://example.com/api/v1/blocks"`       // URL of block list endpoint
	Owner     string `json:"owner" example:"https://example.com/api/v1/owner"`         // URL of the owner settings endpoint
	Dashboard string `json:"dashboard" example:"https://example.com/api/v1/dashboard"` // URL of the dashboard endpoint
	Insights  string `json:"insights" example:"https://example.com/api/v1/insights"`   // URL of the insights endpoint
	Export    string `json:"export" example:"https://example.com/api/v1/export"`       // URL of backup export endpoint
	Import    string `json:"import" example:"https://example.com/api/v1/import"`       // URL of backup import endpoint
	Documents string `json:"documents" example:"https://example.com/api/v1/documents"` // URL of the document endpoints
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:      httputil.RequestPathV1(c) + "/auth",
			Tenants:   httputil.RequestPathV1(c) + "/tenants",
			Payments:  httputil.RequestPathV1(c) + "/payments",
			Expenses:  httputil.RequestPathV1(c) + "/expenses",
			Blocks:    httputil.RequestPathV1(c) + "/blocks",
			Owner:     httputil.RequestPathV1(c) + "/owner",
			Dashboard: httputil.RequestPathV1(c) + "/dashboard",
			Insights:  httputil.RequestPathV1(c) + "/insights",
			Export:    httputil.RequestPathV1(c) + "/export",
			Import:    httputil.RequestPathV1(c) + "/import",
			Documents: httputil.RequestPathV1(c) + "/documents",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
