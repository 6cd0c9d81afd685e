package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/insights"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/report"
	"github.com/spacerent/backend/internal/schedule"
)

// insightsService is set once at startup. A disabled service answers
// every request with an error, it never blocks the dashboard.
var insightsService = insights.NewService("")

// SetInsightsService configures the advisory text service.
func SetInsightsService(s *insights.Service) {
	insightsService = s
}

// RegisterInsightsRoutes registers the insights route with
// the RouterGroup that is passed.
func RegisterInsightsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", CreateInsight)
}

type InsightData struct {
	Text string `json:"text"` // The generated advisory text
}

type InsightResponse struct {
	Data  *InsightData `json:"data"`                                                  // The advisory text, if one was generated
	Error *string      `json:"error" example:"insights are not enabled on this server"` // The error, if any occurred
}

// @Summary		Generate insights
// @Description	Generates a short advisory text from the monthly figures. Requires the server to be configured with an API key.
// @Tags			Insights
// @Produce		json
// @Success		201	{object}	InsightResponse
// @Failure		500	{object}	InsightResponse
// @Failure		503	{object}	InsightResponse
// @Router			/v1/insights [post]
func CreateInsight(c *gin.Context) {
	var tenants []models.Tenant
	if err := models.DB.Find(&tenants).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), InsightResponse{Error: &s})
		return
	}

	var payments []models.Payment
	if err := models.DB.Find(&payments).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), InsightResponse{Error: &s})
		return
	}

	var expenses []models.Expense
	if err := models.DB.Find(&expenses).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), InsightResponse{Error: &s})
		return
	}

	var owner models.Owner
	_ = models.DB.First(&owner).Error

	income, expense := report.Totals(payments, expenses)
	items := schedule.Check(tenants, time.Now(), owner.LeadDays())

	text, err := insightsService.Advise(c.Request.Context(), insights.Summary{
		Months:        report.Monthly(payments, expenses),
		TotalIncome:   income,
		TotalExpenses: expense,
		TenantCount:   len(tenants),
		DueTodayCount: len(items.DueToday),
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InsightResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, InsightResponse{
		Data: &InsightData{Text: text},
	})
}
