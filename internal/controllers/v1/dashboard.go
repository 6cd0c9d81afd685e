package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/notify"
	"github.com/spacerent/backend/internal/report"
	"github.com/spacerent/backend/internal/schedule"
)

// RegisterDashboardRoutes registers the dashboard route with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetDashboard)
}

// Reminder is a ready-to-send reminder for one tenant.
type Reminder struct {
	TenantID   uint64 `json:"tenantId" example:"17"`
	TenantName string `json:"tenantName" example:"Ana Reyes"`
	BlockID    string `json:"blockId" example:"A-1"`
	Message    string `json:"message"`              // Rendered reminder text
	SMSLink    string `json:"smsLink"`              // sms: URI opening the message in a phone app
	MailtoLink string `json:"mailtoLink,omitempty"` // mailto: URI, empty when the tenant has no email
}

type DashboardData struct {
	TotalIncome          decimal.Decimal      `json:"totalIncome" example:"61000"`
	TotalExpenses        decimal.Decimal      `json:"totalExpenses" example:"12400"`
	NetSurplus           decimal.Decimal      `json:"netSurplus" example:"48600"`
	AverageMonthlyIncome decimal.Decimal      `json:"averageMonthlyIncome" example:"10166.67"`
	TenantCount          int                  `json:"tenantCount" example:"6"`
	Months               []report.MonthlyStat `json:"months"`      // Trailing six month income and expenses
	ActionItems          schedule.ActionItems `json:"actionItems"` // Due today, due soon and expiring contracts
	Reminders            []Reminder           `json:"reminders"`   // Prepared messages for every tenant due today or soon
}

type DashboardResponse struct {
	Data  *DashboardData `json:"data"`  // The dashboard figures
	Error *string        `json:"error"` // The error, if any occurred
}

// @Summary		Dashboard
// @Description	Returns all figures for one dashboard load: totals, monthly statistics, action items and prepared reminder messages.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var tenants []models.Tenant
	if err := models.DB.Find(&tenants).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	var payments []models.Payment
	if err := models.DB.Find(&payments).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	var expenses []models.Expense
	if err := models.DB.Find(&expenses).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	// Missing owner settings are fine, the zero value falls back to
	// the default lead time and template.
	var owner models.Owner
	_ = models.DB.First(&owner).Error

	stats := report.Monthly(payments, expenses)
	income, expense := report.Totals(payments, expenses)

	items := schedule.Check(tenants, time.Now(), owner.LeadDays())

	reminders := make([]Reminder, 0)
	seen := make(map[uint64]bool)
	for _, tenant := range append(items.DueToday, items.DueSoon...) {
		if seen[tenant.ID] {
			continue
		}
		seen[tenant.ID] = true

		reminders = append(reminders, newReminder(tenant, owner))
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Data: &DashboardData{
			TotalIncome:          income,
			TotalExpenses:        expense,
			NetSurplus:           income.Sub(expense),
			AverageMonthlyIncome: report.AverageMonthlyIncome(income, stats),
			TenantCount:          len(tenants),
			Months:               stats,
			ActionItems:          items,
			Reminders:            reminders,
		},
	})
}

func newReminder(tenant models.Tenant, owner models.Owner) Reminder {
	message := notify.Render(owner.Template(), notify.Placeholders{
		Tenant: tenant.Name,
		Block:  tenant.BlockID,
		Amount: tenant.LeaseAmount,
		Date:   "the " + notify.Ordinal(tenant.DueDay),
	})

	reminder := Reminder{
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
		BlockID:    tenant.BlockID,
		Message:    message,
		SMSLink:    notify.SMSLink(tenant.Phone, message),
	}

	if tenant.Email != "" {
		reminder.MailtoLink = notify.MailtoLink(tenant.Email, "Rent Reminder", message)
	}

	return reminder
}
