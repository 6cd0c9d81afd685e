package v1_test

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	v1 "github.com/spacerent/backend/internal/controllers/v1"
	"github.com/spacerent/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDashboardEmpty verifies the dashboard works without any data.
func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalIncome.IsZero())
	assert.Equal(suite.T(), 0, response.Data.TenantCount)
	assert.Empty(suite.T(), response.Data.Reminders)
	assert.NotNil(suite.T(), response.Data.ActionItems.DueToday)
}

func (suite *TestSuiteStandard) TestDashboard() {
	// A tenant whose rent is due today
	_ = createTestTenant(suite.T(), v1.TenantEditable{
		Name:        "Ana Reyes",
		BlockID:     "A-1",
		Phone:       "+639171234567",
		Email:       "ana@example.com",
		LeaseAmount: decimal.NewFromInt(5000),
		DueDay:      time.Now().Day(),
	})
	// A tenant who is not due
	otherDay := time.Now().Day() + 10
	if otherDay > 28 {
		otherDay -= 27
	}
	_ = createTestTenant(suite.T(), v1.TenantEditable{
		Name:    "Ben Cruz",
		BlockID: "A-2",
		DueDay:  otherDay,
	})

	_ = createTestPayment(suite.T(), v1.PaymentEditable{BaseRent: decimal.NewFromInt(5000)})
	_ = createTestPayment(suite.T(), v1.PaymentEditable{BaseRent: decimal.NewFromInt(7000)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Amount: decimal.NewFromInt(900)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalIncome.Equal(decimal.NewFromInt(12000)), "Total income is %s", response.Data.TotalIncome)
	assert.True(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromInt(900)), "Total expenses are %s", response.Data.TotalExpenses)
	assert.True(suite.T(), response.Data.NetSurplus.Equal(decimal.NewFromInt(11100)), "Net surplus is %s", response.Data.NetSurplus)
	assert.Equal(suite.T(), 2, response.Data.TenantCount)
	// All seeded activity falls into 2024-05
	if assert.Len(suite.T(), response.Data.Months, 1) {
		assert.True(suite.T(), response.Data.Months[0].Net.Equal(decimal.NewFromInt(11100)))
	}

	require.Len(suite.T(), response.Data.ActionItems.DueToday, 1)
	assert.Equal(suite.T(), "Ana Reyes", response.Data.ActionItems.DueToday[0].Name)

	require.Len(suite.T(), response.Data.Reminders, 1)
	reminder := response.Data.Reminders[0]
	assert.Equal(suite.T(), "Ana Reyes", reminder.TenantName)
	assert.Contains(suite.T(), reminder.Message, "Ana Reyes")
	assert.Contains(suite.T(), reminder.Message, "A-1")
	assert.Contains(suite.T(), reminder.SMSLink, "sms:+639171234567")
	assert.Contains(suite.T(), reminder.MailtoLink, "mailto:ana@example.com")
}

// TestDashboardCustomTemplate verifies that a saved reminder template
// is used for the prepared messages.
func (suite *TestSuiteStandard) TestDashboardCustomTemplate() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/owner", v1.OwnerEditable{
		BusinessName:     "Reyes Spaces",
		ReminderTemplate: "{tenant}, rent for {block} is due {date}.",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = createTestTenant(suite.T(), v1.TenantEditable{
		Name:    "Ana Reyes",
		BlockID: "A-1",
		DueDay:  time.Now().Day(),
	})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Reminders, 1)
	assert.Equal(suite.T(), "Ana Reyes, rent for A-1 is due the "+ordinalToday()+".", response.Data.Reminders[0].Message)
}

func ordinalToday() string {
	day := time.Now().Day()

	suffix := "th"
	switch {
	case day%10 == 1 && day != 11:
		suffix = "st"
	case day%10 == 2 && day != 12:
		suffix = "nd"
	case day%10 == 3 && day != 13:
		suffix = "rd"
	}

	return time.Now().Format("2") + suffix
}
