// Package schedule computes which tenants need attention today.
//
// All functions are pure: they operate on tenant lists that have
// already been loaded and never touch the database themselves.
package schedule

import (
	"time"

	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
)

// ExpiryWindowDays is the look-ahead for expiring contracts,
// in calendar days.
const ExpiryWindowDays = 30

// ActionItems are the tenant lists shown on the dashboard. The lists
// can overlap: a tenant whose contract ends on their due day appears
// in more than one.
type ActionItems struct {
	DueToday     []models.Tenant `json:"dueToday"`     // Rent is due today
	DueSoon      []models.Tenant `json:"dueSoon"`      // Rent is due within the reminder lead time
	ExpiringSoon []models.Tenant `json:"expiringSoon"` // Contract ends within the expiry window
}

// LastDayOfMonth returns the number of days in the month t falls in.
func LastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// Check computes the action items for a day.
//
// A tenant is due today when their due day, clamped to the length of
// the current month, is today. A due day of 31 in a 30 day month means
// the rent is due on the 30th.
//
// The due soon rule subtracts the lead time from the due day and
// matches on the resulting day number. When the lead crosses into the
// previous month the offset is re-based against the current month's
// length instead. This is a day-number heuristic, not calendar date
// subtraction: it does not know which month the reminder belongs to,
// so it can fire on a slightly wrong day when adjacent months have
// different lengths. The behavior is kept as is, existing dashboards
// rely on it.
func Check(tenants []models.Tenant, today time.Time, reminderDaysBefore int) ActionItems {
	items := ActionItems{
		DueToday:     []models.Tenant{},
		DueSoon:      []models.Tenant{},
		ExpiringSoon: []models.Tenant{},
	}

	day := today.Day()
	lastDay := LastDayOfMonth(today)

	todayDate := types.DateOf(today)
	expiryLimit := todayDate.AddDays(ExpiryWindowDays)

	for _, tenant := range tenants {
		due := tenant.DueDay
		if due > lastDay {
			due = lastDay
		}
		if due == day {
			items.DueToday = append(items.DueToday, tenant)
		}

		reminderDay := tenant.DueDay - reminderDaysBefore
		if day == reminderDay || (reminderDay <= 0 && day == lastDay+reminderDay) {
			items.DueSoon = append(items.DueSoon, tenant)
		}

		end := tenant.ContractEnd
		if !end.IsZero() && !end.Before(todayDate) && !end.After(expiryLimit) {
			items.ExpiringSoon = append(items.ExpiringSoon, tenant)
		}
	}

	return items
}
