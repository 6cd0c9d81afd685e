// Package report aggregates payments and expenses into the figures
// shown on the dashboard and in exported documents.
//
// Like the schedule package it is pure: callers load the records, the
// package only computes.
package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
)

// MonthWindow is the number of trailing months kept in the monthly
// statistics.
const MonthWindow = 6

// MonthlyStat is the income, expenses and net result of one month.
// Months without any activity are absent, not zero.
type MonthlyStat struct {
	Month    types.Month     `json:"month" example:"2024-02"`
	Income   decimal.Decimal `json:"income" example:"15000"`
	Expenses decimal.Decimal `json:"expenses" example:"4200.50"`
	Net      decimal.Decimal `json:"net" example:"10799.50"`
}

// Monthly buckets payments and expenses by calendar month and returns
// the stats for the last MonthWindow months that have any activity,
// in chronological order.
//
// Payment totals are trusted as stored: the write path derives them
// from their components on every save.
func Monthly(payments []models.Payment, expenses []models.Expense) []MonthlyStat {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}

	buckets := make(map[string]*bucket)
	get := func(key string) *bucket {
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, p := range payments {
		b := get(p.PaymentDate.Month().String())
		b.income = b.income.Add(p.TotalAmount)
	}

	for _, e := range expenses {
		b := get(e.Date.Month().String())
		b.expenses = b.expenses.Add(e.Amount)
	}

	// Zero-padded YYYY-MM keys sort lexicographically in
	// chronological order
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if len(keys) > MonthWindow {
		keys = keys[len(keys)-MonthWindow:]
	}

	stats := make([]MonthlyStat, 0, len(keys))
	for _, key := range keys {
		// The key came from Month.String, parsing it back cannot fail
		month, _ := types.ParseMonth(key)

		b := buckets[key]
		stats = append(stats, MonthlyStat{
			Month:    month,
			Income:   b.income,
			Expenses: b.expenses,
			Net:      b.income.Sub(b.expenses),
		})
	}

	return stats
}

// Totals sums all payments and expenses over all time.
func Totals(payments []models.Payment, expenses []models.Expense) (income, expense decimal.Decimal) {
	for _, p := range payments {
		income = income.Add(p.TotalAmount)
	}
	for _, e := range expenses {
		expense = expense.Add(e.Amount)
	}

	return income, expense
}

// AverageMonthlyIncome divides the total income by the number of
// months with activity. With no active months it reports zero, not an
// undefined value.
func AverageMonthlyIncome(totalIncome decimal.Decimal, stats []MonthlyStat) decimal.Decimal {
	if len(stats) == 0 {
		return decimal.Zero
	}

	return totalIncome.Div(decimal.NewFromInt(int64(len(stats))))
}
