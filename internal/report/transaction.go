package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
)

// Kind discriminates the two transaction variants.
//
// swagger:enum Kind
type Kind string

const (
	KindPayment Kind = "payment"
	KindExpense Kind = "expense"
)

// Transaction is a payment or an expense in a single list. Consumers
// switch on Kind, exactly one of Payment and Expense is set.
type Transaction struct {
	Kind    Kind            `json:"kind"`
	Payment *models.Payment `json:"payment,omitempty"`
	Expense *models.Expense `json:"expense,omitempty"`
}

// Date returns the date relevant for ordering and bucketing: the
// payment date for payments, the expense date for expenses.
func (t Transaction) Date() types.Date {
	switch t.Kind {
	case KindPayment:
		return t.Payment.PaymentDate
	default:
		return t.Expense.Date
	}
}

// Amount returns the transaction amount: the stored total for
// payments, the amount for expenses.
func (t Transaction) Amount() decimal.Decimal {
	switch t.Kind {
	case KindPayment:
		return t.Payment.TotalAmount
	default:
		return t.Expense.Amount
	}
}

// Label returns the name shown for the transaction: the tenant for
// payments, the category for expenses.
func (t Transaction) Label() string {
	switch t.Kind {
	case KindPayment:
		return t.Payment.TenantName
	default:
		return t.Expense.Category
	}
}

// BlockID returns the block the transaction refers to, which may be
// empty.
func (t Transaction) BlockID() string {
	switch t.Kind {
	case KindPayment:
		return t.Payment.BlockID
	default:
		return t.Expense.BlockID
	}
}

// Merge combines payments and expenses into one list, newest first.
// The sort is stable so records sharing a date keep their input order.
func Merge(payments []models.Payment, expenses []models.Expense) []Transaction {
	transactions := make([]Transaction, 0, len(payments)+len(expenses))

	for i := range payments {
		transactions = append(transactions, Transaction{Kind: KindPayment, Payment: &payments[i]})
	}
	for i := range expenses {
		transactions = append(transactions, Transaction{Kind: KindExpense, Expense: &expenses[i]})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[j].Date().Before(transactions[i].Date())
	})

	return transactions
}

// Sums adds up the payment and expense amounts of a transaction list.
func Sums(transactions []Transaction) (income, expenses decimal.Decimal) {
	for _, t := range transactions {
		switch t.Kind {
		case KindPayment:
			income = income.Add(t.Amount())
		case KindExpense:
			expenses = expenses.Add(t.Amount())
		}
	}

	return income, expenses
}
