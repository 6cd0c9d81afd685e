package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Category string          `json:"category" example:"Repairs" default:""`  // What kind of expense this is
	BlockID  string          `json:"blockId" example:"A-1" default:""`       // Optional block the expense belongs to
	Date     types.Date      `json:"date" example:"2024-05-03"`              // Day the expense was paid
	Amount   decimal.Decimal `json:"amount" example:"900"`                   // Amount spent, must be positive
	Notes    string          `json:"notes" example:"Roof leak fix" default:""`
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Category: editable.Category,
		BlockID:  editable.BlockID,
		Date:     editable.Date,
		Amount:   editable.Amount,
		Notes:    editable.Notes,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/12"` // The expense itself
}

type Expense struct {
	models.Model
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := httputil.RequestPathV1(c)

	return Expense{
		Model: model.Model,
		ExpenseEditable: ExpenseEditable{
			Category: model.Category,
			BlockID:  model.BlockID,
			Date:     model.Date,
			Amount:   model.Amount,
			Notes:    model.Notes,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/expenses/%d", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                          // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category  string     `form:"category"`                      // By category
	BlockID   string     `form:"block" filterField:"false"`     // By block code, glob patterns allowed
	FromDate  types.Date `form:"fromDate" filterField:"false"`  // Expenses on or after this date
	UntilDate types.Date `form:"untilDate" filterField:"false"` // Expenses on or before this date
	Search    string     `form:"search" filterField:"false"`    // By string in category, block or notes
	Offset    uint       `form:"offset" filterField:"false"`    // The offset of the first Expense returned. Defaults to 0.
	Limit     int        `form:"limit" filterField:"false"`     // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category: f.Category,
	}
}
