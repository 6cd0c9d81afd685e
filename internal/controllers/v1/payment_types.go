package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/httputil"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
)

// PaymentEditable represents all user configurable parameters
type PaymentEditable struct {
	TenantName        string               `json:"tenantName" example:"Ana Reyes" default:""`      // Name of the paying tenant, copied at payment time
	TenantPhone       string               `json:"tenantPhone" example:"+639171234567" default:""` // Phone of the paying tenant, copied at payment time
	TenantEmail       string               `json:"tenantEmail" example:"ana@example.com" default:""`
	BlockID           string               `json:"blockId" example:"A-1" default:""`       // Code of the block the payment is for
	PaymentDate       types.Date           `json:"paymentDate" example:"2024-05-05"`       // Day the payment was received
	CoverageStart     types.Date           `json:"coverageStart" example:"2024-05-01"`     // First day the payment pays for
	CoverageEnd       types.Date           `json:"coverageEnd" example:"2024-05-31"`       // Last day the payment pays for
	BaseRent          decimal.Decimal      `json:"baseRent" example:"5000" default:"0"`    // Monthly rent portion
	AdditionalCharges decimal.Decimal      `json:"additionalCharges" example:"150" default:"0"` // Utilities, penalties and other charges
	Deductions        decimal.Decimal      `json:"deductions" example:"0" default:"0"`     // Discounts and advance payments
	PaymentMethod     models.PaymentMethod `json:"paymentMethod" example:"GCash" default:"Cash"`
	Notes             string               `json:"notes" example:"Paid in full" default:""`
}

func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		TenantName:        editable.TenantName,
		TenantPhone:       editable.TenantPhone,
		TenantEmail:       editable.TenantEmail,
		BlockID:           editable.BlockID,
		PaymentDate:       editable.PaymentDate,
		CoverageStart:     editable.CoverageStart,
		CoverageEnd:       editable.CoverageEnd,
		BaseRent:          editable.BaseRent,
		AdditionalCharges: editable.AdditionalCharges,
		Deductions:        editable.Deductions,
		PaymentMethod:     editable.PaymentMethod,
		Notes:             editable.Notes,
	}
}

type PaymentLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/payments/31"`                  // The payment itself
	Receipt string `json:"receipt" example:"https://example.com/api/v1/documents/receipt/31"` // Printable acknowledgement receipt
}

type Payment struct {
	models.Model
	PaymentEditable
	TotalAmount decimal.Decimal `json:"totalAmount" example:"5150"` // Derived total: baseRent + additionalCharges - deductions
	Links       PaymentLinks    `json:"links"`
}

func newPayment(c *gin.Context, model models.Payment) Payment {
	url := httputil.RequestPathV1(c)

	return Payment{
		Model: model.Model,
		PaymentEditable: PaymentEditable{
			TenantName:        model.TenantName,
			TenantPhone:       model.TenantPhone,
			TenantEmail:       model.TenantEmail,
			BlockID:           model.BlockID,
			PaymentDate:       model.PaymentDate,
			CoverageStart:     model.CoverageStart,
			CoverageEnd:       model.CoverageEnd,
			BaseRent:          model.BaseRent,
			AdditionalCharges: model.AdditionalCharges,
			Deductions:        model.Deductions,
			PaymentMethod:     model.PaymentMethod,
			Notes:             model.Notes,
		},
		TotalAmount: model.TotalAmount,
		Links: PaymentLinks{
			Self:    fmt.Sprintf("%s/payments/%d", url, model.ID),
			Receipt: fmt.Sprintf("%s/documents/receipt/%d", url, model.ID),
		},
	}
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                // List of Payments
	Error      *string     `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                          // Pagination information
}

type PaymentCreateResponse struct {
	Data  []PaymentResponse `json:"data"`                                                // List of the created Payments or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

func (p *PaymentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PaymentResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PaymentResponse struct {
	Data  *Payment `json:"data"`                                                // Data for the Payment
	Error *string  `json:"error" example:"the specified resource ID is not valid"` // The error, if any occurred
}

type PaymentQueryFilter struct {
	BlockID       string               `form:"block" filterField:"false"`     // By block code, glob patterns allowed
	PaymentMethod models.PaymentMethod `form:"method"`                        // By payment method
	FromDate      types.Date           `form:"fromDate" filterField:"false"`  // Payments on or after this date
	UntilDate     types.Date           `form:"untilDate" filterField:"false"` // Payments on or before this date
	Search        string               `form:"search" filterField:"false"`    // By string in tenant name, block or notes
	Offset        uint                 `form:"offset" filterField:"false"`    // The offset of the first Payment returned. Defaults to 0.
	Limit         int                  `form:"limit" filterField:"false"`     // Maximum number of Payments to return. Defaults to 50.
}

func (f PaymentQueryFilter) model() models.Payment {
	return models.Payment{
		PaymentMethod: f.PaymentMethod,
	}
}
