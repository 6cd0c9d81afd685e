package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/types"
	"gorm.io/gorm"
)

// PaymentMethod is how a payment was made.
//
// swagger:enum PaymentMethod
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodGCash        PaymentMethod = "GCash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCheque       PaymentMethod = "Cheque"
	MethodOther        PaymentMethod = "Other"
)

// PaymentMethods are all valid payment methods.
var PaymentMethods = []PaymentMethod{MethodCash, MethodGCash, MethodBankTransfer, MethodCheque, MethodOther}

// Payment is a rent payment received from a tenant.
//
// Tenant name and contact are denormalized copies taken at payment
// time. Deleting a tenant does not cascade to their payments.
type Payment struct {
	Model
	TenantName        string
	TenantPhone       string
	TenantEmail       string
	BlockID           string
	PaymentDate       types.Date
	CoverageStart     types.Date // Start of the period the payment pays for. May differ from the payment date.
	CoverageEnd       types.Date
	BaseRent          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	AdditionalCharges decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Deductions        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaymentMethod     PaymentMethod
	Notes             string
}

// BeforeSave recomputes the total on every create and edit. The stored
// total is derived, never trusted as independently entered.
func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.TenantName = strings.TrimSpace(p.TenantName)
	p.BlockID = strings.TrimSpace(p.BlockID)
	p.Notes = strings.TrimSpace(p.Notes)

	if p.PaymentMethod == "" {
		p.PaymentMethod = MethodCash
	}

	valid := false
	for _, m := range PaymentMethods {
		if p.PaymentMethod == m {
			valid = true
			break
		}
	}
	if !valid {
		return ErrPaymentMethodInvalid
	}

	p.TotalAmount = p.BaseRent.Add(p.AdditionalCharges).Sub(p.Deductions)

	return nil
}

// Returns all payments on this instance for export
func (Payment) Export() (json.RawMessage, error) {
	var payments []Payment
	err := DB.Unscoped().Where(&Payment{}).Find(&payments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&payments)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
