package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/types"
	"gorm.io/gorm"
)

// Expense is money spent on the property.
type Expense struct {
	Model
	Category string
	BlockID  string // Optional, empty when the expense is not tied to a block
	Date     types.Date
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes    string
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.BlockID = strings.TrimSpace(e.BlockID)
	e.Notes = strings.TrimSpace(e.Notes)

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrExpenseAmountNotPositive
	}

	return nil
}

// Returns all expenses on this instance for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
