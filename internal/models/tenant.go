package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/types"
	"gorm.io/gorm"
)

// Tenant is a lease: who rents which block, for how much, and on which
// day of the month the rent is due.
type Tenant struct {
	Model
	Name          string
	BlockID       string // Code of the rented block. A plain string, dangling references are tolerated.
	Phone         string
	Email         string
	ContractStart types.Date
	ContractEnd   types.Date
	LeaseAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DueDay        int             // Calendar day of month the rent is due, 1 to 31. Clamped to short months at evaluation time, not here.
}

func (t *Tenant) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.BlockID = strings.TrimSpace(t.BlockID)
	t.Phone = strings.TrimSpace(t.Phone)
	t.Email = strings.TrimSpace(t.Email)

	if t.DueDay < 1 || t.DueDay > 31 {
		return ErrDueDayOutOfRange
	}

	return nil
}

// Returns all tenants on this instance for export
func (Tenant) Export() (json.RawMessage, error) {
	var tenants []Tenant
	err := DB.Unscoped().Where(&Tenant{}).Find(&tenants).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&tenants)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
