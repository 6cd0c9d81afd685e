package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Block is a rentable unit, identified by its code.
type Block struct {
	Model
	BlockID     string `gorm:"uniqueIndex"`
	Description string
	Rate        decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Default monthly rate for the block
}

func (b *Block) BeforeSave(_ *gorm.DB) error {
	b.BlockID = strings.TrimSpace(b.BlockID)
	b.Description = strings.TrimSpace(b.Description)

	return nil
}

// Returns all blocks on this instance for export
func (Block) Export() (json.RawMessage, error) {
	var blocks []Block
	err := DB.Unscoped().Where(&Block{}).Find(&blocks).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&blocks)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
