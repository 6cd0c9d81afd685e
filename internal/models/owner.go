package models

import (
	"encoding/json"
	"strings"

	"github.com/spacerent/backend/internal/notify"
	"gorm.io/gorm"
)

// DefaultReminderDaysBefore is used when the owner settings do not set
// a reminder lead time.
const DefaultReminderDaysBefore = 3

// Owner holds the business settings. There is exactly one Owner row
// system-wide, absence implies defaults.
type Owner struct {
	Model
	BusinessName       string
	Address            string
	Proprietor         string
	ProprietorPhone    string
	ProprietorEmail    string
	Logo               string `gorm:"type:text"` // Base64 encoded logo image
	ThemeColor         string // Hex color
	ReminderDaysBefore int    // Days before the due day a tenant shows up as due soon
	ReminderTemplate   string // Message template, see the message package for the tokens
}

func (o *Owner) BeforeSave(_ *gorm.DB) error {
	o.BusinessName = strings.TrimSpace(o.BusinessName)
	o.Address = strings.TrimSpace(o.Address)
	o.Proprietor = strings.TrimSpace(o.Proprietor)

	return nil
}

// LeadDays returns the configured reminder lead time, falling back to
// the default. The zero value means "not set", the settings form does
// not allow zero-day leads.
func (o Owner) LeadDays() int {
	if o.ReminderDaysBefore <= 0 {
		return DefaultReminderDaysBefore
	}

	return o.ReminderDaysBefore
}

// Template returns the configured reminder template, falling back to
// the default.
func (o Owner) Template() string {
	if o.ReminderTemplate == "" {
		return notify.DefaultTemplate
	}

	return o.ReminderTemplate
}

// Returns the owner settings on this instance for export
func (Owner) Export() (json.RawMessage, error) {
	var owners []Owner
	err := DB.Unscoped().Where(&Owner{}).Find(&owners).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&owners)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
