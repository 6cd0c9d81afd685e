package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// User is the single login of the dashboard. Registration is rejected
// once a user exists, there is no multi-user model.
type User struct {
	Model
	Username     string `gorm:"uniqueIndex"`
	// The bcrypt hash is part of the model JSON so that backups can be
	// restored with the account intact. It must never appear in API
	// responses, controllers expose their own serialization types.
	PasswordHash string `json:"passwordHash"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	return nil
}

// Returns all users on this instance for export.
// Password hashes are not exported.
func (User) Export() (json.RawMessage, error) {
	var users []User
	err := DB.Unscoped().Where(&User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&users)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
