package models_test

import (
	"strings"

	"github.com/spacerent/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTenantDueDayRange() {
	tests := []struct {
		dueDay int
		err    error
	}{
		{0, models.ErrDueDayOutOfRange},
		{-3, models.ErrDueDayOutOfRange},
		{32, models.ErrDueDayOutOfRange},
		{1, nil},
		{31, nil},
	}

	for _, tt := range tests {
		err := models.DB.Create(&models.Tenant{Name: "Tenant", DueDay: tt.dueDay}).Error
		assert.Equal(suite.T(), tt.err, err, "dueDay %d", tt.dueDay)
	}
}

func (suite *TestSuiteStandard) TestTenantTrimWhitespace() {
	name := "  Maria Cruz \t"
	block := " B-2  "

	tenant := suite.createTestTenant(models.Tenant{Name: name, BlockID: block, DueDay: 15})

	assert.Equal(suite.T(), strings.TrimSpace(name), tenant.Name)
	assert.Equal(suite.T(), strings.TrimSpace(block), tenant.BlockID)
}
