package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/spacerent/backend/internal/models"
	"github.com/spacerent/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestNotFoundError() {
	err := models.DB.First(&models.Tenant{}, 4096).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no tenant matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestExpenseAmountNotPositive() {
	err := models.DB.Create(&models.Expense{
		Category: "Repairs",
		Date:     types.NewDate(2024, 3, 1),
		Amount:   decimal.NewFromInt(-200),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrExpenseAmountNotPositive)
}

func (suite *TestSuiteStandard) TestBlockIDUnique() {
	_ = suite.createTestBlock(models.Block{BlockID: "A-1"})

	err := models.DB.Create(&models.Block{BlockID: "A-1"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrBlockIDNotUnique)
}

func (suite *TestSuiteStandard) TestUsernameUnique() {
	err := models.DB.Create(&models.User{Username: "owner", PasswordHash: "x"}).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Create(&models.User{Username: "owner", PasswordHash: "y"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestClosedDBIsGeneralError() {
	suite.CloseDB()

	err := models.DB.Create(&models.Block{BlockID: "Z-9"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
