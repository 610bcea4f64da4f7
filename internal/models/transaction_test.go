package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionDescriptionRequired() {
	err := models.DB.Create(&models.Transaction{
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(10),
		Type:   models.TransactionTypeExpense,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrDescriptionRequired)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestTransactionTypeChecked() {
	err := models.DB.Create(&models.Transaction{
		UserID:      uuid.New(),
		Amount:      decimal.NewFromInt(10),
		Type:        "transfer",
		Description: "Weekly groceries",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionAmountMustBePositive() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-7)} {
		err := models.DB.Create(&models.Transaction{
			UserID:      uuid.New(),
			Amount:      amount,
			Type:        models.TransactionTypeExpense,
			Description: "Weekly groceries",
		}).Error

		suite.Assert().ErrorIs(err, models.ErrAmountNotPositive, "amount %s passed validation erroneously", amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToToday() {
	transaction := suite.createTestTransaction(models.Transaction{UserID: uuid.New()})

	suite.Assert().Equal(types.Today(), transaction.Date)
}

func (suite *TestSuiteStandard) TestTransactionDateTruncated() {
	date := time.Date(2024, 6, 12, 17, 14, 43, 0, time.FixedZone("CEST", 7200))

	transaction := suite.createTestTransaction(models.Transaction{
		UserID: uuid.New(),
		Date:   types.DateOf(date),
	})

	suite.Assert().Equal("2024-06-12", transaction.Date.String())
}

func (suite *TestSuiteStandard) TestTransactionKeepsDeletedCategoryNote() {
	// A transaction whose category is gone reads back as uncategorized,
	// everything else stays intact
	user := uuid.New()
	category := suite.createTestCategory(models.Category{UserID: user})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:     user,
		CategoryID: &category.ID,
		Note:       "card payment",
	})

	suite.Require().NoError(models.DB.Delete(&category).Error)

	var got models.Transaction
	suite.Require().NoError(models.DB.First(&got, "id = ?", transaction.ID).Error)
	suite.Assert().Nil(got.CategoryID)
	suite.Assert().Equal("card payment", got.Note)
}
