package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	name := " Groceries\t"

	category := suite.createTestCategory(models.Category{UserID: uuid.New(), Name: name})
	suite.Assert().Equal("Groceries", category.Name)
}

func (suite *TestSuiteStandard) TestCategoryNameRequired() {
	err := models.DB.Create(&models.Category{UserID: uuid.New(), Name: "  ", Color: "#ef4444", Type: models.CategoryTypeExpense}).Error
	suite.Assert().ErrorIs(err, models.ErrNameRequired)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestCategoryTypeChecked() {
	err := models.DB.Create(&models.Category{UserID: uuid.New(), Name: "Groceries", Color: "#ef4444", Type: "neither"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryTypeInvalid)
}

func (suite *TestSuiteStandard) TestCategoryColorChecked() {
	for _, color := range []string{"", "red", "#ef44", "#ef4444ff", "ef4444"} {
		err := models.DB.Create(&models.Category{UserID: uuid.New(), Name: "Groceries", Color: color, Type: models.CategoryTypeExpense}).Error
		suite.Assert().ErrorIs(err, models.ErrColorInvalid, "color %q passed validation erroneously", color)
	}
}

func (suite *TestSuiteStandard) TestCategoryDuplicateNamesAllowed() {
	user := uuid.New()

	_ = suite.createTestCategory(models.Category{UserID: user, Name: "Groceries"})
	_ = suite.createTestCategory(models.Category{UserID: user, Name: "Groceries"})

	categories, err := models.Categories(models.DB, user, "")
	suite.Assert().NoError(err)
	suite.Assert().Len(categories, 2)
}

func (suite *TestSuiteStandard) TestCategoriesOrderedAndFiltered() {
	user := uuid.New()

	_ = suite.createTestCategory(models.Category{UserID: user, Name: "Transport"})
	_ = suite.createTestCategory(models.Category{UserID: user, Name: "Groceries"})
	_ = suite.createTestCategory(models.Category{UserID: user, Name: "Salary", Type: models.CategoryTypeIncome, Color: "#22c55e"})

	// Another user's category must never show up
	_ = suite.createTestCategory(models.Category{UserID: uuid.New(), Name: "Other user"})

	categories, err := models.Categories(models.DB, user, "")
	suite.Assert().NoError(err)
	suite.Require().Len(categories, 3)
	suite.Assert().Equal("Groceries", categories[0].Name)
	suite.Assert().Equal("Salary", categories[1].Name)
	suite.Assert().Equal("Transport", categories[2].Name)

	expenses, err := models.Categories(models.DB, user, models.CategoryTypeExpense)
	suite.Assert().NoError(err)
	suite.Assert().Len(expenses, 2)
}

func (suite *TestSuiteStandard) TestCategoriesNoUser() {
	categories, err := models.Categories(models.DB, uuid.Nil, "")
	suite.Assert().NoError(err)
	suite.Assert().Empty(categories)
}

func (suite *TestSuiteStandard) TestSeedDefaultCategories() {
	user := uuid.New()

	categories, err := models.SeedDefaultCategories(models.DB, user)
	suite.Assert().NoError(err)
	suite.Assert().Len(categories, 13)

	for _, category := range categories {
		suite.Assert().Equal(user, category.UserID)
	}

	// Seeding twice must not duplicate the starter set
	_, err = models.SeedDefaultCategories(models.DB, user)
	suite.Assert().ErrorIs(err, models.ErrCategoriesAlreadySeeded)
	suite.Assert().ErrorIs(err, models.ErrConflict)
}

func (suite *TestSuiteStandard) TestSeedDefaultCategoriesExistingCategories() {
	user := uuid.New()
	_ = suite.createTestCategory(models.Category{UserID: user})

	_, err := models.SeedDefaultCategories(models.DB, user)
	suite.Assert().ErrorIs(err, models.ErrCategoriesAlreadySeeded)
}

func (suite *TestSuiteStandard) TestSeedDefaultCategoriesNoUser() {
	_, err := models.SeedDefaultCategories(models.DB, uuid.Nil)
	suite.Assert().ErrorIs(err, models.ErrUnauthenticated)
}

func (suite *TestSuiteStandard) TestCategoryDeleteSetsTransactionsUncategorized() {
	user := uuid.New()
	category := suite.createTestCategory(models.Category{UserID: user})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:     user,
		CategoryID: &category.ID,
		Amount:     decimal.NewFromInt(10),
	})

	err := models.DB.Delete(&category).Error
	suite.Require().NoError(err)

	err = models.DB.First(&transaction, "id = ?", transaction.ID).Error
	suite.Require().NoError(err)
	suite.Assert().Nil(transaction.CategoryID)
}

func (suite *TestSuiteStandard) TestCategoryDeleteCascadesBudget() {
	user := uuid.New()
	category := suite.createTestCategory(models.Category{UserID: user})
	budget := suite.createTestBudget(models.Budget{UserID: user, CategoryID: category.ID, Active: true})

	err := models.DB.Delete(&category).Error
	suite.Require().NoError(err)

	err = models.DB.First(&models.Budget{}, "id = ?", budget.ID).Error
	suite.Assert().ErrorIs(err, models.ErrNotFound)
}
