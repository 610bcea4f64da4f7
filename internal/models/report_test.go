package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSummary() {
	user := uuid.New()
	window := types.MonthRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user,
		Type:   models.TransactionTypeIncome,
		Amount: decimal.NewFromInt(100),
		Date:   mustDate("2024-06-01"),
	})

	_ = suite.createTestTransaction(models.Transaction{
		UserID: user,
		Amount: decimal.NewFromInt(50),
		Date:   mustDate("2024-06-30"),
	})

	// Outside the window
	_ = suite.createTestTransaction(models.Transaction{
		UserID: user,
		Amount: decimal.NewFromInt(1000),
		Date:   mustDate("2024-07-01"),
	})

	// Other user
	_ = suite.createTestTransaction(models.Transaction{
		UserID: uuid.New(),
		Amount: decimal.NewFromInt(1000),
		Date:   mustDate("2024-06-15"),
	})

	summary, err := models.Summary(models.DB, user, window)
	suite.Require().NoError(err)
	suite.Assert().True(summary.Income.Equal(decimal.NewFromInt(100)), "income is %s", summary.Income)
	suite.Assert().True(summary.Expense.Equal(decimal.NewFromInt(50)), "expense is %s", summary.Expense)
	suite.Assert().True(summary.Balance.Equal(decimal.NewFromInt(50)), "balance is %s", summary.Balance)
}

func (suite *TestSuiteStandard) TestSummaryEmptyWindow() {
	summary, err := models.Summary(models.DB, uuid.New(), types.MonthRange(time.Now()))
	suite.Require().NoError(err)
	suite.Assert().True(summary.Income.IsZero())
	suite.Assert().True(summary.Expense.IsZero())
	suite.Assert().True(summary.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestSummaryNoUser() {
	summary, err := models.Summary(models.DB, uuid.Nil, types.MonthRange(time.Now()))
	suite.Require().NoError(err)
	suite.Assert().True(summary.Balance.IsZero())
}

func (suite *TestSuiteStandard) TestSpendingByCategory() {
	user := uuid.New()
	window := types.MonthRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	categoryA := suite.createTestCategory(models.Category{UserID: user, Name: "A", Color: "#10b981"})
	categoryB := suite.createTestCategory(models.Category{UserID: user, Name: "B", Color: "#ef4444"})

	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &categoryA.ID, Amount: decimal.NewFromInt(10), Date: mustDate("2024-06-02")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &categoryB.ID, Amount: decimal.NewFromInt(50), Date: mustDate("2024-06-03")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &categoryA.ID, Amount: decimal.NewFromInt(20), Date: mustDate("2024-06-10")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, Amount: decimal.NewFromInt(5), Date: mustDate("2024-06-11")})

	// Income must not show up in spending
	_ = suite.createTestTransaction(models.Transaction{UserID: user, Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(2000), Date: mustDate("2024-06-01")})

	spending, err := models.SpendingByCategory(models.DB, user, window)
	suite.Require().NoError(err)
	suite.Require().Len(spending, 3)

	suite.Assert().Equal("B", spending[0].Name)
	suite.Assert().True(spending[0].Total.Equal(decimal.NewFromInt(50)))

	suite.Assert().Equal("A", spending[1].Name)
	suite.Assert().True(spending[1].Total.Equal(decimal.NewFromInt(30)))

	suite.Assert().Equal(models.UncategorizedName, spending[2].Name)
	suite.Assert().Equal(models.UncategorizedColor, spending[2].Color)
	suite.Assert().True(spending[2].Total.Equal(decimal.NewFromInt(5)))
}

func (suite *TestSuiteStandard) TestSpendingByCategoryStableTies() {
	// Categories with equal totals keep their first-encounter order over
	// repeated calls on unchanged data
	user := uuid.New()
	window := types.MonthRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	first := suite.createTestCategory(models.Category{UserID: user, Name: "First"})
	second := suite.createTestCategory(models.Category{UserID: user, Name: "Second"})

	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &first.ID, Amount: decimal.NewFromInt(25), Date: mustDate("2024-06-02")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &second.ID, Amount: decimal.NewFromInt(25), Date: mustDate("2024-06-03")})

	for i := 0; i < 3; i++ {
		spending, err := models.SpendingByCategory(models.DB, user, window)
		suite.Require().NoError(err)
		suite.Require().Len(spending, 2)
		suite.Assert().Equal("First", spending[0].Name)
		suite.Assert().Equal("Second", spending[1].Name)
	}
}

func (suite *TestSuiteStandard) TestSpendingByCategoryDeletedCategory() {
	user := uuid.New()
	window := types.MonthRange(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	category := suite.createTestCategory(models.Category{UserID: user})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &category.ID, Amount: decimal.NewFromInt(40), Date: mustDate("2024-06-05")})

	suite.Require().NoError(models.DB.Delete(&category).Error)

	spending, err := models.SpendingByCategory(models.DB, user, window)
	suite.Require().NoError(err)
	suite.Require().Len(spending, 1)
	suite.Assert().Equal(models.UncategorizedName, spending[0].Name)
}

func (suite *TestSuiteStandard) TestMonthlyHistory() {
	user := uuid.New()
	asOf := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	_ = suite.createTestTransaction(models.Transaction{UserID: user, Amount: decimal.NewFromInt(10), Date: mustDate("2024-06-05")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, Amount: decimal.NewFromInt(20), Date: mustDate("2024-04-20")})

	// Before the covered window
	_ = suite.createTestTransaction(models.Transaction{UserID: user, Amount: decimal.NewFromInt(99), Date: mustDate("2023-12-31")})

	points, err := models.MonthlyHistory(models.DB, user, 6, nil, asOf)
	suite.Require().NoError(err)
	suite.Require().Len(points, 6)

	suite.Assert().Equal("Jan 2024", points[0].Label)
	suite.Assert().Equal("Jun 2024", points[5].Label)

	suite.Assert().True(points[0].Total.IsZero())
	suite.Assert().True(points[3].Total.Equal(decimal.NewFromInt(20)), "April total is %s", points[3].Total)
	suite.Assert().True(points[5].Total.Equal(decimal.NewFromInt(10)), "June total is %s", points[5].Total)
}

func (suite *TestSuiteStandard) TestMonthlyHistoryYearBoundary() {
	user := uuid.New()
	asOf := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestTransaction(models.Transaction{UserID: user, Amount: decimal.NewFromInt(70), Date: mustDate("2023-12-24")})

	points, err := models.MonthlyHistory(models.DB, user, 4, nil, asOf)
	suite.Require().NoError(err)
	suite.Require().Len(points, 4)

	suite.Assert().Equal("Nov 2023", points[0].Label)
	suite.Assert().Equal("Dec 2023", points[1].Label)
	suite.Assert().True(points[1].Total.Equal(decimal.NewFromInt(70)))
	suite.Assert().Equal("Feb 2024", points[3].Label)
}

func (suite *TestSuiteStandard) TestMonthlyHistoryCategoryFilter() {
	user := uuid.New()
	asOf := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)

	category := suite.createTestCategory(models.Category{UserID: user})
	other := suite.createTestCategory(models.Category{UserID: user, Name: "Other"})

	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &category.ID, Amount: decimal.NewFromInt(10), Date: mustDate("2024-06-05")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &other.ID, Amount: decimal.NewFromInt(90), Date: mustDate("2024-06-06")})

	points, err := models.MonthlyHistory(models.DB, user, 1, &category.ID, asOf)
	suite.Require().NoError(err)
	suite.Require().Len(points, 1)
	suite.Assert().True(points[0].Total.Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestMonthlyHistoryNoUser() {
	points, err := models.MonthlyHistory(models.DB, uuid.Nil, 6, nil, time.Now())
	suite.Require().NoError(err)
	suite.Assert().Empty(points)
}

func (suite *TestSuiteStandard) TestBudgetSnapshotClassification() {
	tests := []struct {
		name       string
		amount     int64
		spent      int64
		percentage int64
		overBudget bool
		nearLimit  bool
		remaining  int64
		overage    int64
	}{
		{"unused", 100, 0, 0, false, false, 100, 0},
		{"halfway", 100, 50, 50, false, false, 50, 0},
		{"at limit threshold", 100, 80, 80, false, true, 20, 0},
		{"at amount", 100, 100, 100, false, true, 0, 0},
		{"over", 100, 150, 100, true, false, 0, 50},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			snapshot := models.BudgetSnapshot{
				Budget: models.Budget{Amount: decimal.NewFromInt(tt.amount)},
				Spent:  decimal.NewFromInt(tt.spent),
			}

			suite.Assert().Equal(tt.percentage, snapshot.Percentage())
			suite.Assert().Equal(tt.overBudget, snapshot.OverBudget())
			suite.Assert().Equal(tt.nearLimit, snapshot.NearLimit())
			suite.Assert().True(snapshot.Remaining().Equal(decimal.NewFromInt(tt.remaining)), "remaining is %s", snapshot.Remaining())
			suite.Assert().True(snapshot.Overage().Equal(decimal.NewFromInt(tt.overage)), "overage is %s", snapshot.Overage())
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetSnapshotZeroAmount() {
	snapshot := models.BudgetSnapshot{
		Budget: models.Budget{Amount: decimal.Zero},
		Spent:  decimal.NewFromInt(10),
	}

	suite.Assert().Equal(int64(0), snapshot.Percentage())
	suite.Assert().True(snapshot.OverBudget())
}

func (suite *TestSuiteStandard) TestBudgetSnapshotRounding() {
	snapshot := models.BudgetSnapshot{
		Budget: models.Budget{Amount: decimal.NewFromInt(300)},
		Spent:  decimal.NewFromFloat(100.4),
	}

	// 33.46...% rounds to 33
	suite.Assert().Equal(int64(33), snapshot.Percentage())
}

func (suite *TestSuiteStandard) TestBudgetSnapshots() {
	user := uuid.New()
	asOf := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

	groceries := suite.createTestCategory(models.Category{UserID: user, Name: "Groceries"})
	transport := suite.createTestCategory(models.Category{UserID: user, Name: "Transport"})
	ignored := suite.createTestCategory(models.Category{UserID: user, Name: "Ignored"})

	monthly := suite.createTestBudget(models.Budget{UserID: user, CategoryID: groceries.ID, Amount: decimal.NewFromInt(100), Active: true})
	weekly := suite.createTestBudget(models.Budget{UserID: user, CategoryID: transport.ID, Amount: decimal.NewFromInt(40), Period: types.PeriodWeekly, Active: true})

	// Inactive budgets are not reported on
	_ = suite.createTestBudget(models.Budget{UserID: user, CategoryID: ignored.ID, Active: false})

	// In the current month, but not the current week
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &groceries.ID, Amount: decimal.NewFromInt(85), Date: mustDate("2024-06-03")})
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &transport.ID, Amount: decimal.NewFromInt(15), Date: mustDate("2024-06-03")})

	// In the current week
	_ = suite.createTestTransaction(models.Transaction{UserID: user, CategoryID: &transport.ID, Amount: decimal.NewFromInt(50), Date: mustDate("2024-06-11")})

	snapshots, err := models.BudgetSnapshots(models.DB, user, asOf)
	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 2)

	// Creation order
	suite.Assert().Equal(monthly.ID, snapshots[0].ID)
	suite.Assert().Equal(weekly.ID, snapshots[1].ID)

	suite.Assert().Equal("Groceries", snapshots[0].Category.Name)
	suite.Assert().True(snapshots[0].Spent.Equal(decimal.NewFromInt(85)), "monthly spent is %s", snapshots[0].Spent)
	suite.Assert().Equal(int64(85), snapshots[0].Percentage())
	suite.Assert().True(snapshots[0].NearLimit())

	// The weekly budget only sees this week's 50, not the 15 from the
	// beginning of the month
	suite.Assert().True(snapshots[1].Spent.Equal(decimal.NewFromInt(50)), "weekly spent is %s", snapshots[1].Spent)
	suite.Assert().True(snapshots[1].OverBudget())
	suite.Assert().True(snapshots[1].Overage().Equal(decimal.NewFromInt(10)))
}

func (suite *TestSuiteStandard) TestBudgetSnapshotsNoUser() {
	snapshots, err := models.BudgetSnapshots(models.DB, uuid.Nil, time.Now())
	suite.Require().NoError(err)
	suite.Assert().Empty(snapshots)
}
