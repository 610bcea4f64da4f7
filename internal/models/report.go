package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Transactions without a category are reported in a synthetic bucket.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#64748b"
)

// PeriodSummary is the income, expense and net balance of a date window.
type PeriodSummary struct {
	Income  decimal.Decimal `json:"income" example:"2317.34"`  // Sum of all income transactions in the window
	Expense decimal.Decimal `json:"expense" example:"1233.70"` // Sum of all expense transactions in the window
	Balance decimal.Decimal `json:"balance" example:"1083.64"` // Income minus expense
}

// Summary folds all transactions of the user within the window into income,
// expense and balance.
//
// Without a user identity the summary is all zeros, not an error.
func Summary(db *gorm.DB, userID uuid.UUID, window types.Range) (PeriodSummary, error) {
	summary := PeriodSummary{Income: decimal.Zero, Expense: decimal.Zero, Balance: decimal.Zero}
	if userID == uuid.Nil {
		return summary, nil
	}

	var transactions []Transaction
	err := db.
		Where("user_id = ?", userID).
		Where("date >= date(?)", window.Start).
		Where("date < date(?)", window.Exclusive()).
		Find(&transactions).Error
	if err != nil {
		return PeriodSummary{}, err
	}

	for _, transaction := range transactions {
		if transaction.Type == TransactionTypeIncome {
			summary.Income = summary.Income.Add(transaction.Amount)
		} else {
			summary.Expense = summary.Expense.Add(transaction.Amount)
		}
	}

	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary, nil
}

// CategorySpending is the summed expense total of one category in a window.
type CategorySpending struct {
	Name  string          `json:"name" example:"Groceries"`  // Category name, or "Uncategorized"
	Color string          `json:"color" example:"#ef4444"`   // Category color, or the neutral bucket color
	Total decimal.Decimal `json:"total" example:"133.70"`    // Summed expense amounts
}

// SpendingByCategory groups the user's expense transactions in the window
// by category and sums their amounts.
//
// The result is sorted descending by total; categories with equal totals
// keep the order in which they were first encountered, so repeated calls
// over unchanged data return identical output. Transactions without a
// category are collected in the "Uncategorized" bucket.
func SpendingByCategory(db *gorm.DB, userID uuid.UUID, window types.Range) ([]CategorySpending, error) {
	result := make([]CategorySpending, 0)
	if userID == uuid.Nil {
		return result, nil
	}

	var transactions []Transaction
	err := db.
		Preload("Category").
		Where("user_id = ?", userID).
		Where("type = ?", TransactionTypeExpense).
		Where("date >= date(?)", window.Start).
		Where("date < date(?)", window.Exclusive()).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	// Group in encounter order, then sort stably so that ties keep it
	index := make(map[uuid.UUID]int)
	for _, transaction := range transactions {
		key := uuid.Nil
		name := UncategorizedName
		color := UncategorizedColor

		if transaction.Category != nil {
			key = transaction.Category.ID
			name = transaction.Category.Name
			color = transaction.Category.Color
		}

		i, ok := index[key]
		if !ok {
			index[key] = len(result)
			result = append(result, CategorySpending{Name: name, Color: color, Total: transaction.Amount})
			continue
		}

		result[i].Total = result[i].Total.Add(transaction.Amount)
	}

	slices.SortStableFunc(result, func(a, b CategorySpending) int {
		return b.Total.Cmp(a.Total)
	})

	return result, nil
}

// SpendingPoint is the expense total of one calendar month.
type SpendingPoint struct {
	Label string          `json:"label" example:"Jun 2025"` // The month, formatted for display
	Total decimal.Decimal `json:"total" example:"133.70"`   // Summed expense amounts of the month
}

// MonthlyHistory returns the expense totals of the last months calendar
// months, ending with the month of asOf, oldest first.
//
// The result always has exactly months entries: a month without matching
// transactions contributes a zero total, it is never omitted. With a
// non-nil categoryID only that category's expenses are summed.
func MonthlyHistory(db *gorm.DB, userID uuid.UUID, months int, categoryID *uuid.UUID, asOf time.Time) ([]SpendingPoint, error) {
	if userID == uuid.Nil || months <= 0 {
		return make([]SpendingPoint, 0), nil
	}

	points := make([]SpendingPoint, months)

	// One sum per month, dispatched concurrently and combined by index.
	// time.Date normalizes out-of-range months, so going back over a year
	// boundary lands in December of the previous year.
	var g errgroup.Group
	for i := 0; i < months; i++ {
		i := i
		g.Go(func() error {
			month := time.Date(asOf.UTC().Year(), asOf.UTC().Month()-time.Month(months-1-i), 1, 0, 0, 0, 0, time.UTC)

			total, err := sumExpenses(db, userID, categoryID, types.MonthRange(month))
			if err != nil {
				return err
			}

			points[i] = SpendingPoint{Label: month.Format("Jan 2006"), Total: total}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}

// BudgetSnapshot is a read-only projection of a budget with the spending of
// its current period window. It is computed on read and never persisted.
type BudgetSnapshot struct {
	Budget
	Category Category        `json:"category"`               // The category the budget limits
	Spent    decimal.Decimal `json:"spent" example:"327.50"` // Expense total for the category in the budget's current window
}

// Percentage returns how much of the budget is used, rounded to whole
// percent and capped at 100. A budget with a zero amount reports 0.
func (s BudgetSnapshot) Percentage() int64 {
	if s.Amount.IsZero() {
		return 0
	}

	p := s.Spent.Div(s.Amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if p > 100 {
		return 100
	}

	return p
}

// OverBudget reports whether spending strictly exceeds the budget amount.
func (s BudgetSnapshot) OverBudget() bool {
	return s.Spent.GreaterThan(s.Amount)
}

// NearLimit reports whether at least 80% of the budget is used without
// being over it. OverBudget and NearLimit are mutually exclusive.
func (s BudgetSnapshot) NearLimit() bool {
	return s.Percentage() >= 80 && !s.OverBudget()
}

// Overage returns the amount spent beyond the budget, zero when not over.
func (s BudgetSnapshot) Overage() decimal.Decimal {
	if !s.OverBudget() {
		return decimal.Zero
	}

	return s.Spent.Sub(s.Amount)
}

// Remaining returns the budget left to spend, zero when over budget.
func (s BudgetSnapshot) Remaining() decimal.Decimal {
	if s.OverBudget() {
		return decimal.Zero
	}

	return s.Amount.Sub(s.Spent)
}

// BudgetSnapshots computes the spending projection for every active budget
// of the user as of the reference time.
//
// Each budget is evaluated over its own period window: a weekly and a
// yearly budget in the same call cover different windows. The per-budget
// sums run concurrently and are combined by index, so the order follows
// the budget query, not scheduling.
func BudgetSnapshots(db *gorm.DB, userID uuid.UUID, asOf time.Time) ([]BudgetSnapshot, error) {
	snapshots := make([]BudgetSnapshot, 0)
	if userID == uuid.Nil {
		return snapshots, nil
	}

	var budgets []Budget
	err := db.
		Preload("Category").
		Where(&Budget{UserID: userID}).
		Where("active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	snapshots = make([]BudgetSnapshot, len(budgets))

	var g errgroup.Group
	for i, budget := range budgets {
		i, budget := i, budget
		g.Go(func() error {
			spent, err := budget.Spent(db, asOf)
			if err != nil {
				return err
			}

			snapshots[i] = BudgetSnapshot{Budget: budget, Category: budget.Category, Spent: spent}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// sumExpenses returns the expense total of the user in the window,
// optionally filtered to a single category.
func sumExpenses(db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID, window types.Range) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	q := db.Table("transactions").
		Where("user_id = ?", userID).
		Where("type = ?", TransactionTypeExpense).
		Where("date >= date(?)", window.Start).
		Where("date < date(?)", window.Exclusive())

	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}

	err := q.Select("SUM(amount)").Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}
