package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a declared spending ceiling for one expense category over a
// recurring period.
//
// At most one budget exists per user and category. The unique index makes
// this atomic; the pre-check in CreateBudget only exists for a friendlier
// error before the insert is attempted.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category"`     // The user owning the budget
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_user_category"` // The expense category the budget limits
	Category   Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`               //
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"400"`     // The spending ceiling per period
	Period     types.Period    `json:"period" example:"monthly"`                           // The recurrence unit the ceiling applies to
	Active     bool            `json:"active" example:"true"`                              // Inactive budgets are kept but not reported on
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !b.Period.Valid() {
		return ErrPeriodInvalid
	}

	return nil
}

// Spent returns the amount spent for the budget's category within the
// budget's own period window as of the reference time.
//
// The window always floats to the current week, month or year: historical
// weekly or yearly budgets are not anchored to the window they were
// created in.
func (b Budget) Spent(db *gorm.DB, asOf time.Time) (decimal.Decimal, error) {
	window := b.Period.Range(asOf)
	return sumExpenses(db, b.UserID, &b.CategoryID, window)
}

// CreateBudget stores a new budget for one of the user's expense categories.
func CreateBudget(db *gorm.DB, userID uuid.UUID, budget Budget) (Budget, error) {
	if userID == uuid.Nil {
		return Budget{}, ErrUnauthenticated
	}
	budget.UserID = userID

	var category Category
	err := db.Where(&Category{UserID: userID}).First(&category, "id = ?", budget.CategoryID).Error
	if err != nil {
		return Budget{}, err
	}

	// Budgets for income categories make no sense, spending is
	// expense-only
	if category.Type != CategoryTypeExpense {
		return Budget{}, ErrCategoryNotExpense
	}

	// Friendly pre-check. The unique index still catches the insert when
	// a concurrent create wins the race between this lookup and ours.
	var existing Budget
	err = db.Where(&Budget{UserID: userID, CategoryID: budget.CategoryID}).First(&existing).Error
	if err == nil {
		return Budget{}, ErrBudgetExists
	}
	if !errors.Is(err, ErrNotFound) {
		return Budget{}, err
	}

	err = db.Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// UpdateBudget changes the amount, period and active flag of a budget.
// No other field is mutable after creation.
func UpdateBudget(db *gorm.DB, userID, id uuid.UUID, amount decimal.Decimal, period types.Period, active bool) (Budget, error) {
	if userID == uuid.Nil {
		return Budget{}, ErrUnauthenticated
	}

	var budget Budget
	err := db.Where(&Budget{UserID: userID}).First(&budget, "id = ?", id).Error
	if err != nil {
		return Budget{}, err
	}

	budget.Amount = amount
	budget.Period = period
	budget.Active = active

	err = db.Model(&budget).Select("Amount", "Period", "Active").Updates(budget).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}

// DeleteBudget removes a budget. The category and its transactions are
// untouched.
func DeleteBudget(db *gorm.DB, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthenticated
	}

	var budget Budget
	err := db.Where(&Budget{UserID: userID}).First(&budget, "id = ?", id).Error
	if err != nil {
		return err
	}

	return db.Delete(&budget).Error
}

// UnbudgetedCategories returns the expense categories of the user that no
// budget row references, regardless of the budgets' active flags.
func UnbudgetedCategories(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	categories := make([]Category, 0)
	if userID == uuid.Nil {
		return categories, nil
	}

	budgeted := db.Model(&Budget{}).Select("category_id").Where("user_id = ?", userID)

	err := db.
		Where(&Category{UserID: userID, Type: CategoryTypeExpense}).
		Where("id NOT IN (?)", budgeted).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
