package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense of a user.
//
// The category is optional. It can also reference a category that was
// deleted later, in which case the database sets it to NULL and the
// transaction counts as uncategorized.
type Transaction struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId" gorm:"index"`                              // The user owning the transaction
	CategoryID  *uuid.UUID      `json:"categoryId"`                                       // Optional category
	Category    *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`            //
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"27.12"` // Always positive, the type decides the direction
	Type        TransactionType `json:"type" example:"expense"`                           //
	Description string          `json:"description" example:"Weekly groceries"`           //
	Date        types.Date      `json:"date" example:"2024-06-12"`                        // Calendar day of the transaction, no time component
	Note        string          `json:"note,omitempty"`                                   // Optional free-form notes
}

// BeforeSave validates the transaction and truncates the date to its
// calendar day in UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return ErrDescriptionRequired
	}

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}
	t.Date = types.DateOf(t.Date.Time())

	return nil
}
