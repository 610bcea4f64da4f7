package v1

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	ez_uuid "github.com/pocketwise/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	CategoryID  *uuid.UUID             `json:"categoryId"`                             // Optional category, null for uncategorized
	Amount      decimal.Decimal        `json:"amount" example:"27.12"`                 // Positive amount, the type decides the direction
	Type        models.TransactionType `json:"type" example:"expense"`                 //
	Description string                 `json:"description" example:"Weekly groceries"` //
	Date        types.Date             `json:"date" example:"2024-06-12"`              // Calendar day of the transaction
	Note        string                 `json:"note"`                                   // Optional free-form notes
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		CategoryID:  editable.CategoryID,
		Amount:      editable.Amount,
		Type:        editable.Type,
		Description: editable.Description,
		Date:        editable.Date,
		Note:        editable.Note,
	}
}

type Transaction struct {
	models.Transaction
}

func newTransaction(model models.Transaction) Transaction {
	return Transaction{Transaction: model}
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`  // Data for the transaction
	Error *string      `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`       // List of transactions
	Error      *string       `json:"error"`      // The error, if any occurred
	Pagination *Pagination   `json:"pagination"` // Pagination information
}

type TransactionQueryFilter struct {
	FromDate   types.Date             `form:"fromDate"`                   // Transactions at and after this day
	UntilDate  types.Date             `form:"untilDate"`                  // Transactions before and at this day
	Type       models.TransactionType `form:"type"`                       // By type (income or expense)
	CategoryID ez_uuid.UUID           `form:"category"`                   // By category ID
	Offset     uint                   `form:"offset" filterField:"false"` // The offset of the first transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`  // Maximum number of transactions to return. Defaults to 50.
}
