package v1

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetCreate represents all parameters for creating a budget
type BudgetCreate struct {
	CategoryID uuid.UUID       `json:"categoryId"`                // The expense category the budget limits
	Amount     decimal.Decimal `json:"amount" example:"400"`      // The spending limit for one period
	Period     types.Period    `json:"period" example:"monthly"`  // weekly, monthly or yearly
	Active     bool            `json:"active" example:"true"`     // Whether the budget is evaluated
}

func (create BudgetCreate) model() models.Budget {
	return models.Budget{
		CategoryID: create.CategoryID,
		Amount:     create.Amount,
		Period:     create.Period,
		Active:     create.Active,
	}
}

// BudgetEditable represents the user configurable parameters of an existing
// budget. The category of a budget cannot be changed after creation.
type BudgetEditable struct {
	Amount decimal.Decimal `json:"amount" example:"400"`     // The spending limit for one period
	Period types.Period    `json:"period" example:"monthly"` // weekly, monthly or yearly
	Active bool            `json:"active" example:"true"`    // Whether the budget is evaluated
}

// Budget is the API representation of a budget with its computed spending
// state for the current period window.
type Budget struct {
	models.Budget
	Category   models.Category `json:"category"`                 // The category the budget limits
	Spent      decimal.Decimal `json:"spent" example:"327.50"`   // Expense total in the current window
	Remaining  decimal.Decimal `json:"remaining" example:"72.5"` // Amount left to spend, zero when over budget
	Overage    decimal.Decimal `json:"overage" example:"0"`      // Amount spent beyond the budget, zero when not over
	Percentage int64           `json:"percentage" example:"82"`  // Used percentage, whole percent, capped at 100
	OverBudget bool            `json:"overBudget" example:"false"`
	NearLimit  bool            `json:"nearLimit" example:"true"`
}

func newBudget(snapshot models.BudgetSnapshot) Budget {
	return Budget{
		Budget:     snapshot.Budget,
		Category:   snapshot.Category,
		Spent:      snapshot.Spent,
		Remaining:  snapshot.Remaining(),
		Overage:    snapshot.Overage(),
		Percentage: snapshot.Percentage(),
		OverBudget: snapshot.OverBudget(),
		NearLimit:  snapshot.NearLimit(),
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // Data for the budget
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}
