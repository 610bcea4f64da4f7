package v1

import (
	"github.com/pocketwise/backend/internal/models"
	"github.com/pocketwise/backend/internal/types"
	ez_uuid "github.com/pocketwise/backend/internal/uuid"
)

// ReportRangeFilter selects the date window a report covers. Both dates
// are inclusive calendar days. An empty filter means the current month.
type ReportRangeFilter struct {
	From  types.Date `form:"from"`  // First day of the window
	Until types.Date `form:"until"` // Last day of the window
}

// window resolves the filter into a concrete date range, defaulting to the
// current calendar month when no dates are given.
func (filter ReportRangeFilter) window() (types.Range, error) {
	if filter.From.IsZero() && filter.Until.IsZero() {
		return types.MonthRange(types.Today().Time()), nil
	}

	window := types.Range{Start: filter.From.Time(), End: filter.Until.Time()}
	if filter.From.IsZero() {
		window.Start = types.MonthRange(window.End).Start
	}
	if filter.Until.IsZero() {
		window.End = types.MonthRange(window.Start).End
	}

	if window.End.Before(window.Start) {
		return types.Range{}, errInvalidDateRange
	}

	return window, nil
}

// HistoryQueryFilter selects how far the monthly history reaches back and
// optionally restricts it to one category.
type HistoryQueryFilter struct {
	Months   int          `form:"months"`   // Number of months to cover, newest is the current month. Defaults to 6.
	Category ez_uuid.UUID `form:"category"` // Only sum expenses of this category
}

type SummaryResponse struct {
	Data  *models.PeriodSummary `json:"data"`  // Income, expense and balance of the window
	Error *string               `json:"error"` // The error, if any occurred
}

type SpendingResponse struct {
	Data  []models.CategorySpending `json:"data"`  // Expense totals per category, largest first
	Error *string                   `json:"error"` // The error, if any occurred
}

type HistoryResponse struct {
	Data  []models.SpendingPoint `json:"data"`  // Monthly expense totals, oldest first
	Error *string                `json:"error"` // The error, if any occurred
}
