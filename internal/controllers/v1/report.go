package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
	ez_uuid "github.com/pocketwise/backend/internal/uuid"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/spending", httputil.OptionsGet)
	r.GET("/spending", GetSpending)

	r.OPTIONS("/history", httputil.OptionsGet)
	r.GET("/history", GetHistory)
}

// @Summary		Period summary
// @Description	Returns income, expense and balance for the date window. Defaults to the current month.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		400	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Param			from	query	string	false	"First day of the window (YYYY-MM-DD)"
// @Param			until	query	string	false	"Last day of the window (YYYY-MM-DD)"
// @Router			/v1/reports/summary [get]
func GetSummary(c *gin.Context) {
	var filter ReportRangeFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	window, err := filter.window()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &s})
		return
	}

	summary, err := models.Summary(models.DB, currentUser(c), window)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// @Summary		Spending by category
// @Description	Returns the expense totals of the date window grouped by category, largest first. Defaults to the current month.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	SpendingResponse
// @Failure		400	{object}	SpendingResponse
// @Failure		500	{object}	SpendingResponse
// @Param			from	query	string	false	"First day of the window (YYYY-MM-DD)"
// @Param			until	query	string	false	"Last day of the window (YYYY-MM-DD)"
// @Router			/v1/reports/spending [get]
func GetSpending(c *gin.Context) {
	var filter ReportRangeFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SpendingResponse{Error: &s})
		return
	}

	window, err := filter.window()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SpendingResponse{Error: &s})
		return
	}

	spending, err := models.SpendingByCategory(models.DB, currentUser(c), window)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SpendingResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SpendingResponse{Data: spending})
}

// @Summary		Monthly history
// @Description	Returns the expense totals of the last months, oldest first, ending with the current month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	HistoryResponse
// @Failure		400	{object}	HistoryResponse
// @Failure		500	{object}	HistoryResponse
// @Param			months		query	int		false	"Number of months, between 1 and 120. Defaults to 6."
// @Param			category	query	string	false	"Only sum expenses of this category"
// @Router			/v1/reports/history [get]
func GetHistory(c *gin.Context) {
	filter := HistoryQueryFilter{Months: 6}
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &s})
		return
	}

	if filter.Months < 1 || filter.Months > 120 {
		s := errMonthsOutOfRange.Error()
		c.JSON(http.StatusBadRequest, HistoryResponse{Error: &s})
		return
	}

	var categoryID *uuid.UUID
	if filter.Category != ez_uuid.Nil {
		categoryID = &filter.Category.UUID
	}

	history, err := models.MonthlyHistory(models.DB, currentUser(c), filter.Months, categoryID, time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HistoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HistoryResponse{Data: history})
}
