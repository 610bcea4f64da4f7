package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/httputil"
	"github.com/pocketwise/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudgets)
		r.GET("", GetBudgets)
		r.POST("", CreateBudget)
	}
	{
		r.OPTIONS("/unbudgeted-categories", httputil.OptionsGet)
		r.GET("/unbudgeted-categories", GetUnbudgetedCategories)
	}
	{
		r.OPTIONS("/:id", OptionsBudgetDetail)
		r.PATCH("/:id", UpdateBudget)
		r.DELETE("/:id", DeleteBudget)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/{id} [options]
func OptionsBudgetDetail(c *gin.Context) {
	c.Header("allow", "PATCH, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		List budgets
// @Description	Returns the active budgets of the authenticated user together with their spending state for the current period window
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	snapshots, err := models.BudgetSnapshots(models.DB, currentUser(c), time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &s})
		return
	}

	data := make([]Budget, 0, len(snapshots))
	for _, snapshot := range snapshots {
		data = append(data, newBudget(snapshot))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Create budget
// @Description	Creates a budget for one of the user's expense categories. A category can only have one budget.
// @Tags			Budgets
// @Produce		json
// @Success		201	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		401	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		409	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			budget	body	BudgetCreate	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var create BudgetCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget, err := models.CreateBudget(models.DB, currentUser(c), create.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data, err := projectBudget(budget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Updates the amount, period and active flag of a budget. The category cannot be changed.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		401	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			budget	body	BudgetEditable	true	"Budget"
// @Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	user := currentUser(c)

	var current models.Budget
	if user != uuid.Nil {
		err := models.DB.Where(&models.Budget{UserID: user}).First(&current, "id = ?", uri.ID.UUID).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetResponse{Error: &s})
			return
		}
	}

	// Use the current values as defaults for fields the request omits
	editable := BudgetEditable{
		Amount: current.Amount,
		Period: current.Period,
		Active: current.Active,
	}
	if err := c.ShouldBindJSON(&editable); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &s})
		return
	}

	budget, err := models.UpdateBudget(models.DB, user, uri.ID.UUID, editable.Amount, editable.Period, editable.Active)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	data, err := projectBudget(budget)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Deletes a budget. The category and its transactions are untouched.
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err := models.DeleteBudget(models.DB, currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, gin.H{})
}

// @Summary		List unbudgeted categories
// @Description	Returns the expense categories of the user that do not have a budget yet
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/budgets/unbudgeted-categories [get]
func GetUnbudgetedCategories(c *gin.Context) {
	categories, err := models.UnbudgetedCategories(models.DB, currentUser(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &s})
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		data = append(data, newCategory(category))
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: data})
}

// projectBudget computes the API representation of a single budget with a
// fresh spending state.
func projectBudget(budget models.Budget) (Budget, error) {
	var category models.Category
	err := models.DB.First(&category, "id = ?", budget.CategoryID).Error
	if err != nil {
		return Budget{}, err
	}

	spent, err := budget.Spent(models.DB, time.Now())
	if err != nil {
		return Budget{}, err
	}

	return newBudget(models.BudgetSnapshot{
		Budget:   budget,
		Category: category,
		Spent:    spent,
	}), nil
}
