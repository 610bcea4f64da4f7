package v1

import (
	"github.com/pocketwise/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string              `json:"name" example:"Groceries"` // Name of the category
	Icon  string              `json:"icon" example:"utensils"`  // Display icon
	Color string              `json:"color" example:"#ef4444"`  // Display color as 6-digit hex
	Type  models.CategoryType `json:"type" example:"expense"`   // Whether the category is for income or expenses
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:  editable.Name,
		Icon:  editable.Icon,
		Color: editable.Color,
		Type:  editable.Type,
	}
}

type Category struct {
	models.Category
}

func newCategory(model models.Category) Category {
	return Category{Category: model}
}

type CategoryResponse struct {
	Data  *Category `json:"data"`  // Data for the category
	Error *string   `json:"error"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`  // List of categories
	Error *string    `json:"error"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Type models.CategoryType `form:"type"` // By type (income or expense)
}
