package models

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType distinguishes income from expense categories.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Category represents a user defined label for transactions.
//
// Names are not unique, two categories of a user may share one.
type Category struct {
	DefaultModel
	UserID uuid.UUID    `json:"userId" gorm:"index"`         // The user owning the category
	Name   string       `json:"name" example:"Groceries"`    // Name of the category
	Icon   string       `json:"icon" example:"utensils"`     // Display icon
	Color  string       `json:"color" example:"#ef4444"`     // Display color as 6-digit hex
	Type   CategoryType `json:"type" example:"expense"`      // Whether transactions in this category are income or expenses
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrNameRequired
	}

	if c.Type != CategoryTypeIncome && c.Type != CategoryTypeExpense {
		return ErrCategoryTypeInvalid
	}

	if !colorPattern.MatchString(c.Color) {
		return ErrColorInvalid
	}

	return nil
}

// Categories returns the categories of a user ordered by name, optionally
// filtered by type.
//
// Without a user identity the result is empty, not an error.
func Categories(db *gorm.DB, userID uuid.UUID, categoryType CategoryType) ([]Category, error) {
	categories := make([]Category, 0)
	if userID == uuid.Nil {
		return categories, nil
	}

	q := db.Where(&Category{UserID: userID}).Order("name ASC")
	if categoryType != "" {
		q = q.Where("type = ?", categoryType)
	}

	err := q.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// defaultCategories is the starter set created for new users.
var defaultCategories = []Category{
	{Name: "Salary", Icon: "briefcase", Color: "#22c55e", Type: CategoryTypeIncome},
	{Name: "Freelance", Icon: "laptop", Color: "#10b981", Type: CategoryTypeIncome},
	{Name: "Investments", Icon: "trending-up", Color: "#14b8a6", Type: CategoryTypeIncome},
	{Name: "Other Income", Icon: "plus-circle", Color: "#06b6d4", Type: CategoryTypeIncome},
	{Name: "Food & Dining", Icon: "utensils", Color: "#ef4444", Type: CategoryTypeExpense},
	{Name: "Transportation", Icon: "car", Color: "#f97316", Type: CategoryTypeExpense},
	{Name: "Shopping", Icon: "shopping-bag", Color: "#f59e0b", Type: CategoryTypeExpense},
	{Name: "Entertainment", Icon: "gamepad-2", Color: "#eab308", Type: CategoryTypeExpense},
	{Name: "Bills & Utilities", Icon: "receipt", Color: "#84cc16", Type: CategoryTypeExpense},
	{Name: "Healthcare", Icon: "heart-pulse", Color: "#ec4899", Type: CategoryTypeExpense},
	{Name: "Housing", Icon: "home", Color: "#8b5cf6", Type: CategoryTypeExpense},
	{Name: "Education", Icon: "graduation-cap", Color: "#6366f1", Type: CategoryTypeExpense},
	{Name: "Other Expenses", Icon: "more-horizontal", Color: "#64748b", Type: CategoryTypeExpense},
}

// SeedDefaultCategories creates the starter categories for a user that does
// not have any categories yet.
func SeedDefaultCategories(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	var count int64
	err := db.Model(&Category{}).Where(&Category{UserID: userID}).Count(&count).Error
	if err != nil {
		return nil, err
	}

	if count > 0 {
		return nil, ErrCategoriesAlreadySeeded
	}

	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)
	for i := range categories {
		categories[i].UserID = userID
	}

	err = db.Create(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
