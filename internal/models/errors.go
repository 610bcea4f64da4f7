package models

import (
	"errors"
	"fmt"
)

// The error kinds below are the only categories the backend distinguishes.
// Everything the store or a hook produces is rewritten to wrap one of them,
// so callers branch with errors.Is instead of matching message strings.
var (
	// ErrGeneral is a store failure we cannot explain to the user.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrUnauthenticated marks writes attempted without a user identity.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrNotFound wraps lookups for resources that do not exist or belong
	// to another user.
	ErrNotFound = errors.New("there is no")

	// ErrConflict marks violations of a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrValidation wraps all input validation failures.
	ErrValidation = errors.New("invalid input")
)

// Validation errors returned by model hooks.
var (
	ErrAmountNotPositive      = fmt.Errorf("%w: the amount must be positive", ErrValidation)
	ErrNameRequired           = fmt.Errorf("%w: the name must be set", ErrValidation)
	ErrDescriptionRequired    = fmt.Errorf("%w: the description must be set", ErrValidation)
	ErrCategoryTypeInvalid    = fmt.Errorf("%w: the category type must be 'income' or 'expense'", ErrValidation)
	ErrTransactionTypeInvalid = fmt.Errorf("%w: the transaction type must be 'income' or 'expense'", ErrValidation)
	ErrColorInvalid           = fmt.Errorf("%w: the color must be a hex color like '#1e87f0'", ErrValidation)
	ErrPeriodInvalid          = fmt.Errorf("%w: the period must be 'weekly', 'monthly' or 'yearly'", ErrValidation)
	ErrCurrencyInvalid        = fmt.Errorf("%w: the currency must be a 3-letter ISO 4217 code", ErrValidation)
	ErrCategoryNotExpense     = fmt.Errorf("%w: budgets can only be set for expense categories", ErrValidation)
)

// Conflict errors.
var (
	ErrBudgetExists            = fmt.Errorf("%w: a budget already exists for this category", ErrConflict)
	ErrCategoriesAlreadySeeded = fmt.Errorf("%w: categories already exist for this user", ErrConflict)
)
