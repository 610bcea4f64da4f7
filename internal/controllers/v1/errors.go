package v1

import (
	"errors"
	"net/http"

	"github.com/pocketwise/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget matching your query"`
}

// status returns the appropriate HTTP status for an error from the models
// package.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrConflict) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errMonthsOutOfRange = errors.New("the months parameter must be between 1 and 120")
	errInvalidDateRange = errors.New("the from date must not be after the until date")
)
