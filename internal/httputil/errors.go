package httputil

import (
	"errors"
	"net/http"

	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/validate"
	"gorm.io/gorm"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
	ErrInvalidUUID      = errors.New("the specified resource ID is not a valid UUID")
	ErrNoFilePost       = errors.New("you must send a file to this endpoint")
)

// ErrorStatus returns the appropriate HTTP status for a service error.
func ErrorStatus(err error) int {
	var violations validate.Violations
	if errors.As(err, &violations) {
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ErrInvalidBody) || errors.Is(err, ErrRequestBodyEmpty) || errors.Is(err, ErrInvalidUUID) || errors.Is(err, ErrNoFilePost) {
		return http.StatusBadRequest
	}

	if errors.Is(err, models.ErrAmountNotPositive) || errors.Is(err, models.ErrTargetAmountNotPositive) || errors.Is(err, models.ErrCategoryNameNotUnique) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
