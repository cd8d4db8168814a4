package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive       = errors.New("transaction amounts must be larger than zero")
	ErrTargetAmountNotPositive = errors.New("savings goal targets must be larger than zero")
	ErrCategoryNameNotUnique   = errors.New("you already have a category with this name")
)
