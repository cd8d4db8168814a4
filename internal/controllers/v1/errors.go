package v1

import "errors"

var (
	errStartDateInvalid      = errors.New("the start_date parameter must be an ISO-8601 date")
	errEndDateInvalid        = errors.New("the end_date parameter must be an ISO-8601 date")
	errApprovalActionInvalid = errors.New("the action must be one of [pending, approved, rejected]")
)
