package entity

import "errors"

// Failure taxonomy shared by repositories, the unit of work and the
// checkout orchestrator. Callers match with errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrNotFound         = errors.New("not found")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrStorage          = errors.New("storage failure")
	ErrNotification     = errors.New("notification failure")
)

var (
	ErrNameIsRequired     = errors.New("name is required")
	ErrQuantityIsNegative = errors.New("quantity must be greater than or equal to zero")
	ErrCategoryIsRequired = errors.New("category is required")
	ErrProductIsRequired  = errors.New("product is required")
	ErrUnknownOrderStatus = errors.New("unknown order status")
)
