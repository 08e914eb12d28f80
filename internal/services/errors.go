package services

import "errors"

// NotFoundError reports that a referenced entity id does not resolve.
// Entity names the missing record ("User", "Request", "Seller", "Offer",
// "Sender") and surfaces as a 404 at the API boundary.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ValidationError reports a required field that was absent or empty in the
// request body. Surfaces as a 400.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// ErrInvalidStatus is returned when an offer status value is not one of
// sent, accepted, rejected. Surfaces as a 400.
var ErrInvalidStatus = errors.New("Invalid status")

// ErrBudgetRange is returned when budget_min exceeds budget_max. Surfaces
// as a 400.
var ErrBudgetRange = errors.New("budget_min cannot exceed budget_max")

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
