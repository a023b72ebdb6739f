package apperrors

import (
	"errors"
	"fmt"

	"gestao-associado-svc/pkg/money"
)

// Sentinel errors for user-actionable conditions. Callers distinguish them
// with errors.Is and map each one to its own HTTP status.
var (
	ErrDuplicateDue        = errors.New("member already has a due in this month")
	ErrDuplicateNationalID = errors.New("national id already registered")
	ErrDuplicateUsername   = errors.New("username already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrDueNotFound         = errors.New("due not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrDueInUse            = errors.New("due is referenced by a payment record and cannot be deleted")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)

// ValidationError reports malformed input. Surfaced immediately, never
// retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidation builds a ValidationError from a format string
func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PaymentAmountMismatchError is raised when a recorded payment amount does
// not match the due amount. Expected carries the due amount for display.
type PaymentAmountMismatchError struct {
	Expected money.Money
}

func (e *PaymentAmountMismatchError) Error() string {
	return fmt.Sprintf("payment amount must equal the due amount (%s)", e.Expected)
}

// StoreError wraps any persistence failure not otherwise classified
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStore wraps err as a StoreError for operation op
func NewStore(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
