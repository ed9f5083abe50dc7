package entities

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrIllegalTransition  = errors.New("illegal order status transition")
	ErrBelowMinimumAmount = errors.New("amount below gateway minimum")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")

	ErrCartNotFound     = fmt.Errorf("cart %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrLineItemNotFound = fmt.Errorf("line item %w", ErrNotFound)
	ErrPaymentNotFound  = fmt.Errorf("payment %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrProfileNotFound  = fmt.Errorf("staff profile %w", ErrNotFound)

	ErrNotAssigned = fmt.Errorf("order is assigned to another handler: %w", ErrForbidden)

	// ErrStaleOrder означает, что статус заказа изменился между чтением и записью.
	ErrStaleOrder = errors.New("order status changed concurrently")
)

// ValidationError описывает невалидное поле.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// TransitionError описывает отклонённый переход статуса заказа.
type TransitionError struct {
	From   OrderStatus
	To     OrderStatus
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s: %s", e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}

type BelowMinimumError struct {
	Amount  Money
	Minimum Money
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("payable amount %d is below gateway minimum %d", e.Amount, e.Minimum)
}

func (e *BelowMinimumError) Unwrap() error {
	return ErrBelowMinimumAmount
}
