package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrInsufficientInventory = errors.New("insufficient inventory")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidState          = errors.New("invalid state")
	ErrValidation            = errors.New("validation failed")
	ErrNotOnSale             = errors.New("ticket is not on sale")
	ErrIdempotencyConflict   = errors.New("idempotency key reused with a different request")

	ErrPromoNotValid      = errors.New("promotional code is not valid")
	ErrPromoNotApplicable = errors.New("promotional code does not apply")
	ErrUsageLimitReached  = errors.New("promotional code usage limit reached")
	ErrDuplicateCode      = errors.New("promotional code already exists")
	ErrNotSupported       = errors.New("not supported")

	ErrNetwork      = errors.New("network error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	ErrSuperseded          = errors.New("request superseded by a newer one")
	ErrDuplicateSubmission = errors.New("request already in flight")
)

// TransitionError identifies a rejected lifecycle change.
type TransitionError struct {
	From EventStatus
	To   EventStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ValidationError maps field names to what is wrong with them.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NetworkError is a backend failure that is neither 401 nor 404.
// Message carries the backend's own message when it sent one.
type NetworkError struct {
	Status  int
	Message string
}

func (e *NetworkError) Error() string {
	if e.Status == 0 {
		return "network error: " + e.Message
	}
	return fmt.Sprintf("network error: status %d: %s", e.Status, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return ErrNetwork
}
