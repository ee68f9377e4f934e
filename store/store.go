// Package store is the persistence gateway over the three MongoDB
// collections (products, bookings, users). Implementations are
// constructed once at startup and injected into the controllers.
package store

import "errors"

var (
	ErrInvalidID         = errors.New("invalid id")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflicting concurrent update")
)
