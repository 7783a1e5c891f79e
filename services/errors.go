package services

import (
	"errors"
	"fmt"
)

// ErrOrderNumberExhausted is returned when order-number generation keeps
// colliding with existing orders. Collisions are astronomically rare, so
// hitting this means something is badly wrong with the store.
var ErrOrderNumberExhausted = errors.New("order number generation exhausted retries")

// ValidationError reports a user-correctable problem with a checkout
// request. Field names the offending request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ItemUnavailableError names a cart line whose menu item is missing or
// currently not orderable.
type ItemUnavailableError struct {
	MenuItemID string
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %s is not available", e.MenuItemID)
}

// StorageError wraps a database failure. Nothing has been committed when
// one is returned; the client may safely resubmit.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
