package service

import (
	"errors"
	"fmt"
)

// ErrProductNotFound reports that no product matched the requested id.
// It is a normal outcome, not a store failure.
var ErrProductNotFound = errors.New("product not found")

// StoreError wraps an unexpected failure from the underlying store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
