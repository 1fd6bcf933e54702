package entity

import (
	"errors"
	"fmt"
)

// ErrNotEnrolled means no credential (or no secret) exists for the user.
var ErrNotEnrolled = errors.New("user is not enrolled")

// StorageError reports a failed read or write against the key-value store.
type StorageError struct {
	// Op is the store command that failed, e.g. "HSET".
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// DependencyError reports a failure in secret generation or QR rendering.
type DependencyError struct {
	// Component names the failing collaborator, e.g. "totp" or "qrcode".
	Component string
	Err       error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Component, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
