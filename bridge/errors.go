package bridge

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by bridge operations. Callers match them with
// errors.Is; the concrete error is always a *ReflectError carrying the
// operation and path.
var (
	// ErrTypeMismatch means a write's value kind disagrees with the field's
	// declared kind. The write is rejected before any mutation.
	ErrTypeMismatch = errors.New("value kind does not match field kind")

	// ErrReadOnly means a write targeted a field without write capability.
	ErrReadOnly = errors.New("field is read-only")

	// ErrPathNotFound means a path that resolved at enumeration time no
	// longer resolves. Callers treat this as "field removed" and drop the
	// corresponding widget.
	ErrPathNotFound = errors.New("path does not resolve")
)

// ReflectError wraps a bridge failure with the operation and path that
// produced it.
type ReflectError struct {
	Op   string
	Path Path
	Err  error
}

// Error formats the failure as op, path and cause.
func (e *ReflectError) Error() string {
	return fmt.Sprintf("bridge: %s %q: %v", e.Op, e.Path.String(), e.Err)
}

// Unwrap exposes the sentinel cause for errors.Is.
func (e *ReflectError) Unwrap() error {
	return e.Err
}

func reflectErr(op string, path Path, err error) error {
	return &ReflectError{Op: op, Path: path, Err: err}
}
