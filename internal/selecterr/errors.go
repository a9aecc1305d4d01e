// Package selecterr defines the two error classes spec.md §7 requires: a
// user-facing runtime error for malformed selectors, and an internal error
// for invariant violations that correct command dispatch should never
// trigger. Both wrap the standard library's error type rather than a
// third-party errors package — see DESIGN.md for why no pack dependency
// displaces this.
package selecterr

import "fmt"

// UserError is raised for invalid selector syntax: unknown enum literals,
// malformed dotted forms, too many path segments.
type UserError struct {
	Method   string
	Selector string
	Reason   string
}

func (e *UserError) Error() string {
	if e.Method == "" {
		return e.Reason
	}
	return fmt.Sprintf("invalid %q selector %q: %s", e.Method, e.Selector, e.Reason)
}

// NewUserError builds a UserError.
func NewUserError(method, selector, reason string) *UserError {
	return &UserError{Method: method, Selector: selector, Reason: reason}
}

// InternalError is raised when the caller violated a precondition the
// dispatch layer should have enforced: missing previous state for
// `state:`/`result:`/`source_status:`, or an unknown method name reaching
// the registry.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string { return "internal error: " + e.Reason }

// NewInternalError builds an InternalError.
func NewInternalError(reason string) *InternalError {
	return &InternalError{Reason: reason}
}
