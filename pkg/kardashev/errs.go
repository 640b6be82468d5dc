package kardashev

import (
	"errors"
	"fmt"
)

// ErrDomain indicates a numeric input outside the domain of the formula
// (non-positive power, non-positive growth factor, score outside [0,1]).
var ErrDomain = errors.New("kardashev: value out of domain")

// DomainError carries the offending field and value. It matches ErrDomain
// under errors.Is.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s=%g: %s", e.Field, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// NewDomainError builds a *DomainError.
func NewDomainError(field string, value float64, reason string) *DomainError {
	return &DomainError{Field: field, Value: value, Reason: reason}
}
