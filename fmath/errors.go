package fmath

import (
	"errors"
	"fmt"

	"github.com/avdva/fxmath/fixed"
)

// ErrInvalidDomain is wrapped by DomainError.
var ErrInvalidDomain = errors.New("invalid domain")

// DomainError is returned when an argument is out of the function's domain,
// like a negative value for Sqrt.
type DomainError struct {
	Func  string
	Value fixed.Fixed
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("fmath: %s(%v): %v", e.Func, e.Value, ErrInvalidDomain)
}

// Unwrap returns ErrInvalidDomain.
func (e *DomainError) Unwrap() error { return ErrInvalidDomain }
