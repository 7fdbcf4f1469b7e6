package fixed

import "errors"

var (
	// ErrDivideByZero is returned by Quo, and used as a panic value by Div, DivInt and FromRatio.
	ErrDivideByZero = errors.New("fixed: division by zero")
	// ErrPrecisionFrozen is returned by Init once the precision is already in use.
	ErrPrecisionFrozen = errors.New("fixed: precision is frozen")
	// ErrInvalidShift is returned for a shift out of [MinShift, MaxShift].
	ErrInvalidShift = errors.New("fixed: invalid shift")
)
