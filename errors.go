package radar

import (
	"errors"
	"fmt"
)

// Sentinel errors for the radar package. None of them is fatal: Build
// reports them alongside a plan whose affected layers are suppressed.
var (
	// ErrMissingData is returned when categories or series values are absent.
	ErrMissingData = errors.New("radar: missing categories or series")

	// ErrDegenerateViewport is returned when width or height is not a
	// positive finite number.
	ErrDegenerateViewport = errors.New("radar: degenerate viewport")

	// ErrNoCategories is returned when a layout is requested for zero categories.
	ErrNoCategories = errors.New("radar: no categories")

	// ErrDegenerateSeries is returned when a series maximum is zero and
	// normalization is undefined.
	ErrDegenerateSeries = errors.New("radar: series maximum is zero")
)

// InvalidValueError is returned when a series value is negative or not finite.
type InvalidValueError struct {
	Series string
	Index  int
	Value  float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("radar: series %q value %d is %v, want finite and >= 0", e.Series, e.Index, e.Value)
}

// SeriesLengthError is returned when a series does not have one value per category.
type SeriesLengthError struct {
	Series string
	Got    int
	Want   int
}

func (e *SeriesLengthError) Error() string {
	return fmt.Sprintf("radar: series %q has %d values, want %d", e.Series, e.Got, e.Want)
}

// SeriesError wraps a normalization failure with the series it belongs to.
type SeriesError struct {
	Series string
	Role   Role
	Err    error
}

func (e *SeriesError) Error() string {
	return fmt.Sprintf("radar: %s series %q: %v", e.Role, e.Series, e.Err)
}

func (e *SeriesError) Unwrap() error { return e.Err }

// ColorError is returned by ParseColor for malformed input.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return fmt.Sprintf("radar: invalid color %q", e.Value)
}
