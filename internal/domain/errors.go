package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCategory is returned by direct rule store lookups for a
	// category that was never loaded. The validator itself never surfaces
	// this; it falls back to CategoryOther.
	ErrUnknownCategory = errors.New("unknown food category")

	// ErrUnknownUnit is returned when a unit string cannot be resolved
	// against the catalog.
	ErrUnknownUnit = errors.New("unit not recognized")

	// ErrInvalidConfig is returned when reference data fails load-time
	// validation (alias collisions, overlapping rule lists, etc)
	ErrInvalidConfig = errors.New("invalid reference data configuration")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrUnconvertible is the sentinel wrapped by Unconvertible results
	ErrUnconvertible = errors.New("conversion not possible")

	// ErrFoodNotFound is returned when a food cannot be found in the USDA database
	ErrFoodNotFound = errors.New("food not found in USDA database")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrUSDAAPIFailure is returned when a USDA API request fails
	ErrUSDAAPIFailure = errors.New("USDA API request failed")
)

// Unconvertible reports that a conversion could not be performed and why.
// It is an expected branch of the converter, not a fault: callers should
// test for it with errors.Is(err, ErrUnconvertible) or errors.As.
type Unconvertible struct {
	Reason string
}

func (u *Unconvertible) Error() string {
	return fmt.Sprintf("unconvertible: %s", u.Reason)
}

func (u *Unconvertible) Unwrap() error {
	return ErrUnconvertible
}
