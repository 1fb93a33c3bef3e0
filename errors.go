package naturalunits

import "errors"

// Sentinel errors for natural unit conversions.
// Use errors.Is() to check for specific error conditions.
var (
	// ErrInvalidInput indicates the value to convert is not a quantity or unit.
	// Scalars are only accepted by FromNaturalUnits.
	ErrInvalidInput = errors.New("naturalunits: input must be a quantity or unit")

	// ErrInvalidOutputUnit indicates the requested output unit is unusable,
	// either because it is invalid or, for ToNaturalUnits, not an energy.
	ErrInvalidOutputUnit = errors.New("naturalunits: invalid output unit")

	// ErrUnsupportedDimension indicates a unit that decomposes to a base other
	// than mass, length, time and current.
	ErrUnsupportedDimension = errors.New("naturalunits: can only convert MKS+A quantities")

	// ErrIncompatibleUnit indicates the output unit requires a different power
	// of energy than the natural unit value carries.
	ErrIncompatibleUnit = errors.New("naturalunits: output unit not compatible with energy dimension")
)
