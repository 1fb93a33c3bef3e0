package quantity

import "errors"

// Sentinel errors for unit and quantity operations.
var (
	// ErrDimensionMismatch indicates a conversion between units whose
	// SI decompositions differ.
	ErrDimensionMismatch = errors.New("quantity: incompatible dimensions")

	// ErrShapeMismatch indicates an element-wise operation on arrays of
	// different lengths, neither of which is a single value.
	ErrShapeMismatch = errors.New("quantity: array lengths differ")

	// ErrUnknownUnit indicates a symbol missing from the unit table.
	ErrUnknownUnit = errors.New("quantity: unknown unit symbol")

	// ErrUnknownDimension indicates a gonum dimension with no SI base counterpart.
	ErrUnknownDimension = errors.New("quantity: unknown dimension")
)
