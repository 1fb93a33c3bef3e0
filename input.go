package naturalunits

import (
	"fmt"

	"github.com/mtmoschella/natural-units/quantity"
	"gonum.org/v1/gonum/unit"
)

// InputKind tags the variant held by an Input.
type InputKind int

const (
	// InputNone is the zero Input; it is rejected by both conversions.
	InputNone InputKind = iota

	// InputQuantity holds a quantity.Quantity.
	InputQuantity

	// InputUnit holds a bare quantity.Unit, read as one of that unit.
	InputUnit

	// InputScalar holds plain numbers with no unit.
	InputScalar
)

// String returns the variant name.
func (k InputKind) String() string {
	switch k {
	case InputQuantity:
		return "quantity"
	case InputUnit:
		return "unit"
	case InputScalar:
		return "scalar"
	default:
		return "none"
	}
}

// Input is the value handed to a conversion: a quantity, a bare unit, or
// plain scalars. Build one with FromQuantity, FromUnit, FromScalar or FromUniter.
type Input struct {
	kind    InputKind
	q       quantity.Quantity
	u       quantity.Unit
	scalars []float64
}

// FromQuantity wraps a quantity.
func FromQuantity(q quantity.Quantity) Input {
	return Input{kind: InputQuantity, q: q}
}

// FromUnit wraps a bare unit.
func FromUnit(u quantity.Unit) Input {
	return Input{kind: InputUnit, u: u}
}

// FromScalar wraps unitless values.
func FromScalar(values ...float64) Input {
	return Input{kind: InputScalar, scalars: append([]float64(nil), values...)}
}

// FromUniter wraps a gonum value such as unit.Mass(1) as a quantity.
func FromUniter(x unit.Uniter) (Input, error) {
	q, err := quantity.FromUniter(x)
	if err != nil {
		return Input{}, err
	}
	return FromQuantity(q), nil
}

// Kind returns the variant tag.
func (in Input) Kind() InputKind {
	return in.kind
}

// resolve turns in into a quantity, promoting bare units to value 1.
// Scalars are promoted to dimensionless quantities only when allowScalar is set.
func (in Input) resolve(cfg *convertConfig, allowScalar bool) (quantity.Quantity, error) {
	switch in.kind {
	case InputQuantity:
		if !in.q.Unit().Valid() {
			return quantity.Quantity{}, fmt.Errorf("%w: quantity has an invalid unit", ErrInvalidInput)
		}
		return in.q, nil
	case InputUnit:
		if !in.u.Valid() {
			return quantity.Quantity{}, fmt.Errorf("%w: invalid unit", ErrInvalidInput)
		}
		cfg.notice("converting unit to quantity by multiplying by 1.0", "unit", in.u.String())
		return quantity.New(in.u, 1.0), nil
	case InputScalar:
		if !allowScalar {
			return quantity.Quantity{}, fmt.Errorf("%w: got %s", ErrInvalidInput, in.kind)
		}
		cfg.notice("converting ordinary scalar to a dimensionless quantity", "values", len(in.scalars))
		return quantity.New(quantity.Dimensionless, in.scalars...), nil
	default:
		return quantity.Quantity{}, fmt.Errorf("%w: got %s", ErrInvalidInput, in.kind)
	}
}
