package quantity

import (
	"fmt"
	"math"
	"strings"
)

// Quantity is an immutable array of values in a single Unit.
// A scalar is a Quantity with one value.
type Quantity struct {
	values []float64
	unit   Unit
}

// New returns a Quantity holding a copy of values in unit u.
func New(u Unit, values ...float64) Quantity {
	return Quantity{values: append([]float64(nil), values...), unit: u}
}

// Unit returns the unit of q.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Values returns a copy of the values of q.
func (q Quantity) Values() []float64 {
	return append([]float64(nil), q.values...)
}

// Value returns the first value of q, or 0 if q is empty.
func (q Quantity) Value() float64 {
	if len(q.values) == 0 {
		return 0
	}
	return q.values[0]
}

// Len returns the number of values in q.
func (q Quantity) Len() int {
	return len(q.values)
}

// Scale returns q with every value multiplied by f.
func (q Quantity) Scale(f float64) Quantity {
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = v * f
	}
	return Quantity{values: out, unit: q.unit}
}

// Mul returns the element-wise product q·r. A single-valued operand is
// broadcast over the other.
func (q Quantity) Mul(r Quantity) (Quantity, error) {
	values, err := broadcast(q.values, r.values, func(a, b float64) float64 { return a * b })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: values, unit: q.unit.Mul(r.unit)}, nil
}

// Div returns the element-wise quotient q/r. A single-valued operand is
// broadcast over the other.
func (q Quantity) Div(r Quantity) (Quantity, error) {
	values, err := broadcast(q.values, r.values, func(a, b float64) float64 { return a / b })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: values, unit: q.unit.Div(r.unit)}, nil
}

// Pow returns q with every value and its unit raised to p.
func (q Quantity) Pow(p Power) Quantity {
	f := p.Float64()
	out := make([]float64, len(q.values))
	for i, v := range q.values {
		out[i] = math.Pow(v, f)
	}
	return Quantity{values: out, unit: q.unit.Pow(p)}
}

// SI returns q expressed in the coherent SI unit of its dimensions.
func (q Quantity) SI() Quantity {
	return Quantity{values: q.Scale(q.unit.scale).values, unit: q.unit.SI()}
}

// To converts q to unit u.
// Returns ErrDimensionMismatch if the units are not compatible.
func (q Quantity) To(u Unit) (Quantity, error) {
	if !q.unit.Compatible(u) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %s to %s", ErrDimensionMismatch, q.unit, u)
	}
	return Quantity{values: q.Scale(q.unit.scale / u.scale).values, unit: u}, nil
}

// String formats q as "<value> <unit>" or "[<v1> <v2> ...] <unit>".
func (q Quantity) String() string {
	var num string
	if len(q.values) == 1 {
		num = fmt.Sprintf("%g", q.values[0])
	} else {
		parts := make([]string, len(q.values))
		for i, v := range q.values {
			parts[i] = fmt.Sprintf("%g", v)
		}
		num = "[" + strings.Join(parts, " ") + "]"
	}
	if q.unit.IsDimensionless() && q.unit.scale == 1 {
		return num
	}
	return num + " " + q.unit.String()
}

func broadcast(a, b []float64, op func(x, y float64) float64) ([]float64, error) {
	switch {
	case len(a) == len(b):
		out := make([]float64, len(a))
		for i := range a {
			out[i] = op(a[i], b[i])
		}
		return out, nil
	case len(b) == 1:
		out := make([]float64, len(a))
		for i := range a {
			out[i] = op(a[i], b[0])
		}
		return out, nil
	case len(a) == 1:
		out := make([]float64, len(b))
		for i := range b {
			out[i] = op(a[0], b[i])
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d and %d", ErrShapeMismatch, len(a), len(b))
	}
}
