package naturalunits

import (
	"fmt"
	"strings"

	"github.com/mtmoschella/natural-units/quantity"
)

// BaseDimensionVector holds the SI base exponents of a unit that uses only
// mass, length, time and current.
type BaseDimensionVector struct {
	Mass    quantity.Power // i, kg
	Length  quantity.Power // j, m
	Time    quantity.Power // k, s
	Current quantity.Power // l, A
}

// String returns "(i, j, k, l)".
func (v BaseDimensionVector) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", v.Mass, v.Length, v.Time, v.Current)
}

// Decompose extracts the mass, length, time and current exponents of u.
// Absent bases contribute 0. Returns ErrUnsupportedDimension if u
// decomposes to any other base.
func Decompose(u quantity.Unit) (BaseDimensionVector, error) {
	d := u.Decompose()

	var unsupported []string
	for _, b := range d.Bases() {
		switch b {
		case quantity.Mass, quantity.Length, quantity.Time, quantity.Current:
		default:
			unsupported = append(unsupported, b.String())
		}
	}
	if len(unsupported) > 0 {
		return BaseDimensionVector{}, fmt.Errorf("%w: %s has %s", ErrUnsupportedDimension, u, strings.Join(unsupported, ", "))
	}

	return BaseDimensionVector{
		Mass:    d.Power(quantity.Mass),
		Length:  d.Power(quantity.Length),
		Time:    d.Power(quantity.Time),
		Current: d.Power(quantity.Current),
	}, nil
}
