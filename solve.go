package naturalunits

import (
	"fmt"

	"github.com/mtmoschella/natural-units/quantity"
)

// NaturalExponentVector holds the powers of ħ, c and ε₀ that strip the SI
// dimensions from a unit, and the power of energy that remains.
type NaturalExponentVector struct {
	Hbar   quantity.Power
	C      quantity.Power
	Energy quantity.Power
	Eps0   quantity.Power
}

// String returns "(hbar, c, E, eps0)".
func (n NaturalExponentVector) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", n.Hbar, n.C, n.Energy, n.Eps0)
}

var half = quantity.NewPower(1, 2)

// Solve expresses kg^i m^j s^k A^l as ħ^Hbar c^C E^Energy ε₀^Eps0.
//
//	Hbar   = j + k - l/2
//	C      = j - 2i + l/2
//	Energy = i - j - k + l
//	Eps0   = l/2
func Solve(v BaseDimensionVector) NaturalExponentVector {
	i, j, k, l := v.Mass, v.Length, v.Time, v.Current
	halfL := l.Mul(half)
	return NaturalExponentVector{
		Hbar:   j.Add(k).Sub(halfL),
		C:      j.Sub(i.Mul(quantity.Int(2))).Add(halfL),
		Energy: i.Sub(j).Sub(k).Add(l),
		Eps0:   halfL,
	}
}

// factor returns ħ^Hbar · c^C · ε₀^Eps0 in SI units.
func (n NaturalExponentVector) factor() quantity.Quantity {
	f := quantity.New(quantity.Dimensionless, 1)
	for _, term := range []struct {
		q quantity.Quantity
		p quantity.Power
	}{
		{Hbar, n.Hbar},
		{C, n.C},
		{Eps0, n.Eps0},
	} {
		if term.p.IsZero() {
			continue
		}
		// Single-valued operands never mismatch.
		f, _ = f.Mul(term.q.Pow(term.p))
	}
	return f
}
