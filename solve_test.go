package naturalunits

import (
	"math/big"
	"testing"

	"github.com/mtmoschella/natural-units/quantity"
)

func TestSolveKnownUnits(t *testing.T) {
	tests := []struct {
		name string
		unit quantity.Unit
		want string
	}{
		{"energy", quantity.Joule, "(0, 0, 1, 0)"},
		{"mass", quantity.Kilogram, "(0, -2, 1, 0)"},
		{"length", quantity.Metre, "(1, 1, -1, 0)"},
		{"time", quantity.Second, "(1, 0, -1, 0)"},
		{"current", quantity.Ampere, "(-1/2, 1/2, 1, 1/2)"},
		{"charge", quantity.Coulomb, "(1/2, 1/2, 0, 1/2)"},
		{"dimensionless", quantity.Dimensionless, "(0, 0, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Decompose(tt.unit)
			if err != nil {
				t.Fatalf("Decompose() error = %v", err)
			}
			if got := Solve(v).String(); got != tt.want {
				t.Errorf("Solve() = %s, want %s", got, tt.want)
			}
		})
	}
}

func rat(p quantity.Power) *big.Rat {
	return p.Rat()
}

// TestSolvePreservesDimensions checks that ħ^a c^b ε₀^d E^n has the
// dimensions kg^i m^j s^k A^l for a grid of integer and half-integer inputs.
func TestSolvePreservesDimensions(t *testing.T) {
	var grid []quantity.Power
	for n := int64(-4); n <= 4; n++ {
		grid = append(grid, quantity.NewPower(n, 2))
	}

	// SI exponents (kg, m, s, A) of ħ, c, ε₀ and energy.
	hbar := [4]int64{1, 2, -1, 0}
	c := [4]int64{0, 1, -1, 0}
	eps0 := [4]int64{-1, -3, 4, 2}
	energy := [4]int64{1, 2, -2, 0}

	for _, i := range grid {
		for _, j := range grid {
			for _, k := range grid {
				for _, l := range grid {
					v := BaseDimensionVector{Mass: i, Length: j, Time: k, Current: l}
					n := Solve(v)

					want := [4]quantity.Power{i, j, k, l}
					for d := 0; d < 4; d++ {
						got := quantity.Int(hbar[d]).Mul(n.Hbar).
							Add(quantity.Int(c[d]).Mul(n.C)).
							Add(quantity.Int(eps0[d]).Mul(n.Eps0)).
							Add(quantity.Int(energy[d]).Mul(n.Energy))
						if !got.Equal(want[d]) {
							t.Fatalf("Solve(%s) = %s: dimension %d is %s, want %s", v, n, d, got, want[d])
						}
					}
				}
			}
		}
	}
}

func TestSolveClosedForm(t *testing.T) {
	v := BaseDimensionVector{
		Mass:    quantity.NewPower(3, 2),
		Length:  quantity.Int(-2),
		Time:    quantity.NewPower(1, 3),
		Current: quantity.NewPower(-5, 2),
	}
	n := Solve(v)

	i, j, k, l := rat(v.Mass), rat(v.Length), rat(v.Time), rat(v.Current)
	halfL := new(big.Rat).Mul(l, big.NewRat(1, 2))

	wantEnergy := new(big.Rat).Sub(i, j)
	wantEnergy.Sub(wantEnergy, k)
	wantEnergy.Add(wantEnergy, l)

	wantHbar := new(big.Rat).Add(j, k)
	wantHbar.Sub(wantHbar, halfL)

	wantC := new(big.Rat).Mul(i, big.NewRat(-2, 1))
	wantC.Add(wantC, j)
	wantC.Add(wantC, halfL)

	checks := []struct {
		name string
		got  quantity.Power
		want *big.Rat
	}{
		{"Energy", n.Energy, wantEnergy},
		{"Hbar", n.Hbar, wantHbar},
		{"C", n.C, wantC},
		{"Eps0", n.Eps0, halfL},
	}
	for _, c := range checks {
		if rat(c.got).Cmp(c.want) != 0 {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want.RatString())
		}
	}
}
