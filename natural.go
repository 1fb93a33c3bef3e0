package naturalunits

import (
	"fmt"

	"github.com/mtmoschella/natural-units/quantity"
)

// ToNaturalUnits expresses x in natural units, where ħ = c = 1, as a power
// of the energy unit set by WithEnergyUnit (eV by default).
//
// A bare unit is read as a quantity of value 1. Scalars are rejected with
// ErrInvalidInput. Returns ErrInvalidOutputUnit if the energy unit is not
// a unit of energy, and ErrUnsupportedDimension if x has a dimension other
// than mass, length, time and current.
func ToNaturalUnits(x Input, opts ...Option) (quantity.Quantity, error) {
	cfg := newConvertConfig(opts...)

	q, err := x.resolve(cfg, false)
	if err != nil {
		return quantity.Quantity{}, err
	}
	return toNatural(q, cfg.energyUnit)
}

// FromNaturalUnits expresses x, given in natural or physical units, in
// outputUnit by restoring the factors of ħ, c and ε₀ that outputUnit needs.
//
// A bare unit is read as a quantity of value 1 and scalars are read as
// dimensionless quantities. Returns ErrIncompatibleUnit if the power of
// energy x carries differs from the one outputUnit requires.
func FromNaturalUnits(x Input, outputUnit quantity.Unit, opts ...Option) (quantity.Quantity, error) {
	cfg := newConvertConfig(opts...)

	q, err := x.resolve(cfg, true)
	if err != nil {
		return quantity.Quantity{}, err
	}
	if !outputUnit.Valid() {
		return quantity.Quantity{}, fmt.Errorf("%w: %q", ErrInvalidOutputUnit, outputUnit.Name())
	}

	natural, err := toNatural(q, quantity.ElectronVolt)
	if err != nil {
		return quantity.Quantity{}, err
	}

	v, err := Decompose(outputUnit)
	if err != nil {
		return quantity.Quantity{}, err
	}
	n := Solve(v)

	if err := checkEnergyPower(natural.Unit(), n.Energy, outputUnit); err != nil {
		return quantity.Quantity{}, err
	}

	restored, err := natural.Mul(n.factor())
	if err != nil {
		return quantity.Quantity{}, err
	}
	out, err := restored.To(outputUnit)
	if err != nil {
		return quantity.Quantity{}, fmt.Errorf("%w: %v", ErrIncompatibleUnit, err)
	}
	return out, nil
}

func toNatural(q quantity.Quantity, energyUnit quantity.Unit) (quantity.Quantity, error) {
	if !energyUnit.Valid() || energyUnit.PhysicalType() != "energy" {
		return quantity.Quantity{}, fmt.Errorf("%w: %s must be a unit of energy", ErrInvalidOutputUnit, energyUnit)
	}

	v, err := Decompose(q.Unit())
	if err != nil {
		return quantity.Quantity{}, err
	}
	n := Solve(v)

	stripped, err := q.Div(n.factor())
	if err != nil {
		return quantity.Quantity{}, err
	}
	// Compatible by construction: only energy^E remains.
	return stripped.To(energyUnit.Pow(n.Energy))
}

// checkEnergyPower verifies that natural, the SI decomposition of a natural
// unit value, is energy raised to want.
func checkEnergyPower(natural quantity.Unit, want quantity.Power, outputUnit quantity.Unit) error {
	d := natural.Decompose()
	bases := d.Bases()

	if len(bases) == 0 {
		if !want.IsZero() {
			return fmt.Errorf("%w 0: %s requires energy^%s", ErrIncompatibleUnit, outputUnit, want)
		}
		return nil
	}

	if len(bases) != 3 || bases[0] != quantity.Mass || bases[1] != quantity.Length || bases[2] != quantity.Time {
		return fmt.Errorf("%w: natural unit %s is not a power of energy", ErrIncompatibleUnit, natural)
	}

	kg := d.Power(quantity.Mass)
	m := d.Power(quantity.Length)
	s := d.Power(quantity.Time)
	if !kg.Equal(want) || !m.Equal(want.Mul(quantity.Int(2))) || !s.Equal(want.Mul(quantity.Int(-2))) {
		return fmt.Errorf("%w %s: %s requires energy^%s", ErrIncompatibleUnit, kg, outputUnit, want)
	}
	return nil
}
