package naturalunits

import (
	"math"

	"github.com/mtmoschella/natural-units/quantity"
	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// Physical constants in SI units, read-only after package initialisation.
var (
	// Hbar is the reduced Planck constant, h/2π.
	Hbar = mustUniter(constant.Planck).Scale(1 / (2 * math.Pi))

	// C is the speed of light in vacuum.
	C = mustUniter(constant.LightSpeedInVacuum)

	// Eps0 is the electric constant (vacuum permittivity).
	Eps0 = mustUniter(constant.ElectricConstant)

	// G is the Newtonian constant of gravitation.
	G = mustUniter(constant.Gravitational)

	// ElementaryCharge is the charge of the proton.
	ElementaryCharge = mustUniter(constant.ElementaryCharge)

	// Mpl is the Planck mass, sqrt(ħc/G).
	Mpl = planckMass()
)

func planckMass() quantity.Quantity {
	hc, err := Hbar.Mul(C)
	if err != nil {
		panic(err)
	}
	hcg, err := hc.Div(G)
	if err != nil {
		panic(err)
	}
	return hcg.Pow(quantity.NewPower(1, 2))
}

func mustUniter(x unit.Uniter) quantity.Quantity {
	q, err := quantity.FromUniter(x)
	if err != nil {
		panic(err)
	}
	return q
}
