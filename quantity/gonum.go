package quantity

import (
	"fmt"

	"gonum.org/v1/gonum/unit"
)

var gonumBases = map[unit.Dimension]Base{
	unit.MassDim:              Mass,
	unit.LengthDim:            Length,
	unit.TimeDim:              Time,
	unit.CurrentDim:           Current,
	unit.TemperatureDim:       Temperature,
	unit.MoleDim:              Amount,
	unit.LuminousIntensityDim: LuminousIntensity,
	unit.AngleDim:             Angle,
}

// FromUniter converts a gonum value, such as unit.Mass(2) or
// constant.Planck, into a single-valued Quantity in coherent SI units.
// Returns ErrUnknownDimension for gonum dimensions created with
// unit.NewDimension.
func FromUniter(x unit.Uniter) (Quantity, error) {
	u := x.Unit()
	powers := make(map[Base]Power)
	for d, n := range u.Dimensions() {
		b, ok := gonumBases[d]
		if !ok {
			return Quantity{}, fmt.Errorf("%w: %v", ErrUnknownDimension, d)
		}
		powers[b] = Int(int64(n))
	}
	return New(NewUnit("", 1, powers), u.Value()), nil
}
