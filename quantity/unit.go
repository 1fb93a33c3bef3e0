package quantity

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a physical unit: a scale relative to the coherent SI unit of the
// same dimension, and a rational power for each SI base dimension.
// Units are immutable. The zero Unit is invalid; see Valid.
type Unit struct {
	name   string
	scale  float64
	powers map[Base]Power
}

// Decomposition is a Unit broken down into SI base units.
type Decomposition struct {
	// Scale is the multiplier relative to the product of base units.
	Scale float64

	// Powers maps each base dimension present to its non-zero power.
	Powers map[Base]Power
}

// Bases returns the base dimensions present in d, in canonical order.
func (d Decomposition) Bases() []Base {
	var bases []Base
	for _, b := range Bases {
		if _, ok := d.Powers[b]; ok {
			bases = append(bases, b)
		}
	}
	return bases
}

// Power returns the power of b in d, 0 if absent.
func (d Decomposition) Power(b Base) Power {
	return d.Powers[b]
}

// NewUnit returns a unit named name that equals scale times the product of
// base units raised to powers. Zero powers are dropped.
func NewUnit(name string, scale float64, powers map[Base]Power) Unit {
	u := Unit{name: name, scale: scale, powers: make(map[Base]Power, len(powers))}
	for b, p := range powers {
		if !p.IsZero() {
			u.powers[b] = p
		}
	}
	return u
}

// Valid reports whether u has a finite, non-zero scale.
func (u Unit) Valid() bool {
	return u.scale != 0 && !math.IsNaN(u.scale) && !math.IsInf(u.scale, 0)
}

// Name returns the name u was created with, which may be empty for derived units.
func (u Unit) Name() string {
	return u.name
}

// Scale returns the multiplier relative to the coherent SI unit.
func (u Unit) Scale() float64 {
	return u.scale
}

// Power returns the power of base b in u.
func (u Unit) Power(b Base) Power {
	return u.powers[b]
}

// Decompose breaks u down into SI base units.
func (u Unit) Decompose() Decomposition {
	d := Decomposition{Scale: u.scale, Powers: make(map[Base]Power, len(u.powers))}
	for b, p := range u.powers {
		d.Powers[b] = p
	}
	return d
}

// IsDimensionless reports whether u carries no base dimension.
func (u Unit) IsDimensionless() bool {
	return len(u.powers) == 0
}

// Compatible reports whether u and v decompose to the same bases with the
// same powers.
func (u Unit) Compatible(v Unit) bool {
	if len(u.powers) != len(v.powers) {
		return false
	}
	for b, p := range u.powers {
		q, ok := v.powers[b]
		if !ok || !p.Equal(q) {
			return false
		}
	}
	return true
}

// Named returns a copy of u with a new name.
func (u Unit) Named(name string) Unit {
	return NewUnit(name, u.scale, u.powers)
}

// SI returns the coherent SI unit with the same dimensions as u.
func (u Unit) SI() Unit {
	return NewUnit("", 1, u.powers)
}

// Mul returns the product u·v.
func (u Unit) Mul(v Unit) Unit {
	powers := u.Decompose().Powers
	for b, p := range v.powers {
		powers[b] = powers[b].Add(p)
	}
	name := ""
	if u.name != "" && v.name != "" {
		name = u.name + " " + v.name
	}
	return NewUnit(name, u.scale*v.scale, powers)
}

// Div returns the quotient u/v.
func (u Unit) Div(v Unit) Unit {
	return u.Mul(v.Pow(Int(-1)))
}

// Pow returns u raised to p.
func (u Unit) Pow(p Power) Unit {
	if p.IsZero() {
		return Dimensionless
	}
	if p.Equal(Int(1)) {
		return u
	}
	powers := make(map[Base]Power, len(u.powers))
	for b, q := range u.powers {
		powers[b] = q.Mul(p)
	}
	name := ""
	if u.name != "" {
		name = u.name
		if strings.ContainsAny(name, " /") {
			name = "(" + name + ")"
		}
		name += "^" + p.String()
	}
	return NewUnit(name, math.Pow(u.scale, p.Float64()), powers)
}

// PhysicalType classifies u by its dimensions, e.g. "energy".
// Units matching no known type report "unknown".
func (u Unit) PhysicalType() string {
	for _, pt := range physicalTypes {
		if u.Compatible(pt.unit) {
			return pt.name
		}
	}
	return "unknown"
}

// String returns the unit name, or its SI decomposition for unnamed units.
func (u Unit) String() string {
	if u.name != "" {
		return u.name
	}
	var parts []string
	if u.scale != 1 {
		parts = append(parts, fmt.Sprintf("%g", u.scale))
	}
	d := u.Decompose()
	for _, b := range d.Bases() {
		p := d.Powers[b]
		if p.Equal(Int(1)) {
			parts = append(parts, b.Symbol())
		} else {
			parts = append(parts, b.Symbol()+"^"+p.String())
		}
	}
	if len(parts) == 0 {
		return "dimensionless"
	}
	return strings.Join(parts, " ")
}

type physicalType struct {
	name string
	unit Unit
}

func dims(mass, length, time, current int64) map[Base]Power {
	return map[Base]Power{
		Mass:    Int(mass),
		Length:  Int(length),
		Time:    Int(time),
		Current: Int(current),
	}
}

var physicalTypes = []physicalType{
	{"dimensionless", NewUnit("", 1, nil)},
	{"mass", NewUnit("", 1, dims(1, 0, 0, 0))},
	{"length", NewUnit("", 1, dims(0, 1, 0, 0))},
	{"time", NewUnit("", 1, dims(0, 0, 1, 0))},
	{"electrical current", NewUnit("", 1, dims(0, 0, 0, 1))},
	{"energy", NewUnit("", 1, dims(1, 2, -2, 0))},
	{"speed", NewUnit("", 1, dims(0, 1, -1, 0))},
	{"momentum", NewUnit("", 1, dims(1, 1, -1, 0))},
	{"angular momentum", NewUnit("", 1, dims(1, 2, -1, 0))},
	{"force", NewUnit("", 1, dims(1, 1, -2, 0))},
	{"power", NewUnit("", 1, dims(1, 2, -3, 0))},
	{"frequency", NewUnit("", 1, dims(0, 0, -1, 0))},
	{"area", NewUnit("", 1, dims(0, 2, 0, 0))},
	{"volume", NewUnit("", 1, dims(0, 3, 0, 0))},
	{"mass density", NewUnit("", 1, dims(1, -3, 0, 0))},
	{"electrical charge", NewUnit("", 1, dims(0, 0, 1, 1))},
	{"electrical potential", NewUnit("", 1, dims(1, 2, -3, -1))},
	{"temperature", NewUnit("", 1, map[Base]Power{Temperature: Int(1)})},
	{"amount of substance", NewUnit("", 1, map[Base]Power{Amount: Int(1)})},
	{"luminous intensity", NewUnit("", 1, map[Base]Power{LuminousIntensity: Int(1)})},
	{"angle", NewUnit("", 1, map[Base]Power{Angle: Int(1)})},
}
