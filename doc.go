// Package naturalunits converts physical quantities between SI units and
// natural units, in which the reduced Planck constant ħ and the speed of
// light c are both 1 and energy is the only remaining dimension.
//
// The package serves two use cases:
//
//  1. Programmatic API - ToNaturalUnits and FromNaturalUnits convert values
//     built with the quantity sub-package, wrapped in an Input.
//
//  2. Embeddable CLI via NewCommand - Parent CLI tools can attach a
//     "natural" subcommand tree to their Cobra root command.
//
// # Dimensional Analysis
//
// A unit kg^i m^j s^k A^l is rewritten as ħ^a c^b ε₀^d E^n with
//
//	a = j + k - l/2
//	b = j - 2i + l/2
//	d = l/2
//	n = i - j - k + l
//
// Exponents are exact rationals (quantity.Power), so half-integer powers
// arising from electric current are handled without rounding. Units with a
// temperature, amount of substance, luminous intensity or angle dimension
// cannot be converted and yield ErrUnsupportedDimension.
//
// # Constants
//
// Hbar, C, Eps0, G, ElementaryCharge and the derived Planck mass Mpl are
// taken from gonum's unit/constant package at initialisation and never
// modified afterwards.
//
// # Thread Safety
//
// All functions are pure and may be called concurrently from multiple
// goroutines without external synchronization.
package naturalunits
