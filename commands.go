package naturalunits

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/mtmoschella/natural-units/quantity"
)

// cmdState is shared by the command tree and filled in by flags and
// PersistentPreRunE.
type cmdState struct {
	opts       []Option
	energy     quantity.Unit
	jsonOutput bool
	verbose    bool
	digits     int
}

// convertOptions returns the options every conversion run by a command uses.
func (s *cmdState) convertOptions() []Option {
	opts := append([]Option{WithEnergyUnit(s.energy)}, s.opts...)
	if s.verbose {
		opts = append(opts, WithVerbose())
	}
	return opts
}

// NewCommand creates a Cobra command tree for natural unit conversions.
// The returned command should be added to a parent CLI's root command.
// opts are applied to every conversion, e.g. WithLogger.
//
// Commands provided:
//   - natural to [value...] <unit> [--energy-unit GeV] [--si]
//   - natural from [value...] [unit] --to <unit> [--si]
//   - natural exponents <unit>
//   - natural roundtrip <unit> <value>...
//   - natural constants
//   - natural units
//
// Global flags: --json, --verbose, --digits
func NewCommand(cfg Config, opts ...Option) *cobra.Command {
	st := &cmdState{opts: opts}

	cmd := &cobra.Command{
		Use:   "natural",
		Short: "Convert between SI and natural units",
		Long:  "Convert physical quantities between SI units and natural units, where ħ = c = 1 and energy is the only dimension.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			energy, err := cfg.energyUnit()
			if err != nil {
				return fmt.Errorf("failed to resolve energy unit: %w", err)
			}
			st.energy = energy
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&st.jsonOutput, "json", false, "Output in JSON format")
	cmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Log notices when inputs are promoted")
	cmd.PersistentFlags().IntVar(&st.digits, "digits", cfg.digits(), "Significant digits in printed values")

	cmd.AddCommand(toCmd(st))
	cmd.AddCommand(fromCmd(st))
	cmd.AddCommand(exponentsCmd(st))
	cmd.AddCommand(roundtripCmd(st))
	cmd.AddCommand(constantsCmd(st))
	cmd.AddCommand(unitsCmd(st))

	return cmd
}

func toCmd(st *cmdState) *cobra.Command {
	var (
		energySymbol string
		si           bool
	)

	cmd := &cobra.Command{
		Use:   "to [value...] <unit>",
		Short: "Convert to natural units",
		Long:  "Express a quantity as a power of energy. A bare unit is read as one of that unit.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseInput(args)
			if err != nil {
				return err
			}

			opts := st.convertOptions()
			if energySymbol != "" {
				energy, err := quantity.Lookup(energySymbol)
				if err != nil {
					return err
				}
				opts = append(opts, WithEnergyUnit(energy))
			}

			q, err := ToNaturalUnits(in, opts...)
			if err != nil {
				return err
			}
			return outputQuantity(cmd.OutOrStdout(), q, st.digits, si, st.jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&energySymbol, "energy-unit", "e", "", "Energy unit of the result (default from config)")
	cmd.Flags().BoolVar(&si, "si", false, "Render values with SI prefixes")
	return cmd
}

func fromCmd(st *cmdState) *cobra.Command {
	var (
		target string
		si     bool
	)

	cmd := &cobra.Command{
		Use:   "from [value...] [unit] --to <unit>",
		Short: "Convert from natural units",
		Long:  "Restore the factors of ħ, c and ε₀ needed to express a value in the target unit. Plain numbers are read as dimensionless.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseInput(args)
			if err != nil {
				return err
			}

			out, err := quantity.Lookup(target)
			if err != nil {
				return err
			}

			q, err := FromNaturalUnits(in, out, st.convertOptions()...)
			if err != nil {
				return err
			}
			return outputQuantity(cmd.OutOrStdout(), q, st.digits, si, st.jsonOutput)
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Unit of the result")
	cmd.Flags().BoolVar(&si, "si", false, "Render values with SI prefixes")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func exponentsCmd(st *cmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "exponents <unit>",
		Short: "Show the dimensional exponents of a unit",
		Long:  "Show the SI base exponents of a unit and the powers of ħ, c, ε₀ and energy they map to.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := quantity.Lookup(args[0])
			if err != nil {
				return err
			}

			v, err := Decompose(u)
			if err != nil {
				return err
			}
			return outputExponents(cmd.OutOrStdout(), u, v, Solve(v), st.jsonOutput)
		},
	}
}

func roundtripCmd(st *cmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip <unit> <value>...",
		Short: "Check that converting to natural units and back is lossless",
		Long:  "Convert values to natural units and back to the same unit, and report the relative deviation.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := quantity.Lookup(args[0])
			if err != nil {
				return err
			}
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}

			opts := st.convertOptions()
			natural, err := ToNaturalUnits(FromQuantity(quantity.New(u, values...)), opts...)
			if err != nil {
				return err
			}
			back, err := FromNaturalUnits(FromQuantity(natural), u, opts...)
			if err != nil {
				return err
			}

			report, err := newRoundtripReport(values, natural, back)
			if err != nil {
				return err
			}
			return outputRoundtrip(cmd.OutOrStdout(), report, st.digits, st.jsonOutput)
		},
	}
}

func constantsCmd(st *cmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "List physical constants",
		Long:  "List the physical constants used for conversions, in SI and natural units.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]constantRow, 0, len(namedConstants))
			for _, c := range namedConstants {
				natural, err := ToNaturalUnits(FromQuantity(c.q), WithEnergyUnit(st.energy))
				if err != nil {
					return fmt.Errorf("converting %s: %w", c.name, err)
				}
				rows = append(rows, constantRow{
					Name:    c.name,
					SI:      quantityJSON{Values: c.q.Values(), Unit: c.q.Unit().String()},
					Natural: quantityJSON{Values: natural.Values(), Unit: natural.Unit().String()},
				})
			}
			return outputConstants(cmd.OutOrStdout(), rows, st.digits, st.jsonOutput)
		},
	}
}

func unitsCmd(st *cmdState) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List known unit symbols",
		Long:  "List the unit symbols accepted by other commands, with their physical type and power of energy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []unitRow
			for _, symbol := range quantity.Symbols() {
				u, err := quantity.Lookup(symbol)
				if err != nil {
					return err
				}
				row := unitRow{Symbol: symbol, PhysicalType: u.PhysicalType(), Scale: u.Scale()}
				if v, err := Decompose(u); err == nil {
					p := Solve(v).Energy.String()
					row.EnergyPower = &p
				} else if !errors.Is(err, ErrUnsupportedDimension) {
					return err
				}
				rows = append(rows, row)
			}
			return outputUnits(cmd.OutOrStdout(), rows, st.jsonOutput)
		},
	}
}

// parseInput reads "<value>... <unit>", a bare "<unit>", or plain "<value>...".
func parseInput(args []string) (Input, error) {
	if len(args) == 0 {
		return Input{}, ErrInvalidInput
	}

	last := args[len(args)-1]
	if _, err := strconv.ParseFloat(last, 64); err == nil {
		values, err := parseValues(args)
		if err != nil {
			return Input{}, err
		}
		return FromScalar(values...), nil
	}

	u, err := quantity.Lookup(last)
	if err != nil {
		return Input{}, err
	}
	if len(args) == 1 {
		return FromUnit(u), nil
	}

	values, err := parseValues(args[:len(args)-1])
	if err != nil {
		return Input{}, err
	}
	return FromQuantity(quantity.New(u, values...)), nil
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, a)
		}
		values[i] = v
	}
	return values, nil
}

type namedConstant struct {
	name string
	q    quantity.Quantity
}

var namedConstants = []namedConstant{
	{"hbar", Hbar},
	{"c", C},
	{"eps0", Eps0},
	{"G", G},
	{"e", ElementaryCharge},
	{"mpl", Mpl},
}

// Output helpers

type quantityJSON struct {
	Values []float64 `json:"values"`
	Unit   string    `json:"unit"`
}

type constantRow struct {
	Name    string       `json:"name"`
	SI      quantityJSON `json:"si"`
	Natural quantityJSON `json:"natural"`
}

type unitRow struct {
	Symbol       string  `json:"symbol"`
	PhysicalType string  `json:"physical_type"`
	Scale        float64 `json:"scale"`
	EnergyPower  *string `json:"energy_power"`
}

type exponentsJSON struct {
	Unit         string `json:"unit"`
	PhysicalType string `json:"physical_type"`
	Mass         string `json:"mass"`
	Length       string `json:"length"`
	Time         string `json:"time"`
	Current      string `json:"current"`
	Hbar         string `json:"hbar"`
	C            string `json:"c"`
	Energy       string `json:"energy"`
	Eps0         string `json:"eps0"`
}

// roundtripReport summarises a to-and-back conversion.
type roundtripReport struct {
	Input         []float64    `json:"input"`
	Natural       quantityJSON `json:"natural"`
	Output        []float64    `json:"output"`
	MaxDeviation  float64      `json:"max_relative_deviation"`
	MeanDeviation float64      `json:"mean_relative_deviation"`
}

func newRoundtripReport(input []float64, natural, back quantity.Quantity) (roundtripReport, error) {
	output := back.Values()
	if len(output) != len(input) {
		return roundtripReport{}, fmt.Errorf("%w: %d and %d", quantity.ErrShapeMismatch, len(input), len(output))
	}

	deviations := make(stats.Float64Data, len(input))
	for i, want := range input {
		diff := math.Abs(output[i] - want)
		if want != 0 {
			diff /= math.Abs(want)
		}
		deviations[i] = diff
	}

	maxDev, err := stats.Max(deviations)
	if err != nil {
		return roundtripReport{}, err
	}
	meanDev, err := stats.Mean(deviations)
	if err != nil {
		return roundtripReport{}, err
	}

	return roundtripReport{
		Input:         input,
		Natural:       quantityJSON{Values: natural.Values(), Unit: natural.Unit().String()},
		Output:        output,
		MaxDeviation:  maxDev,
		MeanDeviation: meanDev,
	}, nil
}

func outputQuantity(w io.Writer, q quantity.Quantity, digits int, si, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(quantityJSON{Values: q.Values(), Unit: q.Unit().String()})
	}

	for _, v := range q.Values() {
		fmt.Fprintln(w, formatValue(v, q.Unit(), digits, si))
	}
	return nil
}

func outputExponents(w io.Writer, u quantity.Unit, v BaseDimensionVector, n NaturalExponentVector, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exponentsJSON{
			Unit:         u.String(),
			PhysicalType: u.PhysicalType(),
			Mass:         v.Mass.String(),
			Length:       v.Length.String(),
			Time:         v.Time.String(),
			Current:      v.Current.String(),
			Hbar:         n.Hbar.String(),
			C:            n.C.String(),
			Energy:       n.Energy.String(),
			Eps0:         n.Eps0.String(),
		})
	}

	fmt.Fprintf(w, "Unit:         %s\n", u)
	fmt.Fprintf(w, "Type:         %s\n", u.PhysicalType())
	fmt.Fprintf(w, "kg m s A:     %s\n", v)
	fmt.Fprintf(w, "ħ c E ε₀:     %s\n", n)
	return nil
}

func outputRoundtrip(w io.Writer, r roundtripReport, digits int, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	natural := quantity.New(quantity.Dimensionless, r.Natural.Values...)
	fmt.Fprintf(w, "Natural:      %s %s\n", natural, r.Natural.Unit)
	fmt.Fprintf(w, "Max dev:      %s\n", strconv.FormatFloat(r.MaxDeviation, 'g', digits, 64))
	fmt.Fprintf(w, "Mean dev:     %s\n", strconv.FormatFloat(r.MeanDeviation, 'g', digits, 64))
	return nil
}

func outputConstants(w io.Writer, rows []constantRow, digits int, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSI\tNATURAL")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s %s\t%s %s\n",
			r.Name,
			strconv.FormatFloat(r.SI.Values[0], 'g', digits, 64), r.SI.Unit,
			strconv.FormatFloat(r.Natural.Values[0], 'g', digits, 64), r.Natural.Unit,
		)
	}
	return tw.Flush()
}

func outputUnits(w io.Writer, rows []unitRow, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tTYPE\tSCALE\tENERGY POWER")
	for _, r := range rows {
		power := "-"
		if r.EnergyPower != nil {
			power = *r.EnergyPower
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", r.Symbol, r.PhysicalType, r.Scale, power)
	}
	return tw.Flush()
}

// siSymbols are unit names that accept an SI prefix.
var siSymbols = map[string]bool{
	"eV": true, "J": true, "m": true, "s": true, "g": true, "A": true,
	"W": true, "N": true, "V": true, "C": true, "Hz": true, "T": true,
}

// formatValue renders v in unit u. With si set, values in a prefixable unit
// within the yocto to yotta range are rendered with an SI prefix, and
// digits is the number of decimals.
func formatValue(v float64, u quantity.Unit, digits int, si bool) string {
	if si && siSymbols[u.Name()] {
		if abs := math.Abs(v); abs == 0 || (abs >= 1e-24 && abs < 1e27) {
			return humanize.SIWithDigits(v, digits, u.Name())
		}
	}

	s := strconv.FormatFloat(v, 'g', digits, 64)
	if u.IsDimensionless() && u.Scale() == 1 {
		return s
	}
	return s + " " + u.String()
}
