// Package main provides the measure binary entry point.
// Measure inspects and converts measurement units: it parses unit
// expressions, reduces them to canonical form, renders symbols and
// converts values between convertible units.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/measure/catalog"
	"github.com/c360studio/measure/symtext"
	_ "github.com/c360studio/measure/systems/cgs"
	_ "github.com/c360studio/measure/systems/iec"
	_ "github.com/c360studio/measure/systems/imperial"
	_ "github.com/c360studio/measure/systems/si"
	"github.com/c360studio/measure/unit"
)

const (
	Version = "0.1.0"
	appName = "measure"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		catalogGlob string
		logLevel    string
	)

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Unit inspection and conversion",
		Long: `Measure parses unit expressions against the built-in SI, CGS,
imperial and IEC catalogs, reduces them to canonical form and converts
values between convertible units.

Extra units can be layered on with YAML catalog files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(logLevel)
			if catalogGlob == "" {
				return nil
			}
			files, err := catalog.LoadGlob(unit.Default(), catalogGlob)
			if err != nil {
				return fmt.Errorf("load catalogs: %w", err)
			}
			for _, f := range files {
				slog.Debug("Catalog loaded", "system", f.System, "units", len(f.Units), "prefixes", len(f.Prefixes))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&catalogGlob, "catalog", "", "Glob of YAML catalog files to load (doublestar patterns)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(convertCmd())
	cmd.AddCommand(canonicalCmd())
	cmd.AddCommand(symbolCmd())
	cmd.AddCommand(unitsCmd())
	cmd.AddCommand(prefixesCmd())

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func convertCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "convert <value> <from> <to>",
		Short: "Convert a value between units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("bad value %q: %w", args[0], err)
			}
			from, err := unit.Parse(args[1])
			if err != nil {
				return err
			}
			to, err := unit.Parse(args[2])
			if err != nil {
				return err
			}
			factor, err := unit.ConversionFactor(from, to)
			if err != nil {
				return err
			}
			slog.Debug("Conversion factor resolved", "from", args[1], "to", args[2], "factor", factor.String())

			if exact {
				num, den, rerr := factor.Rat()
				if rerr != nil {
					return fmt.Errorf("no exact rational form: %w", rerr)
				}
				fmt.Printf("%s %s = %s * %d/%d %s\n", args[0], unit.Symbol(from), args[0], num, den, unit.Symbol(to))
				return nil
			}
			fmt.Printf("%s %s = %v %s\n", args[0], unit.Symbol(from), value*factor.Float64(), unit.Symbol(to))
			return nil
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "Print the exact rational conversion factor instead of a float result")
	return cmd
}

func canonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <unit>",
		Short: "Reduce a unit expression to canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := unit.Parse(args[0])
			if err != nil {
				return err
			}
			c := u.Canonical()
			fmt.Printf("unit:      %s\n", unit.Symbol(u))
			fmt.Printf("canonical: %s\n", c)
			fmt.Printf("dimension: %s\n", u.Dimension())
			return nil
		},
	}
}

func symbolCmd() *cobra.Command {
	var (
		encoding  string
		solidus   string
		separator string
	)

	cmd := &cobra.Command{
		Use:   "symbol <unit>",
		Short: "Render a unit symbol with formatting options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := unit.Parse(args[0])
			if err != nil {
				return err
			}
			f, err := symbolFormat(encoding, solidus, separator)
			if err != nil {
				return err
			}
			s, err := unit.Format(u, f)
			if err != nil {
				return err
			}
			fmt.Println(s)
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "unicode", "Symbol encoding (unicode, ascii)")
	cmd.Flags().StringVar(&solidus, "solidus", "one", "Denominator style (one, always, never)")
	cmd.Flags().StringVar(&separator, "separator", "space", "Factor separator (space, dot)")
	return cmd
}

func symbolFormat(encoding, solidus, separator string) (unit.SymbolFormat, error) {
	var f unit.SymbolFormat
	switch encoding {
	case "unicode":
		f.Encoding = symtext.Unicode
	case "ascii":
		f.Encoding = symtext.ASCII
	default:
		return f, fmt.Errorf("unknown encoding %q", encoding)
	}
	switch solidus {
	case "one":
		f.Solidus = unit.SolidusOne
	case "always":
		f.Solidus = unit.SolidusAlways
	case "never":
		f.Solidus = unit.SolidusNever
	default:
		return f, fmt.Errorf("unknown solidus mode %q", solidus)
	}
	switch separator {
	case "space":
		f.Separator = unit.SeparatorSpace
	case "dot":
		f.Separator = unit.SeparatorDot
	default:
		return f, fmt.Errorf("unknown separator %q", separator)
	}
	return f, nil
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List registered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, u := range unit.Default().Units() {
				fmt.Printf("%-24s %-8s %s\n", u.Name(), unit.Symbol(u), u.Dimension())
			}
			return nil
		},
	}
}

func prefixesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prefixes",
		Short: "List registered prefixes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range unit.Default().Prefixes() {
				fmt.Printf("%-8s %-4s %s\n", p.Name(), p.Symbol().Unicode, p.Magnitude())
			}
			return nil
		},
	}
}
