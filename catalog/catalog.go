// Package catalog loads unit-system extensions from YAML files.
//
// A catalog file declares prefixes and named units on top of the
// compiled-in systems. Unit definitions are textual expressions parsed
// against the target registry, so catalogs can build on each other as
// long as files are applied in order.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/symtext"
	"github.com/c360studio/measure/unit"
)

// File is a parsed catalog file.
type File struct {
	// System names the unit system the file extends.
	System string `yaml:"system"`
	// Prefixes are applied before units so definitions can use them.
	Prefixes []PrefixDecl `yaml:"prefixes,omitempty"`
	Units    []UnitDecl   `yaml:"units,omitempty"`
}

// PrefixDecl declares a scaling prefix.
type PrefixDecl struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	// ASCII is the 7-bit fallback spelling; defaults to Symbol.
	ASCII string `yaml:"ascii,omitempty"`
	// Power10 is the decimal exponent of the scale factor.
	Power10 *int64 `yaml:"power10,omitempty"`
	// Ratio is an exact "num/den" scale factor, for non-decimal
	// prefixes.
	Ratio string `yaml:"ratio,omitempty"`
}

// UnitDecl declares a named unit by definition.
type UnitDecl struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	// ASCII is the 7-bit fallback spelling; defaults to Symbol.
	ASCII string `yaml:"ascii,omitempty"`
	// Definition is a unit expression such as "1852 m" or "kg m/s^2".
	Definition string `yaml:"definition"`
	// Prefixable defaults to true.
	Prefixable *bool `yaml:"prefixable,omitempty"`
}

// Validate checks the declarations before any of them touch a registry.
func (f *File) Validate() error {
	if f.System == "" {
		return fmt.Errorf("%w: system is required", unit.ErrBadDeclaration)
	}
	for _, p := range f.Prefixes {
		if p.Name == "" || p.Symbol == "" {
			return fmt.Errorf("%w: prefix needs a name and a symbol", unit.ErrBadDeclaration)
		}
		if (p.Power10 == nil) == (p.Ratio == "") {
			return fmt.Errorf("%w: prefix %q needs exactly one of power10 or ratio", unit.ErrBadDeclaration, p.Name)
		}
	}
	for _, u := range f.Units {
		if u.Name == "" || u.Symbol == "" {
			return fmt.Errorf("%w: unit needs a name and a symbol", unit.ErrBadDeclaration)
		}
		if u.Definition == "" {
			return fmt.Errorf("%w: unit %q needs a definition", unit.ErrBadDeclaration, u.Name)
		}
	}
	return nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply registers the file's prefixes and units into the registry.
// Definitions resolve against the registry's state at apply time.
func (f *File) Apply(r *unit.Registry) error {
	for _, d := range f.Prefixes {
		mag, err := d.magnitude()
		if err != nil {
			return err
		}
		p, err := unit.NewUnregisteredPrefix(d.Name, symbolText(d.Symbol, d.ASCII), mag)
		if err != nil {
			return err
		}
		if err := r.RegisterPrefix(p); err != nil {
			return err
		}
	}
	for _, d := range f.Units {
		def, err := unit.ParseIn(r, d.Definition)
		if err != nil {
			return fmt.Errorf("unit %q: %w", d.Name, err)
		}
		opts := []unit.Option{
			unit.WithSymbolText(symbolText(d.Symbol, d.ASCII)),
			unit.WithDefinition(def),
		}
		if d.Prefixable != nil && !*d.Prefixable {
			opts = append(opts, unit.NotPrefixable())
		}
		u, err := unit.NewUnregistered(d.Name, opts...)
		if err != nil {
			return err
		}
		if err := r.Register(u); err != nil {
			return err
		}
	}
	return nil
}

func (d PrefixDecl) magnitude() (magnitude.Magnitude, error) {
	if d.Power10 != nil {
		return magnitude.PowerOfTen(*d.Power10), nil
	}
	var num, den int64
	if _, err := fmt.Sscanf(d.Ratio, "%d/%d", &num, &den); err != nil {
		if _, err := fmt.Sscanf(d.Ratio, "%d", &num); err != nil {
			return magnitude.Magnitude{}, fmt.Errorf("%w: prefix %q ratio %q", unit.ErrBadDeclaration, d.Name, d.Ratio)
		}
		den = 1
	}
	m, err := magnitude.FromRatio(num, den)
	if err != nil {
		return magnitude.Magnitude{}, fmt.Errorf("prefix %q: %w", d.Name, err)
	}
	return m, nil
}

func symbolText(sym, ascii string) symtext.Text {
	if ascii == "" {
		return symtext.Sym(sym)
	}
	return symtext.New(sym, ascii)
}

// Load reads, validates and applies a single catalog file.
func Load(r *unit.Registry, path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Apply(r); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadGlob applies every catalog file matching a doublestar pattern, in
// lexical path order so catalogs can layer deterministically.
func LoadGlob(r *unit.Registry, pattern string) ([]*File, error) {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad catalog pattern %q: %w", pattern, err)
	}
	sort.Strings(paths)
	var files []*File
	for _, path := range paths {
		f, err := Load(r, path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
