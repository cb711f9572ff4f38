// Package dimension models physical dimensions as products of powers of
// base-dimension atoms.
//
// A base dimension is an irreducible named atom with a display symbol
// (length "L", mass "M", ...). Derived dimensions are expressions over
// those atoms; the dimensionless One is the neutral element. Equality
// is structural on the normalized expression, so L·T⁻¹ compares equal
// no matter how it was composed.
package dimension

import (
	"fmt"

	"github.com/c360studio/measure/expr"
	"github.com/c360studio/measure/ratio"
	"github.com/c360studio/measure/symtext"
)

// Base is an irreducible base-dimension atom. Identity is the declared
// name; the symbol is used for formatting.
type Base struct {
	name string
	sym  symtext.Text
}

// OrderKey implements expr.Factor. Atoms sort by symbol, then name.
func (b *Base) OrderKey() string {
	return b.sym.Unicode + "\x00" + b.name
}

// Name returns the declared base-dimension name.
func (b *Base) Name() string { return b.name }

// Symbol returns the display symbol.
func (b *Base) Symbol() symtext.Text { return b.sym }

// Dimension is a product of powers of base dimensions. The zero value
// is the dimensionless identity.
type Dimension struct {
	ex expr.Expression
}

// One is the dimensionless identity.
var One = Dimension{}

// NewBase declares a base dimension. Name and symbol must be non-empty.
func NewBase(name string, sym symtext.Text) (Dimension, error) {
	if name == "" {
		return Dimension{}, fmt.Errorf("base dimension: empty name")
	}
	if sym.Empty() {
		return Dimension{}, fmt.Errorf("base dimension %q: empty symbol", name)
	}
	return Dimension{ex: expr.FromFactor(&Base{name: name, sym: sym})}, nil
}

// MustBase is like NewBase but panics on a malformed declaration.
// Intended for static catalogs.
func MustBase(name string, sym symtext.Text) Dimension {
	d, err := NewBase(name, sym)
	if err != nil {
		panic(err)
	}
	return d
}

// Mul returns d * o.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{ex: d.ex.Mul(o.ex)}
}

// Div returns d / o.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{ex: d.ex.Div(o.ex)}
}

// Inverse returns 1/d.
func (d Dimension) Inverse() Dimension {
	return Dimension{ex: d.ex.Invert()}
}

// Pow raises the dimension to a rational power.
func (d Dimension) Pow(r ratio.Ratio) Dimension {
	return Dimension{ex: d.ex.Pow(r)}
}

// IsOne reports whether d is dimensionless.
func (d Dimension) IsOne() bool {
	return d.ex.IsOne()
}

// Equal reports structural equality.
func (d Dimension) Equal(o Dimension) bool {
	return d.ex.Equal(o.ex)
}

// Expression exposes the underlying normalized expression.
func (d Dimension) Expression() expr.Expression {
	return d.ex
}

// Format renders the dimension symbol, e.g. "LT⁻²" (unicode) or
// "LT^-2" (ascii). Denominator atoms always use negative exponents.
func (d Dimension) Format(enc symtext.Encoding) string {
	if d.IsOne() {
		return "1"
	}
	out := ""
	for _, p := range d.ex.Num() {
		out += formatPower(p, enc, false)
	}
	for _, p := range d.ex.Den() {
		out += formatPower(p, enc, true)
	}
	return out
}

func formatPower(p expr.Power, enc symtext.Encoding, negative bool) string {
	base, ok := p.Factor.(*Base)
	if !ok {
		return ""
	}
	s := base.sym.Enc(enc)
	exp := p.Exp
	if negative {
		exp = exp.Neg()
	}
	if exp.Equal(ratio.One) {
		return s
	}
	if exp.IsInt() {
		return s + symtext.Superscript(exp.Num(), enc)
	}
	return s + "^(" + exp.String() + ")"
}

// String renders the dimension with unicode encoding.
func (d Dimension) String() string {
	return d.Format(symtext.Unicode)
}
