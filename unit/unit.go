// Package unit implements measurement units and the canonicalization
// machinery that decides their equality and convertibility.
//
// A unit is one of three kinds behind a single record:
//
//   - named: an irreducible atom with a symbol, either bound to a base
//     dimension (metre ↔ length) or defined by an equation over other
//     units (hertz = 1/second, minute = 60·second);
//   - scaled: an exact magnitude times a reference unit;
//   - derived: a product of powers of named units (metre/second²).
//
// Every unit reduces to a canonical form: an expression over base-bound
// named atoms plus a magnitude. Units with identical canonical forms
// are equal; units sharing only the reference expression are
// convertible, and the magnitude ratio is the conversion factor.
package unit

import (
	"fmt"

	"github.com/c360studio/measure/dimension"
	"github.com/c360studio/measure/expr"
	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/ratio"
	"github.com/c360studio/measure/symtext"
)

type unitKind int

const (
	kindNamed unitKind = iota
	kindScaled
	kindDerived
)

// Unit is a measurement unit. Units are immutable; all arithmetic
// produces new values. Use New (or a system catalog) to declare named
// units and Mul/Div/Pow/Scale to derive the rest.
type Unit struct {
	kind       unitKind
	name       string
	sym        symtext.Text
	prefixable bool

	// named
	dim     dimension.Dimension
	hasBase bool
	def     *Unit

	// scaled
	mag magnitude.Magnitude
	ref *Unit

	// derived
	ex expr.Expression
}

// One is the unit of a dimensionless quantity, the neutral element of
// unit multiplication.
var One = &Unit{kind: kindDerived, name: "one"}

// OrderKey implements expr.Factor for named unit atoms. Units sort by
// symbol first (it puts upper case in front, so newton·metre renders as
// "N m"), then by name.
func (u *Unit) OrderKey() string {
	return u.sym.Unicode + "\x00" + u.name
}

// Option configures a named-unit declaration.
type Option func(*Unit)

// WithSymbol sets the display symbol, identical in both encodings.
func WithSymbol(s string) Option {
	return func(u *Unit) { u.sym = symtext.Sym(s) }
}

// WithSymbolText sets a dual-encoding display symbol (e.g. "°C" with
// ascii fallback "`C").
func WithSymbolText(t symtext.Text) Option {
	return func(u *Unit) { u.sym = t }
}

// WithBase binds the unit to a base dimension, making it an irreducible
// reference atom (metre ↔ length).
func WithBase(d dimension.Dimension) Option {
	return func(u *Unit) {
		u.dim = d
		u.hasBase = true
	}
}

// WithDefinition gives the named unit a defining equation over other
// units (hertz = 1/second). Canonicalization recurses through it.
func WithDefinition(def *Unit) Option {
	return func(u *Unit) { u.def = def }
}

// NotPrefixable forbids attaching prefixes (hour, degree Celsius).
func NotPrefixable() Option {
	return func(u *Unit) { u.prefixable = false }
}

// New declares a named unit and registers it in the default registry.
// A unit needs a non-empty name and symbol and exactly one of WithBase
// or WithDefinition.
func New(name string, opts ...Option) (*Unit, error) {
	u, err := newNamed(name, opts...)
	if err != nil {
		return nil, err
	}
	if err := Default().Register(u); err != nil {
		return nil, err
	}
	return u, nil
}

// NewUnregistered declares a named unit without touching any registry.
func NewUnregistered(name string, opts ...Option) (*Unit, error) {
	return newNamed(name, opts...)
}

func newNamed(name string, opts ...Option) (*Unit, error) {
	u := &Unit{kind: kindNamed, name: name, prefixable: true}
	for _, opt := range opts {
		opt(u)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrBadDeclaration)
	}
	if u.sym.Empty() {
		return nil, fmt.Errorf("%w: unit %q has an empty symbol", ErrBadDeclaration, name)
	}
	if u.hasBase == (u.def != nil) {
		return nil, fmt.Errorf("%w: unit %q needs exactly one of a base dimension or a definition", ErrBadDeclaration, name)
	}
	return u, nil
}

// MustNew is like New but panics on a malformed declaration. Intended
// for static system catalogs, where a bad declaration should stop the
// program at initialization.
func MustNew(name string, opts ...Option) *Unit {
	u, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Name returns the declared name; derived and scaled units have none.
func (u *Unit) Name() string { return u.name }

// IsNamed reports whether the unit is a named atom.
func (u *Unit) IsNamed() bool { return u.kind == kindNamed }

// Prefixable reports whether a prefix may be attached.
func (u *Unit) Prefixable() bool { return u.kind == kindNamed && u.prefixable }

// Scale returns mag · u. Scaling by one returns u unchanged; scaling a
// scaled unit folds the magnitudes.
func Scale(mag magnitude.Magnitude, u *Unit) *Unit {
	if mag.IsOne() {
		return u
	}
	if u.kind == kindScaled {
		return &Unit{kind: kindScaled, mag: mag.Mul(u.mag), ref: u.ref}
	}
	return &Unit{kind: kindScaled, mag: mag, ref: u}
}

// Dimension returns the physical dimension measured by the unit.
func (u *Unit) Dimension() dimension.Dimension {
	switch u.kind {
	case kindNamed:
		if u.hasBase {
			return u.dim
		}
		return u.def.Dimension()
	case kindScaled:
		return u.ref.Dimension()
	default:
		d := dimension.One
		for _, p := range u.ex.Num() {
			d = d.Mul(p.Factor.(*Unit).Dimension().Pow(p.Exp))
		}
		for _, p := range u.ex.Den() {
			d = d.Mul(p.Factor.(*Unit).Dimension().Pow(p.Exp.Neg()))
		}
		return d
	}
}

// expression renders the unit as an expression over named atoms.
// Scaled units must not leak into expressions; callers strip their
// magnitudes first.
func (u *Unit) expression() expr.Expression {
	if u.kind == kindDerived {
		return u.ex
	}
	return expr.FromFactor(u)
}

// fromExpression collapses an expression back into a unit, unwrapping
// single bare atoms so that 1/(1/s) is second itself.
func fromExpression(e expr.Expression) *Unit {
	if e.IsOne() {
		return One
	}
	num, den := e.Num(), e.Den()
	if len(num) == 1 && len(den) == 0 && num[0].Exp.Equal(ratio.One) {
		return num[0].Factor.(*Unit)
	}
	return &Unit{kind: kindDerived, ex: e}
}

// Mul returns a·b. Magnitudes of scaled operands are pulled out so the
// derived expression only ever contains named atoms.
func Mul(a, b *Unit) *Unit {
	switch {
	case a.kind == kindScaled && b.kind == kindScaled:
		return Scale(a.mag.Mul(b.mag), Mul(a.ref, b.ref))
	case a.kind == kindScaled:
		return Scale(a.mag, Mul(a.ref, b))
	case b.kind == kindScaled:
		return Scale(b.mag, Mul(a, b.ref))
	}
	return fromExpression(a.expression().Mul(b.expression()))
}

// Div returns a/b.
func Div(a, b *Unit) *Unit {
	switch {
	case a.kind == kindScaled && b.kind == kindScaled:
		return Scale(a.mag.Div(b.mag), Div(a.ref, b.ref))
	case a.kind == kindScaled:
		return Scale(a.mag, Div(a.ref, b))
	case b.kind == kindScaled:
		return Scale(b.mag.Inverse(), Div(a, b.ref))
	}
	return fromExpression(a.expression().Div(b.expression()))
}

// Inverse returns 1/u.
func Inverse(u *Unit) *Unit {
	return Div(One, u)
}

// Pow raises a unit to the rational power num/den.
func Pow(u *Unit, num, den int64) (*Unit, error) {
	r, err := ratio.New(num, den)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDeclaration, err)
	}
	return powRatio(u, r), nil
}

// MustPow is like Pow but panics on a zero exponent denominator.
func MustPow(u *Unit, num, den int64) *Unit {
	p, err := Pow(u, num, den)
	if err != nil {
		panic(err)
	}
	return p
}

func powRatio(u *Unit, r ratio.Ratio) *Unit {
	if u.kind == kindScaled {
		return Scale(u.mag.Pow(r), powRatio(u.ref, r))
	}
	return fromExpression(u.expression().Pow(r))
}

// Square returns u².
func Square(u *Unit) *Unit {
	return Mul(u, u)
}

// Cubic returns u³.
func Cubic(u *Unit) *Unit {
	return Mul(Mul(u, u), u)
}
