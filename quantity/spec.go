// Package quantity implements quantity specifications, references,
// quantities and quantity points.
//
// A quantity specification describes what is being measured: a
// dimension, a quantity character (scalar, vector, tensor) and a
// position in a kind hierarchy. Kinds restrict implicit
// interchangeability: a radius is usable wherever a length is expected,
// but two sibling kinds (radius and wavelength) do not combine without
// an explicit cast even though they share a unit.
package quantity

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c360studio/measure/dimension"
	"github.com/c360studio/measure/expr"
	"github.com/c360studio/measure/ratio"
)

// Character classifies the algebraic structure of a quantity's values.
type Character int

const (
	Scalar Character = iota
	Vector
	Tensor
)

func (c Character) String() string {
	switch c {
	case Vector:
		return "vector"
	case Tensor:
		return "tensor"
	}
	return "scalar"
}

type specKind int

const (
	specBase specKind = iota
	specChild
	specNamedDerived
	specDerived
	specKindOf
)

// Spec is a quantity specification. Named specs are identity objects
// declared once per catalog; derived specs are built structurally by
// Mul/Div/Pow and compare by their normalized expression.
type Spec struct {
	kind specKind
	name string
	dim  dimension.Dimension
	char Character

	parent *Spec           // specChild and specKindOf
	eq     expr.Expression // specNamedDerived and specDerived
}

// OrderKey implements expr.Factor for spec atoms in derived
// expressions. Separately declared specs are distinct atoms even when
// they share a name, so the key carries the instance identity.
func (s *Spec) OrderKey() string {
	return s.name + "\x00" + fmt.Sprintf("%p", s)
}

// Dimensionless is the root specification of quantities of dimension
// one.
var Dimensionless = &Spec{kind: specBase, name: "dimensionless"}

// SpecOption configures a named spec declaration.
type SpecOption func(*Spec)

// WithCharacter overrides the inherited or derived character.
func WithCharacter(c Character) SpecOption {
	return func(s *Spec) { s.char = c }
}

// NewBase declares a base quantity specification rooted in a base
// dimension (length, mass, ...). It starts a new kind hierarchy.
func NewBase(name string, dim dimension.Dimension, opts ...SpecOption) (*Spec, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty spec name", ErrBadDeclaration)
	}
	s := &Spec{kind: specBase, name: name, dim: dim}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustBase is like NewBase but panics on a malformed declaration.
func MustBase(name string, dim dimension.Dimension, opts ...SpecOption) *Spec {
	s, err := NewBase(name, dim, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewKind declares a named specialization of a parent spec ("radius"
// is-a "length"). The child inherits the parent's dimension and
// character unless overridden.
func NewKind(name string, parent *Spec, opts ...SpecOption) (*Spec, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty spec name", ErrBadDeclaration)
	}
	if parent == nil {
		return nil, fmt.Errorf("%w: spec %q has no parent", ErrBadDeclaration, name)
	}
	s := &Spec{kind: specChild, name: name, dim: parent.dim, char: parent.char, parent: parent}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustKind is like NewKind but panics on a malformed declaration.
func MustKind(name string, parent *Spec, opts ...SpecOption) *Spec {
	s, err := NewKind(name, parent, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewNamed declares a named derived specification with a defining
// equation ("speed" = length/time). It roots its own kind hierarchy.
func NewNamed(name string, equation *Spec, opts ...SpecOption) (*Spec, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty spec name", ErrBadDeclaration)
	}
	if equation == nil {
		return nil, fmt.Errorf("%w: spec %q has no equation", ErrBadDeclaration, name)
	}
	s := &Spec{
		kind: specNamedDerived,
		name: name,
		dim:  equation.Dimension(),
		char: equation.Character(),
		eq:   equation.expression(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// MustNamed is like NewNamed but panics on a malformed declaration.
func MustNamed(name string, equation *Spec, opts ...SpecOption) *Spec {
	s, err := NewNamed(name, equation, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// KindOf wraps a kind-root spec so that any member of the kind is
// accepted where the wrapper is expected.
func KindOf(s *Spec) *Spec {
	root := s.Kind()
	return &Spec{kind: specKindOf, name: "kind_of<" + root.name + ">", dim: root.dim, char: root.char, parent: root}
}

// Name returns the declared name; anonymous derived specs synthesize
// one from their expression.
func (s *Spec) Name() string { return s.name }

// Dimension returns the physical dimension.
func (s *Spec) Dimension() dimension.Dimension { return s.dim }

// Character returns the quantity character.
func (s *Spec) Character() Character { return s.char }

// Kind returns the root of the spec's kind hierarchy.
func (s *Spec) Kind() *Spec {
	switch s.kind {
	case specChild:
		return s.parent.Kind()
	case specKindOf:
		return s.parent
	default:
		return s
	}
}

// IsKindOf reports whether other is s itself or one of its ancestors.
func (s *Spec) IsKindOf(other *Spec) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
		if cur.kind != specChild {
			break
		}
	}
	return false
}

// expression renders the spec as a factor expression for derivation.
func (s *Spec) expression() expr.Expression {
	if s.kind == specDerived {
		return s.eq
	}
	return expr.FromFactor(s)
}

// derivedSpecs memoizes anonymous derived specs by the instance-keyed
// expression shape so repeated derivations over the same declared specs
// hand back the same pointer.
var (
	derivedMu    sync.Mutex
	derivedSpecs = map[string]*Spec{}
)

func fromExpression(e expr.Expression) *Spec {
	if e.IsOne() {
		return Dimensionless
	}
	num, den := e.Num(), e.Den()
	if len(num) == 1 && len(den) == 0 && num[0].Exp.Equal(ratio.One) {
		return num[0].Factor.(*Spec)
	}

	dim := dimension.One
	char := Scalar
	var keys, names []string
	for _, p := range num {
		f := p.Factor.(*Spec)
		dim = dim.Mul(f.dim.Pow(p.Exp))
		char = maxChar(char, f.char)
		keys = append(keys, f.OrderKey()+"^"+p.Exp.String())
		names = append(names, f.name+"^"+p.Exp.String())
	}
	for _, p := range den {
		f := p.Factor.(*Spec)
		dim = dim.Mul(f.dim.Pow(p.Exp.Neg()))
		char = maxChar(char, f.char)
		keys = append(keys, f.OrderKey()+"^-"+p.Exp.String())
		names = append(names, f.name+"^-"+p.Exp.String())
	}
	sort.Strings(keys)
	sort.Strings(names)
	key := "derived" + fmt.Sprint(keys)
	name := "derived" + fmt.Sprint(names)

	derivedMu.Lock()
	defer derivedMu.Unlock()
	if s, ok := derivedSpecs[key]; ok {
		return s
	}
	s := &Spec{kind: specDerived, name: name, dim: dim, char: char, eq: e}
	derivedSpecs[key] = s
	return s
}

func maxChar(a, b Character) Character {
	if b > a {
		return b
	}
	return a
}

// Mul composes two specs into a derived spec.
func Mul(a, b *Spec) *Spec {
	return fromExpression(a.expression().Mul(b.expression()))
}

// Div composes the quotient spec.
func Div(a, b *Spec) *Spec {
	return fromExpression(a.expression().Div(b.expression()))
}

// Inverse returns the reciprocal spec.
func Inverse(s *Spec) *Spec {
	return Div(Dimensionless, s)
}

// Pow raises the spec to the rational power num/den.
func Pow(s *Spec, num, den int64) (*Spec, error) {
	r, err := ratio.New(num, den)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDeclaration, err)
	}
	return fromExpression(s.expression().Pow(r)), nil
}

// convertibility mirrors the four-way decision of the conversion rules:
// forbidden, cast-only, explicit conversion, or fully implicit.
type convertibility int

const (
	convNo convertibility = iota
	convCast
	convExplicit
	convYes
)

// convertibleTo classifies converting a quantity of spec from into one
// of spec to.
func convertibleTo(from, to *Spec) convertibility {
	if !from.dim.Equal(to.dim) {
		return convNo
	}
	if from == to {
		return convYes
	}
	if from.kind == specKindOf || to.kind == specKindOf {
		if convertibleTo(from.Kind(), to.Kind()) != convNo {
			return convYes
		}
		return convNo
	}
	fromNamed := from.kind == specBase || from.kind == specChild || from.kind == specNamedDerived
	toNamed := to.kind == specBase || to.kind == specChild || to.kind == specNamedDerived
	if fromNamed && toNamed {
		if from.Kind() == to.Kind() {
			switch {
			case from.IsKindOf(to):
				// child used as ancestor
				return convYes
			case to.IsKindOf(from):
				// ancestor refined into child
				return convExplicit
			default:
				// sibling kinds share a unit but not a meaning
				return convCast
			}
		}
		if from.kind == specNamedDerived || to.kind == specNamedDerived {
			// distinct hierarchies over the same dimension (frequency
			// vs activity style): equal dimensions make them castable
			return convCast
		}
		return convNo
	}
	// at least one anonymous derived spec: equal dimensions decide
	return convYes
}

// ImplicitlyConvertible reports whether from can be used where to is
// expected with no cast.
func ImplicitlyConvertible(from, to *Spec) bool {
	return convertibleTo(from, to) == convYes
}

// ExplicitlyConvertible reports whether a named conversion (spec call
// style) is allowed.
func ExplicitlyConvertible(from, to *Spec) bool {
	return convertibleTo(from, to) >= convExplicit
}

// Castable reports whether SpecCast may force the conversion.
func Castable(from, to *Spec) bool {
	return convertibleTo(from, to) >= convCast
}

// Common resolves the spec of a mixed-spec addition. A child and its
// ancestor meet at the ancestor (radius + length is a length). Sibling
// kinds are rejected with ErrExplicitCastRequired even though they
// share an ancestor and a unit; SpecCast acknowledges the sum.
func Common(a, b *Spec) (*Spec, error) {
	if a == b {
		return a, nil
	}
	if ImplicitlyConvertible(a, b) {
		return b, nil
	}
	if ImplicitlyConvertible(b, a) {
		return a, nil
	}
	if Castable(a, b) || Castable(b, a) {
		return nil, fmt.Errorf("%w: %s and %s are distinct kinds", ErrExplicitCastRequired, a.name, b.name)
	}
	return nil, fmt.Errorf("%w: %s and %s", ErrIncompatible, a.name, b.name)
}
