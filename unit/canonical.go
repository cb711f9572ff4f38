package unit

import (
	"fmt"
	"sync"

	"github.com/c360studio/measure/expr"
	"github.com/c360studio/measure/magnitude"
)

// Canonical is the reduced form of a unit: a reference expression over
// base-bound named atoms and an absolute scaling magnitude, such that
// the unit equals Mag · Ref.
//
// Units with equal Ref and Mag are equal. Units with equal Ref are
// convertible; the quotient of their magnitudes is the conversion
// factor.
type Canonical struct {
	Mag magnitude.Magnitude
	Ref expr.Expression
}

// Unit rebuilds a plain unit from the canonical form: the reference
// expression scaled by the magnitude.
func (c Canonical) Unit() *Unit {
	return Scale(c.Mag, fromExpression(c.Ref))
}

// String renders "mag · ref", e.g. "5/18 m s⁻¹" for km/h.
func (c Canonical) String() string {
	return Symbol(c.Unit())
}

// canonCache memoizes canonical forms of named units. Named units are
// long-lived catalog objects, so keying on identity is safe; transient
// derived and scaled units recompute through the cached atoms.
var (
	canonMu    sync.RWMutex
	canonCache = map[*Unit]Canonical{}
)

// Canonical reduces the unit to its canonical form. The reduction is a
// pure function of the unit's structure; results for named units are
// memoized.
func (u *Unit) Canonical() Canonical {
	if u.kind == kindNamed {
		canonMu.RLock()
		c, ok := canonCache[u]
		canonMu.RUnlock()
		if ok {
			return c
		}
	}
	c := u.canonicalize()
	if u.kind == kindNamed {
		canonMu.Lock()
		canonCache[u] = c
		canonMu.Unlock()
	}
	return c
}

func (u *Unit) canonicalize() Canonical {
	switch u.kind {
	case kindNamed:
		if u.hasBase {
			// irreducible reference atom
			return Canonical{Mag: magnitude.One(), Ref: expr.FromFactor(u)}
		}
		return u.def.Canonical()
	case kindScaled:
		base := u.ref.Canonical()
		return Canonical{Mag: u.mag.Mul(base.Mag), Ref: base.Ref}
	default:
		mag := magnitude.One()
		ref := expr.One()
		for _, p := range u.ex.Num() {
			c := p.Factor.(*Unit).Canonical()
			mag = mag.Mul(c.Mag.Pow(p.Exp))
			ref = ref.Mul(c.Ref.Pow(p.Exp))
		}
		for _, p := range u.ex.Den() {
			c := p.Factor.(*Unit).Canonical()
			mag = mag.Mul(c.Mag.Pow(p.Exp.Neg()))
			ref = ref.Mul(c.Ref.Pow(p.Exp.Neg()))
		}
		return Canonical{Mag: mag, Ref: ref}
	}
}

// Equal reports whether two units denote exactly the same measurement
// unit: identical canonical reference form and identical magnitude.
// Hertz and 1/second are equal; metre and kilometre are not.
func Equal(a, b *Unit) bool {
	ca, cb := a.Canonical(), b.Canonical()
	return ca.Ref.Equal(cb.Ref) && ca.Mag.Equal(cb.Mag)
}

// Convertible reports whether two units share a canonical reference
// form. Metre and kilometre are convertible; metre and second are not.
func Convertible(a, b *Unit) bool {
	return a.Canonical().Ref.Equal(b.Canonical().Ref)
}

// ConversionFactor returns the exact magnitude that converts a value
// expressed in from into a value expressed in to.
func ConversionFactor(from, to *Unit) (magnitude.Magnitude, error) {
	ca, cb := from.Canonical(), to.Canonical()
	if !ca.Ref.Equal(cb.Ref) {
		return magnitude.Magnitude{}, fmt.Errorf("%w: %s and %s", ErrNotConvertible, Symbol(from), Symbol(to))
	}
	return ca.Mag.Div(cb.Mag), nil
}

// Common resolves the unit shared by mixed-unit arithmetic.
//
// If one unit's magnitude is an exact integer multiple of the other's,
// the finer unit wins so conversions stay exact (metre and millimetre
// resolve to millimetre). Otherwise a scaled unit over the greatest
// common magnitude of the two is synthesized (1/2 m and 1/3 m resolve
// to 1/6 m).
func Common(a, b *Unit) (*Unit, error) {
	if !Convertible(a, b) {
		return nil, fmt.Errorf("%w: %s and %s", ErrNotConvertible, Symbol(a), Symbol(b))
	}
	if Equal(a, b) {
		return a, nil
	}
	ca, cb := a.Canonical(), b.Canonical()
	if ca.Mag.Div(cb.Mag).IsIntegral() {
		return b, nil
	}
	if cb.Mag.Div(ca.Mag).IsIntegral() {
		return a, nil
	}
	cm := magnitude.Common(ca.Mag, cb.Mag)
	return Scale(cm, fromExpression(ca.Ref)), nil
}
