// Package expr implements the symbolic product-of-powers algebra shared
// by dimensions, units and quantity specifications.
//
// An Expression is a product of powers of irreducible factors, split
// into a numerator and a denominator list. Normalization keeps both
// lists sorted by the factor order key, merges powers of the same
// factor by exponent addition, elides zero exponents, and moves a
// factor across the fraction bar when its accumulated exponent changes
// sign. Two expressions that denote the same product therefore compare
// structurally equal.
package expr

import (
	"sort"

	"github.com/c360studio/measure/ratio"
)

// Factor is an irreducible atom of an expression.
//
// OrderKey must return a key that is unique per atom identity and is
// used as a strict total order for canonical sorting. Two factors with
// the same key are treated as the same atom. The key has no semantic
// meaning beyond producing deterministic, comparable expressions.
type Factor interface {
	OrderKey() string
}

// Power is a factor raised to a non-zero rational exponent. Exponents
// in both expression lists are kept positive; placement in the
// denominator encodes the sign.
type Power struct {
	Factor Factor
	Exp    ratio.Ratio
}

// Expression is a normalized product of powers. The zero value is the
// neutral element ("one").
type Expression struct {
	num []Power
	den []Power
}

// One returns the neutral element.
func One() Expression {
	return Expression{}
}

// FromFactor returns the expression consisting of a single factor with
// exponent one.
func FromFactor(f Factor) Expression {
	return Expression{num: []Power{{Factor: f, Exp: ratio.One}}}
}

// FromPowers builds a normalized expression from arbitrary signed
// powers. Negative exponents end up in the denominator.
func FromPowers(powers ...Power) Expression {
	return combine(powers)
}

// signedPowers flattens an expression into signed powers.
func (e Expression) signedPowers() []Power {
	out := make([]Power, 0, len(e.num)+len(e.den))
	out = append(out, e.num...)
	for _, p := range e.den {
		out = append(out, Power{Factor: p.Factor, Exp: p.Exp.Neg()})
	}
	return out
}

// combine merges signed powers into a normalized expression.
func combine(powers []Power) Expression {
	type entry struct {
		factor Factor
		exp    ratio.Ratio
	}
	merged := map[string]*entry{}
	keys := make([]string, 0, len(powers))
	for _, p := range powers {
		key := p.Factor.OrderKey()
		if ent, ok := merged[key]; ok {
			ent.exp = ent.exp.Add(p.Exp)
			continue
		}
		merged[key] = &entry{factor: p.Factor, exp: p.Exp}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var e Expression
	for _, key := range keys {
		ent := merged[key]
		switch ent.exp.Sign() {
		case 1:
			e.num = append(e.num, Power{Factor: ent.factor, Exp: ent.exp})
		case -1:
			e.den = append(e.den, Power{Factor: ent.factor, Exp: ent.exp.Neg()})
		}
	}
	return e
}

// Mul returns e * o.
func (e Expression) Mul(o Expression) Expression {
	return combine(append(e.signedPowers(), o.signedPowers()...))
}

// Div returns e / o.
func (e Expression) Div(o Expression) Expression {
	return e.Mul(o.Invert())
}

// Invert swaps the numerator and denominator.
func (e Expression) Invert() Expression {
	return Expression{
		num: clonePowers(e.den),
		den: clonePowers(e.num),
	}
}

// Pow raises every exponent by the rational r. Pow by zero yields the
// neutral element.
func (e Expression) Pow(r ratio.Ratio) Expression {
	if r.IsZero() {
		return Expression{}
	}
	powers := e.signedPowers()
	for i := range powers {
		powers[i].Exp = powers[i].Exp.Mul(r)
	}
	return combine(powers)
}

// IsOne reports whether e is the neutral element.
func (e Expression) IsOne() bool {
	return len(e.num) == 0 && len(e.den) == 0
}

// Equal reports structural equality of two normalized expressions.
func (e Expression) Equal(o Expression) bool {
	return equalPowers(e.num, o.num) && equalPowers(e.den, o.den)
}

func equalPowers(a, b []Power) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Factor.OrderKey() != b[i].Factor.OrderKey() || !a[i].Exp.Equal(b[i].Exp) {
			return false
		}
	}
	return true
}

// Num returns a copy of the numerator powers in canonical order. All
// exponents are positive.
func (e Expression) Num() []Power {
	return clonePowers(e.num)
}

// Den returns a copy of the denominator powers in canonical order. All
// exponents are positive; denominator placement encodes the negative
// sign.
func (e Expression) Den() []Power {
	return clonePowers(e.den)
}

func clonePowers(ps []Power) []Power {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Power, len(ps))
	copy(out, ps)
	return out
}
