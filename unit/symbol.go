package unit

import (
	"fmt"
	"strings"

	"github.com/c360studio/measure/expr"
	"github.com/c360studio/measure/symtext"
)

// Solidus selects how denominators are rendered.
type Solidus int

const (
	// SolidusOne uses "/" only for a single denominator factor:
	// m/s, kg m⁻¹ s⁻¹.
	SolidusOne Solidus = iota
	// SolidusAlways always uses "/": m/s, kg/(m s).
	SolidusAlways
	// SolidusNever always uses negative exponents: m s⁻¹.
	SolidusNever
)

// Separator selects the character between factors.
type Separator int

const (
	// SeparatorSpace renders "kg m²/s²".
	SeparatorSpace Separator = iota
	// SeparatorDot renders "kg⋅m²/s²"; valid only with unicode
	// encoding.
	SeparatorDot
)

// SymbolFormat configures symbol rendering. The zero value is the
// default: unicode, one-denominator solidus, space separator.
type SymbolFormat struct {
	Encoding  symtext.Encoding
	Solidus   Solidus
	Separator Separator
}

// Symbol renders the unit with the default format.
func Symbol(u *Unit) string {
	s, _ := Format(u, SymbolFormat{})
	return s
}

// Format renders a human-readable unit symbol. Conflicting
// configurations (dot separator with ascii encoding) are rejected.
func Format(u *Unit, f SymbolFormat) (string, error) {
	if f.Separator == SeparatorDot && f.Encoding != symtext.Unicode {
		return "", fmt.Errorf("%w: dot separator requires unicode encoding", ErrBadFormat)
	}
	var sb strings.Builder
	formatUnit(&sb, u, f, false)
	return sb.String(), nil
}

func (f SymbolFormat) separator() string {
	if f.Separator == SeparatorDot {
		return "⋅"
	}
	return " "
}

func formatUnit(sb *strings.Builder, u *Unit, f SymbolFormat, negative bool) {
	switch u.kind {
	case kindNamed:
		sb.WriteString(u.sym.Enc(f.Encoding))
		if negative {
			sb.WriteString(symtext.Superscript(-1, f.Encoding))
		}
	case kindScaled:
		sb.WriteString(u.mag.Format(f.Encoding))
		if u.ref != One {
			sb.WriteString(" ")
			formatUnit(sb, u.ref, f, negative)
		}
	default:
		formatExpr(sb, u.ex.Num(), u.ex.Den(), f)
	}
}

func formatExpr(sb *strings.Builder, num, den []expr.Power, f SymbolFormat) {
	if len(num) == 0 && len(den) == 0 {
		// dimensionless
		return
	}
	for i, p := range num {
		if i > 0 {
			sb.WriteString(f.separator())
		}
		formatPower(sb, p, f, false)
	}
	if len(den) == 0 {
		return
	}

	solidus := f.Solidus == SolidusAlways || (f.Solidus == SolidusOne && len(den) == 1)
	if solidus {
		if len(num) == 0 {
			sb.WriteString("1")
		}
		sb.WriteString("/")
	} else if len(num) > 0 {
		sb.WriteString(f.separator())
	}

	parens := f.Solidus == SolidusAlways && len(den) > 1
	if parens {
		sb.WriteString("(")
	}
	negative := f.Solidus == SolidusNever || (f.Solidus == SolidusOne && len(den) > 1)
	for i, p := range den {
		if i > 0 {
			sb.WriteString(f.separator())
		}
		formatPower(sb, p, f, negative)
	}
	if parens {
		sb.WriteString(")")
	}
}

func formatPower(sb *strings.Builder, p expr.Power, f SymbolFormat, negative bool) {
	u := p.Factor.(*Unit)
	exp := p.Exp
	if !exp.IsInt() {
		formatUnit(sb, u, f, false)
		sign := ""
		if negative {
			sign = "-"
		}
		sb.WriteString("^(" + sign + exp.String() + ")")
		return
	}
	n := exp.Num()
	if negative {
		formatUnit(sb, u, f, false)
		sb.WriteString(symtext.Superscript(-n, f.Encoding))
		return
	}
	if n == 1 {
		formatUnit(sb, u, f, false)
		return
	}
	formatUnit(sb, u, f, false)
	sb.WriteString(symtext.Superscript(n, f.Encoding))
}
