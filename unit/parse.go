package unit

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/c360studio/measure/magnitude"
)

// Parse resolves a textual unit expression against the default
// registry. Supported syntax:
//
//	m/s^2  km  N*m  kg m²/s²  1852*m  kg/(m s)  m^(1/2)
//
// Factors are separated by '*', '·', '⋅' or whitespace; '/' divides by
// the following factor (parenthesize multi-factor denominators);
// exponents use '^' with an optional rational "n/d" in parentheses.
// Numeric factors (integers, decimals, fractions) become exact scale
// magnitudes.
func Parse(s string) (*Unit, error) {
	return ParseIn(Default(), s)
}

// ParseIn is Parse against an explicit registry.
func ParseIn(r *Registry, s string) (*Unit, error) {
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, reg: r, src: s}
	u, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("%w: unexpected %q in %q", ErrParse, p.peek().text, s)
	}
	return u, nil
}

type tokKind int

const (
	tIdent tokKind = iota
	tNumber
	tSep   // '*', '·', '⋅' or whitespace
	tSlash // '/'
	tCaret // '^'
	tLParen
	tRParen
	tMinus
)

type token struct {
	kind tokKind
	text string
}

func lex(s string) ([]token, error) {
	var toks []token
	rs := []rune(s)
	i := 0
	sep := func() {
		if len(toks) > 0 && toks[len(toks)-1].kind != tSep {
			toks = append(toks, token{kind: tSep, text: "*"})
		}
	}
	for i < len(rs) {
		r := rs[i]
		switch {
		case r == ' ' || r == '\t' || r == '*' || r == '·' || r == '⋅':
			sep()
			i++
		case r == '/':
			toks = append(toks, token{kind: tSlash, text: "/"})
			i++
		case r == '^':
			toks = append(toks, token{kind: tCaret, text: "^"})
			i++
		case r == '(':
			toks = append(toks, token{kind: tLParen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tRParen, text: ")"})
			i++
		case r == '-':
			toks = append(toks, token{kind: tMinus, text: "-"})
			i++
		case unicode.IsDigit(r):
			j := i
			for j < len(rs) && (unicode.IsDigit(rs[j]) || (rs[j] == '.' && j+1 < len(rs) && unicode.IsDigit(rs[j+1]))) {
				j++
			}
			toks = append(toks, token{kind: tNumber, text: string(rs[i:j])})
			i = j
		default:
			j := i
			for j < len(rs) && !strings.ContainsRune(" \t*·⋅/^()-", rs[j]) && !unicode.IsDigit(rs[j]) {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: unexpected character %q", ErrParse, string(r))
			}
			toks = append(toks, token{kind: tIdent, text: string(rs[i:j])})
			i = j
		}
	}
	// drop trailing separator
	if len(toks) > 0 && toks[len(toks)-1].kind == tSep {
		toks = toks[:len(toks)-1]
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	reg  *Registry
	src  string
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() token {
	if p.done() {
		return token{kind: -1}
	}
	return p.toks[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) expect(kind tokKind, what string) (token, error) {
	t := p.next()
	if t.kind != kind {
		return token{}, fmt.Errorf("%w: expected %s in %q", ErrParse, what, p.src)
	}
	return t, nil
}

// expr := factor ((sep | '/') factor)*
//
// Division binds to the single following factor, so "m/s s" is
// (m/s)·s; parenthesize multi-factor denominators.
func (p *parser) parseExpr() (*Unit, error) {
	u, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case tSep:
			p.next()
			v, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			u = Mul(u, v)
		case tSlash:
			p.next()
			v, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			u = Div(u, v)
		default:
			return u, nil
		}
	}
}

// factor := '(' expr ')' | term
func (p *parser) parseFactor() (*Unit, error) {
	if p.peek().kind == tLParen {
		p.next()
		u, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tRParen, "')'"); err != nil {
			return nil, err
		}
		return p.applyExponent(u)
	}
	return p.parseTerm()
}

// term := (number | ident) ('^' exponent)?
func (p *parser) parseTerm() (*Unit, error) {
	t := p.next()
	switch t.kind {
	case tNumber:
		mag, err := p.numberMagnitude(t.text)
		if err != nil {
			return nil, err
		}
		u := Scale(mag, One)
		return p.applyExponent(u)
	case tIdent:
		u, ok := p.reg.Resolve(t.text)
		if !ok {
			return nil, fmt.Errorf("%w: unknown unit %q", ErrParse, t.text)
		}
		return p.applyExponent(u)
	}
	return nil, fmt.Errorf("%w: expected unit or number in %q", ErrParse, p.src)
}

// numberMagnitude converts an integer, decimal or fraction literal into
// an exact magnitude.
func (p *parser) numberMagnitude(text string) (magnitude.Magnitude, error) {
	whole, frac, hasFrac := strings.Cut(text, ".")
	num, err := strconv.ParseInt(whole+frac, 10, 64)
	if err != nil {
		return magnitude.Magnitude{}, fmt.Errorf("%w: number %q out of range", ErrParse, text)
	}
	den := int64(1)
	if hasFrac {
		for range frac {
			den *= 10
		}
	}
	// fraction literal: "1/2" arrives as two numbers around a slash,
	// which parseExpr handles as division already
	m, err := magnitude.FromRatio(num, den)
	if err != nil {
		return magnitude.Magnitude{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return m, nil
}

func (p *parser) applyExponent(u *Unit) (*Unit, error) {
	if p.peek().kind != tCaret {
		return u, nil
	}
	p.next()
	num, den, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	return Pow(u, num, den)
}

// exponent := '-'? int | '(' '-'? int '/' int ')'
func (p *parser) parseExponent() (num, den int64, err error) {
	paren := false
	if p.peek().kind == tLParen {
		paren = true
		p.next()
	}
	neg := false
	if p.peek().kind == tMinus {
		neg = true
		p.next()
	}
	t, err := p.expect(tNumber, "exponent")
	if err != nil {
		return 0, 0, err
	}
	num, err = strconv.ParseInt(t.text, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: exponent %q", ErrParse, t.text)
	}
	den = 1
	if paren && p.peek().kind == tSlash {
		p.next()
		d, derr := p.expect(tNumber, "exponent denominator")
		if derr != nil {
			return 0, 0, derr
		}
		den, err = strconv.ParseInt(d.text, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: exponent %q", ErrParse, d.text)
		}
	}
	if paren {
		if _, err := p.expect(tRParen, "')'"); err != nil {
			return 0, 0, err
		}
	}
	if neg {
		num = -num
	}
	return num, den, nil
}
