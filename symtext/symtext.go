// Package symtext provides dual-encoding symbol text.
//
// Unit and dimension symbols often have a rich unicode spelling ("µs",
// "Ω", "°C") and a portable ascii fallback ("us", "ohm", "`C"). Text
// carries both so formatting can pick one at render time without the
// catalogs caring about encodings.
package symtext

import "strconv"

// Encoding selects the character repertoire used when rendering
// symbols.
type Encoding int

const (
	// Unicode renders symbols with their full spelling: m³, µs, kg⋅m.
	Unicode Encoding = iota
	// ASCII restricts output to 7-bit characters: m^3, us, kg m.
	ASCII
)

// Text is a symbol with a unicode and an ascii spelling.
type Text struct {
	Unicode string
	ASCII   string
}

// New creates a Text with distinct unicode and ascii spellings.
func New(unicode, ascii string) Text {
	return Text{Unicode: unicode, ASCII: ascii}
}

// Sym creates a Text whose two spellings are identical.
func Sym(s string) Text {
	return Text{Unicode: s, ASCII: s}
}

// Empty reports whether the text has no content in either encoding.
func (t Text) Empty() bool {
	return t.Unicode == "" && t.ASCII == ""
}

// Enc returns the spelling for the requested encoding.
func (t Text) Enc(e Encoding) string {
	if e == ASCII {
		return t.ASCII
	}
	return t.Unicode
}

// Append concatenates two texts encoding-wise.
func (t Text) Append(o Text) Text {
	return Text{Unicode: t.Unicode + o.Unicode, ASCII: t.ASCII + o.ASCII}
}

var superscripts = map[rune]string{
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹",
	'-': "⁻",
}

// Superscript renders an integer exponent. Unicode uses superscript
// digits ("⁻²"), ascii uses caret notation ("^-2").
func Superscript(n int64, e Encoding) string {
	s := strconv.FormatInt(n, 10)
	if e == ASCII {
		return "^" + s
	}
	var out string
	for _, r := range s {
		out += superscripts[r]
	}
	return out
}
