package symtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	micro := New("µ", "u")
	assert.Equal(t, "µ", micro.Enc(Unicode))
	assert.Equal(t, "u", micro.Enc(ASCII))

	m := Sym("m")
	assert.Equal(t, "m", m.Enc(Unicode))
	assert.Equal(t, "m", m.Enc(ASCII))

	assert.True(t, Text{}.Empty())
	assert.False(t, m.Empty())

	us := micro.Append(Sym("s"))
	assert.Equal(t, "µs", us.Enc(Unicode))
	assert.Equal(t, "us", us.Enc(ASCII))
}

func TestSuperscript(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		enc  Encoding
		want string
	}{
		{"unicode positive", 2, Unicode, "²"},
		{"unicode negative", -2, Unicode, "⁻²"},
		{"unicode multi digit", -12, Unicode, "⁻¹²"},
		{"ascii positive", 3, ASCII, "^3"},
		{"ascii negative", -3, ASCII, "^-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Superscript(tt.n, tt.enc))
		})
	}
}
