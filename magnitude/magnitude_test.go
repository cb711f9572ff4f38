package magnitude

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/measure/ratio"
	"github.com/c360studio/measure/symtext"
)

func TestFromRatio_Exactness(t *testing.T) {
	tests := []struct {
		name     string
		num, den int64
	}{
		{"integer", 1000, 1},
		{"fraction", 5, 18},
		{"already reduced", 3, 7},
		{"reducible", 100, 250},
		{"large prime", 999_983, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromRatio(tt.num, tt.den)
			require.NoError(t, err)
			num, den, err := m.Rat()
			require.NoError(t, err)
			// compare as reduced fractions
			g := gcdInt(tt.num, tt.den)
			assert.Equal(t, tt.num/g, num)
			assert.Equal(t, tt.den/g, den)
		})
	}
}

func gcdInt(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestFromRatio_Rejections(t *testing.T) {
	_, err := FromRatio(0, 1)
	assert.Error(t, err)

	_, err = FromRatio(-5, 1)
	assert.Error(t, err)

	_, err = FromRatio(1, 0)
	assert.Error(t, err)
}

func TestMulDiv_Symbolic(t *testing.T) {
	kilo := PowerOfTen(3)
	milli := PowerOfTen(-3)

	// kilo * milli is exactly one, no rounding anywhere
	assert.True(t, kilo.Mul(milli).IsOne())

	third := MustRatio(1, 3)
	assert.True(t, third.Mul(MustRatio(3, 1)).IsOne())

	// float arithmetic drifts where the symbolic form stays exact
	// (use variables so the sum is evaluated in float64 at run time,
	// not folded exactly as an untyped constant)
	x, y := 0.1, 0.2
	assert.NotEqual(t, 0.3, x+y)
}

func TestInversePow(t *testing.T) {
	m := MustRatio(5, 18)
	assert.True(t, m.Mul(m.Inverse()).IsOne())

	sq := m.Pow(ratio.FromInt(2))
	num, den, err := sq.Rat()
	require.NoError(t, err)
	assert.Equal(t, int64(25), num)
	assert.Equal(t, int64(324), den)
}

func TestEqual_IsStructural(t *testing.T) {
	a := MustRatio(10, 4)
	b := MustRatio(5, 2)
	assert.True(t, a.Equal(b))

	c := MustRatio(1000, 1).Div(MustRatio(400, 1))
	assert.True(t, a.Equal(c))
}

func TestIrrational(t *testing.T) {
	piOver180 := FromIrrational(Pi).Mul(MustRatio(1, 180))

	assert.False(t, piOver180.IsRational())
	assert.False(t, piOver180.IsIntegral())

	_, _, err := piOver180.Rat()
	assert.ErrorIs(t, err, ErrNotRational)

	assert.InDelta(t, math.Pi/180, piOver180.Float64(), 1e-15)

	// irrational parts cancel exactly
	assert.True(t, piOver180.Div(FromIrrational(Pi)).IsRational())
}

func TestIntegralChecks(t *testing.T) {
	assert.True(t, MustRatio(1000, 1).IsIntegral())
	assert.False(t, MustRatio(1, 1000).IsIntegral())
	assert.True(t, MustRatio(1, 1000).IsRational())

	v, err := MustRatio(1000, 1).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)

	_, err = MustRatio(1, 2).Int64()
	assert.ErrorIs(t, err, ErrNotIntegral)
}

func TestPow10(t *testing.T) {
	tests := []struct {
		name    string
		mag     Magnitude
		wantK   int64
		restOne bool
	}{
		{"thousand", MustRatio(1000, 1), 3, true},
		{"milli", MustRatio(1, 1000), -3, true},
		{"no power", MustRatio(3, 7), 0, false},
		{"mixed", MustRatio(3000, 1), 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, rest := tt.mag.Pow10()
			assert.Equal(t, tt.wantK, k)
			assert.Equal(t, tt.restOne, rest.IsOne())
			assert.True(t, PowerOfTen(k).Mul(rest).Equal(tt.mag))
		})
	}
}

func TestCommon(t *testing.T) {
	half := MustRatio(1, 2)
	third := MustRatio(1, 3)

	// gcd(1/2, 1/3) = 1/6
	c := Common(half, third)
	num, den, err := c.Rat()
	require.NoError(t, err)
	assert.Equal(t, int64(1), num)
	assert.Equal(t, int64(6), den)

	// both inputs divide into the common magnitude exactly
	assert.True(t, half.Div(c).IsIntegral())
	assert.True(t, third.Div(c).IsIntegral())
}

func TestFactorize_Limits(t *testing.T) {
	// a prime just under the limit factorizes fine
	m, err := FromInt(999_983)
	require.NoError(t, err)
	assert.True(t, m.IsIntegral())

	// residue after trial division must be prime to be accepted;
	// a huge semiprime with both factors above the limit is rejected
	_, err = FromInt(1_000_033 * 1_000_037)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		mag  Magnitude
		want string
	}{
		{"one", One(), "1"},
		{"integer", MustRatio(60, 1), "60"},
		{"fraction", MustRatio(5, 18), "5/18"},
		{"large power of ten", PowerOfTen(6), "10⁶"},
		{"small power of ten", PowerOfTen(-6), "10⁻⁶"},
		{"thousand stays plain", MustRatio(1000, 1), "1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mag.Format(symtext.Unicode))
		})
	}
}

func TestZeroValueIsIdentity(t *testing.T) {
	var m Magnitude
	assert.True(t, m.IsOne())
	assert.True(t, m.Mul(MustRatio(7, 3)).Equal(MustRatio(7, 3)))
}
