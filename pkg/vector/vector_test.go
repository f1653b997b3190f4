package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestVector2_Arithmetic(t *testing.T) {
	a := New(0.707, 0.707)
	b := New(-0.707, -0.707)

	assert.Equal(t, New(0, 0), a.Add(b))
	assert.Equal(t, New(1.414, 1.414), a.Sub(b))
	assert.InDelta(t, -0.499849, a.Mul(b).X, 1e-6)
	assert.Equal(t, New(2, -4), New(1, -2).Scale(2))
	assert.Equal(t, New(-1, 2), New(1, -2).Negate())
	assert.Equal(t, New(1, 2), New(1, -2).FlipY())

	// operands are values and stay untouched
	assert.Equal(t, New(0.707, 0.707), a)
	assert.Equal(t, New(-0.707, -0.707), b)
}

func TestVector2_Length(t *testing.T) {
	v := New(3, 4)
	assert.Equal(t, 5.0, v.Length())
	assert.Equal(t, 25.0, v.LengthSquared())
	assert.Equal(t, 11.0, Dot(v, New(1, 2)))
	assert.Equal(t, v.Dot(New(1, 2)), Dot(v, New(1, 2)))

	p1, p2 := New(-1, 2), New(5, -5)
	assert.InDelta(t, math.Sqrt(85), p1.DistanceTo(p2), eps)
	assert.InDelta(t, 85.0, p1.DistanceSquaredTo(p2), eps)
}

func TestVector2_Div(t *testing.T) {
	tests := []struct {
		name    string
		v, o    Vector2
		want    Vector2
		wantErr bool
	}{
		{"regular", New(4, 9), New(2, 3), New(2, 3), false},
		{"zero x", New(4, 9), New(0, 3), Vector2{}, true},
		{"zero y", New(4, 9), New(2, 0), Vector2{}, true},
		{"zero vector", New(4, 9), Vector2{}, Vector2{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.v.Div(test.o)
			if test.wantErr {
				assert.ErrorIs(t, err, ErrZeroComponent)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestVector2_Normalize(t *testing.T) {
	n, err := New(3, 4).Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, n.X, eps)
	assert.InDelta(t, 0.8, n.Y, eps)
	assert.InDelta(t, 1.0, n.Length(), eps)

	z, err := Vector2{}.Normalize()
	assert.ErrorIs(t, err, ErrZeroLength)
	assert.Contains(t, err.Error(), "(x:0.000000, y:0.000000)")
	assert.Equal(t, Vector2{}, z)

	s, err := New(3, 4).ScaleToLength(10)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, s.X, eps)
	assert.InDelta(t, 8.0, s.Y, eps)

	_, err = Vector2{}.ScaleToLength(10)
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestVector2_Predicates(t *testing.T) {
	assert.True(t, Vector2{}.IsZero())
	assert.False(t, New(0, 1e-300).IsZero())

	assert.True(t, New(1, 2).IsFinite())
	assert.False(t, New(math.NaN(), 0).IsFinite())
	assert.False(t, New(0, math.Inf(-1)).IsFinite())

	assert.True(t, New(1, 2).ApproxEqual(New(1.00001, 1.99999), 1e-4))
	assert.False(t, New(1, 2).ApproxEqual(New(1.001, 2), 1e-4))

	assert.Equal(t, "(x:1.500000, y:-2.000000)", New(1.5, -2).String())
}

func TestVector2_Angles(t *testing.T) {
	assert.InDelta(t, math.Pi/4, New(1, 1).Angle(), eps)
	assert.InDelta(t, -135.0, New(-1, -1).AngleDeg(), eps)
	assert.InDelta(t, 90.0, New(1, 0).AngleTo(New(0, 1)), eps)
	assert.InDelta(t, -90.0, New(0, 1).AngleTo(New(1, 0)), eps)
}

func TestVector2_RotateIsUnitLength(t *testing.T) {
	v := New(3, 0)

	r := v.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, r.X, eps)
	assert.InDelta(t, 1.0, r.Y, eps)
	assert.InDelta(t, 1.0, r.Length(), eps)

	d := v.RotateDeg(180)
	assert.InDelta(t, -1.0, d.X, eps)
	assert.InDelta(t, 0.0, d.Y, eps)

	// magnitude comes back through ScaleToLength
	back, err := r.ScaleToLength(v.Length())
	require.NoError(t, err)
	assert.InDelta(t, 3.0, back.Y, eps)
}
