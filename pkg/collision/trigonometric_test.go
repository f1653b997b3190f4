package collision

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/elastic/pkg/vector"
)

const tolerance = 1e-9

func assertVector(t *testing.T, want, got vector.Vector2, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, delta, msgAndArgs...)
}

func TestContactAngle(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 vector.Vector2
		want   float64
	}{
		{"upper right", vector.New(0, 0), vector.New(1, 1), math.Pi/4 - 2*math.Pi},
		{"lower right", vector.New(0, 0), vector.New(1, -1), -math.Pi / 4},
		{"right", vector.New(0, 0), vector.New(1, 0), 0},
		{"left", vector.New(0, 0), vector.New(-1, 0), -math.Pi},
		{"above", vector.New(0, 0), vector.New(0, 2), -3 * math.Pi / 2},
		{"below", vector.New(5, 5), vector.New(5, 1), -math.Pi / 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ContactAngle(test.c1, test.c2)
			assert.InDelta(t, test.want, got, tolerance)
			assert.LessOrEqual(t, got, 0.0)
			assert.Greater(t, got, -2*math.Pi)
		})
	}
}

func TestHeadingAngle(t *testing.T) {
	tests := []struct {
		name string
		v    vector.Vector2
		want float64
	}{
		{"diagonal", vector.New(0.707, 0.707), math.Pi / 4},
		{"opposite diagonal", vector.New(-0.707, -0.707), -3 * math.Pi / 4},
		{"east", vector.New(3, 0), 0},
		{"west", vector.New(-3, 0), math.Pi},
		{"south", vector.New(0, -2), -math.Pi / 2},
		{"tiny", vector.New(1e-150, 0), 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := HeadingAngle(test.v)
			require.NoError(t, err)
			assert.InDelta(t, test.want, got, tolerance)
			assert.InDelta(t, test.v.Angle(), got, tolerance, "heading matches atan2")
		})
	}

	got, err := HeadingAngle(vector.Vector2{})
	assert.ErrorIs(t, err, ErrZeroVelocity)
	assert.Equal(t, -1.0, got)
}

func TestTrigonometricVelocity_HeadOn1D(t *testing.T) {
	// along φ = 0 the formula reduces to the 1-D elastic exchange
	m1, m2 := 3.0, 1.0
	u1, u2 := 2.0, 0.0

	out := TrigonometricVelocity(u1, u2, 0, 0, 0, m1, m2)
	want := ((m1-m2)*u1 + 2*m2*u2) / (m1 + m2)
	assert.InDelta(t, want, out.X, tolerance)
	assert.InDelta(t, 0.0, out.Y, tolerance)
}

func TestResolveTrigonometric_EqualMassSwap(t *testing.T) {
	tests := []struct {
		name   string
		b1, b2 Body
	}{
		{
			name: "diagonal",
			b1:   NewBody(vector.New(0.707, 0.707), 1, vector.New(0, 0)),
			b2:   NewBody(vector.New(-0.707, -0.707), 1, vector.New(1.4142, 1.4142)),
		},
		{
			name: "object 2 on the right",
			b1:   NewBody(vector.New(0.707, 0), 1, vector.New(0, 0)),
			b2:   NewBody(vector.New(-0.707, 0), 1, vector.New(1.4142, 0)),
		},
		{
			name: "object 2 above",
			b1:   NewBody(vector.New(0, 0.707), 1, vector.New(0, 0)),
			b2:   NewBody(vector.New(0, -0.707), 1, vector.New(0, 1.4142)),
		},
		{
			name: "object 2 on the left",
			b1:   NewBody(vector.New(-0.707, 0), 1, vector.New(0, 0)),
			b2:   NewBody(vector.New(0.707, 0), 1, vector.New(-1.4142, 0)),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := ResolveTrigonometric(test.b1, test.b2)
			require.NoError(t, err)
			assertVector(t, test.b2.Velocity, result.Outgoing1, tolerance)
			assertVector(t, test.b1.Velocity, result.Outgoing2, tolerance)
		})
	}
}

func TestResolveTrigonometric_Degenerate(t *testing.T) {
	moving := NewBody(vector.New(1, 0), 1, vector.New(0, 0))
	still := NewBody(vector.Vector2{}, 1, vector.New(1, 1))

	result, err := ResolveTrigonometric(moving, still)
	assert.ErrorIs(t, err, ErrZeroVelocity)
	assert.Contains(t, err.Error(), "body 2")
	assert.Equal(t, Result{}, result)

	_, err = ResolveTrigonometric(still, moving)
	assert.ErrorIs(t, err, ErrZeroVelocity)
	assert.Contains(t, err.Error(), "body 1")

	weightless := NewBody(vector.New(-1, 0), 0, vector.New(1, 1))
	massless := moving
	massless.Mass = 0
	_, err = ResolveTrigonometric(massless, weightless)
	assert.ErrorIs(t, err, ErrNonPositiveMass)

	nan := NewBody(vector.New(math.NaN(), 0), 1, vector.New(1, 1))
	_, err = ResolveTrigonometric(moving, nan)
	assert.ErrorIs(t, err, ErrNonFinite)
}
