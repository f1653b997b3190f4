package vector

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector with value semantics.
// Methods on a value receiver return new vectors, the *InPlace methods mutate the receiver.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// New returns the vector (x, y).
func New(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) String() string {
	return fmt.Sprintf("(x:%f, y:%f)", v.X, v.Y)
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Mul multiplies the components of v and o pairwise.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// Div divides the components of v by the components of o pairwise.
// If either component of o is zero it returns the zero vector and ErrZeroComponent.
func (v Vector2) Div(o Vector2) (Vector2, error) {
	if o.X == 0 || o.Y == 0 {
		return Vector2{}, fmt.Errorf("%w: divisor %s", ErrZeroComponent, o)
	}
	return Vector2{v.X / o.X, v.Y / o.Y}, nil
}

// Scale returns v multiplied by c.
func (v Vector2) Scale(c float64) Vector2 { return Vector2{v.X * c, v.Y * c} }

// Negate returns -v.
func (v Vector2) Negate() Vector2 { return Vector2{-v.X, -v.Y} }

// FlipY returns v with its Y component negated.
// It converts between a Cartesian frame and a display frame whose Y axis points down.
func (v Vector2) FlipY() Vector2 { return Vector2{v.X, -v.Y} }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSquared returns the squared Euclidean length of v.
func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Dot returns the scalar product of v and o.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Dot returns the scalar product a.x*b.x + a.y*b.y.
func Dot(a, b Vector2) float64 { return a.Dot(b) }

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector2) DistanceTo(o Vector2) float64 { return v.Sub(o).Length() }

// DistanceSquaredTo returns the squared Euclidean distance between v and o.
func (v Vector2) DistanceSquaredTo(o Vector2) float64 { return v.Sub(o).LengthSquared() }

// Normalize returns v divided by its length.
// A zero-length vector is returned unchanged together with ErrZeroLength.
func (v Vector2) Normalize() (Vector2, error) {
	l := v.Length()
	if l == 0 {
		return v, fmt.Errorf("%w: components %s", ErrZeroLength, v)
	}
	return Vector2{v.X / l, v.Y / l}, nil
}

// ScaleToLength returns v normalized and rescaled to length l.
func (v Vector2) ScaleToLength(l float64) (Vector2, error) {
	n, err := v.Normalize()
	if err != nil {
		return Vector2{}, err
	}
	return n.Scale(l), nil
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// ApproxEqual reports whether each component of v is within eps of o.
func (v Vector2) ApproxEqual(o Vector2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
