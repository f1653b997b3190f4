package vector

import "math"

const (
	RadToDeg = 180.0 / math.Pi
	DegToRad = math.Pi / 180.0
)

// Angle returns the orientation of v in radians, in [-π, π].
func (v Vector2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleDeg returns the orientation of v in degrees.
func (v Vector2) AngleDeg() float64 { return v.Angle() * RadToDeg }

// AngleTo returns the angle from v to o in degrees (o's angle minus v's angle).
func (v Vector2) AngleTo(o Vector2) float64 {
	return (o.Angle() - v.Angle()) * RadToDeg
}

// Rotate returns the unit vector oriented at v's angle plus rad.
//
// The magnitude of v is not preserved: the result always has length 1.
// Use ScaleToLength on the result to restore it.
func (v Vector2) Rotate(rad float64) Vector2 {
	a := v.Angle() + rad
	return Vector2{math.Cos(a), math.Sin(a)}
}

// RotateDeg is Rotate with the delta given in degrees.
func (v Vector2) RotateDeg(deg float64) Vector2 {
	a := (v.AngleDeg() + deg) * DegToRad
	return Vector2{math.Cos(a), math.Sin(a)}
}
