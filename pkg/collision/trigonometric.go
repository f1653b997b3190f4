package collision

import (
	"fmt"
	"math"

	"github.com/zeusync/elastic/pkg/vector"
)

// headingSentinel is returned by HeadingAngle for a zero-length velocity.
const headingSentinel = -1.0

// ContactAngle returns the orientation φ of the line from c1 to c2, in radians.
// Positive atan2 results are shifted by -2π, so φ lies in (-2π, 0].
func ContactAngle(c1, c2 vector.Vector2) float64 {
	phi := math.Atan2(c2.Y-c1.Y, c2.X-c1.X)
	if phi > 0 {
		phi -= 2 * math.Pi
	}
	return phi
}

// HeadingAngle returns the orientation θ of v in radians, in [-π, π].
// For a zero-length v it returns -1 and ErrZeroVelocity.
func HeadingAngle(v vector.Vector2) (float64, error) {
	length := v.Length()
	if length == 0 {
		return headingSentinel, fmt.Errorf("%w: components %s", ErrZeroVelocity, v)
	}

	// rounding can push |vx|/|v| past 1
	theta := math.Acos(math.Max(-1, math.Min(1, v.X/length)))
	if v.Y < 0 {
		theta = -theta
	}
	return math.Max(-math.Pi, math.Min(math.Pi, theta)), nil
}

// TrigonometricVelocity returns the outgoing velocity of body a colliding with body b.
//
// va, vb are the scalar speeds, thetaA, thetaB the heading angles, phi the contact angle
// and ma, mb the masses. The normal component follows the 1-D exchange
// ((ma-mb)·va + 2·mb·vb) / (ma+mb) along φ, the tangential component va·sin(θa-φ) is kept,
// and both are rotated back to world axes. Body b's velocity is obtained by swapping the roles.
func TrigonometricVelocity(va, vb, thetaA, thetaB, phi, ma, mb float64) vector.Vector2 {
	thetaPhi := thetaA - phi
	numerator := va*math.Cos(thetaPhi)*(ma-mb) + 2*mb*vb*math.Cos(thetaB-phi)
	tangential := va * math.Sin(thetaPhi)
	return vector.Vector2{
		X: numerator*math.Cos(phi)/(ma+mb) + tangential*math.Cos(phi+math.Pi/2),
		Y: numerator*math.Sin(phi)/(ma+mb) + tangential*math.Sin(phi+math.Pi/2),
	}
}

// ResolveTrigonometric computes the outgoing velocities by rotating into the contact-normal frame.
//
// Both velocities must be non-zero (ErrZeroVelocity) and m1+m2 must be positive (ErrNonPositiveMass).
// Stationary bodies are handled by ResolveAngleFree.
func ResolveTrigonometric(b1, b2 Body) (Result, error) {
	if err := checkInput(b1, b2); err != nil {
		return Result{}, err
	}

	theta1, err := HeadingAngle(b1.Velocity)
	if err != nil {
		return Result{}, fmt.Errorf("body 1: %w", err)
	}
	theta2, err := HeadingAngle(b2.Velocity)
	if err != nil {
		return Result{}, fmt.Errorf("body 2: %w", err)
	}

	phi := ContactAngle(b1.Center, b2.Center)
	v1, v2 := b1.Velocity.Length(), b2.Velocity.Length()

	result := Result{
		Outgoing1: TrigonometricVelocity(v1, v2, theta1, theta2, phi, b1.Mass, b2.Mass),
		Outgoing2: TrigonometricVelocity(v2, v1, theta2, theta1, phi, b2.Mass, b1.Mass),
	}
	return finite(result)
}

// checkInput holds the preconditions shared by both methods.
func checkInput(b1, b2 Body) error {
	for i, b := range [2]Body{b1, b2} {
		if !b.isFinite() {
			return fmt.Errorf("body %d: %w input", i+1, ErrNonFinite)
		}
	}
	if total := b1.Mass + b2.Mass; total <= 0 {
		return fmt.Errorf("%w: m1 %f + m2 %f = %f", ErrNonPositiveMass, b1.Mass, b2.Mass, total)
	}
	return nil
}

func finite(r Result) (Result, error) {
	if !r.isFinite() {
		return Result{}, fmt.Errorf("%w: outgoing %s, %s", ErrNonFinite, r.Outgoing1, r.Outgoing2)
	}
	return r, nil
}
