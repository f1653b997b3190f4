package collision

import (
	"fmt"

	"github.com/zeusync/elastic/pkg/vector"
)

// AngleFreeVelocity returns the outgoing velocity of body a colliding with body b:
//
//	va - 2·mb/(ma+mb) · <va-vb, xa-xb> / |xa-xb|² · (xa-xb)
//
// where xa, xb are the centers at contact. Body b's velocity is obtained by swapping the roles.
func AngleFreeVelocity(va, vb vector.Vector2, ma, mb float64, xa, xb vector.Vector2) (vector.Vector2, error) {
	if ma+mb <= 0 {
		return vector.Vector2{}, fmt.Errorf("%w: m1 %f + m2 %f", ErrNonPositiveMass, ma, mb)
	}

	deltaX := xa.Sub(xb)
	distanceSquared := deltaX.LengthSquared()
	if distanceSquared == 0 {
		return vector.Vector2{}, fmt.Errorf("%w: center %s", ErrCoincidentCenters, xa)
	}

	coefficient := 2 * mb / (ma + mb)
	projection := vector.Dot(va.Sub(vb), deltaX) / distanceSquared
	return va.Sub(deltaX.Scale(coefficient * projection)), nil
}

// ResolveAngleFree computes the outgoing velocities by projection onto the line of centers.
//
// m1+m2 must be positive and the centers must differ on both axes: centers sharing an X or a Y
// coordinate are rejected with ErrCentersShareAxis. Use a Resolver with StrictCenters disabled
// to accept axis-aligned contacts.
func ResolveAngleFree(b1, b2 Body) (Result, error) {
	return resolveAngleFree(b1, b2, true)
}

func resolveAngleFree(b1, b2 Body, strict bool) (Result, error) {
	if err := checkInput(b1, b2); err != nil {
		return Result{}, err
	}
	if err := checkCenters(b1.Center, b2.Center, strict); err != nil {
		return Result{}, err
	}

	outgoing1, err := AngleFreeVelocity(b1.Velocity, b2.Velocity, b1.Mass, b2.Mass, b1.Center, b2.Center)
	if err != nil {
		return Result{}, fmt.Errorf("body 1: %w", err)
	}
	outgoing2, err := AngleFreeVelocity(b2.Velocity, b1.Velocity, b2.Mass, b1.Mass, b2.Center, b1.Center)
	if err != nil {
		return Result{}, fmt.Errorf("body 2: %w", err)
	}

	return finite(Result{Outgoing1: outgoing1, Outgoing2: outgoing2})
}

func checkCenters(c1, c2 vector.Vector2, strict bool) error {
	if c1 == c2 {
		return fmt.Errorf("%w: %s", ErrCoincidentCenters, c1)
	}
	if strict && (c1.X == c2.X || c1.Y == c2.Y) {
		return fmt.Errorf("%w: %s and %s", ErrCentersShareAxis, c1, c2)
	}
	return nil
}
