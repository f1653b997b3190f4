package collision

import (
	"fmt"
	"math"

	"github.com/zeusync/elastic/pkg/vector"
)

// Body describes one colliding object at the instant of contact.
type Body struct {
	Velocity vector.Vector2 `json:"velocity" yaml:"velocity"`
	Mass     float64        `json:"mass" yaml:"mass"`
	Center   vector.Vector2 `json:"center" yaml:"center"`
}

func NewBody(velocity vector.Vector2, mass float64, center vector.Vector2) Body {
	return Body{Velocity: velocity, Mass: mass, Center: center}
}

// Validate reports non-finite components and a non-positive mass.
func (b Body) Validate() error {
	if !b.isFinite() {
		return fmt.Errorf("%w: velocity %s, mass %f, center %s", ErrNonFinite, b.Velocity, b.Mass, b.Center)
	}
	if b.Mass <= 0 {
		return fmt.Errorf("%w: got %f", ErrInvalidMass, b.Mass)
	}
	return nil
}

func (b Body) isFinite() bool {
	return b.Velocity.IsFinite() && b.Center.IsFinite() && !math.IsNaN(b.Mass) && !math.IsInf(b.Mass, 0)
}

// InvertedY returns b with the Y component of its velocity negated.
// Display-coordinate callers apply it to both bodies before resolving, or use Result.InvertedY after.
func (b Body) InvertedY() Body {
	b.Velocity = b.Velocity.FlipY()
	return b
}

// Momentum returns m·v.
func (b Body) Momentum() vector.Vector2 { return b.Velocity.Scale(b.Mass) }

// KineticEnergy returns ½·m·|v|².
func (b Body) KineticEnergy() float64 { return 0.5 * b.Mass * b.Velocity.LengthSquared() }

// Result holds the outgoing velocities, in input body order.
type Result struct {
	Outgoing1 vector.Vector2 `json:"outgoing1" yaml:"outgoing1"`
	Outgoing2 vector.Vector2 `json:"outgoing2" yaml:"outgoing2"`
}

// InvertedY returns r with the Y component of both outgoing velocities negated.
func (r Result) InvertedY() Result {
	return Result{Outgoing1: r.Outgoing1.FlipY(), Outgoing2: r.Outgoing2.FlipY()}
}

// Apply returns copies of b1 and b2 carrying the outgoing velocities.
func (r Result) Apply(b1, b2 Body) (Body, Body) {
	b1.Velocity = r.Outgoing1
	b2.Velocity = r.Outgoing2
	return b1, b2
}

func (r Result) isFinite() bool { return r.Outgoing1.IsFinite() && r.Outgoing2.IsFinite() }

// TotalMomentum returns m1·v1 + m2·v2.
func TotalMomentum(b1, b2 Body) vector.Vector2 { return b1.Momentum().Add(b2.Momentum()) }

// TotalKineticEnergy returns ½m1|v1|² + ½m2|v2|².
func TotalKineticEnergy(b1, b2 Body) float64 { return b1.KineticEnergy() + b2.KineticEnergy() }
