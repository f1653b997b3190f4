package vector

import "fmt"

// In-place variants. Each one mutates the receiver and leaves its argument unchanged.

func (v *Vector2) AddInPlace(o Vector2) { v.X += o.X; v.Y += o.Y }

func (v *Vector2) SubInPlace(o Vector2) { v.X -= o.X; v.Y -= o.Y }

func (v *Vector2) MulInPlace(o Vector2) { v.X *= o.X; v.Y *= o.Y }

func (v *Vector2) ScaleInPlace(c float64) { v.X *= c; v.Y *= c }

// DivInPlace divides v by o componentwise.
// On a zero divisor component v is left unchanged and ErrZeroComponent is returned.
func (v *Vector2) DivInPlace(o Vector2) error {
	if o.X == 0 || o.Y == 0 {
		return fmt.Errorf("%w: divisor %s", ErrZeroComponent, o)
	}
	v.X /= o.X
	v.Y /= o.Y
	return nil
}

// NormalizeInPlace rescales v to unit length.
// A zero-length v is left unchanged and ErrZeroLength is returned.
func (v *Vector2) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// ScaleToLengthInPlace normalizes v and rescales it to length l.
func (v *Vector2) ScaleToLengthInPlace(l float64) error {
	if err := v.NormalizeInPlace(); err != nil {
		return err
	}
	v.ScaleInPlace(l)
	return nil
}

// RotateInPlace replaces v with the unit vector at v's angle plus rad.
func (v *Vector2) RotateInPlace(rad float64) { *v = v.Rotate(rad) }

// RotateDegInPlace replaces v with the unit vector at v's angle plus deg degrees.
func (v *Vector2) RotateDegInPlace(deg float64) { *v = v.RotateDeg(deg) }
