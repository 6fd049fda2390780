package quat

import "github.com/Faultbox/orient/pkg/math"

// Quaternion is the mutable variant. Setters edit components in place and do
// not re-normalize; keeping the value a valid rotation is up to the caller.
// Left, Dir and Up are recomputed on every call. A Quaternion is not safe for
// concurrent mutation.
type Quaternion struct {
	core
}

// NewQuaternion builds a Quaternion from args.
func NewQuaternion(args Args) (*Quaternion, error) {
	v, err := build(args)
	if err != nil {
		return nil, err
	}
	return &Quaternion{core{v}}, nil
}

// SetX sets x in place. It always succeeds.
func (q *Quaternion) SetX(x float64) error {
	q.v[ix] = x
	return nil
}

func (q *Quaternion) SetY(y float64) error {
	q.v[iy] = y
	return nil
}

func (q *Quaternion) SetZ(z float64) error {
	q.v[iz] = z
	return nil
}

func (q *Quaternion) SetW(w float64) error {
	q.v[iw] = w
	return nil
}

func (q *Quaternion) Left() math.Vec3 { return q.left() }
func (q *Quaternion) Dir() math.Vec3  { return q.dir() }
func (q *Quaternion) Up() math.Vec3   { return q.up() }

// MultiplyQuaternion returns q * other, the rotation that applies other
// first and q second.
func (q *Quaternion) MultiplyQuaternion(other Rotation) (*Quaternion, error) {
	if other == nil {
		return nil, ErrInvalidOperand
	}
	p := hamilton(q.v, other.Components())
	return NewQuaternion(Components(p[ix], p[iy], p[iz], p[iw]))
}

// Multiply applies q to a rotation or a vector operand and returns an
// operand of the same kind.
func (q *Quaternion) Multiply(op Operand) (Operand, error) {
	if !op.valid() {
		return Operand{}, ErrInvalidOperand
	}
	if op.IsVector() {
		return OfVector(q.MultiplyVector(op.Vector())), nil
	}
	p, err := q.MultiplyQuaternion(op.Rotation())
	if err != nil {
		return Operand{}, err
	}
	return OfRotation(p), nil
}

// Mul is shorthand for Multiply.
func (q *Quaternion) Mul(op Operand) (Operand, error) {
	return q.Multiply(op)
}

// Conjugate returns the inverse rotation.
func (q *Quaternion) Conjugate() (*Quaternion, error) {
	return NewQuaternion(Components(-q.v[ix], -q.v[iy], -q.v[iz], q.v[iw]))
}

// Immutable returns an IQuaternion with q's current components, normalized.
func (q *Quaternion) Immutable() (*IQuaternion, error) {
	return NewIQuaternion(Array(q.v[:]))
}
