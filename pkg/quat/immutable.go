package quat

import (
	"sync"

	"github.com/Faultbox/orient/pkg/math"
)

// lazyVec computes a vector once and returns the stored value afterwards.
type lazyVec struct {
	once sync.Once
	v    math.Vec3
}

func (l *lazyVec) get(fn func() math.Vec3) math.Vec3 {
	l.once.Do(func() { l.v = fn() })
	return l.v
}

// IQuaternion is the immutable variant. Every setter fails with
// ErrUnsupportedMutation, which lets Left, Dir and Up be computed once and
// cached for the lifetime of the instance. It is safe for concurrent use.
type IQuaternion struct {
	core
	leftVec, dirVec, upVec lazyVec
}

// NewIQuaternion builds an IQuaternion from args.
func NewIQuaternion(args Args) (*IQuaternion, error) {
	v, err := build(args)
	if err != nil {
		return nil, err
	}
	return &IQuaternion{core: core{v}}, nil
}

func (q *IQuaternion) SetX(float64) error { return ErrUnsupportedMutation }
func (q *IQuaternion) SetY(float64) error { return ErrUnsupportedMutation }
func (q *IQuaternion) SetZ(float64) error { return ErrUnsupportedMutation }
func (q *IQuaternion) SetW(float64) error { return ErrUnsupportedMutation }

func (q *IQuaternion) Left() math.Vec3 { return q.leftVec.get(q.left) }
func (q *IQuaternion) Dir() math.Vec3  { return q.dirVec.get(q.dir) }
func (q *IQuaternion) Up() math.Vec3   { return q.upVec.get(q.up) }

// MultiplyQuaternion returns q * other as an IQuaternion.
func (q *IQuaternion) MultiplyQuaternion(other Rotation) (*IQuaternion, error) {
	if other == nil {
		return nil, ErrInvalidOperand
	}
	p := hamilton(q.v, other.Components())
	return NewIQuaternion(Components(p[ix], p[iy], p[iz], p[iw]))
}

func (q *IQuaternion) Multiply(op Operand) (Operand, error) {
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

func (q *IQuaternion) Mul(op Operand) (Operand, error) {
	return q.Multiply(op)
}

func (q *IQuaternion) Conjugate() (*IQuaternion, error) {
	return NewIQuaternion(Components(-q.v[ix], -q.v[iy], -q.v[iz], q.v[iw]))
}

// Mutable returns an independent, editable copy of q.
func (q *IQuaternion) Mutable() *Quaternion {
	return &Quaternion{q.core}
}
