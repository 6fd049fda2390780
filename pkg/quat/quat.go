// Package quat implements unit quaternions for composing 3D rotations.
//
// Quaternions are built from one of five constructor forms (see Args) and
// are normalized exactly once, at construction. Two variants share the
// algebra: Quaternion allows in-place component edits, IQuaternion is
// immutable and memoizes its derived direction vectors. Factory deduplicates
// structurally equal constructions so callers can share instances.
package quat

import (
	"errors"

	num "gonum.org/v1/gonum/num/quat"

	"github.com/Faultbox/orient/pkg/math"
)

var (
	ErrDegenerate          = errors.New("degenerate quaternion")
	ErrUnsupportedMutation = errors.New("unsupported mutation of immutable quaternion")
	ErrInvalidArray        = errors.New("quaternion array must have 4 elements")
	ErrInvalidAngle        = errors.New("axis-angle requires an angle")
	ErrInvalidOperand      = errors.New("invalid multiplication operand")
)

// Rotation is the surface shared by Quaternion and IQuaternion.
type Rotation interface {
	X() float64
	Y() float64
	Z() float64
	W() float64
	Components() [4]float64

	SetX(x float64) error
	SetY(y float64) error
	SetZ(z float64) error
	SetW(w float64) error

	// Left, Dir and Up rotate math.Left, math.Forward and math.Up.
	Left() math.Vec3
	Dir() math.Vec3
	Up() math.Vec3

	MultiplyVector(v math.Vec3) math.Vec3
	Equals(other Rotation) bool
	Matrix() math.Mat3
	Number() num.Number
	String() string
}

// core holds the component storage and the algebra both variants share.
type core struct {
	v [4]float64
}

func (c *core) X() float64 { return c.v[ix] }
func (c *core) Y() float64 { return c.v[iy] }
func (c *core) Z() float64 { return c.v[iz] }
func (c *core) W() float64 { return c.v[iw] }

// Components returns a copy of (x, y, z, w).
func (c *core) Components() [4]float64 { return c.v }

// MultiplyVector rotates v.
func (c *core) MultiplyVector(v math.Vec3) math.Vec3 {
	return math.RotateVec3(c.v[ix], c.v[iy], c.v[iz], c.v[iw], v)
}

// Equals reports exact componentwise equality. There is no tolerance; use
// ApproxEqual for that.
func (c *core) Equals(other Rotation) bool {
	return other != nil && c.v == other.Components()
}

// Matrix returns the rotation matrix. Row i is the image of the i-th unit
// axis, so Row(2) equals Dir().
func (c *core) Matrix() math.Mat3 {
	x, y, z, w := c.v[ix], c.v[iy], c.v[iz], c.v[iw]
	xx, xy, xz, xw := x*x, x*y, x*z, x*w
	yy, yz, yw := y*y, y*z, y*w
	zz, zw := z*z, z*w

	return math.Mat3{
		1 - 2*(yy+zz), 2 * (xy + zw), 2 * (xz - yw),
		2 * (xy - zw), 1 - 2*(xx+zz), 2 * (yz + xw),
		2 * (xz + yw), 2 * (yz - xw), 1 - 2*(xx+yy),
	}
}

// Number converts to a gonum quaternion.
func (c *core) Number() num.Number {
	return num.Number{Real: c.v[iw], Imag: c.v[ix], Jmag: c.v[iy], Kmag: c.v[iz]}
}

func (c *core) String() string {
	return "{ x: " + math.FormatNumber(c.v[ix]) +
		", y: " + math.FormatNumber(c.v[iy]) +
		", z: " + math.FormatNumber(c.v[iz]) +
		", w: " + math.FormatNumber(c.v[iw]) + " }"
}

func (c *core) left() math.Vec3 { return c.MultiplyVector(math.Left) }
func (c *core) dir() math.Vec3  { return c.MultiplyVector(math.Forward) }
func (c *core) up() math.Vec3   { return c.MultiplyVector(math.Up) }

// ApproxEqual reports whether a and b differ by at most eps in every
// component.
func ApproxEqual(a, b Rotation, eps float64) bool {
	av, bv := a.Components(), b.Components()
	for i := range av {
		d := av[i] - bv[i]
		if d > eps || d < -eps {
			return false
		}
	}
	return true
}

// Operand is the right-hand side of Multiply: either a rotation or a vector.
type Operand struct {
	rot   Rotation
	vec   math.Vec3
	isVec bool
}

// OfRotation wraps a rotation operand.
func OfRotation(r Rotation) Operand {
	return Operand{rot: r}
}

// OfVector wraps a vector operand.
func OfVector(v math.Vec3) Operand {
	return Operand{vec: v, isVec: true}
}

// IsVector reports whether the operand holds a vector.
func (o Operand) IsVector() bool { return o.isVec }

// Rotation returns the rotation operand, or nil for a vector.
func (o Operand) Rotation() Rotation { return o.rot }

// Vector returns the vector operand.
func (o Operand) Vector() math.Vec3 { return o.vec }

func (o Operand) valid() bool { return o.isVec || o.rot != nil }

// Must panics if err is non-nil. It is meant for package-level values built
// from constant arguments.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
