package quat

import (
	"fmt"

	"github.com/Faultbox/orient/pkg/math"
)

// Form is the constructor form an Args value was built with.
type Form uint8

const (
	FormZero Form = iota
	FormComponents
	FormArray
	FormAxisAngle
	FormLook
)

func (f Form) String() string {
	switch f {
	case FormZero:
		return "zero"
	case FormComponents:
		return "components"
	case FormArray:
		return "array"
	case FormAxisAngle:
		return "axis-angle"
	case FormLook:
		return "look"
	default:
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
}

// Args describes one of the five ways to construct a quaternion. Build it
// with Zero, Components, Array, AxisAngle, Look or LookUp.
type Args struct {
	form  Form
	vals  [4]float64
	dir   math.Vec3 // axis for FormAxisAngle, forward for FormLook
	up    math.Vec3
	hasUp bool
	angle math.Angle
	err   error
}

// Zero selects the identity rotation.
func Zero() Args {
	return Args{form: FormZero}
}

// Components selects raw (x, y, z, w) values.
func Components(x, y, z, w float64) Args {
	return Args{form: FormComponents, vals: [4]float64{x, y, z, w}}
}

// Array selects a 4-element sequence ordered x, y, z, w. The values are
// copied, so later changes to a do not leak into the quaternion.
func Array(a []float64) Args {
	args := Args{form: FormArray}
	if len(a) != 4 {
		args.err = fmt.Errorf("%w: got %d elements", ErrInvalidArray, len(a))
		return args
	}
	copy(args.vals[:], a)
	return args
}

// AxisAngle selects a rotation of angle about axis. The axis is used as
// given; pass a unit vector to get an exact rotation of angle.
func AxisAngle(axis math.Vec3, angle math.Angle) Args {
	args := Args{form: FormAxisAngle, dir: axis, angle: angle}
	if angle == nil {
		args.err = ErrInvalidAngle
	}
	return args
}

// Look selects the rotation that turns Forward onto forward with math.Up as
// the up hint.
func Look(forward math.Vec3) Args {
	return Args{form: FormLook, dir: forward, up: math.Up}
}

// LookUp is Look with an explicit up hint.
func LookUp(forward, up math.Vec3) Args {
	return Args{form: FormLook, dir: forward, up: up, hasUp: true}
}

// Form returns the constructor form.
func (a Args) Form() Form {
	return a.form
}

// cacheKey is the canonical identity of an Args value. Each form fills its
// own slots, and the form tag keeps equal numbers in different forms apart.
type cacheKey struct {
	form  Form
	unit  math.Unit
	hasUp bool
	v     [7]float64
}

func (a Args) key() cacheKey {
	k := cacheKey{form: a.form}
	switch a.form {
	case FormComponents, FormArray:
		copy(k.v[:], a.vals[:])
	case FormAxisAngle:
		k.unit = math.UnitOf(a.angle)
		k.v[0], k.v[1], k.v[2] = a.dir.X, a.dir.Y, a.dir.Z
		k.v[3] = angleValue(a.angle)
	case FormLook:
		k.hasUp = a.hasUp
		k.v[0], k.v[1], k.v[2] = a.dir.X, a.dir.Y, a.dir.Z
		k.v[3], k.v[4], k.v[5] = a.up.X, a.up.Y, a.up.Z
	}
	for i, f := range k.v {
		// Fold -0 into +0.
		if f == 0 {
			k.v[i] = 0
		}
	}
	return k
}

// angleValue returns the angle in its own unit.
func angleValue(a math.Angle) float64 {
	switch v := a.(type) {
	case math.Degree:
		return float64(v)
	case math.Radian:
		return float64(v)
	case nil:
		return 0
	default:
		return a.Radians()
	}
}
