// Package math provides the vector, angle and matrix helpers the rotation
// algebra in package quat is built on.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Basis directions. Forward points down +Z, so Look(Forward, Up) is the
// identity rotation.
var (
	Zero    = Vec3{0, 0, 0}
	Left    = Vec3{-1, 0, 0}
	Forward = Vec3{0, 0, 1}
	Up      = Vec3{0, 1, 0}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// CrossNormalize returns the normalized cross product v × other.
func (v Vec3) CrossNormalize(other Vec3) Vec3 {
	return v.Cross(other).Normalize()
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector. The zero vector stays zero.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// ApproxEqual reports whether every component of v is within eps of other.
func (v Vec3) ApproxEqual(other Vec3, eps float64) bool {
	return math.Abs(v.X-other.X) <= eps &&
		math.Abs(v.Y-other.Y) <= eps &&
		math.Abs(v.Z-other.Z) <= eps
}

// String formats the vector with FormatNumber.
func (v Vec3) String() string {
	return "{ x: " + FormatNumber(v.X) + ", y: " + FormatNumber(v.Y) + ", z: " + FormatNumber(v.Z) + " }"
}

// RotateVec3 rotates v by the quaternion (qx, qy, qz, qw) using the expanded
// sandwich product q * v * q⁻¹. The quaternion is assumed to be unit length.
func RotateVec3(qx, qy, qz, qw float64, v Vec3) Vec3 {
	ix := qw*v.X + qy*v.Z - qz*v.Y
	iy := qw*v.Y + qz*v.X - qx*v.Z
	iz := qw*v.Z + qx*v.Y - qy*v.X
	iw := -qx*v.X - qy*v.Y - qz*v.Z

	return Vec3{
		X: ix*qw + iw*-qx + iy*-qz - iz*-qy,
		Y: iy*qw + iw*-qy + iz*-qx - ix*-qz,
		Z: iz*qw + iw*-qz + ix*-qy - iy*-qx,
	}
}
