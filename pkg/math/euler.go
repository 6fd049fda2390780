package math

import "math"

// EulerYXZ returns the (x, y, z, w) quaternion tuple for Euler angles applied
// in Y, X, Z order. x, y and z are the rotations about the matching axes.
// The result is not normalized.
func EulerYXZ(x, y, z Angle) [4]float64 {
	hx := x.Radians() / 2
	hy := y.Radians() / 2
	hz := z.Radians() / 2

	c1, s1 := math.Cos(hx), math.Sin(hx)
	c2, s2 := math.Cos(hy), math.Sin(hy)
	c3, s3 := math.Cos(hz), math.Sin(hz)

	return [4]float64{
		s1*c2*c3 + c1*s2*s3,
		c1*s2*c3 - s1*c2*s3,
		c1*c2*s3 - s1*s2*c3,
		c1*c2*c3 + s1*s2*s3,
	}
}
