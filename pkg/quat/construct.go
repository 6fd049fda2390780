package quat

import (
	"fmt"
	stdmath "math"

	"github.com/Faultbox/orient/pkg/math"
)

const (
	ix = iota
	iy
	iz
	iw
)

// maxAbs returns the largest component magnitude, or NaN if any component
// is NaN.
func maxAbs(v [4]float64) float64 {
	m := 0.0
	for _, c := range v {
		m = stdmath.Max(m, stdmath.Abs(c))
	}
	return m
}

// length returns the Euclidean norm of v. Components are scaled by the
// largest magnitude first so finite tuples neither overflow nor underflow.
func length(v [4]float64) float64 {
	m := maxAbs(v)
	if m == 0 || stdmath.IsNaN(m) || stdmath.IsInf(m, 0) {
		return m
	}
	var sum float64
	for _, c := range v {
		c /= m
		sum += c * c
	}
	return m * stdmath.Sqrt(sum)
}

// normalize scales v to unit length in place.
func normalize(v *[4]float64) error {
	m := maxAbs(*v)
	if m == 0 || stdmath.IsNaN(m) || stdmath.IsInf(m, 0) {
		return fmt.Errorf("normalize %v: %w", *v, ErrDegenerate)
	}
	var sum float64
	for i := range v {
		v[i] /= m
		sum += v[i] * v[i]
	}
	l := stdmath.Sqrt(sum)
	for i := range v {
		v[i] /= l
	}
	return nil
}

// look builds the basis right = up × forward, trueUp = forward × right and
// extracts the quaternion of the matrix whose rows are that basis.
func look(forward, up math.Vec3) ([4]float64, error) {
	var q [4]float64

	f := forward.Normalize()
	if f == math.Zero {
		return q, fmt.Errorf("look forward %v: %w", forward, ErrDegenerate)
	}
	r := up.CrossNormalize(f)
	if r == math.Zero {
		return q, fmt.Errorf("look up %v parallel to forward %v: %w", up, forward, ErrDegenerate)
	}
	u := f.CrossNormalize(r)

	m := math.FromRows(r, u, f)
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[3], m[4], m[5]
	m20, m21, m22 := m[6], m[7], m[8]

	if trace := m.Trace(); trace > 0 {
		s := stdmath.Sqrt(trace + 1)
		q[iw] = s * 0.5
		s = 0.5 / s
		q[ix] = (m12 - m21) * s
		q[iy] = (m20 - m02) * s
		q[iz] = (m01 - m10) * s
		return q, nil
	}
	if m00 >= m11 && m00 >= m22 {
		s := stdmath.Sqrt(1 + m00 - m11 - m22)
		inv := 0.5 / s
		q[ix] = 0.5 * s
		q[iy] = (m01 + m10) * inv
		q[iz] = (m02 + m20) * inv
		q[iw] = (m12 - m21) * inv
		return q, nil
	}
	if m11 > m22 {
		s := stdmath.Sqrt(1 + m11 - m00 - m22)
		inv := 0.5 / s
		q[ix] = (m10 + m01) * inv
		q[iy] = 0.5 * s
		q[iz] = (m21 + m12) * inv
		q[iw] = (m20 - m02) * inv
		return q, nil
	}
	s := stdmath.Sqrt(1 + m22 - m00 - m11)
	inv := 0.5 / s
	q[ix] = (m20 + m02) * inv
	q[iy] = (m21 + m12) * inv
	q[iz] = 0.5 * s
	q[iw] = (m01 - m10) * inv
	return q, nil
}

func axisAngle(axis math.Vec3, angle float64) [4]float64 {
	half := angle * 0.5
	sa, ca := stdmath.Sin(half), stdmath.Cos(half)
	return [4]float64{sa * axis.X, sa * axis.Y, sa * axis.Z, ca}
}

// build runs the construction algorithm selected by args and normalizes the
// result.
func build(args Args) ([4]float64, error) {
	if args.err != nil {
		return [4]float64{}, args.err
	}

	var v [4]float64
	switch args.form {
	case FormZero:
		v = [4]float64{0, 0, 0, 1}
	case FormComponents, FormArray:
		v = args.vals
	case FormAxisAngle:
		v = axisAngle(args.dir, args.angle.Radians())
	case FormLook:
		var err error
		if v, err = look(args.dir, args.up); err != nil {
			return v, err
		}
	default:
		return v, fmt.Errorf("unknown constructor form %v", args.form)
	}

	if err := normalize(&v); err != nil {
		return v, fmt.Errorf("%v quaternion: %w", args.form, err)
	}
	return v, nil
}

// hamilton returns the product a * b.
func hamilton(a, b [4]float64) [4]float64 {
	return [4]float64{
		a[iw]*b[ix] + a[ix]*b[iw] + a[iy]*b[iz] - a[iz]*b[iy],
		a[iw]*b[iy] + a[iy]*b[iw] + a[iz]*b[ix] - a[ix]*b[iz],
		a[iw]*b[iz] + a[iz]*b[iw] + a[ix]*b[iy] - a[iy]*b[ix],
		a[iw]*b[iw] - a[ix]*b[ix] - a[iy]*b[iy] - a[iz]*b[iz],
	}
}
