package math

// Mat3 is a 3x3 matrix in row-major order.
// Layout: [m0 m1 m2]
//
//	[m3 m4 m5]
//	[m6 m7 m8]
type Mat3 [9]float64

// Identity3 returns an identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// FromRows builds a matrix whose rows are r0, r1 and r2.
func FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// At returns the element at row r, column c.
func (m Mat3) At(r, c int) float64 {
	return m[r*3+c]
}

// Row returns row r as a vector.
func (m Mat3) Row(r int) Vec3 {
	return Vec3{m[r*3], m[r*3+1], m[r*3+2]}
}

// Trace returns m00 + m11 + m22.
func (m Mat3) Trace() float64 {
	return m[0] + m[4] + m[8]
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			result[r*3+c] = m[r*3]*other[c] + m[r*3+1]*other[3+c] + m[r*3+2]*other[6+c]
		}
	}
	return result
}

// MulVec returns m * v, treating v as a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}
