package math

import "math"

// Angle is a rotation amount that can report itself in radians.
// Degree and Radian are the two concrete units.
type Angle interface {
	Radians() float64
}

// Degree is an angle measured in degrees.
type Degree float64

// Radians converts d to radians.
func (d Degree) Radians() float64 {
	return float64(d) * math.Pi / 180
}

// Radian is a raw angle in radians.
type Radian float64

// Radians returns r unchanged.
func (r Radian) Radians() float64 {
	return float64(r)
}

// Unit identifies the concrete type behind an Angle.
type Unit uint8

const (
	UnitNone Unit = iota
	UnitRadian
	UnitDegree
)

// UnitOf returns the unit of a, or UnitNone for nil and unknown Angle types.
func UnitOf(a Angle) Unit {
	switch a.(type) {
	case Degree:
		return UnitDegree
	case Radian:
		return UnitRadian
	default:
		return UnitNone
	}
}
