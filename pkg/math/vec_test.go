package math

import (
	"math"
	"testing"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 4, 5}
	got := a.Add(b)
	want := Vec3{4, 6, 8}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	got := v.Length()
	want := 7.0
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if math.Abs(l-1) > 1e-12 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", z)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3CrossNormalize(t *testing.T) {
	got := Vec3{2, 0, 0}.CrossNormalize(Vec3{0, 3, 0})
	want := Vec3{0, 0, 1}
	if !got.ApproxEqual(want, 1e-12) {
		t.Errorf("Vec3.CrossNormalize() = %v, want %v", got, want)
	}
}

func TestBasis(t *testing.T) {
	// Up × Forward must point along Left's opposite for the look basis to be
	// right-handed with Forward on +Z.
	right := Up.CrossNormalize(Forward)
	if !right.ApproxEqual(Left.Scale(-1), 1e-12) {
		t.Errorf("Up × Forward = %v, want %v", right, Left.Scale(-1))
	}
}

func TestRotateVec3(t *testing.T) {
	s := math.Sqrt(0.5)

	tests := []struct {
		name string
		q    [4]float64
		v    Vec3
		want Vec3
	}{
		{"identity", [4]float64{0, 0, 0, 1}, Vec3{1, 2, 3}, Vec3{1, 2, 3}},
		{"y 90", [4]float64{0, s, 0, s}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"x 90", [4]float64{s, 0, 0, s}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"z 180", [4]float64{0, 0, 1, 0}, Vec3{1, 1, 0}, Vec3{-1, -1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotateVec3(tt.q[0], tt.q[1], tt.q[2], tt.q[3], tt.v)
			if !got.ApproxEqual(tt.want, 1e-12) {
				t.Errorf("RotateVec3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3String(t *testing.T) {
	got := Vec3{1, -0.0001, 2.5}.String()
	want := "{ x: 1.000, y: 0.000, z: 2.500 }"
	if got != want {
		t.Errorf("Vec3.String() = %q, want %q", got, want)
	}
}
