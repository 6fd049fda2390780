package quat

import (
	"errors"
	stdmath "math"
	"sync"
	"testing"

	"github.com/Faultbox/orient/pkg/math"
)

func TestMutableSetters(t *testing.T) {
	q := Must(NewQuaternion(Zero()))
	if !q.Dir().ApproxEqual(math.Forward, eps) {
		t.Fatalf("identity Dir() = %v, want %v", q.Dir(), math.Forward)
	}

	// 180° about X, set by hand.
	for _, err := range []error{q.SetX(1), q.SetY(0), q.SetZ(0), q.SetW(0)} {
		if err != nil {
			t.Fatalf("mutable setter failed: %v", err)
		}
	}

	if got, want := q.Dir(), (math.Vec3{Z: -1}); !got.ApproxEqual(want, eps) {
		t.Errorf("Dir() after mutation = %v, want %v", got, want)
	}
	if got, want := q.Up(), (math.Vec3{Y: -1}); !got.ApproxEqual(want, eps) {
		t.Errorf("Up() after mutation = %v, want %v", got, want)
	}
	if got := q.Left(); !got.ApproxEqual(math.Left, eps) {
		t.Errorf("Left() after mutation = %v, want %v", got, math.Left)
	}
}

func TestMutableSetterDoesNotNormalize(t *testing.T) {
	q := Must(NewQuaternion(Zero()))
	_ = q.SetW(3)
	if q.W() != 3 {
		t.Errorf("W() = %v, want 3 (no re-normalization)", q.W())
	}

	iq, err := q.Immutable()
	if err != nil {
		t.Fatal(err)
	}
	if iq.W() != 1 {
		t.Errorf("Immutable() should normalize, got W=%v", iq.W())
	}

	_ = q.SetW(0)
	if _, err := q.Immutable(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Immutable() of zero quaternion: error = %v, want ErrDegenerate", err)
	}
	if _, err := q.Conjugate(); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Conjugate() of zero quaternion: error = %v, want ErrDegenerate", err)
	}
}

func TestImmutableRejectsMutation(t *testing.T) {
	q := Must(NewIQuaternion(AxisAngle(math.Up, math.Degree(45))))
	before := q.Components()

	setters := map[string]func(float64) error{
		"SetX": q.SetX,
		"SetY": q.SetY,
		"SetZ": q.SetZ,
		"SetW": q.SetW,
	}
	for name, set := range setters {
		if err := set(42); !errors.Is(err, ErrUnsupportedMutation) {
			t.Errorf("%s: error = %v, want ErrUnsupportedMutation", name, err)
		}
	}

	if q.Components() != before {
		t.Errorf("rejected mutation was applied: %v -> %v", before, q.Components())
	}
}

func TestImmutableMemoizes(t *testing.T) {
	q := Must(NewIQuaternion(AxisAngle(math.Vec3{X: 1, Y: 2, Z: 3}.Normalize(), math.Degree(70))))

	tests := []struct {
		name  string
		get   func() math.Vec3
		basis math.Vec3
	}{
		{"left", q.Left, math.Left},
		{"dir", q.Dir, math.Forward},
		{"up", q.Up, math.Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := tt.get()
			if want := q.MultiplyVector(tt.basis); first != want {
				t.Errorf("got %v, want %v", first, want)
			}
			if l := first.Length(); stdmath.Abs(l-1) > eps {
				t.Errorf("derived vector length = %v, want 1", l)
			}
			if again := tt.get(); again != first {
				t.Errorf("memoized value changed: %v -> %v", first, again)
			}
		})
	}
}

func TestMutationIsolation(t *testing.T) {
	iq := Must(NewIQuaternion(AxisAngle(math.Up, math.Degree(90))))
	left, dir, up := iq.Left(), iq.Dir(), iq.Up()

	m := iq.Mutable()
	if !m.Equals(iq) {
		t.Fatalf("Mutable() copy differs: %v vs %v", m, iq)
	}
	_ = m.SetX(1)
	_ = m.SetY(0)
	_ = m.SetW(0)

	if iq.Left() != left || iq.Dir() != dir || iq.Up() != up {
		t.Error("mutating a copy changed the memoized vectors of the original")
	}
	if m.Dir() == dir {
		t.Error("mutable copy should reflect its new state")
	}
	if iq.Components() == m.Components() {
		t.Error("Mutable() must not share storage with the original")
	}
}

func TestImmutableConcurrentAccess(t *testing.T) {
	q := Must(NewIQuaternion(Look(math.Vec3{X: 1, Y: 1, Z: 1})))
	want := q.MultiplyVector(math.Forward)

	var wg sync.WaitGroup
	results := make([]math.Vec3, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = q.Dir()
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("goroutine %d: Dir() = %v, want %v", i, got, want)
		}
	}
}

func TestRotationInterface(t *testing.T) {
	var rots []Rotation
	rots = append(rots, Must(NewQuaternion(Zero())), Must(NewIQuaternion(Zero())))

	for _, r := range rots {
		if !r.Equals(Identity) {
			t.Errorf("%T should equal Identity", r)
		}
	}
}
