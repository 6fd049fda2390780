package quat

import (
	stdmath "math"

	"github.com/Faultbox/orient/pkg/math"
)

var (
	// Identity is the shared no-rotation value.
	Identity = Must(ICached(Components(0, 0, 0, 1)))

	// Left90 turns 90° about math.Left. It maps the device sensor frame,
	// where the screen faces +Z, onto the world frame.
	Left90 = Must(NewIQuaternion(AxisAngle(math.Left, math.Degree(90))))
)

// DeviceOrientation holds device orientation sensor angles in degrees:
// Alpha about the device Z axis, Beta about X and Gamma about Y.
type DeviceOrientation struct {
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
	Gamma float64 `yaml:"gamma"`
}

// FromOrientation converts sensor angles into a world rotation. The sensor
// rotation is aligned to the world with Left90 first; a non-zero screen
// orientation then twists the result about its own forward direction. A NaN
// screen orientation is treated as no twist.
func FromOrientation(o DeviceOrientation, screen math.Degree) (*IQuaternion, error) {
	e := math.EulerYXZ(math.Degree(o.Beta), math.Degree(o.Alpha), math.Degree(-o.Gamma))
	rot, err := NewIQuaternion(Array(e[:]))
	if err != nil {
		return nil, err
	}
	if rot, err = rot.MultiplyQuaternion(Left90); err != nil {
		return nil, err
	}

	if screen != 0 && !stdmath.IsNaN(float64(screen)) {
		local, err := NewIQuaternion(AxisAngle(rot.Dir(), screen))
		if err != nil {
			return nil, err
		}
		return local.MultiplyQuaternion(rot)
	}
	return rot, nil
}
