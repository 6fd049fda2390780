package main

import (
	"fmt"
	stdmath "math"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/orient/internal/logger"
	"github.com/Faultbox/orient/pkg/math"
	"github.com/Faultbox/orient/pkg/quat"
)

func (a *app) newComponentsCmd() *cobra.Command {
	var array bool
	cmd := &cobra.Command{
		Use:     "quat <x> <y> <z> <w>",
		Aliases: []string{"q"},
		Short:   "Normalize raw components",
		Args:    cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			form := quat.Components(v[0], v[1], v[2], v[3])
			if array {
				form = quat.Array(v)
			}
			q, err := a.build(form)
			if err != nil {
				return err
			}
			return a.printRotation(q)
		},
	}
	cmd.Flags().BoolVar(&array, "array", false, "Use the array constructor form")
	return cmd
}

func (a *app) newAxisCmd() *cobra.Command {
	var radians bool
	cmd := &cobra.Command{
		Use:   "axis <x> <y> <z> <angle>",
		Short: "Rotation by an angle about an axis",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			q, err := a.build(quat.AxisAngle(math.Vec3{X: v[0], Y: v[1], Z: v[2]}, angle(v[3], radians)))
			if err != nil {
				return err
			}
			return a.printRotation(q)
		},
	}
	cmd.Flags().BoolVar(&radians, "radians", false, "Read the angle in radians")
	return cmd
}

func (a *app) newLookCmd() *cobra.Command {
	var up []float64
	cmd := &cobra.Command{
		Use:   "look <x> <y> <z>",
		Short: "Rotation that faces a forward direction",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			fwd, err := parseVec(args)
			if err != nil {
				return err
			}
			form := quat.Look(fwd)
			if cmd.Flags().Changed("up") {
				if len(up) != 3 {
					return fmt.Errorf("--up needs 3 values, got %d", len(up))
				}
				form = quat.LookUp(fwd, math.Vec3{X: up[0], Y: up[1], Z: up[2]})
			}
			q, err := a.build(form)
			if err != nil {
				return err
			}
			return a.printRotation(q)
		},
	}
	cmd.Flags().Float64SliceVar(&up, "up", nil, "Up hint as x,y,z (default 0,1,0)")
	return cmd
}

func (a *app) newOrientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orient <alpha> <beta> <gamma>",
		Short: "World rotation from device orientation angles",
		Long: `World rotation from device orientation sensor angles in degrees.
The --screen flag (or orientation.screen in the config) twists the result
about its forward direction.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			o := quat.DeviceOrientation{Alpha: v[0], Beta: v[1], Gamma: v[2]}
			screen := math.Degree(a.cfg.Orientation.Screen)
			if stdmath.IsNaN(float64(screen)) || stdmath.IsInf(float64(screen), 0) {
				logger.Warn("ignoring non-finite screen orientation",
					zap.Float64("screen", float64(screen)))
				screen = 0
			}
			a.log.Debug("device orientation",
				zap.Float64("alpha", o.Alpha),
				zap.Float64("beta", o.Beta),
				zap.Float64("gamma", o.Gamma),
				zap.Float64("screen", float64(screen)))

			q, err := quat.FromOrientation(o, screen)
			if err != nil {
				return err
			}
			return a.printRotation(q)
		},
	}
}

func (a *app) newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul <x1> <y1> <z1> <w1> <x2> <y2> <z2> <w2>",
		Short: "Hamilton product q1 * q2 (q2 applied first)",
		Args:  cobra.ExactArgs(8),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			q1, err := a.build(quat.Components(v[0], v[1], v[2], v[3]))
			if err != nil {
				return fmt.Errorf("q1: %w", err)
			}
			q2, err := a.build(quat.Components(v[4], v[5], v[6], v[7]))
			if err != nil {
				return fmt.Errorf("q2: %w", err)
			}
			p, err := q1.Multiply(quat.OfRotation(q2))
			if err != nil {
				return err
			}
			return a.printRotation(p.Rotation())
		},
	}
}

func (a *app) newRotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <x> <y> <z> <w> <vx> <vy> <vz>",
		Short: "Rotate a vector",
		Args:  cobra.ExactArgs(7),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			q, err := a.build(quat.Components(v[0], v[1], v[2], v[3]))
			if err != nil {
				return err
			}
			r, err := q.Multiply(quat.OfVector(math.Vec3{X: v[4], Y: v[5], Z: v[6]}))
			if err != nil {
				return err
			}
			return a.printVector(r.Vector())
		},
	}
}

func (a *app) newConjCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conj <x> <y> <z> <w>",
		Short: "Inverse rotation",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			q, err := a.build(quat.Components(v[0], v[1], v[2], v[3]))
			if err != nil {
				return err
			}
			c, err := q.Conjugate()
			if err != nil {
				return err
			}
			return a.printRotation(c)
		},
	}
}

func angle(v float64, radians bool) math.Angle {
	if radians {
		return math.Radian(v)
	}
	return math.Degree(v)
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func parseVec(args []string) (math.Vec3, error) {
	v, err := parseFloats(args)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

type vecOut struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func toVecOut(v math.Vec3) vecOut {
	return vecOut{v.X, v.Y, v.Z}
}

type rotationOut struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Z    float64 `yaml:"z"`
	W    float64 `yaml:"w"`
	Left vecOut  `yaml:"left"`
	Dir  vecOut  `yaml:"dir"`
	Up   vecOut  `yaml:"up"`
}

func (a *app) printRotation(q quat.Rotation) error {
	if a.cfg.Format.Output == "yaml" {
		return a.printYAML(rotationOut{
			X: q.X(), Y: q.Y(), Z: q.Z(), W: q.W(),
			Left: toVecOut(q.Left()),
			Dir:  toVecOut(q.Dir()),
			Up:   toVecOut(q.Up()),
		})
	}
	_, err := fmt.Fprintf(a.out, "%s\nleft: %s\ndir:  %s\nup:   %s\n", q, q.Left(), q.Dir(), q.Up())
	return err
}

func (a *app) printVector(v math.Vec3) error {
	if a.cfg.Format.Output == "yaml" {
		return a.printYAML(toVecOut(v))
	}
	_, err := fmt.Fprintln(a.out, v)
	return err
}

func (a *app) printYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
