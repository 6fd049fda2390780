package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/orient/internal/config"
	"github.com/Faultbox/orient/internal/logger"
	"github.com/Faultbox/orient/pkg/math"
	"github.com/Faultbox/orient/pkg/quat"
)

// app carries the state shared by every subcommand.
type app struct {
	cfg   *config.Config
	flags *config.Flags
	log   *zap.Logger
	out   io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "quattool",
		Short: "Build and compose rotation quaternions",
		Long: `quattool - quaternion rotation utility

Every command prints the resulting quaternion followed by its left, dir and
up vectors. Angles are in degrees unless --radians is given.`,
		Example: `  quattool axis 0 1 0 90
  quattool look 1 0 1 --up 0,1,0
  quattool orient 0 90 0 --screen 90
  quattool mul 0 0.707 0 0.707 0.707 0 0 0.707
  quattool rotate 0 0.707 0 0.707 1 0 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.OutOrStdout())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			logger.Sync()
		},
	}
	a.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.newComponentsCmd(),
		a.newAxisCmd(),
		a.newLookCmd(),
		a.newOrientCmd(),
		a.newMulCmd(),
		a.newRotateCmd(),
		a.newConjCmd(),
		a.newConfigCmd(),
	)
	return root
}

func (a *app) init(out io.Writer) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}

	a.cfg = cfg
	a.out = out
	a.log = logger.Named("quattool")
	math.SetPrecision(cfg.Format.Precision)
	quat.SetCacheLogger(logger.Named("cache"))

	logger.Debug("config loaded",
		zap.String("output", cfg.Format.Output),
		zap.Int("precision", cfg.Format.Precision),
		zap.Bool("cache", cfg.Cache.Enabled))
	return nil
}

// build constructs an immutable quaternion, through the shared cache when it
// is enabled.
func (a *app) build(args quat.Args) (*quat.IQuaternion, error) {
	if a.cfg.Cache.Enabled {
		return quat.ICached(args)
	}
	return quat.NewIQuaternion(args)
}
