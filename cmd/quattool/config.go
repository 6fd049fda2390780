package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/orient/internal/config"
	"github.com/Faultbox/orient/internal/logger"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or persist the effective configuration",
	}
	cmd.AddCommand(a.newConfigShowCmd(), a.newConfigSaveCmd())
	return cmd
}

func (a *app) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.printYAML(a.cfg)
		},
	}
}

func (a *app) newConfigSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Write the effective configuration, flags included",
		Long: `Write the effective configuration, flags included. Without a path the
file goes to the user config directory, where later runs pick it up.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := config.DefaultPath()
			var err error
			if len(args) == 1 {
				path = args[0]
				err = a.cfg.SaveTo(path)
			} else {
				err = a.cfg.Save()
			}
			if err != nil {
				return err
			}
			logger.Info("config saved", zap.String("path", path))
			_, err = fmt.Fprintln(a.out, path)
			return err
		},
	}
}
