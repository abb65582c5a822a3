package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/bindings/pkg/config"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var configPath string

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bindingdemo",
		Short:         "Bind console widgets to view models on a UI looper",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return cfg.Apply(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to bindings.yaml (default ./bindings.yaml if present)")

	root.AddCommand(runCmd(), versionCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(dir)
}
