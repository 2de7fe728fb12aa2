package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/resource-lending-go/lending/shell/config"
)

// runtime is what every subcommand gets after the config is loaded.
type runtime struct {
	cfg       config.Config
	logger    *slog.Logger
	providers *config.ObservabilityProviders
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		rt         runtime
	)

	cmd := &cobra.Command{
		Use:          "lending-demo",
		Short:        "Borrow, return, renew and reserve library resources",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			providers, err := config.NewObservabilityProviders(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			rt = runtime{
				cfg:       cfg,
				logger:    config.NewLogger(cfg.Log, cmd.ErrOrStderr()),
				providers: providers,
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.providers == nil {
				return nil
			}

			return rt.providers.Shutdown(context.WithoutCancel(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	cmd.AddCommand(
		newScenarioCmd(&rt),
		newPolicyCmd(),
	)

	return cmd
}
