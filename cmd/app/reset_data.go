package main

import (
	"orderhub/cmd"
	"orderhub/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var resetDataCmd = &cobra.Command{
	Use:   "reset-data",
	Short: "Delete every persisted user and order",
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, err := cmd.LoadConfig(envFile)
		if err != nil {
			return err
		}
		logger := logging.New(cfg.LogLevel, cfg.LogFormat)

		app, err := cmd.NewCompositionRoot(c.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer app.Close()

		if err = app.ResetData(c.Context()); err != nil {
			return err
		}
		logger.InfoContext(c.Context(), "persisted data removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetDataCmd)
}
