package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
	"github.com/GoPowerDNS-Admin/toolbox/internal/daemon"
)

func init() { //nolint:gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration directory

	cfg     config.Config
	devMode bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the toolbox web service",
		PreRunE: func(_ *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err //nolint:wrapcheck
			}

			if devMode {
				cfg.DevMode = true
			}

			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, err := daemon.New(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			return d.Start()
		},
	}
)
