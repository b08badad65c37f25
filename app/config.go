package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/toolbox/internal/config"
)

func newConfigCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config helpers",
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print the effective config, including the json env override",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := config.ReadConfig(configPath)
			if err != nil {
				return err //nolint:wrapcheck
			}

			var out string

			if asJSON {
				out, err = config.DumpConfigJSON(&c)
			} else {
				out, err = config.DumpConfig(&c)
			}

			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}

	dump.Flags().BoolVar(&asJSON, "json", false, "Dump as json instead of toml")
	cmd.AddCommand(dump)

	return cmd
}
