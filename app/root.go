// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "toolbox",
	Short: "toolbox is a collection of small helpers",
	Long: `toolbox bundles small helpers: random salts with configurable
character sets, relative paths between two absolute paths and a web
service exposing both together with the caller's address.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config directory holding main.toml")

	rootCmd.AddCommand(newSaltCmd(), newRelPathCmd(), newConfigCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
