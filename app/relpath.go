package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/toolbox/internal/relpath"
)

func newRelPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relpath FROM TO",
		Short: "Print the relative path leading from FROM to TO",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), relpath.Resolve(args[0], args[1]))

			return err //nolint:wrapcheck
		},
	}
}
