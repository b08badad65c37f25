package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/toolbox/internal/salt"
)

type saltOptions struct {
	length  int
	strict  bool
	charset string
	sets    []string
	count   int
}

// request builds the generation request, a literal charset wins over sets.
func (o *saltOptions) request() (salt.Request, error) {
	req := salt.Request{Length: o.length, Strict: o.strict, Charset: salt.All()}

	switch {
	case o.charset != "":
		req.Charset = salt.Chars(o.charset)
	case len(o.sets) > 0:
		cats, err := salt.ParseCategories(o.sets...)
		if err != nil {
			return salt.Request{}, err //nolint:wrapcheck
		}

		req.Charset = salt.Categories(cats...)
	}

	return req, nil
}

func newSaltCmd() *cobra.Command {
	opts := &saltOptions{}

	cmd := &cobra.Command{
		Use:   "salt",
		Short: "Print random salts",
		Long: `Print random salts drawn from a literal character set or from the
categories lower, upper, num, special, extra (alpha = lower+upper).
Without --charset and --sets all categories are used.
The output is not suitable for passwords or other secrets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := opts.request()
			if err != nil {
				return err
			}

			gen := salt.NewGenerator(nil)

			for range opts.count {
				out, err := gen.GenerateRequest(req)
				if err != nil {
					return err //nolint:wrapcheck
				}

				if _, err = fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
					return err //nolint:wrapcheck
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.length, "length", "l", salt.StdLen, "Length of each salt")
	cmd.Flags().BoolVarP(&opts.strict, "strict", "s", false, "Do not repeat characters")
	cmd.Flags().StringVar(&opts.charset, "charset", "", "Literal characters to draw from")
	cmd.Flags().StringSliceVar(&opts.sets, "sets", nil, "Character categories, e.g. lower,num")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of salts to print")

	return cmd
}
