package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pwgen/internal/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			s, err := dump(&opts.cfg)
			if err != nil {
				return errors.Wrap(err, "failed to dump config")
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), s)

			return errors.Wrap(err, "failed to write output")
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")

	return cmd
}
