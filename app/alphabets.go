package app

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/pwgen/internal/alphabet"
)

func newAlphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List the alphabet presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range alphabet.Names() {
				a, err := alphabet.Preset(name)
				if err != nil {
					return err
				}

				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%-9s %3d  %s\n", name, a.Len(), a); err != nil {
					return errors.Wrap(err, "failed to write output")
				}
			}

			return nil
		},
	}
}
