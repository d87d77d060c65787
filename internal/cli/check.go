package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/driftlock/libpath/findlib"
)

// NewCheckCmd returns the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH...",
		Short: "Validate explicit shared library paths",
		Long: `Check that each given path points at an existing, non-empty regular file
and print its absolute form. Use this for library paths taken from
configuration or override variables.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, paths []string) error {
			var errs []error
			for _, path := range paths {
				abs, err := findlib.Validate(path)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				fmt.Fprintln(cc.OutOrStdout(), abs)
			}

			return errors.Join(errs...)
		},
	}
}
