package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// NewFindCmd returns the find command.
func NewFindCmd() *cobra.Command {
	var (
		platform string
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "find NAME...",
		Short: "Resolve library names to paths on the search path",
		Long: `Resolve each bare library name to the first matching file on the
platform's dynamic-linker search path. Names that cannot be resolved make
the command exit non-zero.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, names []string) error {
			conv, err := conventionFromFlag(platform)
			if err != nil {
				return err
			}

			var errs []error
			for _, name := range names {
				slog.Debug("resolving library", "name", name, "filename", conv.Filename(name), "var", conv.EnvVar)

				path, err := conv.Find(name)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if !quiet {
					fmt.Fprintln(cc.OutOrStdout(), path)
				}
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Resolve with another platform's convention (windows, darwin, linux)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print nothing; report success only through the exit status")

	return cmd
}
