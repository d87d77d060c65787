package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFilenameCmd returns the filename command.
func NewFilenameCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "filename NAME...",
		Short: "Print the platform-conventional filename for library names",
		Long: `Print the filename the platform convention gives each bare library name,
for example "foo" -> "libfoo.so". No filesystem probing happens.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, names []string) error {
			conv, err := conventionFromFlag(platform)
			if err != nil {
				return err
			}

			for _, name := range names {
				fmt.Fprintln(cc.OutOrStdout(), conv.Filename(name))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Use another platform's convention (windows, darwin, linux)")

	return cmd
}
