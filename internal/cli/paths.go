package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/driftlock/libpath/fspath"
)

// NewPathsCmd returns the paths command.
func NewPathsCmd() *cobra.Command {
	var (
		platform string
		check    bool
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the library search path in probe order",
		Long: `Print the directories the resolver probes, one per line and in probe
order: the working directory first when the platform convention asks for
it, then the entries of the search path variable.`,
		Args: cobra.NoArgs,
		RunE: func(cc *cobra.Command, _ []string) error {
			conv, err := conventionFromFlag(platform)
			if err != nil {
				return err
			}

			out := cc.OutOrStdout()
			for _, dir := range conv.SearchPath() {
				if !check {
					fmt.Fprintln(out, dir)
					continue
				}

				// Empty entries probe relative to the working directory.
				probe := dir
				if probe == "" {
					probe = "."
				}

				if fspath.IsDirectory(probe) {
					fmt.Fprintf(out, "%s%s\n", color.GreenString("ok: "), dir)
				} else {
					fmt.Fprintf(out, "%s%s\n", color.YellowString("missing: "), dir)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Use another platform's convention (windows, darwin, linux)")
	cmd.Flags().BoolVar(&check, "check", false, "Annotate each entry with whether it is an existing directory")

	return cmd
}
