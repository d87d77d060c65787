package cli

import (
	"github.com/spf13/cobra"

	"github.com/driftlock/libpath/internal/version"
)

// NewVersionCmd returns the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the libpath version",
		Run: func(cc *cobra.Command, _ []string) {
			cc.Println(version.String())
		},
	}
}
