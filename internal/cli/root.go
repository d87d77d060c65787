package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/driftlock/libpath/findlib"
	"github.com/driftlock/libpath/internal/logging"
	"github.com/driftlock/libpath/internal/version"
)

var ErrLogHandlerFailed = errors.New("log handler failed")

const (
	shortDesc = "Locate shared libraries on the platform search path"
	longDesc  = `libpath resolves bare shared library names ("foo") into the path of the
first matching file ("libfoo.so") on the platform's dynamic-linker search
path, the way the loader itself would: PATH on Windows (working directory
first), DYLD_LIBRARY_PATH on macOS, LD_LIBRARY_PATH elsewhere.`
)

// NewRootCmd builds the libpath command tree.
func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:           "libpath",
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := logging.CreateHandler(cc.ErrOrStderr(), args.GetLogLevel(), args.GetLogFormat())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewFindCmd())
	cmd.AddCommand(NewFilenameCmd())
	cmd.AddCommand(NewPathsCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// conventionFromFlag returns the convention selected by a --platform flag
// value, or the host convention when the flag is empty.
func conventionFromFlag(goos string) (findlib.Convention, error) {
	if goos == "" {
		return findlib.Host(), nil
	}

	return findlib.ConventionFor(goos)
}
