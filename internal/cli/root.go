// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion records build information for --version and the version
// command. main calls it with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionString() string {
	return fmt.Sprintf("isomap %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

// rootOpts holds the persistent flags.
type rootOpts struct {
	verbose    bool
	configPath string
}

// newRootCmd builds the command tree. Command output goes to stdout and
// logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOpts

	root := &cobra.Command{
		Use:           "isomap",
		Short:         "Isomap embeds image stacks into a few dimensions",
		Long:          `Isomap computes a low-dimensional embedding of high-dimensional samples that preserves distances measured along the data manifold.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML settings file")

	root.AddCommand(newEmbedCmd(&opts))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}
