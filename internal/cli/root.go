// Package cli builds the bracketpair command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/dshills/bracketpair/internal/logging"
)

// BuildInfo holds build-time version information, set via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags every subcommand inherits.
type globalFlags struct {
	configPath string
	color      string
	debug      bool
}

// NewRootCommand builds the root bracketpair command with all
// subcommands attached.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "bracketpair",
		Short: "Incremental bracket-pair structure recognition",
		Long: `bracketpair parses a file's bracket structure and reports each
bracket's position and nesting depth; unmatched closers are not
reported, unmatched openers are. It demonstrates the
incremental parser's subtree-reuse path via the watch subcommand.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"path to a bracket-category YAML config (defaults to language sniffing)")
	root.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output by nesting depth: auto, always, never")

	root.AddCommand(newShowCommand(flags))
	root.AddCommand(newWatchCommand(flags))
	root.AddCommand(newVersionCommand(info))

	return root
}

// Execute runs the root command against os.Args.
func Execute(info BuildInfo) int {
	if err := NewRootCommand(info).Execute(); err != nil {
		logging.Default().Error("command failed", logging.FieldError, err)
		return 1
	}
	return 0
}
