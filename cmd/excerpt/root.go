// Package main provides the entry point for the excerpt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/nao1215/excerpt/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for excerpt.
// The root command itself performs the lookup; init and version are
// auxiliary subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excerpt [file...]",
		Short: "Print the text around a marker in an HTML file",
		Long: `excerpt reads an HTML file, finds the first occurrence of a literal marker
and prints the surrounding text: up to 500 characters before the marker and
up to 2000 characters after it, clamped to the document boundaries.
If the marker does not occur, "Not found" is printed.

With no arguments excerpt reads message_1.html in the current directory and
looks for the message block class of a chat export, class="_2ph_ _a6-p".

Examples:
  # Default lookup
  excerpt

  # Several exports at once
  excerpt inbox/*/message_1.html

  # Another marker with a smaller window
  excerpt --pattern 'class="_a6-h"' --before 100 --after 400 export.html

  # Legacy encoding
  excerpt --encoding windows-1252 old_export.html

  # JSON output written to a file
  excerpt --json -o out/excerpt.json`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		RunE:          runLocateCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.DefaultLogFormat,
		"Format of the log written to stderr (text or json)")

	// Search flags
	cmd.Flags().StringP("pattern", "P", config.DefaultPattern,
		"Literal marker to search for")
	cmd.Flags().StringP("encoding", "E", config.DefaultEncoding,
		"Input encoding (WHATWG label, e.g. utf-8, windows-1252, shift_jis)")
	cmd.Flags().IntP("before", "B", config.DefaultBefore,
		"Characters of context to keep before the match")
	cmd.Flags().IntP("after", "A", config.DefaultAfter,
		"Characters of context to keep after the match")
	cmd.Flags().IntP("jobs", "J", config.DefaultJobs,
		"Number of input files processed concurrently")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .excerpt in current directory, XDG config, or home)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
