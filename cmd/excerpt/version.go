package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/nao1215/excerpt/internal/config"
	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

// versionInfo describes the running binary.
type versionInfo struct {
	Version string
	Commit  string
	Date    string
	Go      string
}

// newVersionInfo fills versionInfo from ldflags, then from the build info
// embedded by the Go toolchain. Missing values become "(devel)" for the
// version and "unknown" otherwise.
func newVersionInfo(bi *debug.BuildInfo) versionInfo {
	info := versionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		Go:      runtime.Version(),
	}

	if bi != nil {
		if info.Version == "" && bi.Main.Version != "" {
			info.Version = bi.Main.Version
		}
		if bi.GoVersion != "" {
			info.Go = bi.GoVersion
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortRevision(s.Value)
				}
			case "vcs.time":
				if info.Date == "" {
					info.Date = s.Value
				}
			}
		}
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

// shortRevision abbreviates a VCS revision to seven characters.
func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// currentVersionInfo reads the build info of the running binary.
func currentVersionInfo() versionInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		bi = nil
	}
	return newVersionInfo(bi)
}

// getVersion returns the version string shown by --version.
func getVersion() string {
	return currentVersionInfo().Version
}

// writeVersion prints the build details followed by the lookup a bare
// "excerpt" run performs.
func writeVersion(w io.Writer, info versionInfo) {
	fmt.Fprintf(w, "excerpt version %s\n", info.Version)
	fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
	fmt.Fprintf(w, "  built:    %s\n", info.Date)
	fmt.Fprintf(w, "  go:       %s\n", info.Go)
	fmt.Fprintf(w, "  input:    %s (%s)\n", config.DefaultInput, config.DefaultEncoding)
	fmt.Fprintf(w, "  pattern:  %s\n", config.DefaultPattern)
	fmt.Fprintf(w, "  window:   %d before, %d after\n", config.DefaultBefore, config.DefaultAfter)
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information and built-in defaults",
		Long: `Print the version, commit hash, build date and Go version of excerpt,
followed by the input, marker and window used when no flags or
configuration file are given.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			writeVersion(cmd.OutOrStdout(), currentVersionInfo())
		},
	}
}
