package main

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestNewVersionInfo tests how build info fills in missing ldflags values.
// The ldflags variables are empty under go test.
func TestNewVersionInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want versionInfo
	}{
		{
			name: "no build info",
			bi:   nil,
			want: versionInfo{Version: "(devel)", Commit: "unknown", Date: "unknown"},
		},
		{
			name: "module version and vcs settings",
			bi: &debug.BuildInfo{
				GoVersion: "go1.25.0",
				Main:      debug.Module{Version: "v1.2.3"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
				},
			},
			want: versionInfo{Version: "v1.2.3", Commit: "0123456", Date: "2026-10-01T12:00:00Z", Go: "go1.25.0"},
		},
		{
			name: "short revision is kept whole",
			bi: &debug.BuildInfo{
				GoVersion: "go1.25.0",
				Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}},
			},
			want: versionInfo{Version: "(devel)", Commit: "abc", Date: "unknown", Go: "go1.25.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := newVersionInfo(tt.bi)
			if tt.want.Go == "" {
				// Without build info the running toolchain version is used.
				tt.want.Go = got.Go
				if got.Go == "" {
					t.Error("expected a Go version")
				}
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected version info (-want +got):\n%s", diff)
			}
		})
	}
}

// TestWriteVersion tests that the version output names the defaults of a
// bare run.
func TestWriteVersion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeVersion(&buf, versionInfo{Version: "v1.2.3", Commit: "0123456", Date: "today", Go: "go1.25.0"})

	want := strings.Join([]string{
		"excerpt version v1.2.3",
		"  commit:   0123456",
		"  built:    today",
		"  go:       go1.25.0",
		"  input:    message_1.html (utf-8)",
		`  pattern:  class="_2ph_ _a6-p"`,
		"  window:   500 before, 2000 after",
	}, "\n") + "\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

// TestVersionCmd runs the version subcommand through the root command.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints build details and defaults", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{"version"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.HasPrefix(output, "excerpt version ") {
			t.Errorf("expected version line first, got %q", output)
		}
		if !strings.Contains(output, "message_1.html") {
			t.Errorf("expected default input in output, got %q", output)
		}
	})

	t.Run("rejects arguments", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"version", "extra"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected error for extra argument")
		}
	})
}
