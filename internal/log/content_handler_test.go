package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// TestContentHandler_MasksContentKeys tests that document text never reaches the output.
func TestContentHandler_MasksContentKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    string
		wantMask bool
	}{
		{"excerpt is masked", "excerpt", "see you tomorrow at the station", true},
		{"Excerpt (uppercase) is masked", "Excerpt", "see you tomorrow at the station", true},
		{"content is masked", "content", "<div>private words</div>", true},
		{"message is masked", "message", "happy birthday", true},
		{"path is NOT masked", "path", "inbox/message_1.html", false},
		{"encoding is NOT masked", "encoding", "windows-1252", false},
		{"pattern is NOT masked", "pattern", "_2ph_", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, true)
			logger.Info("test message", tt.key, tt.value)

			output := buf.String()
			if tt.wantMask {
				if strings.Contains(output, tt.value) {
					t.Errorf("expected value %q to be masked, found in output: %s", tt.value, output)
				}
				if !strings.Contains(output, Mask(tt.value)) {
					t.Errorf("expected placeholder %q in output: %s", Mask(tt.value), output)
				}
			} else if !strings.Contains(output, tt.value) {
				t.Errorf("expected value %q in output: %s", tt.value, output)
			}
		})
	}
}

// TestContentHandler_LogLevels tests that verbose switches between Debug and Warn.
func TestContentHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		level      slog.Level
		shouldShow bool
	}{
		{"debug shown in verbose mode", true, slog.LevelDebug, true},
		{"debug hidden in normal mode", false, slog.LevelDebug, false},
		{"info hidden in normal mode", false, slog.LevelInfo, false},
		{"warn shown in normal mode", false, slog.LevelWarn, true},
		{"error shown in normal mode", false, slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			const msg = "test_unique_message_12345"
			logger.Log(t.Context(), tt.level, msg)

			hasMessage := strings.Contains(buf.String(), msg)
			if hasMessage != tt.shouldShow {
				t.Errorf("shown=%v, want %v; output: %s", hasMessage, tt.shouldShow, buf.String())
			}
		})
	}
}

// TestContentHandler_WithAttrsAndGroup tests masking through With and WithGroup.
func TestContentHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.With("content", "first secret").
		WithGroup("result").
		Info("located", "path", "a.html", "excerpt", "second secret")

	output := buf.String()
	for _, secret := range []string{"first secret", "second secret"} {
		if strings.Contains(output, secret) {
			t.Errorf("expected %q to be masked, found in output: %s", secret, output)
		}
	}
	if !strings.Contains(output, "a.html") {
		t.Errorf("expected path in output: %s", output)
	}
}

// TestContentHandler_Group tests masking inside an explicit group attribute.
func TestContentHandler_Group(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)
	logger.Info("located", slog.Group("doc", "path", "b.html", "text", "hidden words"))

	output := buf.String()
	if strings.Contains(output, "hidden words") {
		t.Errorf("expected grouped text to be masked: %s", output)
	}
	if !strings.Contains(output, "b.html") {
		t.Errorf("expected grouped path in output: %s", output)
	}
}

// TestNewJSONLogger tests JSON logger creation.
func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)
	logger.Info("located", "excerpt", "héllo")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["excerpt"] != "[redacted: 5 chars]" {
		t.Errorf("expected character count placeholder, got %v", record["excerpt"])
	}
}

// TestNewContentHandler_NilHandler tests that a nil handler falls back to the default.
func TestNewContentHandler_NilHandler(t *testing.T) {
	t.Parallel()

	handler := NewContentHandler(nil)
	if handler == nil {
		t.Fatal("expected non-nil handler")
	}
	slog.New(handler).Info("test message")
}
