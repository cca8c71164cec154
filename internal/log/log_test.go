package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestInfoProducesLogfmtWithTimestamp(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(slog.New(newHandler(buf)))
	t.Cleanup(func() {
		ReplaceLogger(original)
	})

	Info(context.Background(), "hello", "formulaID", 7)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}
	if !strings.Contains(line, "ts=") {
		t.Fatalf("expected timestamp field in log line, got %q", line)
	}
	if !strings.Contains(line, "level=info") {
		t.Fatalf("expected level field in log line, got %q", line)
	}
	if !strings.Contains(line, "msg=hello") {
		t.Fatalf("expected message field in log line, got %q", line)
	}
	if !strings.Contains(line, "formulaID=7") {
		t.Fatalf("expected structured field in log line, got %q", line)
	}
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	buf := new(bytes.Buffer)
	original := Logger()
	ReplaceLogger(NewWriterLogger(buf))
	t.Cleanup(func() {
		ReplaceLogger(original)
		_ = SetLevel("info")
	})

	if err := SetLevel("WARN"); err != nil {
		t.Fatalf("SetLevel returned error: %v", err)
	}
	if Level() != slog.LevelWarn {
		t.Fatalf("Level() = %v, want warn", Level())
	}

	Info(context.Background(), "dropped")
	Warn(nil, "kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, "msg=kept") {
		t.Fatalf("expected warn line, got %q", out)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
