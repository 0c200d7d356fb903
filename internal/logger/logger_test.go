package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestJSONLevelFiltering(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelWarn)
	log.Info("should not appear")
	log.Debug("also should not appear")

	if buf.Len() > 0 {
		t.Fatalf("expected no output for info/debug at warn level, got: %s", buf.String())
	}

	log.Warn("should appear", "file", "a.out")
	output := buf.String()
	if !strings.Contains(output, "should appear") {
		t.Fatalf("expected warn message in output, got: %s", output)
	}
	if !strings.Contains(output, `"file":"a.out"`) {
		t.Fatalf("expected file attr in JSON output, got: %s", output)
	}
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{"json", `"msg":"stamped"`},
		{"text", "msg=stamped"},
		{"pretty", "INFO  stamped"},
		{"", "INFO  stamped"},
		{"bogus", "INFO  stamped"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		ForFormat(tc.format, &buf, slog.LevelInfo).Info("stamped")
		if !strings.Contains(buf.String(), tc.want) {
			t.Errorf("format %q: expected %q in output, got: %s", tc.format, tc.want, buf.String())
		}
	}
}

func TestWith(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := JSON(&buf, slog.LevelInfo)
	log.With("run", "r1").WithGroup("ident").Info("child message", "osabi", 9)

	output := buf.String()
	if !strings.Contains(output, `"run":"r1"`) {
		t.Fatalf("expected run attr in output, got: %s", output)
	}
	if !strings.Contains(output, `"ident":{"osabi":9}`) {
		t.Fatalf("expected grouped attr in output, got: %s", output)
	}
}

func TestFromContextDefault(t *testing.T) {
	t.Parallel()
	log := FromContext(context.Background())
	if log == nil {
		t.Fatal("FromContext with no logger returned nil")
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), Text(&buf, slog.LevelInfo))

	FromContext(ctx).Info("roundtrip test")
	if !strings.Contains(buf.String(), "roundtrip test") {
		t.Fatalf("expected message via context logger, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelInfo},
	}

	for _, tc := range tests {
		result := ParseLevel(tc.input)
		if result != tc.expected {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tc.input, tc.expected, result)
		}
	}
}

func TestPrettyLine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := Pretty(&buf, slog.LevelInfo)
	log.Warn("ELF ABI brand is unknown", "file", "a.out", "osabi", 200)

	want := "WARN  ELF ABI brand is unknown file=a.out osabi=200\n"
	if buf.String() != want {
		t.Fatalf("unexpected pretty output:\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestPrettyNoColorForBuffers(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	Pretty(&buf, slog.LevelInfo).Error("boom")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("expected no escape codes for non-terminal writer, got: %q", buf.String())
	}
}

func TestPrettyHandlerEnabled(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info to be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("expected warn to be enabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("expected error to be enabled at warn level")
	}
}

func TestPrettyHandlerNestedGroups(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("run", "r1")}).WithGroup("a").WithGroup("b"))
	logger.Info("nested", "key", "val")

	output := buf.String()
	if !strings.Contains(output, "a.b.key=val") {
		t.Fatalf("expected 'a.b.key=val' in output, got: %s", output)
	}
	if !strings.Contains(output, "run=r1") {
		t.Fatalf("expected 'run=r1' in output, got: %s", output)
	}
}

func TestPrettyHandlerEmptyGroup(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, nil)

	if h2 := h.WithGroup(""); h2 != h {
		t.Fatal("WithGroup empty string should return same handler")
	}
}

func TestNeedsQuoting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"simple", false},
		{"/usr/bin/true", false},
		{"has space", true},
		{"has\ttab", true},
		{"has\nnewline", true},
		{`has"quote`, true},
		{"file 'x'", true},
		{"", false},
	}

	for _, tc := range tests {
		result := needsQuoting(tc.input)
		if result != tc.expected {
			t.Errorf("needsQuoting(%q): expected %v, got %v", tc.input, tc.expected, result)
		}
	}
}
