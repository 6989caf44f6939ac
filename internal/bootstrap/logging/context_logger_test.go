package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestWithAttrsOverridesByKey(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), New(&buf, false))
	ctx = WithAttrs(ctx, slog.String("occupation", "welder"), slog.String("geography", "national"))
	ctx = WithAttrs(ctx, slog.String("geography", "tx"))

	Info(ctx, "record saved", slog.Int("year", 2024))

	line := buf.String()
	if !strings.Contains(line, "geography=tx") || strings.Contains(line, "geography=national") {
		t.Fatalf("log line = %q", line)
	}
	if !strings.Contains(line, "occupation=welder") || !strings.Contains(line, "year=2024") {
		t.Fatalf("log line = %q", line)
	}
}

func TestDebugRespectsVerbosity(t *testing.T) {
	var quiet bytes.Buffer
	Debug(WithLogger(context.Background(), New(&quiet, false)), "hidden")
	if quiet.Len() != 0 {
		t.Fatalf("debug emitted at info level: %q", quiet.String())
	}

	var verbose bytes.Buffer
	Debug(WithLogger(context.Background(), New(&verbose, true)), "shown")
	if !strings.Contains(verbose.String(), "shown") {
		t.Fatalf("debug missing at verbose level: %q", verbose.String())
	}
}
