package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithLevel(slog.LevelWarn))

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestFormats(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		New(WithOutput(&buf), WithFormat(FormatText)).Info("generated", "code", "A000001")
		assert.Contains(t, buf.String(), "code=A000001")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		New(WithOutput(&buf), WithFormat(FormatJSON)).Info("generated", "code", "A000001")
		assert.Contains(t, buf.String(), `"msg":"generated"`)
		assert.Contains(t, buf.String(), `"code":"A000001"`)
	})
}

func TestWithAndGroup(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithOutput(&buf), WithFormat(FormatJSON), WithDebug())

	l.With("kind", "removal").WithGroup("snapshot").Debug("loaded", "records", 3)

	out := buf.String()
	assert.Contains(t, out, `"kind":"removal"`)
	assert.Contains(t, out, `"snapshot":{"records":3}`)
}

func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Error("discarded")
	l.With("a", 1).WithGroup("g").Info("discarded")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New(WithOutput(&buf)))

	FromContext(ctx).Info("from context")
	assert.Contains(t, buf.String(), "from context")

	// No logger stored: must not panic
	FromContext(context.Background()).Info("dropped")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("logfmt")
	assert.Error(t, err)
}
