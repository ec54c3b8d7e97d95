// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "WARN", want: slog.LevelWarn},
		{input: " error ", want: slog.LevelError},
		{input: "verbose", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown log level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText)

	logger.Debug("hidden")
	logger.Info("read file", "path", "in.txt")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "read file")
	assert.Contains(t, out, "path=in.txt")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must not be coloured")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, FormatJSON)

	logger.Debug("filtered", "removed", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "filtered", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
	assert.EqualValues(t, 3, record["removed"])
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
