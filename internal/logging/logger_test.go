package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsum/internal/config"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"INFO", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWriter(&buf, tt.level)
			l.Debug("debug line")
			l.Info("info line")
			l.Error("error line")
			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "DEBUG: "))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "INFO: "))
			assert.Contains(t, out, "ERROR: ")
		})
	}
}

func TestNewWritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "smartsum.log")
	l := New(config.LogConfig{File: path, Level: "info", MaxSizeMB: 1})
	l.Info("summarized %d sentences", 3)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "summarized 3 sentences")
}

func TestNewWithoutFileDiscards(t *testing.T) {
	l := New(config.LogConfig{})
	l.Error("dropped")
	assert.NoError(t, l.Close())
}
