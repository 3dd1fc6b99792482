package logging

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LogLevelDebug, false},
		{"INFO", LogLevelInfo, false},
		{"warning", LogLevelWarn, false},
		{"warn", LogLevelWarn, false},
		{"error", LogLevelError, false},
		{"loud", LogLevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogCall(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LogLevelDebug, Output: &buf})

	LogCall(logger, "lstat", "/tmp/x", 0)
	LogCall(logger, "chmod", "/tmp/y", syscall.ENOENT)

	out := buf.String()
	assert.Contains(t, out, "msg=\"system call\" call=lstat path=/tmp/x")
	assert.Contains(t, out, "msg=\"system call failed\" call=chmod path=/tmp/y errno=2")
}

func TestLogCall_LevelFiltered(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LogLevelInfo, Output: &buf})

	LogCall(logger, "lstat", "/tmp/x", 0)
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() {
		LogCall(logger, "lstat", "/x", syscall.EACCES)
		LogCall(nil, "lstat", "/x", 0)
	})
}
