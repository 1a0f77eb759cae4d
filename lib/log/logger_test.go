package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		level LogLevel
	}{
		{"trace", TRACE},
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"warning", WARN},
		{"warn", WARN},
		{"err", ERROR},
		{"Error", ERROR},
	}
	for _, test := range tests {
		t.Run(test.value, func(t *testing.T) {
			level, err := ParseLevel(test.value)
			require.NoError(t, err)
			assert.Equal(t, test.level, level)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, nil, WARN))
	defer Init(nil, nil, TRACE) //nolint:errcheck

	Debugf("hidden %d", 1)
	Infof("hidden too")
	Warnf("shown %d", 2)
	Errorf("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN  ")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "ERROR ")
	assert.True(t, Enabled(ERROR))
	assert.False(t, Enabled(INFO))
}

func TestNamedLogger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Init(&buf, nil, TRACE))
	defer Init(nil, nil, TRACE) //nolint:errcheck

	l := NewLogger("frame", 3)
	l.Infof("window %d-%d", 0, 9)
	assert.Contains(t, buf.String(), "[frame] window 0-9")
	assert.Contains(t, buf.String(), "logger_test.go")
}
