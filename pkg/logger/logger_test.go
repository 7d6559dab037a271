package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, INFO)

	l.Infof("loaded %d", 3)
	l.Warnf("skipped")
	l.Errorf("failed")
	l.Debugf("hidden")

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "loaded 3")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "ERROR: ")
	assert.NotContains(t, out, "hidden")

	buf.Reset()
	New(&buf, DEBUG).Debugf("shown")
	assert.Contains(t, buf.String(), "DEBUG: ")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel(" Debug "))
	assert.Equal(t, INFO, ParseLevel("info"))
	assert.Equal(t, INFO, ParseLevel(""))
}

func TestInitLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finess.log")
	l, err := InitLogger(path, INFO)
	require.NoError(t, err)

	l.Infof("written to file")
	l.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}
