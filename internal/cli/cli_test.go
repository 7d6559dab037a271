package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/finess/internal/etl"
)

func execute(args ...string) error {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestLoad_RequiresFileArgument(t *testing.T) {
	assert.Error(t, execute("load"))
	assert.Error(t, execute("load", "mongo"))
	assert.Error(t, execute("check"))
}

func TestLoad_MissingFile(t *testing.T) {
	err := execute("load", "--dry-run", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, etl.ErrFileNotFound)
}

func TestCheck(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "finess.log"))
	row := make([]string, 31)
	for i := range row {
		row[i] = "X"
	}
	row[1] = "750000001"
	path := filepath.Join(t.TempDir(), "etalab.csv")
	content := "header\n" + strings.Join(row, ";") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	require.NoError(t, execute("check", path))

	data, err := os.ReadFile(os.Getenv("LOG_FILE"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Entities count = 1")
	assert.Contains(t, string(data), "[DRY RUN] Would publish 1 documents")
}

func TestLoadMongo_RequiresConnectionString(t *testing.T) {
	t.Setenv("MONGO_CONNECTION_STRING", "")
	path := filepath.Join(t.TempDir(), "etalab.csv")
	require.NoError(t, os.WriteFile(path, []byte("header\n"), 0o644))

	err := execute("load", "mongo", path)
	assert.ErrorContains(t, err, "MONGO_CONNECTION_STRING")
}
