package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DiscardByDefault(t *testing.T) {
	cleanup, err := Setup(Config{})
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	assert.Error(t, IsReady())
	assert.Empty(t, Path())
	L().Info("ignored")
}

func TestSetup_DebugToStderr(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Debug: true, Stderr: &buf})
	require.NoError(t, err)

	require.NoError(t, IsReady())
	id := InvocationID()
	require.NotEmpty(t, id)

	L().Debug("lines.read", "count", 3)
	require.NoError(t, cleanup())

	var rec map[string]any
	last := strings.TrimSpace(buf.String())
	last = last[strings.LastIndex(last, "\n")+1:]
	require.NoError(t, json.Unmarshal([]byte(last), &rec))

	assert.Equal(t, "lines.read", rec["msg"])
	assert.Equal(t, id, rec["invocation"])
	assert.Contains(t, rec, "source")
	assert.Error(t, IsReady())
}

func TestSetup_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "envlines.log")

	cleanup, err := Setup(Config{File: path})
	require.NoError(t, err)
	assert.Equal(t, path, Path())

	L().Info("lines.printed", "count", 2)
	L().Debug("hidden")
	require.NoError(t, cleanup())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"lines.printed"`)
	assert.NotContains(t, string(b), "hidden")

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}
