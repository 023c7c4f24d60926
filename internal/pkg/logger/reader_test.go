package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	lines := []string{
		`{"level":"INFO","timestamp":"2026-01-01T10:00:00Z","message":"first","module":"DOCUMENTS"}`,
		`not json`,
		`{"level":"ERROR","timestamp":"2026-01-01T10:01:00Z","message":"second","module":"STORE"}`,
		`{"level":"INFO","timestamp":"2026-01-01T10:02:00Z","message":"third","module":"DASHBOARD"}`,
	}
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))

	all, err := ReadLogs(path, LogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Message)
	assert.NotEmpty(t, all[0].Id)

	info, err := ReadLogs(path, LogFilter{Level: "INFO", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, info, 1)
	assert.Equal(t, "first", info[0].Message)

	store, err := ReadLogs(path, LogFilter{Module: "STORE"})
	require.NoError(t, err)
	require.Len(t, store, 1)
	assert.Equal(t, "second", store[0].Message)

	missing, err := ReadLogs(filepath.Join(t.TempDir(), "nope.log"), LogFilter{})
	require.NoError(t, err)
	assert.Empty(t, missing)
}
