package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestSqliteDSN(t *testing.T) {
	dsn := sqliteDSN("/tmp/posters.db")

	assert.True(t, strings.HasPrefix(dsn, "file:/tmp/posters.db?"))
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_txlock=immediate")
	assert.Contains(t, dsn, "_busy_timeout=5000")

	assert.Contains(t, sqliteDSN("x.db?cache=shared"), "cache=shared&")
}

func TestCreateLocalDBFileIfNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cache.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	// idempotent
	require.NoError(t, createLocalDBFileIfNotExists(path))
}
