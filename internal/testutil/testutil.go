package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/uci2pgn/internal/db"
)

// NewTestDB creates an in-memory SQLite archive with all migrations applied.
func NewTestDB(t *testing.T) *sql.DB {
	database, err := db.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
