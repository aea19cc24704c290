package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *pgxpool.Pool
	testDBOnce sync.Once
)

// SetupTestDatabase returns a shared pool for repository suites. Suites are
// skipped entirely when TEST_POSTGRES_DSN is not set.
func SetupTestDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping repository tests")
	}

	testDBOnce.Do(func() {
		db, err := pgxpool.New(context.Background(), dsn)
		require.NoError(t, err)
		testDB = db
	})

	CleanupDatabase(t, testDB)

	return testDB
}

// CleanupDatabase empties the tables touched by repository suites.
func CleanupDatabase(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{
		"employees",
		"visitor_log",
		"users",
	}

	for _, table := range tables {
		_, err := db.Exec(ctx, "DELETE FROM "+table)
		if err != nil {
			t.Logf("Warning: failed to cleanup table %s: %v", table, err)
		}
	}
}
