package migrations_test

import (
	"context"
	"testing"

	"github.com/eventdesk/ticket-api/internal/testutil"
	"github.com/eventdesk/ticket-api/migrations"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_Sorted(t *testing.T) {
	names, err := migrations.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_users.sql", "0002_events.sql"}, names)
}

func TestApply_RecordsMigrations(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	_, err := migrations.Apply(ctx, pool)
	require.NoError(t, err)

	names, err := migrations.Names()
	require.NoError(t, err)
	rows, err := pool.Query(ctx, `SELECT name FROM schema_migrations ORDER BY name`)
	require.NoError(t, err)
	recorded, err := pgx.CollectRows(rows, pgx.RowTo[string])
	require.NoError(t, err)
	assert.Subset(t, recorded, names)

	again, err := migrations.Apply(ctx, pool)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestApply_ReappliesForgottenMigration(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	_, err := migrations.Apply(ctx, pool)
	require.NoError(t, err)

	// 0001 only uses IF NOT EXISTS, so running it again is harmless
	_, err = pool.Exec(ctx, `DELETE FROM schema_migrations WHERE name = '0001_users.sql'`)
	require.NoError(t, err)

	applied, err := migrations.Apply(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"0001_users.sql"}, applied)
}
