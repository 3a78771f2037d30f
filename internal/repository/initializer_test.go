package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/brokerdesk/carrier-sales-api/pkg/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeedScript = `
CREATE TABLE IF NOT EXISTS loads (
    load_id           TEXT PRIMARY KEY,
    origin            TEXT NOT NULL,
    destination       TEXT NOT NULL,
    pickup_datetime   TEXT NOT NULL,
    delivery_datetime TEXT NOT NULL,
    equipment_type    TEXT NOT NULL,
    loadboard_rate    INTEGER NOT NULL,
    miles             INTEGER,
    notes             TEXT,
    weight            INTEGER,
    commodity_type    TEXT
);

CREATE TABLE IF NOT EXISTS call_events (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    ts                 TEXT NOT NULL,
    mc_number          TEXT,
    legal_name         TEXT,
    verified           INTEGER,
    load_id            TEXT,
    origin             TEXT,
    destination        TEXT,
    pickup_datetime    TEXT,
    delivery_datetime  TEXT,
    loadboard_rate     INTEGER,
    agreed_price       INTEGER,
    negotiation_rounds INTEGER,
    outcome            TEXT,
    sentiment          TEXT
);

INSERT INTO loads (load_id, origin, destination, pickup_datetime, delivery_datetime, equipment_type, loadboard_rate) VALUES
    ('LD0001', 'Chicago, IL', 'Dallas, TX', '2025-09-02T08:00:00', '2025-09-03T17:00:00', 'Dry Van', 1450),
    ('LD0002', 'Atlanta, GA', 'Miami, FL',  '2025-09-02T09:30:00', '2025-09-03T06:00:00', 'Reefer',  1200);
`

func setupSeedEnv(t *testing.T) (*sqlite.DB, string) {
	dir := t.TempDir()

	seedPath := filepath.Join(dir, "seed.sql")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeedScript), 0o644))

	db, err := sqlite.Create(sqlite.Config{Path: filepath.Join(dir, "test.db")}, false)
	require.NoError(t, err)

	return db, seedPath
}

func countRows(t *testing.T, db *sqlite.DB, table string) int64 {
	var n int64
	require.NoError(t, db.Session(context.Background()).Table(table).Count(&n).Error)
	return n
}

func TestEnsureReady_SeedsFreshDatabase(t *testing.T) {
	db, seedPath := setupSeedEnv(t)
	ctx := context.Background()

	require.NoError(t, EnsureReady(ctx, db, seedPath))

	assert.Equal(t, int64(2), countRows(t, db, "loads"))
	assert.Equal(t, int64(0), countRows(t, db, "call_events"))
}

func TestEnsureReady_IdempotentWhenDataPresent(t *testing.T) {
	db, seedPath := setupSeedEnv(t)
	ctx := context.Background()

	require.NoError(t, EnsureReady(ctx, db, seedPath))
	require.NoError(t, EnsureReady(ctx, db, seedPath))

	assert.Equal(t, int64(2), countRows(t, db, "loads"))
}

func TestEnsureReady_ReseedsWhenLoadsEmpty(t *testing.T) {
	db, seedPath := setupSeedEnv(t)
	ctx := context.Background()

	require.NoError(t, EnsureReady(ctx, db, seedPath))
	require.NoError(t, db.Session(ctx).Exec("DELETE FROM loads").Error)

	require.NoError(t, EnsureReady(ctx, db, seedPath))
	assert.Equal(t, int64(2), countRows(t, db, "loads"))
}

func TestEnsureReady_EmptyEventTableDoesNotTriggerReseed(t *testing.T) {
	db, seedPath := setupSeedEnv(t)
	ctx := context.Background()

	require.NoError(t, EnsureReady(ctx, db, seedPath))
	require.NoError(t, db.Session(ctx).Exec("DELETE FROM loads WHERE load_id = 'LD0002'").Error)

	// call_events is empty but loads is not: second run must not reseed
	require.NoError(t, EnsureReady(ctx, db, seedPath))
	assert.Equal(t, int64(1), countRows(t, db, "loads"))
}

func TestEnsureReady_MissingSeedScriptFails(t *testing.T) {
	db, _ := setupSeedEnv(t)

	err := EnsureReady(context.Background(), db, "does-not-exist.sql")
	assert.Error(t, err)
}
