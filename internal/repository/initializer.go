package repository

import (
	"context"
	"os"

	"github.com/brokerdesk/carrier-sales-api/pkg/logger"
	"github.com/brokerdesk/carrier-sales-api/pkg/sqlite"
	"github.com/pkg/errors"
)

// EnsureReady makes storage queryable before the server accepts traffic.
// The seed script (schema + sample rows) runs when either table is missing or
// the loads table is empty; otherwise nothing happens, so calling this on
// every startup is safe. An empty call_events table alone never triggers a
// reseed.
func EnsureReady(ctx context.Context, db *sqlite.DB, seedPath string) error {
	var tables []string
	err := db.Session(ctx).Raw(`
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name IN ('loads', 'call_events')
	`).Scan(&tables).Error
	if err != nil {
		return errors.Wrap(err, "inspect storage catalog")
	}

	needsSeed := len(tables) < 2
	if !needsSeed {
		var count int64
		if err := db.Session(ctx).Table("loads").Count(&count).Error; err != nil {
			return errors.Wrap(err, "count loads")
		}
		needsSeed = count == 0
	}

	if !needsSeed {
		logger.Debug("storage already seeded, skipping")
		return nil
	}

	script, err := os.ReadFile(seedPath)
	if err != nil {
		return errors.Wrapf(err, "read seed script %s", seedPath)
	}

	if err := db.Session(ctx).Exec(string(script)).Error; err != nil {
		return errors.Wrap(err, "execute seed script")
	}

	logger.Info("storage seeded", "script", seedPath)
	return nil
}
