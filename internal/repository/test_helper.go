package repository

import (
	"testing"

	"github.com/brokerdesk/carrier-sales-api/pkg/sqlite"
	"github.com/stretchr/testify/require"
	driver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	db, err := gorm.Open(driver.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// :memory: gives every pooled connection its own database, so the pool
	// must stay at a single connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&LoadEntity{}, &CallEventEntity{})
	require.NoError(t, err)

	return sqlite.Wrap(db)
}
