package sqlite

import (
	"context"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type txContextKey string

const txKey txContextKey = "trx"

type Config struct {
	Path string `env:"PATH"`
}

// DB wraps a gorm handle over a single embedded database file. The pool is
// pinned to one open connection with no idle keep-alive, so every logical
// operation checks out a short-lived connection that is released on each exit
// path, and the engine's single-writer rules serialize writes.
type DB struct {
	db *gorm.DB
}

func Create(config Config, withDebug bool) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(config.Path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(0)

	if withDebug {
		db = db.Debug()
	} else {
		db.Logger = db.Logger.LogMode(logger.Silent)
	}
	return &DB{db: db}, nil
}

// Wrap adopts an already-open gorm handle. Used by tests running on :memory:.
func Wrap(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (r *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, txKey, tx)
		return fn(ctx)
	})
}

// Session returns the handle scoped to ctx, reusing an in-flight transaction
// when one is present on the context.
func (r *DB) Session(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok {
		return tx
	}

	return r.db.WithContext(ctx)
}
