package db

import (
	"context"
	"database/sql"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/NejeNejeNeje/ropa-sub001/config"
)

// DB wraps the gorm handle so repositories share one connection pool.
type DB struct {
	DB *gorm.DB
}

// Database is the transactional surface services depend on. Each multi-entity
// write (swipe+match, rsvp+full flag, entry+points+tier) runs inside one
// Transaction call so the store's isolation covers the check-then-act steps.
type Database interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

func NewDB(cfg config.DBConfig) (*DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return &DB{DB: gormDB}, nil
}

// Transaction runs fn at SERIALIZABLE so the check-then-act steps inside a
// boundary cannot interleave with a concurrent writer's. Serialization
// failures are returned to the caller; retrying is the caller's call.
func (d *DB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.DB.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: sql.LevelSerializable})
}
