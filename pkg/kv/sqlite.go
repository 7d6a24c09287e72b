package kv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/shopverse/shopverse/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type kvEntry struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// SQLite persists entries in a single local database file, the closest
// Go analog of the browser's per-origin local storage.
type SQLite struct {
	db *gorm.DB
}

// NewSQLite opens (creating if needed) the database at path and ensures
// the kv_entries table exists.
func NewSQLite(path string, logg *logger.Logger) (*SQLite, error) {
	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite storage: %w", err)
	}

	if err := conn.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrating kv_entries: %w", err)
	}

	if logg != nil {
		logg.Info(context.Background(), "sqlite storage ready")
	}

	return &SQLite{db: conn}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).
		Exec(`INSERT INTO kv_entries ("key", value) VALUES (?, ?) ON CONFLICT("key") DO UPDATE SET value = excluded.value`, key, value).
		Error
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&kvEntry{}, "key = ?", key).Error
}

// Close shuts down the underlying connection pool.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
