// internal/infrastructure/storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KVEntry is a single persisted key-value pair
type KVEntry struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (KVEntry) TableName() string {
	return "kv_entries"
}

// LocalStore implements Store on a sqlite database file, giving the cart a
// device-local durable home when no Redis is available.
type LocalStore struct {
	db *gorm.DB
}

// NewLocalStore opens (or creates) the sqlite database at path
func NewLocalStore(path string) (*LocalStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate local storage: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Load retrieves the value stored under key
func (s *LocalStore) Load(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return entry.Value, nil
}

// Save stores value under key, replacing any previous value
func (s *LocalStore) Save(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVEntry{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
