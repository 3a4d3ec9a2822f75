package kvstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cookbook/models"
)

// Compile-time interface check.
var _ Store = (*GormStore)(nil)

// GormStore persists keys as rows of the store_entries table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized database handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the stored value for key, reporting absence without error.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.db == nil {
		return "", false, gorm.ErrInvalidDB
	}

	var entry models.StoreEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read store entry %q: %w", key, err)
	}
	return entry.Value, true, nil
}

// Set stores value under key, overwriting any existing entry.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	if s.db == nil {
		return gorm.ErrInvalidDB
	}

	entry := models.StoreEntry{Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("write store entry %q: %w", key, err)
	}
	return nil
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (s *GormStore) Remove(ctx context.Context, key string) error {
	if s.db == nil {
		return gorm.ErrInvalidDB
	}

	if err := s.db.WithContext(ctx).Delete(&models.StoreEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("remove store entry %q: %w", key, err)
	}
	return nil
}
