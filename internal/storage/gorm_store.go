package storage

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Entry is one persisted key-value row.
type Entry struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     []byte    `gorm:"type:blob"`
	UpdatedAt time.Time
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open gorm connection as a Store. The entries
// table must already be migrated (see database.AutoMigrate).
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string, out interface{}) (bool, error) {
	var entry Entry
	err := s.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *gormStore) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := Entry{Key: key, Value: raw, UpdatedAt: time.Now()}
	return s.db.Save(&entry).Error
}

func (s *gormStore) Remove(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

func (s *gormStore) Clear() error {
	return s.db.Where("1 = 1").Delete(&Entry{}).Error
}

func (s *gormStore) Keys() ([]string, error) {
	var keys []string
	if err := s.db.Model(&Entry{}).Pluck("key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
