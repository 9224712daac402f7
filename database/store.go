package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/bar-app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Collection keys
const (
	KeyMenu     = "menu"
	KeyTables   = "tables"
	KeyHistory  = "orders_history"
	KeyExpenses = "expenses"
	KeyDrafts   = "pending_by_table"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store keeps named collections as whole JSON documents.
type Store interface {
	Load(key string, dst interface{}) error
	Save(key string, value interface{}) error
}

// GormStore keeps collections in the store_entries table.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates the store_entries table.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&models.StoreEntry{})
}

func (s *GormStore) Load(key string, dst interface{}) error {
	var entry models.StoreEntry
	err := s.DB.Where(&models.StoreEntry{Key: key}).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if entry.Value == "" {
		return ErrNotFound
	}
	if err := json.Unmarshal([]byte(entry.Value), dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Save overwrites the whole collection stored under key.
func (s *GormStore) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	entry := models.StoreEntry{
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
