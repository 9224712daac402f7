package models

import "time"

// StoreEntry is one named collection serialized as JSON.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Value     string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}
