package models

import "time"

// StoreEntry is a row in the flat key-value table backing the persistence
// gateway. Each collection is one serialized blob under one key.
type StoreEntry struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
