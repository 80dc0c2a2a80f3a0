// internal/models/common.go
package models

import (
	"time"
)

// Timestamps is embedded by every persisted catalog and snapshot row.
type Timestamps struct {
	CreatedAt time.Time `json:"-" yaml:"-"`
	UpdatedAt time.Time `json:"-" yaml:"-"`
}

// StoreSnapshot is the postgres key-value row holding a persisted cart/user state.
type StoreSnapshot struct {
	Key       string    `json:"key" gorm:"primaryKey;size:255"`
	Value     string    `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StoreSnapshot) TableName() string {
	return "store_snapshots"
}
