package model

import "time"

// SessionValueModel mirrors the 'session_values' table. One row per persisted cookie.
type SessionValueModel struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"not null;index:idx_session_values_expires_at"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionValueModel) TableName() string {
	return "session_values"
}
