package db_models

import (
	"gorm.io/datatypes"
)

// RateLimitRecord holds the request timestamps (epoch millis) of one user,
// one row per user id.
type RateLimitRecord struct {
	UserID    string         `gorm:"primaryKey;size:64"`
	Requests  datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
}
