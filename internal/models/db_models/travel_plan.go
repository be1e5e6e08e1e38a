package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TravelPlan is one generated itinerary, stored as a single document. The
// full canonical plan lives in Document; the extracted columns exist for
// querying only. Rows are written once and never updated.
type TravelPlan struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;index"`
	Destination string         `gorm:"size:200"`
	Document    datatypes.JSON `gorm:"type:jsonb"`
}
