package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"index"`
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time

	Days []DayPlan
}
