package db_models

import (
	"time"

	"github.com/google/uuid"
)

type DayPlan struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	DayNumber   int
	Date        time.Time
	Notes       string

	Activities []ScheduledActivity
}
