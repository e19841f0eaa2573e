package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ScheduledActivity struct {
	BaseModel
	DayPlanID   uuid.UUID `gorm:"index"`
	Name        string
	Description string
	Category    string
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"

	Address   string
	Latitude  *float64
	Longitude *float64

	Rating     *float64
	PriceRange string
	WebsiteURL string
	Tags       pq.StringArray `gorm:"type:text[]"`
}
