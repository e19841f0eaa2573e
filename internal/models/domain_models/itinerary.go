package domain_models

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot is one window of a day's schedule. Name is the granular slot
// label ("late_afternoon"); Period is the coarse label ("afternoon") used
// when picking category-appropriate activities. Times are "HH:MM" strings,
// which keeps them trivially comparable and serializable.
type TimeSlot struct {
	Start  string
	End    string
	Name   string
	Period string
}

// ScheduledActivity is a time-bound occurrence of an activity within one
// day. The persistence layer records the owning day plan as a foreign key.
type ScheduledActivity struct {
	Name        string
	Description string
	Category    Category
	Location    *Location
	StartTime   string
	EndTime     string
	WebsiteURL  string
	Rating      *float64
	PriceRange  PriceTier
	Tags        []string
}

// DayPlan is one calendar day of an itinerary. Activities are ordered by
// non-decreasing start time.
type DayPlan struct {
	Date       time.Time
	Notes      string
	Activities []ScheduledActivity
}

// Owner identifies the traveler an itinerary is generated for.
type Owner struct {
	ID   uuid.UUID
	Name string
}

// Itinerary is a generated multi-day plan. DayPlans covers every date from
// StartDate to EndDate inclusive, in ascending order.
type Itinerary struct {
	Title       string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Owner       Owner
	DayPlans    []DayPlan
}
