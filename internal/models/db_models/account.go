package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string

	// Travel preference profile, editable independently of auth fields.
	Interests           pq.StringArray `gorm:"type:text[]"`
	BudgetLevel         string
	TravelStyle         string
	DietaryRestrictions pq.StringArray `gorm:"type:text[]"`
	PreferredTransport  string

	Itineraries []Itinerary
}
