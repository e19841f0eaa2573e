package domain_models

import "strings"

// BudgetLevel is the traveler's spending bracket.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "BUDGET"
	BudgetMid    BudgetLevel = "MID_RANGE"
	BudgetLuxury BudgetLevel = "LUXURY"
)

// TravelStyle is the travel-intensity setting that drives how many time
// slots a day gets.
type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "RELAXED"
	StyleModerate TravelStyle = "MODERATE"
	StylePacked   TravelStyle = "PACKED"
)

// ParseTravelStyle normalizes a stored or user-supplied style string.
// "adventure" is the legacy alias for MODERATE; anything unrecognized also
// falls back to MODERATE.
func ParseTravelStyle(s string) TravelStyle {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RELAXED":
		return StyleRelaxed
	case "PACKED":
		return StylePacked
	case "MODERATE", "ADVENTURE":
		return StyleModerate
	default:
		return StyleModerate
	}
}

// PreferenceProfile is everything the engine knows about a traveler's taste.
type PreferenceProfile struct {
	Interests           []string
	BudgetLevel         BudgetLevel
	TravelStyle         TravelStyle
	DietaryRestrictions []string
	PreferredTransport  string
}

// DefaultPreferences is substituted when a traveler has never filled in
// their preferences.
func DefaultPreferences() PreferenceProfile {
	return PreferenceProfile{
		Interests:   []string{"sights", "food", "culture"},
		BudgetLevel: BudgetMid,
		TravelStyle: StyleModerate,
	}
}
