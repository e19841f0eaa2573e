package services

import "wayfarer/internal/models/domain_models"

// Coarse period labels used to pick category-appropriate activities.
const (
	periodMorning   = "morning"
	periodAfternoon = "afternoon"
	periodEvening   = "evening"
)

var slotTemplates = map[domain_models.TravelStyle][]domain_models.TimeSlot{
	domain_models.StyleRelaxed: {
		{Start: "10:00", End: "12:00", Name: "morning", Period: periodMorning},
		{Start: "14:00", End: "17:00", Name: "afternoon", Period: periodAfternoon},
		{Start: "19:00", End: "21:00", Name: "evening", Period: periodEvening},
	},
	domain_models.StyleModerate: {
		{Start: "09:00", End: "11:30", Name: "morning", Period: periodMorning},
		{Start: "13:00", End: "16:00", Name: "afternoon", Period: periodAfternoon},
		{Start: "17:30", End: "19:30", Name: "late_afternoon", Period: periodAfternoon},
		{Start: "20:00", End: "22:00", Name: "evening", Period: periodEvening},
	},
	domain_models.StylePacked: {
		{Start: "08:00", End: "10:30", Name: "early_morning", Period: periodMorning},
		{Start: "11:00", End: "13:00", Name: "morning", Period: periodMorning},
		{Start: "14:00", End: "16:30", Name: "afternoon", Period: periodAfternoon},
		{Start: "17:00", End: "19:00", Name: "late_afternoon", Period: periodAfternoon},
		{Start: "20:00", End: "22:30", Name: "evening", Period: periodEvening},
	},
}

// periodCategories lists preferred categories per coarse period, in priority
// order.
var periodCategories = map[string][]domain_models.Category{
	periodMorning:   {domain_models.CategorySights, domain_models.CategoryOutdoor, domain_models.CategoryCulture},
	periodAfternoon: {domain_models.CategorySights, domain_models.CategoryShopping, domain_models.CategoryFood},
	periodEvening:   {domain_models.CategoryFood, domain_models.CategoryNightlife, domain_models.CategoryCulture},
}

// TimeSlotsFor returns a fresh copy of the slot template for a style, so
// callers can never mutate the shared table.
func TimeSlotsFor(style domain_models.TravelStyle) []domain_models.TimeSlot {
	template, ok := slotTemplates[style]
	if !ok {
		template = slotTemplates[domain_models.StyleModerate]
	}
	slots := make([]domain_models.TimeSlot, len(template))
	copy(slots, template)
	return slots
}

// ActivitiesPerDay is the slot count for a style, used to size the candidate
// fetch for a whole trip.
func ActivitiesPerDay(style domain_models.TravelStyle) int {
	switch style {
	case domain_models.StyleRelaxed:
		return 3
	case domain_models.StylePacked:
		return 5
	default:
		return 4
	}
}

func preferredCategories(period string) []domain_models.Category {
	return periodCategories[period]
}
