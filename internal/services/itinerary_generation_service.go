package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"wayfarer/internal/models/domain_models"
	"wayfarer/pkg/utils"
)

// extraCandidates pads the fetch beyond the strict slot count so thin
// categories still leave the assembler choices.
const extraCandidates = 5

type ItineraryGenerationServiceInterface interface {
	Generate(ctx context.Context, params GenerationParams) (*domain_models.Itinerary, error)
}

// GenerationParams carries everything one generation call needs. Profile may
// be nil, in which case a sensible default is substituted. Title may be
// empty, in which case one is derived from the owner and destination.
type GenerationParams struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Owner       domain_models.Owner
	Profile     *domain_models.PreferenceProfile
	Title       string
}

type ItineraryGenerationService struct {
	recommender RecommendationServiceInterface
}

func NewItineraryGenerationService(recommender RecommendationServiceInterface) ItineraryGenerationServiceInterface {
	return &ItineraryGenerationService{recommender: recommender}
}

// Generate builds a day-by-day plan. Candidates are fetched once for the
// whole trip and drained across days, so no activity ever appears twice.
// Callers validate the date window before calling.
func (g *ItineraryGenerationService) Generate(ctx context.Context, params GenerationParams) (*domain_models.Itinerary, error) {
	profile := domain_models.DefaultPreferences()
	if params.Profile != nil {
		profile = *params.Profile
	}

	days := utils.DaysBetweenInclusive(params.StartDate, params.EndDate)
	perDay := ActivitiesPerDay(profile.TravelStyle)
	needed := days*perDay + extraCandidates

	scored, err := g.recommender.RecommendActivities(ctx, params.Destination, profile, needed)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		log.Printf("no candidates for %q, itinerary will have empty days", params.Destination)
	}

	pool := buildCategoryPool(scored)

	title := params.Title
	if title == "" {
		title = fmt.Sprintf("%s Trip to %s", params.Owner.Name, params.Destination)
	}

	itinerary := &domain_models.Itinerary{
		Title:       title,
		Destination: params.Destination,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Owner:       params.Owner,
	}

	for day := 1; day <= days; day++ {
		date := params.StartDate.AddDate(0, 0, day-1)
		itinerary.DayPlans = append(itinerary.DayPlans, domain_models.DayPlan{
			Date:       date,
			Notes:      fmt.Sprintf("Day %d in %s", day, params.Destination),
			Activities: assembleDay(pool, profile.TravelStyle, day),
		})
	}

	return itinerary, nil
}

type categoryPool map[domain_models.Category][]domain_models.ScoredActivity

func buildCategoryPool(scored []domain_models.ScoredActivity) categoryPool {
	pool := make(categoryPool)
	for _, activity := range scored {
		pool[activity.Category] = append(pool[activity.Category], activity)
	}
	return pool
}

// assembleDay fills one day's slots from the shared pool. Picks rotate with
// the day number so consecutive days do not all start with the same
// top-ranked venue, and every pick is removed from the pool.
func assembleDay(pool categoryPool, style domain_models.TravelStyle, dayNumber int) []domain_models.ScheduledActivity {
	slots := TimeSlotsFor(style)
	maxActivities := ActivitiesPerDay(style)

	var activities []domain_models.ScheduledActivity
	for _, slot := range slots {
		if len(activities) >= maxActivities {
			break
		}
		picked, ok := pickForSlot(pool, slot.Period, dayNumber)
		if !ok {
			continue
		}
		activities = append(activities, scheduleActivity(picked, slot))
	}
	return activities
}

func pickForSlot(pool categoryPool, period string, dayNumber int) (domain_models.ScoredActivity, bool) {
	for _, category := range preferredCategories(period) {
		bucket := pool[category]
		if len(bucket) == 0 {
			continue
		}
		index := (dayNumber - 1) % len(bucket)
		return takeFromPool(pool, category, index), true
	}

	// Nothing in the preferred categories; fall back to any remaining
	// candidate, walking categories in their fixed order for determinism.
	for _, category := range domain_models.Categories() {
		if len(pool[category]) == 0 {
			continue
		}
		return takeFromPool(pool, category, 0), true
	}

	return domain_models.ScoredActivity{}, false
}

func takeFromPool(pool categoryPool, category domain_models.Category, index int) domain_models.ScoredActivity {
	bucket := pool[category]
	picked := bucket[index]
	pool[category] = append(bucket[:index], bucket[index+1:]...)
	return picked
}

func scheduleActivity(activity domain_models.ScoredActivity, slot domain_models.TimeSlot) domain_models.ScheduledActivity {
	return domain_models.ScheduledActivity{
		Name:        activity.Name,
		Description: activity.Description,
		Category:    activity.Category,
		Location:    activity.Location,
		StartTime:   slot.Start,
		EndTime:     slot.End,
		WebsiteURL:  activity.WebsiteURL,
		Rating:      activity.Rating,
		PriceRange:  activity.PriceRange,
		Tags:        activity.Tags,
	}
}
