package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/domain_models"
)

type fakeRecommender struct {
	scored []domain_models.ScoredActivity
	limit  int
}

func (f *fakeRecommender) RecommendActivities(ctx context.Context, destination string, profile domain_models.PreferenceProfile, limit int) ([]domain_models.ScoredActivity, error) {
	f.limit = limit
	if len(f.scored) > limit {
		return f.scored[:limit], nil
	}
	return f.scored, nil
}

func (f *fakeRecommender) PopularActivities(ctx context.Context, destination string, limit int) ([]domain_models.ScoredActivity, error) {
	return f.scored, nil
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func mixedCandidates(count int) []domain_models.ScoredActivity {
	categories := []domain_models.Category{
		domain_models.CategoryFood,
		domain_models.CategoryCulture,
		domain_models.CategorySights,
	}
	var scored []domain_models.ScoredActivity
	for i := 0; i < count; i++ {
		scored = append(scored, domain_models.ScoredActivity{
			ActivityCandidate: domain_models.ActivityCandidate{
				Name:     fmt.Sprintf("Venue %02d", i),
				Category: categories[i%len(categories)],
			},
			Score: 100 - float64(i),
		})
	}
	return scored
}

func TestGenerate_OneDayPlanPerDate(t *testing.T) {
	service := NewItineraryGenerationService(&fakeRecommender{scored: mixedCandidates(20)})

	itinerary, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-03"),
		Owner:       domain_models.Owner{Name: "Alex"},
	})

	require.NoError(t, err)
	require.Len(t, itinerary.DayPlans, 3)
	for i, day := range itinerary.DayPlans {
		assert.Equal(t, date("2024-06-01").AddDate(0, 0, i), day.Date)
		assert.Equal(t, fmt.Sprintf("Day %d in Barcelona", i+1), day.Notes)
	}
}

func TestGenerate_EmptyPoolYieldsEmptyDays(t *testing.T) {
	service := NewItineraryGenerationService(&fakeRecommender{})

	itinerary, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-03"),
	})

	require.NoError(t, err)
	require.Len(t, itinerary.DayPlans, 3)
	for _, day := range itinerary.DayPlans {
		assert.Empty(t, day.Activities)
		assert.NotEmpty(t, day.Notes)
	}
}

func TestGenerate_PoolIsDrainedAcrossDays(t *testing.T) {
	profile := domain_models.PreferenceProfile{
		Interests:   []string{"food", "culture"},
		BudgetLevel: domain_models.BudgetMid,
		TravelStyle: domain_models.StyleModerate,
	}
	service := NewItineraryGenerationService(&fakeRecommender{scored: mixedCandidates(20)})

	itinerary, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-02"),
		Profile:     &profile,
	})

	require.NoError(t, err)
	require.Len(t, itinerary.DayPlans, 2)

	seen := make(map[string]bool)
	for _, day := range itinerary.DayPlans {
		assert.LessOrEqual(t, len(day.Activities), 4)
		for _, activity := range day.Activities {
			assert.False(t, seen[activity.Name], "%s scheduled twice", activity.Name)
			seen[activity.Name] = true
		}
	}
}

func TestGenerate_ActivityTimesMatchSlotTemplate(t *testing.T) {
	profile := domain_models.PreferenceProfile{
		Interests:   []string{"food"},
		TravelStyle: domain_models.StylePacked,
	}
	service := NewItineraryGenerationService(&fakeRecommender{scored: mixedCandidates(30)})

	itinerary, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-01"),
		Profile:     &profile,
	})

	require.NoError(t, err)
	require.Len(t, itinerary.DayPlans, 1)

	slotWindows := make(map[string]string)
	for _, slot := range TimeSlotsFor(domain_models.StylePacked) {
		slotWindows[slot.Start] = slot.End
	}

	activities := itinerary.DayPlans[0].Activities
	require.NotEmpty(t, activities)
	for i, activity := range activities {
		end, ok := slotWindows[activity.StartTime]
		require.True(t, ok, "start time %s is not a slot boundary", activity.StartTime)
		assert.Equal(t, end, activity.EndTime)
		if i > 0 {
			assert.LessOrEqual(t, activities[i-1].StartTime, activity.StartTime)
		}
	}
}

func TestGenerate_FetchSizedToTrip(t *testing.T) {
	recommender := &fakeRecommender{}
	service := NewItineraryGenerationService(recommender)

	profile := domain_models.PreferenceProfile{TravelStyle: domain_models.StyleRelaxed}
	_, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-02"),
		Profile:     &profile,
	})

	require.NoError(t, err)
	// 2 days at 3 activities plus the padding margin.
	assert.Equal(t, 2*3+extraCandidates, recommender.limit)
}

func TestGenerate_TitleDefaultsFromOwner(t *testing.T) {
	service := NewItineraryGenerationService(&fakeRecommender{})

	itinerary, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-01"),
		Owner:       domain_models.Owner{Name: "Alex"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Alex Trip to Barcelona", itinerary.Title)

	custom, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-01"),
		Title:       "Summer Escape",
	})

	require.NoError(t, err)
	assert.Equal(t, "Summer Escape", custom.Title)
}

func TestGenerate_RotationVariesPicksAcrossDays(t *testing.T) {
	// With a deep pool in a single category, day 2's first pick should not
	// simply repeat the ordering day 1 would have produced on its own.
	var scored []domain_models.ScoredActivity
	for i := 0; i < 20; i++ {
		scored = append(scored, domain_models.ScoredActivity{
			ActivityCandidate: domain_models.ActivityCandidate{
				Name:     fmt.Sprintf("Restaurant %02d", i),
				Category: domain_models.CategoryFood,
			},
			Score: 100 - float64(i),
		})
	}
	profile := domain_models.PreferenceProfile{
		Interests:   []string{"food"},
		TravelStyle: domain_models.StyleRelaxed,
	}
	service := NewItineraryGenerationService(&fakeRecommender{scored: scored})

	itinerary, err := service.Generate(context.Background(), GenerationParams{
		Destination: "Barcelona",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-02"),
		Profile:     &profile,
	})

	require.NoError(t, err)
	require.Len(t, itinerary.DayPlans, 2)
	day1 := itinerary.DayPlans[0].Activities
	day2 := itinerary.DayPlans[1].Activities
	require.Len(t, day1, 3)
	require.Len(t, day2, 3)

	var day2Names []string
	for _, activity := range day2 {
		day2Names = append(day2Names, activity.Name)
	}
	consecutive := []string{"Restaurant 03", "Restaurant 04", "Restaurant 05"}
	assert.NotEqual(t, consecutive, day2Names, "day 2 should rotate, not continue day 1's sequence")
}
