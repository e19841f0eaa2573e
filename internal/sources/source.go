package sources

import (
	"context"
	"log"
	"strings"

	"wayfarer/internal/models/domain_models"
)

// ActivitySource produces activity candidates for a destination and a single
// interest tag. Implementations own their own timeouts and never return
// partial results alongside an error.
type ActivitySource interface {
	FetchActivities(ctx context.Context, destination string, interest string, limit int) ([]domain_models.ActivityCandidate, error)
}

// CompositeSource fans a fetch out across providers: Places is always asked,
// Yelp is added for food and nightlife interests, and Gemini only answers
// when everything else came back empty. A failing provider is skipped.
type CompositeSource struct {
	places   ActivitySource
	yelp     ActivitySource
	fallback ActivitySource
}

func NewCompositeSource(places, yelp, fallback ActivitySource) *CompositeSource {
	return &CompositeSource{places: places, yelp: yelp, fallback: fallback}
}

func (s *CompositeSource) FetchActivities(ctx context.Context, destination string, interest string, limit int) ([]domain_models.ActivityCandidate, error) {
	var candidates []domain_models.ActivityCandidate

	if s.places != nil {
		fetched, err := s.places.FetchActivities(ctx, destination, interest, limit)
		if err != nil {
			log.Printf("places source failed for %q/%q: %v", destination, interest, err)
		} else {
			candidates = append(candidates, fetched...)
		}
	}

	if s.yelp != nil && yelpCoversInterest(interest) {
		fetched, err := s.yelp.FetchActivities(ctx, destination, interest, limit)
		if err != nil {
			log.Printf("yelp source failed for %q/%q: %v", destination, interest, err)
		} else {
			candidates = append(candidates, fetched...)
		}
	}

	if len(candidates) == 0 && s.fallback != nil {
		fetched, err := s.fallback.FetchActivities(ctx, destination, interest, limit)
		if err != nil {
			log.Printf("fallback source failed for %q/%q: %v", destination, interest, err)
		} else {
			candidates = fetched
		}
	}

	return candidates, nil
}

func yelpCoversInterest(interest string) bool {
	switch strings.ToLower(strings.TrimSpace(interest)) {
	case "food", "nightlife":
		return true
	}
	return false
}
