package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"wayfarer/internal/models/domain_models"
	"wayfarer/internal/sources"
)

const (
	perInterestFetchCap = 10
	defaultCategoryCap  = 8
	defaultResultLimit  = 20
)

type RecommendationServiceInterface interface {
	RecommendActivities(ctx context.Context, destination string, profile domain_models.PreferenceProfile, limit int) ([]domain_models.ScoredActivity, error)
	PopularActivities(ctx context.Context, destination string, limit int) ([]domain_models.ScoredActivity, error)
}

type RecommendationService struct {
	source sources.ActivitySource
}

func NewRecommendationService(source sources.ActivitySource) RecommendationServiceInterface {
	return &RecommendationService{source: source}
}

// RecommendActivities gathers candidates per interest, deduplicates, scores
// against the profile and returns the top results sorted by descending
// score. An empty result is not an error.
func (r *RecommendationService) RecommendActivities(ctx context.Context, destination string, profile domain_models.PreferenceProfile, limit int) ([]domain_models.ScoredActivity, error) {
	if limit <= 0 {
		limit = defaultResultLimit
	}

	candidates := r.gatherCandidates(ctx, destination, profile.Interests)
	candidates = DeduplicateActivities(candidates)

	scored := make([]domain_models.ScoredActivity, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, domain_models.ScoredActivity{
			ActivityCandidate: candidate,
			Score:             ScoreActivity(candidate, profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// PopularActivities is the interest-free fallback: every category is
// sampled and scoring runs against a neutral profile.
func (r *RecommendationService) PopularActivities(ctx context.Context, destination string, limit int) ([]domain_models.ScoredActivity, error) {
	return r.RecommendActivities(ctx, destination, domain_models.PreferenceProfile{BudgetLevel: domain_models.BudgetMid}, limit)
}

func (r *RecommendationService) gatherCandidates(ctx context.Context, destination string, interests []string) []domain_models.ActivityCandidate {
	var candidates []domain_models.ActivityCandidate

	if len(interests) == 0 {
		for _, category := range domain_models.Categories() {
			interest := strings.ToLower(string(category))
			candidates = append(candidates, r.fetchInterest(ctx, destination, interest, defaultCategoryCap)...)
		}
		return candidates
	}

	for _, interest := range interests {
		candidates = append(candidates, r.fetchInterest(ctx, destination, interest, perInterestFetchCap)...)
	}
	return candidates
}

// fetchInterest never propagates a source error; a failed interest simply
// contributes no candidates.
func (r *RecommendationService) fetchInterest(ctx context.Context, destination string, interest string, limit int) []domain_models.ActivityCandidate {
	fetched, err := r.source.FetchActivities(ctx, destination, interest, limit)
	if err != nil {
		log.Printf("activity source failed for %q in %q: %v", interest, destination, err)
		return nil
	}
	return fetched
}
