package recommendation_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/services"
	"wayfarer/internal/sources"
)

var Module = fx.Provide(
	provideRecommendationService, provideGenerationService)

func provideRecommendationService(source sources.ActivitySource) services.RecommendationServiceInterface {
	return services.NewRecommendationService(source)
}

func provideGenerationService(recommender services.RecommendationServiceInterface) services.ItineraryGenerationServiceInterface {
	return services.NewItineraryGenerationService(recommender)
}
