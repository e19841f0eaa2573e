package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryRepo)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	accounts services.AccountServiceInterface,
	generator services.ItineraryGenerationServiceInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, accounts, generator)
}
