package controllers_fx

import (
	"go.uber.org/fx"
	"wayfarer/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewItineraryController,
	controllers.NewRecommendationController,
)
