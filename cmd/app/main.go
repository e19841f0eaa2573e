package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"wayfarer/cmd/fx/account_fx"
	"wayfarer/cmd/fx/controllers_fx"
	"wayfarer/cmd/fx/db_fx"
	"wayfarer/cmd/fx/itinerary_fx"
	"wayfarer/cmd/fx/logger_fx"
	"wayfarer/cmd/fx/recommendation_fx"
	"wayfarer/cmd/fx/source_fx"
	"wayfarer/internal/api/controllers"
	"wayfarer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		account_fx.Module,
		source_fx.Module,
		recommendation_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	recommendationController *controllers.RecommendationController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))

	RegisterRoutes(r, accountController, itineraryController, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	recommendationController *controllers.RecommendationController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	accounts := r.Group("/accounts")
	accounts.POST("/signup", accountController.SignUp)
	accounts.POST("/login", accountController.Login)

	accountsAuth := r.Group("/accounts", middleware.JWTAuthMiddleware())
	accountsAuth.GET("/me", accountController.Me)
	accountsAuth.GET("/preferences", accountController.GetPreferences)
	accountsAuth.PUT("/preferences", accountController.UpdatePreferences)

	recommendations := r.Group("/recommendations")
	recommendations.GET("", recommendationController.Recommend)
	recommendations.GET("/popular", recommendationController.Popular)

	itineraries := r.Group("/itineraries")
	itineraries.GET("/discover", itineraryController.Discover)

	itinerariesAuth := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itinerariesAuth.POST("/generate", itineraryController.Generate)
	itinerariesAuth.GET("", itineraryController.List)
	itinerariesAuth.GET("/:itineraryId", itineraryController.GetByID)
	itinerariesAuth.PUT("/:itineraryId", itineraryController.Update)
	itinerariesAuth.DELETE("/:itineraryId", itineraryController.Delete)
	itinerariesAuth.PATCH("/activities/:activityId", itineraryController.UpdateActivity)
	itinerariesAuth.DELETE("/activities/:activityId", itineraryController.RemoveActivity)
}
