package source_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"
	"wayfarer/internal/sources"
)

var Module = fx.Provide(
	provideActivitySource)

// provideActivitySource wires whichever providers have API keys configured.
// A missing key just leaves that provider out of the composite.
func provideActivitySource() sources.ActivitySource {
	var places, yelp, fallback sources.ActivitySource

	if key := os.Getenv("GOOGLE_PLACES_API_KEY"); key != "" {
		source, err := sources.NewPlacesSource(key)
		if err != nil {
			log.Printf("places source unavailable: %v", err)
		} else {
			places = source
		}
	}

	if key := os.Getenv("YELP_API_KEY"); key != "" {
		yelp = sources.NewYelpSource(key)
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		source, err := sources.NewGeminiSource(context.Background(), key, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Printf("gemini source unavailable: %v", err)
		} else {
			fallback = source
		}
	}

	return sources.NewCompositeSource(places, yelp, fallback)
}
