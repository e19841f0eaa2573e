package sources

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"wayfarer/internal/models/domain_models"
)

const (
	placesMinRating       = 3.5
	placesPopularRating   = 4.5
	placesPopularReviews  = 100
	placesMaxPhotoURLs    = 3
	placesPhotoURLPattern = "https://maps.googleapis.com/maps/api/place/photo?maxwidth=800&photo_reference=%s"
)

// interestPlaceTypes maps an interest tag to the Google place types queried
// for it, in priority order.
var interestPlaceTypes = map[string][]string{
	"sights":    {"tourist_attraction", "point_of_interest"},
	"food":      {"restaurant", "cafe"},
	"outdoor":   {"park", "campground"},
	"nightlife": {"night_club", "bar"},
	"shopping":  {"shopping_mall", "department_store"},
	"culture":   {"museum", "art_gallery"},
}

// PlacesSource fetches activity candidates from the Google Places text
// search API.
type PlacesSource struct {
	client *maps.Client
}

func NewPlacesSource(apiKey string) (*PlacesSource, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &PlacesSource{client: client}, nil
}

func (s *PlacesSource) FetchActivities(ctx context.Context, destination string, interest string, limit int) ([]domain_models.ActivityCandidate, error) {
	category := categoryForInterest(interest)
	placeTypes := interestPlaceTypes[strings.ToLower(strings.TrimSpace(interest))]
	if len(placeTypes) == 0 {
		placeTypes = []string{"point_of_interest"}
	}

	seen := make(map[string]bool)
	var candidates []domain_models.ActivityCandidate

	for _, placeType := range placeTypes {
		if len(candidates) >= limit {
			break
		}

		resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
			Query: fmt.Sprintf("%s in %s", strings.ReplaceAll(placeType, "_", " "), destination),
			Type:  maps.PlaceType(placeType),
		})
		if err != nil {
			return nil, fmt.Errorf("places text search: %w", err)
		}

		for _, result := range resp.Results {
			if len(candidates) >= limit {
				break
			}
			if result.Rating > 0 && result.Rating < placesMinRating {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(result.Name))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, placeToCandidate(result, destination, category))
		}
	}

	return candidates, nil
}

func placeToCandidate(result maps.PlacesSearchResult, destination string, category domain_models.Category) domain_models.ActivityCandidate {
	candidate := domain_models.ActivityCandidate{
		Name:        result.Name,
		Description: strings.Join(result.Types, ", "),
		Destination: destination,
		Category:    category,
		PriceRange:  priceLevelToTier(result.PriceLevel),
		Tags:        result.Types,
		Location: &domain_models.Location{
			Latitude:  result.Geometry.Location.Lat,
			Longitude: result.Geometry.Location.Lng,
			Address:   result.FormattedAddress,
		},
	}

	if result.Rating > 0 {
		rating := float64(result.Rating)
		candidate.Rating = &rating
	}
	if result.UserRatingsTotal > 0 {
		reviews := result.UserRatingsTotal
		candidate.ReviewCount = &reviews
	}
	candidate.IsPopular = result.Rating >= placesPopularRating && result.UserRatingsTotal >= placesPopularReviews

	for i, photo := range result.Photos {
		if i >= placesMaxPhotoURLs {
			break
		}
		candidate.ImageURLs = append(candidate.ImageURLs, fmt.Sprintf(placesPhotoURLPattern, photo.PhotoReference))
	}

	return candidate
}

// priceLevelToTier converts Google's 0..4 price level. Places omits the
// field entirely for most non-commercial results, which arrives as zero and
// is indistinguishable from "free"; both map to the Free tier.
func priceLevelToTier(level int) domain_models.PriceTier {
	switch level {
	case 0:
		return domain_models.PriceFree
	case 1:
		return domain_models.PriceCheap
	case 2:
		return domain_models.PriceModerate
	case 3:
		return domain_models.PricePricey
	case 4:
		return domain_models.PriceLuxury
	default:
		return domain_models.PriceUnknown
	}
}

// categoryForInterest folds a free-text interest into the closed category
// set; unrecognized interests land in SIGHTS.
func categoryForInterest(interest string) domain_models.Category {
	switch strings.ToLower(strings.TrimSpace(interest)) {
	case "food":
		return domain_models.CategoryFood
	case "outdoor":
		return domain_models.CategoryOutdoor
	case "nightlife":
		return domain_models.CategoryNightlife
	case "shopping":
		return domain_models.CategoryShopping
	case "culture":
		return domain_models.CategoryCulture
	default:
		return domain_models.CategorySights
	}
}
