package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wayfarer/internal/models/domain_models"
)

const (
	yelpSearchURL      = "https://api.yelp.com/v3/businesses/search"
	yelpMinRating      = 4.0
	yelpPopularRating  = 4.5
	yelpPopularReviews = 50
	yelpRequestTimeout = 10 * time.Second
)

// interestYelpCategories maps an interest tag to Yelp's category aliases.
var interestYelpCategories = map[string]string{
	"food":      "restaurants",
	"nightlife": "nightlife",
	"shopping":  "shopping",
	"sights":    "tours",
	"outdoor":   "active",
	"culture":   "arts",
}

type yelpBusiness struct {
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	ReviewCnt  int      `json:"review_count"`
	Price      string   `json:"price"`
	URL        string   `json:"url"`
	ImageURL   string   `json:"image_url"`
	Categories []struct {
		Alias string `json:"alias"`
		Title string `json:"title"`
	} `json:"categories"`
	Coordinates struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"coordinates"`
	Location struct {
		DisplayAddress []string `json:"display_address"`
	} `json:"location"`
}

type yelpSearchResponse struct {
	Businesses []yelpBusiness `json:"businesses"`
}

// YelpSource fetches activity candidates from the Yelp Fusion business
// search API.
type YelpSource struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
}

func NewYelpSource(apiKey string) *YelpSource {
	return &YelpSource{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: yelpRequestTimeout},
		baseURL:    yelpSearchURL,
	}
}

func (s *YelpSource) FetchActivities(ctx context.Context, destination string, interest string, limit int) ([]domain_models.ActivityCandidate, error) {
	category, ok := interestYelpCategories[strings.ToLower(strings.TrimSpace(interest))]
	if !ok {
		category = "tours"
	}

	query := url.Values{}
	query.Set("location", destination)
	query.Set("categories", category)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("sort_by", "rating")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create yelp request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute yelp request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yelp api error: status %d", resp.StatusCode)
	}

	var searchResponse yelpSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return nil, fmt.Errorf("decode yelp response: %w", err)
	}

	candidates := make([]domain_models.ActivityCandidate, 0, len(searchResponse.Businesses))
	for _, business := range searchResponse.Businesses {
		if business.Rating < yelpMinRating {
			continue
		}
		candidates = append(candidates, businessToCandidate(business, destination, categoryForInterest(interest)))
	}
	return candidates, nil
}

func businessToCandidate(business yelpBusiness, destination string, category domain_models.Category) domain_models.ActivityCandidate {
	rating := business.Rating
	reviews := business.ReviewCnt

	var tags []string
	var titles []string
	for _, c := range business.Categories {
		tags = append(tags, c.Alias)
		titles = append(titles, c.Title)
	}

	candidate := domain_models.ActivityCandidate{
		Name:        business.Name,
		Description: strings.Join(titles, ", "),
		Destination: destination,
		Category:    category,
		Rating:      &rating,
		ReviewCount: &reviews,
		PriceRange:  yelpPriceToTier(business.Price),
		WebsiteURL:  business.URL,
		Tags:        tags,
		IsPopular:   rating >= yelpPopularRating && reviews >= yelpPopularReviews,
	}

	if business.ImageURL != "" {
		candidate.ImageURLs = []string{business.ImageURL}
	}
	if business.Coordinates.Latitude != 0 || business.Coordinates.Longitude != 0 {
		candidate.Location = &domain_models.Location{
			Latitude:  business.Coordinates.Latitude,
			Longitude: business.Coordinates.Longitude,
			Address:   strings.Join(business.Location.DisplayAddress, ", "),
		}
	}
	return candidate
}

// yelpPriceToTier converts Yelp's "$".."$$$$" notation; Yelp has no free
// tier and omits the field when unknown.
func yelpPriceToTier(price string) domain_models.PriceTier {
	switch price {
	case "$":
		return domain_models.PriceCheap
	case "$$":
		return domain_models.PriceModerate
	case "$$$":
		return domain_models.PricePricey
	case "$$$$":
		return domain_models.PriceLuxury
	default:
		return domain_models.PriceUnknown
	}
}
