package response_models

type RecommendedActivityResponse struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Destination string   `json:"destination"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"review_count,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	WebsiteURL  string   `json:"website_url,omitempty"`
	ImageURLs   []string `json:"image_urls,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPopular   bool     `json:"is_popular"`
	Score       float64  `json:"score"`
}
