package response_models

type ItineraryResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type ItineraryDetailResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Destination string            `json:"destination"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Days        []DayPlanResponse `json:"days"`
}

type DayPlanResponse struct {
	ID         string                      `json:"id"`
	DayNumber  int                         `json:"day_number"`
	Date       string                      `json:"date"`
	Notes      string                      `json:"notes,omitempty"`
	Activities []ScheduledActivityResponse `json:"activities"`
}

type ScheduledActivityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Address     string   `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	PriceRange  string   `json:"price_range,omitempty"`
	WebsiteURL  string   `json:"website_url,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
