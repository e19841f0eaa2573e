package request_models

type GenerateItineraryRequest struct {
	Destination string `json:"destination" binding:"required"`
	// ISO dates, e.g. "2025-10-10"
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`

	// Optional overrides; when absent the account's stored profile is used.
	Interests   []string `json:"interests"`
	BudgetLevel string   `json:"budget_level" binding:"omitempty,oneof=BUDGET MID_RANGE LUXURY"`
	TravelStyle string   `json:"travel_style"`
}

type UpdateItineraryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
}

type UpdateActivityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
}
