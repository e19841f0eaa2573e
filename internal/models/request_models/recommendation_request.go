package request_models

type RecommendationQuery struct {
	Destination string   `form:"destination" binding:"required"`
	Interests   []string `form:"interests"`
	BudgetLevel string   `form:"budget_level" binding:"omitempty,oneof=BUDGET MID_RANGE LUXURY"`
	TravelStyle string   `form:"travel_style"`
	Limit       int      `form:"limit"`
}
