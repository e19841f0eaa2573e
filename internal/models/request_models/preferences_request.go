package request_models

type UpdatePreferencesRequest struct {
	Interests           []string `json:"interests"`
	BudgetLevel         string   `json:"budget_level" binding:"omitempty,oneof=BUDGET MID_RANGE LUXURY"`
	TravelStyle         string   `json:"travel_style"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	PreferredTransport  string   `json:"preferred_transport"`
}
