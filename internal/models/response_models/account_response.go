package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type AccountResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PreferencesResponse struct {
	Interests           []string `json:"interests"`
	BudgetLevel         string   `json:"budget_level"`
	TravelStyle         string   `json:"travel_style"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	PreferredTransport  string   `json:"preferred_transport"`
}
