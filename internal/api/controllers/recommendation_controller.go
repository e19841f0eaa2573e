package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/domain_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// Recommend godoc
// @Summary Recommend activities for a destination
// @Description Scored and deduplicated activity suggestions, biased by interests and budget
// @Tags Recommendation
// @Produce json
// @Param destination query string true "Destination"
// @Param interests query []string false "Interest tags"
// @Param budget_level query string false "BUDGET | MID_RANGE | LUXURY"
// @Param limit query int false "Max results" default(20)
// @Success 200 {array} response_models.RecommendedActivityResponse
// @Router /recommendations [get]
func (r *RecommendationController) Recommend(c *gin.Context) {
	var query request_models.RecommendationQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid recommendation query")
		return
	}

	profile := domain_models.PreferenceProfile{
		Interests:   query.Interests,
		BudgetLevel: domain_models.BudgetLevel(query.BudgetLevel),
		TravelStyle: domain_models.ParseTravelStyle(query.TravelStyle),
	}
	if profile.BudgetLevel == "" {
		profile.BudgetLevel = domain_models.BudgetMid
	}

	scored, err := r.recommendationService.RecommendActivities(c.Request.Context(), query.Destination, profile, query.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toRecommendationResponses(scored), "Recommendations fetched successfully")
}

// Popular godoc
// @Summary Popular activities for a destination
// @Description Interest-free fallback ranking for when personalized results come back empty
// @Tags Recommendation
// @Produce json
// @Param destination query string true "Destination"
// @Param limit query int false "Max results" default(20)
// @Success 200 {array} response_models.RecommendedActivityResponse
// @Router /recommendations/popular [get]
func (r *RecommendationController) Popular(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	scored, err := r.recommendationService.PopularActivities(c.Request.Context(), destination, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, toRecommendationResponses(scored), "Popular activities fetched successfully")
}

func toRecommendationResponses(scored []domain_models.ScoredActivity) []response_models.RecommendedActivityResponse {
	responses := make([]response_models.RecommendedActivityResponse, 0, len(scored))
	for _, activity := range scored {
		response := response_models.RecommendedActivityResponse{
			Name:        activity.Name,
			Description: activity.Description,
			Category:    string(activity.Category),
			Destination: activity.Destination,
			Rating:      activity.Rating,
			ReviewCount: activity.ReviewCount,
			PriceRange:  string(activity.PriceRange),
			WebsiteURL:  activity.WebsiteURL,
			ImageURLs:   activity.ImageURLs,
			Tags:        activity.Tags,
			IsPopular:   activity.IsPopular,
			Score:       activity.Score,
		}
		if activity.Location != nil {
			lat, lng := activity.Location.Latitude, activity.Location.Longitude
			response.Address = activity.Location.Address
			response.Latitude = &lat
			response.Longitude = &lng
		}
		responses = append(responses, response)
	}
	return responses
}
