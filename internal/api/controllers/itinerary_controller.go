package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// Generate godoc
// @Summary Generate an itinerary
// @Description Build and save a day-by-day plan for a destination and date range
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Generation payload"
// @Success 201 {object} response_models.ItineraryDetailResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var request request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid generation payload")
		return
	}

	accountID := c.GetString("user_id")

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), accountID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary generated successfully")
}

// GetByID godoc
// @Summary Get itinerary details
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetByID(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_id"), itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// List godoc
// @Summary List own itineraries
// @Tags Itinerary
// @Produce json
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) List(c *gin.Context) {
	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// Update godoc
// @Summary Rename an itinerary
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param request body request_models.UpdateItineraryRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [put]
func (i *ItineraryController) Update(c *gin.Context) {
	itineraryID := c.Param("itineraryId")

	var request request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid update payload")
		return
	}

	if err := i.itineraryService.UpdateItinerary(c.Request.Context(), c.GetString("user_id"), itineraryID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary updated successfully")
}

// Delete godoc
// @Summary Delete an itinerary
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (i *ItineraryController) Delete(c *gin.Context) {
	itineraryID := c.Param("itineraryId")

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("user_id"), itineraryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// UpdateActivity godoc
// @Summary Edit one scheduled activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param activityId path string true "Activity ID"
// @Param request body request_models.UpdateActivityRequest true "Activity update payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/activities/{activityId} [patch]
func (i *ItineraryController) UpdateActivity(c *gin.Context) {
	activityID := c.Param("activityId")

	var request request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid activity payload")
		return
	}

	if err := i.itineraryService.UpdateActivity(c.Request.Context(), c.GetString("user_id"), activityID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity updated successfully")
}

// RemoveActivity godoc
// @Summary Remove one scheduled activity
// @Tags Itinerary
// @Produce json
// @Param activityId path string true "Activity ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/activities/{activityId} [delete]
func (i *ItineraryController) RemoveActivity(c *gin.Context) {
	activityID := c.Param("activityId")

	if err := i.itineraryService.RemoveActivity(c.Request.Context(), c.GetString("user_id"), activityID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed successfully")
}

// Discover godoc
// @Summary Browse itineraries by destination
// @Tags Itinerary
// @Produce json
// @Param destination query string true "Destination substring"
// @Param limit query int false "Max results" default(20)
// @Success 200 {array} response_models.ItineraryResponse
// @Router /itineraries/discover [get]
func (i *ItineraryController) Discover(c *gin.Context) {
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

	itineraries, err := i.itineraryService.DiscoverItineraries(c.Request.Context(), destination, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}
