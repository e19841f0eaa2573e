package services

import (
	"context"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/domain_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

const maxDiscoveryResults = 50

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, accountID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	GetItinerary(ctx context.Context, accountID string, itineraryID string) (*response_models.ItineraryDetailResponse, error)
	ListItineraries(ctx context.Context, accountID string) ([]response_models.ItineraryResponse, error)
	UpdateItinerary(ctx context.Context, accountID string, itineraryID string, request request_models.UpdateItineraryRequest) error
	DeleteItinerary(ctx context.Context, accountID string, itineraryID string) error
	UpdateActivity(ctx context.Context, accountID string, activityID string, request request_models.UpdateActivityRequest) error
	RemoveActivity(ctx context.Context, accountID string, activityID string) error
	DiscoverItineraries(ctx context.Context, destination string, limit int) ([]response_models.ItineraryResponse, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	accounts      AccountServiceInterface
	generator     ItineraryGenerationServiceInterface
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	accounts AccountServiceInterface,
	generator ItineraryGenerationServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		accounts:      accounts,
		generator:     generator,
	}
}

// GenerateItinerary validates the date window, resolves the traveler's
// profile (request overrides beat the stored one), runs the engine and
// persists the result.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, accountID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if endDate.Before(startDate) {
		return nil, utils.ErrInvalidDateRange
	}

	account, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	profile, err := s.resolveProfile(ctx, accountID, request)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(ctx, GenerationParams{
		Destination: request.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Owner:       domain_models.Owner{ID: account.ID, Name: account.Name},
		Profile:     profile,
	})
	if err != nil {
		return nil, utils.ErrActivitySourceFailed
	}

	record := toDBItinerary(generated)
	if err := s.itineraryRepo.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toDetailResponse(record), nil
}

// resolveProfile merges request overrides over the account's stored
// preferences. A nil return means "engine default".
func (s *ItineraryService) resolveProfile(ctx context.Context, accountID string, request request_models.GenerateItineraryRequest) (*domain_models.PreferenceProfile, error) {
	profile, err := s.accounts.GetPreferences(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if len(request.Interests) == 0 && request.BudgetLevel == "" && request.TravelStyle == "" {
		return profile, nil
	}

	merged := domain_models.DefaultPreferences()
	if profile != nil {
		merged = *profile
	}
	if len(request.Interests) > 0 {
		merged.Interests = request.Interests
	}
	if request.BudgetLevel != "" {
		merged.BudgetLevel = domain_models.BudgetLevel(request.BudgetLevel)
	}
	if request.TravelStyle != "" {
		merged.TravelStyle = domain_models.ParseTravelStyle(request.TravelStyle)
	}
	return &merged, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, accountID string, itineraryID string) (*response_models.ItineraryDetailResponse, error) {
	itinerary, err := s.ownedItinerary(ctx, accountID, itineraryID)
	if err != nil {
		return nil, err
	}
	return toDetailResponse(itinerary), nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context, accountID string) ([]response_models.ItineraryResponse, error) {
	itineraries, err := s.itineraryRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		responses = append(responses, toSummaryResponse(&itineraries[i]))
	}
	return responses, nil
}

func (s *ItineraryService) UpdateItinerary(ctx context.Context, accountID string, itineraryID string, request request_models.UpdateItineraryRequest) error {
	if _, err := s.ownedItinerary(ctx, accountID, itineraryID); err != nil {
		return err
	}
	if err := s.itineraryRepo.UpdateTitle(ctx, itineraryID, request.Title); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, accountID string, itineraryID string) error {
	if _, err := s.ownedItinerary(ctx, accountID, itineraryID); err != nil {
		return err
	}
	if err := s.itineraryRepo.Delete(ctx, itineraryID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, accountID string, activityID string, request request_models.UpdateActivityRequest) error {
	activity, err := s.ownedActivity(ctx, accountID, activityID)
	if err != nil {
		return err
	}

	if request.Name != nil {
		activity.Name = *request.Name
	}
	if request.Description != nil {
		activity.Description = *request.Description
	}
	if request.StartTime != nil {
		activity.StartTime = *request.StartTime
	}
	if request.EndTime != nil {
		activity.EndTime = *request.EndTime
	}

	if err := s.itineraryRepo.UpdateActivity(ctx, activity); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) RemoveActivity(ctx context.Context, accountID string, activityID string) error {
	if _, err := s.ownedActivity(ctx, accountID, activityID); err != nil {
		return err
	}
	if err := s.itineraryRepo.DeleteActivity(ctx, activityID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) DiscoverItineraries(ctx context.Context, destination string, limit int) ([]response_models.ItineraryResponse, error) {
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit <= 0 || limit > maxDiscoveryResults {
		limit = maxDiscoveryResults
	}

	itineraries, err := s.itineraryRepo.SearchByDestination(ctx, destination, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		responses = append(responses, toSummaryResponse(&itineraries[i]))
	}
	return responses, nil
}

func (s *ItineraryService) ownedItinerary(ctx context.Context, accountID string, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.FindByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.AccountID.String() != accountID {
		return nil, utils.ErrNotItineraryOwner
	}
	return itinerary, nil
}

func (s *ItineraryService) ownedActivity(ctx context.Context, accountID string, activityID string) (*db_models.ScheduledActivity, error) {
	activity, err := s.itineraryRepo.FindActivity(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	ownerID, err := s.itineraryRepo.FindOwnerOfActivity(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if ownerID != accountID {
		return nil, utils.ErrNotItineraryOwner
	}
	return activity, nil
}

func toDBItinerary(itinerary *domain_models.Itinerary) *db_models.Itinerary {
	record := &db_models.Itinerary{
		AccountID:   itinerary.Owner.ID,
		Title:       itinerary.Title,
		Destination: itinerary.Destination,
		StartDate:   itinerary.StartDate,
		EndDate:     itinerary.EndDate,
	}

	for i, day := range itinerary.DayPlans {
		dbDay := db_models.DayPlan{
			DayNumber: i + 1,
			Date:      day.Date,
			Notes:     day.Notes,
		}
		for _, activity := range day.Activities {
			dbDay.Activities = append(dbDay.Activities, toDBActivity(activity))
		}
		record.Days = append(record.Days, dbDay)
	}
	return record
}

func toDBActivity(activity domain_models.ScheduledActivity) db_models.ScheduledActivity {
	record := db_models.ScheduledActivity{
		Name:        activity.Name,
		Description: activity.Description,
		Category:    string(activity.Category),
		StartTime:   activity.StartTime,
		EndTime:     activity.EndTime,
		Rating:      activity.Rating,
		PriceRange:  string(activity.PriceRange),
		WebsiteURL:  activity.WebsiteURL,
		Tags:        pqArray(activity.Tags),
	}
	if activity.Location != nil {
		lat, lng := activity.Location.Latitude, activity.Location.Longitude
		record.Address = activity.Location.Address
		record.Latitude = &lat
		record.Longitude = &lng
	}
	return record
}

func toSummaryResponse(itinerary *db_models.Itinerary) response_models.ItineraryResponse {
	return response_models.ItineraryResponse{
		ID:          itinerary.ID.String(),
		Title:       itinerary.Title,
		Destination: itinerary.Destination,
		StartDate:   utils.FormatDate(itinerary.StartDate),
		EndDate:     utils.FormatDate(itinerary.EndDate),
	}
}

func toDetailResponse(itinerary *db_models.Itinerary) *response_models.ItineraryDetailResponse {
	detail := &response_models.ItineraryDetailResponse{
		ID:          itinerary.ID.String(),
		Title:       itinerary.Title,
		Destination: itinerary.Destination,
		StartDate:   utils.FormatDate(itinerary.StartDate),
		EndDate:     utils.FormatDate(itinerary.EndDate),
		Days:        []response_models.DayPlanResponse{},
	}

	for _, day := range itinerary.Days {
		dayResponse := response_models.DayPlanResponse{
			ID:         day.ID.String(),
			DayNumber:  day.DayNumber,
			Date:       utils.FormatDate(day.Date),
			Notes:      day.Notes,
			Activities: []response_models.ScheduledActivityResponse{},
		}
		for _, activity := range day.Activities {
			dayResponse.Activities = append(dayResponse.Activities, toActivityResponse(activity))
		}
		detail.Days = append(detail.Days, dayResponse)
	}
	return detail
}

func toActivityResponse(activity db_models.ScheduledActivity) response_models.ScheduledActivityResponse {
	return response_models.ScheduledActivityResponse{
		ID:          activity.ID.String(),
		Name:        activity.Name,
		Description: activity.Description,
		Category:    activity.Category,
		StartTime:   activity.StartTime,
		EndTime:     activity.EndTime,
		Address:     activity.Address,
		Latitude:    activity.Latitude,
		Longitude:   activity.Longitude,
		Rating:      activity.Rating,
		PriceRange:  activity.PriceRange,
		WebsiteURL:  activity.WebsiteURL,
		Tags:        activity.Tags,
	}
}
