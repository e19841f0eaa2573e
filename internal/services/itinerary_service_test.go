package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/domain_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/pkg/utils"
)

type fakeItineraryRepo struct {
	inserted     *db_models.Itinerary
	byID         map[string]*db_models.Itinerary
	activities   map[string]*db_models.ScheduledActivity
	activityOwns map[string]string
	deletedIDs   []string
	titles       map[string]string
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{
		byID:         map[string]*db_models.Itinerary{},
		activities:   map[string]*db_models.ScheduledActivity{},
		activityOwns: map[string]string{},
		titles:       map[string]string{},
	}
}

func (f *fakeItineraryRepo) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	f.inserted = itinerary
	return nil
}

func (f *fakeItineraryRepo) FindByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	return f.byID[id], nil
}

func (f *fakeItineraryRepo) ListByAccount(ctx context.Context, accountID string) ([]db_models.Itinerary, error) {
	var out []db_models.Itinerary
	for _, itinerary := range f.byID {
		if itinerary.AccountID.String() == accountID {
			out = append(out, *itinerary)
		}
	}
	return out, nil
}

func (f *fakeItineraryRepo) UpdateTitle(ctx context.Context, id string, title string) error {
	f.titles[id] = title
	return nil
}

func (f *fakeItineraryRepo) Delete(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

func (f *fakeItineraryRepo) FindActivity(ctx context.Context, activityID string) (*db_models.ScheduledActivity, error) {
	return f.activities[activityID], nil
}

func (f *fakeItineraryRepo) UpdateActivity(ctx context.Context, activity *db_models.ScheduledActivity) error {
	f.activities[activity.ID.String()] = activity
	return nil
}

func (f *fakeItineraryRepo) DeleteActivity(ctx context.Context, activityID string) error {
	delete(f.activities, activityID)
	return nil
}

func (f *fakeItineraryRepo) FindOwnerOfActivity(ctx context.Context, activityID string) (string, error) {
	return f.activityOwns[activityID], nil
}

func (f *fakeItineraryRepo) SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Itinerary, error) {
	return nil, nil
}

type fakeAccountService struct {
	account *db_models.Account
	profile *domain_models.PreferenceProfile
}

func (f *fakeAccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	return nil
}

func (f *fakeAccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	return "", nil
}

func (f *fakeAccountService) GetAccount(ctx context.Context, accountID string) (*db_models.Account, error) {
	if f.account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return f.account, nil
}

func (f *fakeAccountService) GetPreferences(ctx context.Context, accountID string) (*domain_models.PreferenceProfile, error) {
	return f.profile, nil
}

func (f *fakeAccountService) UpdatePreferences(ctx context.Context, accountID string, request request_models.UpdatePreferencesRequest) error {
	return nil
}

type fakeGenerator struct {
	lastParams GenerationParams
}

func (f *fakeGenerator) Generate(ctx context.Context, params GenerationParams) (*domain_models.Itinerary, error) {
	f.lastParams = params
	return &domain_models.Itinerary{
		Title:       params.Title,
		Destination: params.Destination,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Owner:       params.Owner,
		DayPlans: []domain_models.DayPlan{
			{Date: params.StartDate, Notes: "Day 1 in " + params.Destination},
		},
	}, nil
}

func testAccount() *db_models.Account {
	account := &db_models.Account{Name: "Alex", Email: "alex@example.com"}
	account.ID = uuid.New()
	return account
}

func TestGenerateItinerary_RejectsInvertedDates(t *testing.T) {
	account := testAccount()
	service := NewItineraryService(newFakeItineraryRepo(), &fakeAccountService{account: account}, &fakeGenerator{})

	_, err := service.GenerateItinerary(context.Background(), account.ID.String(), request_models.GenerateItineraryRequest{
		Destination: "Rome",
		StartDate:   "2024-06-03",
		EndDate:     "2024-06-01",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestGenerateItinerary_RejectsMalformedDates(t *testing.T) {
	account := testAccount()
	service := NewItineraryService(newFakeItineraryRepo(), &fakeAccountService{account: account}, &fakeGenerator{})

	_, err := service.GenerateItinerary(context.Background(), account.ID.String(), request_models.GenerateItineraryRequest{
		Destination: "Rome",
		StartDate:   "June 1st",
		EndDate:     "2024-06-03",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateItinerary_PersistsGeneratedPlan(t *testing.T) {
	account := testAccount()
	repo := newFakeItineraryRepo()
	generator := &fakeGenerator{}
	service := NewItineraryService(repo, &fakeAccountService{account: account}, generator)

	detail, err := service.GenerateItinerary(context.Background(), account.ID.String(), request_models.GenerateItineraryRequest{
		Destination: "Rome",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.inserted)
	assert.Equal(t, account.ID, repo.inserted.AccountID)
	assert.Equal(t, "Rome", repo.inserted.Destination)
	require.Len(t, detail.Days, 1)
	assert.Equal(t, 1, detail.Days[0].DayNumber)
}

func TestGenerateItinerary_RequestOverridesStoredProfile(t *testing.T) {
	account := testAccount()
	stored := &domain_models.PreferenceProfile{
		Interests:   []string{"culture"},
		BudgetLevel: domain_models.BudgetLow,
		TravelStyle: domain_models.StyleRelaxed,
	}
	generator := &fakeGenerator{}
	service := NewItineraryService(newFakeItineraryRepo(), &fakeAccountService{account: account, profile: stored}, generator)

	_, err := service.GenerateItinerary(context.Background(), account.ID.String(), request_models.GenerateItineraryRequest{
		Destination: "Rome",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-03",
		Interests:   []string{"food"},
	})

	require.NoError(t, err)
	require.NotNil(t, generator.lastParams.Profile)
	assert.Equal(t, []string{"food"}, generator.lastParams.Profile.Interests)
	// Untouched fields keep the stored values.
	assert.Equal(t, domain_models.BudgetLow, generator.lastParams.Profile.BudgetLevel)
	assert.Equal(t, domain_models.StyleRelaxed, generator.lastParams.Profile.TravelStyle)
}

func TestUpdateItinerary_OwnershipEnforced(t *testing.T) {
	account := testAccount()
	repo := newFakeItineraryRepo()

	itinerary := &db_models.Itinerary{AccountID: uuid.New(), Title: "Someone else's trip"}
	itinerary.ID = uuid.New()
	repo.byID[itinerary.ID.String()] = itinerary

	service := NewItineraryService(repo, &fakeAccountService{account: account}, &fakeGenerator{})

	err := service.UpdateItinerary(context.Background(), account.ID.String(), itinerary.ID.String(), request_models.UpdateItineraryRequest{Title: "Mine now"})
	assert.ErrorIs(t, err, utils.ErrNotItineraryOwner)

	err = service.DeleteItinerary(context.Background(), account.ID.String(), itinerary.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotItineraryOwner)
}

func TestUpdateItinerary_NotFound(t *testing.T) {
	account := testAccount()
	service := NewItineraryService(newFakeItineraryRepo(), &fakeAccountService{account: account}, &fakeGenerator{})

	err := service.UpdateItinerary(context.Background(), account.ID.String(), uuid.NewString(), request_models.UpdateItineraryRequest{Title: "New title"})
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestUpdateActivity_PartialFields(t *testing.T) {
	account := testAccount()
	repo := newFakeItineraryRepo()

	activity := &db_models.ScheduledActivity{Name: "Old Name", Description: "Keep me", StartTime: "09:00", EndTime: "11:30"}
	activity.ID = uuid.New()
	repo.activities[activity.ID.String()] = activity
	repo.activityOwns[activity.ID.String()] = account.ID.String()

	service := NewItineraryService(repo, &fakeAccountService{account: account}, &fakeGenerator{})

	newName := "New Name"
	err := service.UpdateActivity(context.Background(), account.ID.String(), activity.ID.String(), request_models.UpdateActivityRequest{Name: &newName})

	require.NoError(t, err)
	updated := repo.activities[activity.ID.String()]
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Keep me", updated.Description)
	assert.Equal(t, "09:00", updated.StartTime)
}

func TestRemoveActivity_OwnershipEnforced(t *testing.T) {
	account := testAccount()
	repo := newFakeItineraryRepo()

	activity := &db_models.ScheduledActivity{Name: "Theirs"}
	activity.ID = uuid.New()
	repo.activities[activity.ID.String()] = activity
	repo.activityOwns[activity.ID.String()] = uuid.NewString()

	service := NewItineraryService(repo, &fakeAccountService{account: account}, &fakeGenerator{})

	err := service.RemoveActivity(context.Background(), account.ID.String(), activity.ID.String())
	assert.ErrorIs(t, err, utils.ErrNotItineraryOwner)
	assert.Contains(t, repo.activities, activity.ID.String())
}
