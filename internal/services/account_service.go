package services

import (
	"context"

	"github.com/lib/pq"

	"wayfarer/internal/models/db_models"
	"wayfarer/internal/models/domain_models"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetAccount(ctx context.Context, accountID string) (*db_models.Account, error)
	GetPreferences(ctx context.Context, accountID string) (*domain_models.PreferenceProfile, error)
	UpdatePreferences(ctx context.Context, accountID string, request request_models.UpdatePreferencesRequest) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
}

func NewAccountService(accountRepo repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accountRepo: accountRepo}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashed,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, "user")
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) GetAccount(ctx context.Context, accountID string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

// GetPreferences returns nil (not an error) when the account has never set
// preferences, so callers can substitute the engine default.
func (a *AccountService) GetPreferences(ctx context.Context, accountID string) (*domain_models.PreferenceProfile, error) {
	account, err := a.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if len(account.Interests) == 0 && account.BudgetLevel == "" && account.TravelStyle == "" {
		return nil, nil
	}

	profile := &domain_models.PreferenceProfile{
		Interests:           account.Interests,
		BudgetLevel:         domain_models.BudgetLevel(account.BudgetLevel),
		TravelStyle:         domain_models.ParseTravelStyle(account.TravelStyle),
		DietaryRestrictions: account.DietaryRestrictions,
		PreferredTransport:  account.PreferredTransport,
	}
	if profile.BudgetLevel == "" {
		profile.BudgetLevel = domain_models.BudgetMid
	}
	return profile, nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, accountID string, request request_models.UpdatePreferencesRequest) error {
	if _, err := a.GetAccount(ctx, accountID); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"interests":            pqArray(request.Interests),
		"budget_level":         request.BudgetLevel,
		"travel_style":         string(domain_models.ParseTravelStyle(request.TravelStyle)),
		"dietary_restrictions": pqArray(request.DietaryRestrictions),
		"preferred_transport":  request.PreferredTransport,
	}
	if err := a.accountRepo.UpdatePreferences(ctx, accountID, fields); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// pqArray keeps empty slices as empty text[] columns instead of NULL.
func pqArray(values []string) pq.StringArray {
	if values == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(values)
}
