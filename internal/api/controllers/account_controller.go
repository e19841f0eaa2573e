package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/internal/models/request_models"
	"wayfarer/internal/models/response_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// SignUp godoc
// @Summary Register a new account
// @Description Create an account with name, email and password
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign up payload"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts/signup [post]
func (a *AccountController) SignUp(c *gin.Context) {
	var request request_models.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid sign up payload")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a JWT
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.LoginResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid login payload")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Logged in successfully")
}

// Me godoc
// @Summary Get the authenticated account
// @Tags Account
// @Produce json
// @Success 200 {object} response_models.AccountResponse
// @Security BearerAuth
// @Router /accounts/me [get]
func (a *AccountController) Me(c *gin.Context) {
	accountID := c.GetString("user_id")

	account, err := a.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AccountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
	}, "Account fetched successfully")
}

// GetPreferences godoc
// @Summary Get travel preferences
// @Tags Account
// @Produce json
// @Success 200 {object} response_models.PreferencesResponse
// @Security BearerAuth
// @Router /accounts/preferences [get]
func (a *AccountController) GetPreferences(c *gin.Context) {
	accountID := c.GetString("user_id")

	profile, err := a.accountService.GetPreferences(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	response := response_models.PreferencesResponse{}
	if profile != nil {
		response = response_models.PreferencesResponse{
			Interests:           profile.Interests,
			BudgetLevel:         string(profile.BudgetLevel),
			TravelStyle:         string(profile.TravelStyle),
			DietaryRestrictions: profile.DietaryRestrictions,
			PreferredTransport:  profile.PreferredTransport,
		}
	}

	utils.RespondSuccess(c, response, "Preferences fetched successfully")
}

// UpdatePreferences godoc
// @Summary Update travel preferences
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferencesRequest true "Preferences payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/preferences [put]
func (a *AccountController) UpdatePreferences(c *gin.Context) {
	accountID := c.GetString("user_id")

	var request request_models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid preferences payload")
		return
	}

	if err := a.accountService.UpdatePreferences(c.Request.Context(), accountID, request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Preferences updated successfully")
}
