package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")
	ErrDatabaseError        = errors.New("database error")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrItineraryNotFound    = errors.New("itinerary not found")
	ErrDayPlanNotFound      = errors.New("day plan not found")
	ErrActivityNotFound     = errors.New("activity not found")
	ErrNotItineraryOwner    = errors.New("not the itinerary owner")
	ErrInvalidPage          = errors.New("invalid page parameter")
	ErrInvalidPageSize      = errors.New("invalid page size parameter")
	ErrNoActivitySource     = errors.New("no activity source configured")
	ErrActivitySourceFailed = errors.New("activity source request failed")
)
