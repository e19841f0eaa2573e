package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wayfarer/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	FindByID(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByAccount(ctx context.Context, accountID string) ([]db_models.Itinerary, error)
	UpdateTitle(ctx context.Context, id string, title string) error
	Delete(ctx context.Context, id string) error
	FindActivity(ctx context.Context, activityID string) (*db_models.ScheduledActivity, error)
	UpdateActivity(ctx context.Context, activity *db_models.ScheduledActivity) error
	DeleteActivity(ctx context.Context, activityID string) error
	FindOwnerOfActivity(ctx context.Context, activityID string) (string, error)
	SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindByID(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		First(&itinerary, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &itinerary, nil
}

func (r *itineraryRepository) ListByAccount(ctx context.Context, accountID string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) UpdateTitle(ctx context.Context, id string, title string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Itinerary{}).
		Where("id = ?", id).
		Update("title", title).Error
}

func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id).Error
}

func (r *itineraryRepository) FindActivity(ctx context.Context, activityID string) (*db_models.ScheduledActivity, error) {
	var activity db_models.ScheduledActivity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", activityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *itineraryRepository) UpdateActivity(ctx context.Context, activity *db_models.ScheduledActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *itineraryRepository) DeleteActivity(ctx context.Context, activityID string) error {
	return r.db.WithContext(ctx).Delete(&db_models.ScheduledActivity{}, "id = ?", activityID).Error
}

// FindOwnerOfActivity resolves an activity back to the account that owns the
// enclosing itinerary, for ownership checks on activity edits.
func (r *itineraryRepository) FindOwnerOfActivity(ctx context.Context, activityID string) (string, error) {
	var accountID string
	err := r.db.WithContext(ctx).
		Model(&db_models.ScheduledActivity{}).
		Select("itineraries.account_id").
		Joins("JOIN day_plans ON day_plans.id = scheduled_activities.day_plan_id").
		Joins("JOIN itineraries ON itineraries.id = day_plans.itinerary_id").
		Where("scheduled_activities.id = ?", activityID).
		Scan(&accountID).Error
	if err != nil {
		return "", err
	}
	return accountID, nil
}

func (r *itineraryRepository) SearchByDestination(ctx context.Context, destination string, limit int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("destination ILIKE ?", "%"+destination+"%").
		Order("created_at DESC").
		Limit(limit).
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}
