package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// ActivityRepository defines persistence for the append-only activity log.
// There is deliberately no update or delete.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	Latest(ctx context.Context, limit int) ([]models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository returns a new ActivityRepository implementation.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *activityRepository) Latest(ctx context.Context, limit int) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Preload("TargetUser").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return activities, nil
}
