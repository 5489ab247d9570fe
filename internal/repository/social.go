package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// SocialRepository defines persistence operations on the social graph:
// follow edges and block edges between users.
type SocialRepository interface {
	Follow(ctx context.Context, followerID, followeeID uint) error
	Unfollow(ctx context.Context, followerID, followeeID uint) error
	Block(ctx context.Context, blockerID, blockedID uint) error
	Unblock(ctx context.Context, blockerID, blockedID uint) error
	FollowerIDs(ctx context.Context, userID uint) ([]uint, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	BlockedIDs(ctx context.Context, userID uint) ([]uint, error)
}

type socialRepository struct {
	db *gorm.DB
}

// NewSocialRepository returns a new SocialRepository implementation.
func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

// Follow inserts the single row representing the relationship. Both the
// follower's "following" set and the followee's "followers" set are views
// over this row, so the two sides can never disagree.
func (r *socialRepository) Follow(ctx context.Context, followerID, followeeID uint) error {
	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewAlreadyExistsError("Already following")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Unfollow is an idempotent delete; removing an absent edge is a no-op.
func (r *socialRepository) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) Block(ctx context.Context, blockerID, blockedID uint) error {
	edge := models.UserBlock{BlockerID: blockerID, BlockedID: blockedID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewAlreadyExistsError("User already blocked")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) Unblock(ctx context.Context, blockerID, blockedID uint) error {
	if err := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.UserBlock{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *socialRepository) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return r.edgeIDs(ctx, &models.Follow{}, "follower_id", "followee_id = ?", userID)
}

func (r *socialRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return r.edgeIDs(ctx, &models.Follow{}, "followee_id", "follower_id = ?", userID)
}

func (r *socialRepository) BlockedIDs(ctx context.Context, userID uint) ([]uint, error) {
	return r.edgeIDs(ctx, &models.UserBlock{}, "blocked_id", "blocker_id = ?", userID)
}

func (r *socialRepository) edgeIDs(ctx context.Context, model any, selectCol, where string, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(model).
		Where(where, userID).
		Order("created_at ASC").
		Pluck(selectCol, &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}
