package repository

import (
	"context"

	"gorm.io/gorm"

	"recipehub/internal/domain"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubscriptionRepository) Delete(ctx context.Context, followerID, authorID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&domain.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SubscriptionRepository) Exists(ctx context.Context, followerID, authorID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	return count > 0, err
}

// ListByFollower returns the user's subscriptions in insertion order (row id
// ascending, oldest-followed first) with the followed author preloaded.
func (r *SubscriptionRepository) ListByFollower(ctx context.Context, followerID int64, limit, offset int) ([]domain.Subscription, int64, error) {
	var subs []domain.Subscription
	var total int64

	if err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("follower_id = ?", followerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Preload("Author").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&subs).Error; err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// ListFollowerIDs returns ids of everyone following the given author.
func (r *SubscriptionRepository) ListFollowerIDs(ctx context.Context, authorID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&domain.Subscription{}).
		Where("author_id = ?", authorID).
		Order("id ASC").
		Pluck("follower_id", &ids).Error
	return ids, err
}
