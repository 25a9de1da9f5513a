package repository

import (
	"context"

	"gorm.io/gorm"

	"recipehub/internal/domain"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) Create(ctx context.Context, item *domain.ShoppingCartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *CartRepository) Delete(ctx context.Context, userID, recipeID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&domain.ShoppingCartItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *CartRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.ShoppingCartItem{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	return count > 0, err
}

// ListByUser returns the user's cart with each recipe's ingredient rows and
// their catalog entries preloaded, ready for aggregation.
func (r *CartRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ShoppingCartItem, error) {
	var items []domain.ShoppingCartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Recipe.Ingredients.Ingredient").
		Find(&items).Error
	return items, err
}
