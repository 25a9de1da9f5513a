package repository

import (
	"context"

	"gorm.io/gorm"

	"recipehub/internal/domain"
)

// RecipeFilter narrows List. Zero values mean "no constraint".
type RecipeFilter struct {
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64
	InCartOf    int64
}

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// CreateWithIngredients writes the recipe, its ingredient rows and its tag
// links in one transaction. A failure partway leaves no partial recipe.
func (r *RecipeRepository) CreateWithIngredients(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := recipe.Ingredients
		recipe.Ingredients = nil
		recipe.Tags = nil

		if err := tx.Create(recipe).Error; err != nil {
			return err
		}

		for i := range ingredients {
			ingredients[i].RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		recipe.Ingredients = ingredients

		if len(tags) > 0 {
			if err := tx.Model(recipe).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		recipe.Tags = tags
		return nil
	})
}

// UpdateWithIngredients replaces the recipe's scalar fields, ingredient rows
// and tag links atomically.
func (r *RecipeRepository) UpdateWithIngredients(ctx context.Context, recipe *domain.Recipe, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ingredients := recipe.Ingredients
		recipe.Ingredients = nil
		recipe.Tags = nil

		if err := tx.Model(recipe).Updates(map[string]any{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"image":        recipe.Image,
			"cooking_time": recipe.CookingTime,
		}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&domain.RecipeIngredient{}).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].RecipeID = recipe.ID
		}
		if len(ingredients) > 0 {
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}
		recipe.Ingredients = ingredients

		if err := tx.Model(recipe).Association("Tags").Replace(&tags); err != nil {
			return err
		}
		recipe.Tags = tags
		return nil
	})
}

// Delete removes the recipe with everything hanging off it. The schema
// declares ON DELETE CASCADE, the transaction mirrors it so sqlite databases
// without the foreign-key pragma behave the same as postgres.
func (r *RecipeRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&domain.RecipeIngredient{},
			&domain.Favorite{},
			&domain.ShoppingCartItem{},
		} {
			if err := tx.Where("recipe_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Recipe{}, id).Error
	})
}

func (r *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	var recipe domain.Recipe
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		First(&recipe, id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) List(ctx context.Context, filter RecipeFilter, limit, offset int) ([]domain.Recipe, int64, error) {
	base := r.db.WithContext(ctx).Model(&domain.Recipe{})

	if filter.AuthorID != 0 {
		base = base.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		base = base.
			Joins("JOIN recipe_tags rt ON rt.recipe_id = recipes.id").
			Joins("JOIN tags t ON t.id = rt.tag_id").
			Where("t.slug IN ?", filter.TagSlugs).
			Distinct("recipes.*")
	}
	if filter.FavoritedBy != 0 {
		base = base.Joins(
			"JOIN favorites fav ON fav.recipe_id = recipes.id AND fav.user_id = ?",
			filter.FavoritedBy,
		)
	}
	if filter.InCartOf != 0 {
		base = base.Joins(
			"JOIN shopping_cart_items sci ON sci.recipe_id = recipes.id AND sci.user_id = ?",
			filter.InCartOf,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("recipes.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Session(&gorm.Session{}).
		Preload("Author").
		Preload("Ingredients.Ingredient").
		Preload("Tags").
		Order("recipes.created_at DESC, recipes.id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var recipes []domain.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// ListByAuthor returns the author's most recent recipes, capped by limit
// (limit <= 0 means all).
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID int64, limit int) ([]domain.Recipe, error) {
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []domain.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Recipe{}).
		Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
