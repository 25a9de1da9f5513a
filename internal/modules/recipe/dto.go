package recipe

import (
	"time"

	"recipehub/internal/domain"
)

type IngredientAmount struct {
	ID     int64 `json:"id" validate:"required"`
	Amount int   `json:"amount" validate:"required,gte=1"`
}

type CreateRecipeRequest struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Text        string             `json:"text" validate:"required"`
	Image       string             `json:"image" validate:"max=500"`
	CookingTime int                `json:"cooking_time" validate:"required,gte=1"`
	Ingredients []IngredientAmount `json:"ingredients" validate:"required,min=1,dive"`
	Tags        []int64            `json:"tags"`
}

// UpdateRecipeRequest carries the full replacement state; partial updates are
// not supported.
type UpdateRecipeRequest = CreateRecipeRequest

type ListQuery struct {
	AuthorID       int64
	TagSlugs       []string
	Favorited      bool
	InShoppingCart bool
	Page           int
	PerPage        int
}

type AuthorBrief struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

type IngredientLine struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type RecipeResponse struct {
	ID               int64            `json:"id"`
	Author           AuthorBrief      `json:"author"`
	Name             string           `json:"name"`
	Text             string           `json:"text"`
	Image            string           `json:"image"`
	CookingTime      int              `json:"cooking_time"`
	Ingredients      []IngredientLine `json:"ingredients"`
	Tags             []domain.Tag     `json:"tags"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	CreatedAt        time.Time        `json:"created_at"`
}

type RecipeListResponse struct {
	Recipes    []RecipeResponse `json:"recipes"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}
