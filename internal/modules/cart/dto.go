package cart

import "recipehub/internal/domain"

// RecipeBrief is the minimal recipe representation returned after a
// successful add.
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

func ToRecipeBrief(r *domain.Recipe) RecipeBrief {
	return RecipeBrief{
		ID:          r.ID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
