package feed

import (
	"context"
	"log"

	"recipehub/internal/domain"
)

// SubscriberSource lists everyone following an author.
type SubscriberSource interface {
	ListFollowerIDs(ctx context.Context, authorID int64) ([]int64, error)
}

type RecipeEvent struct {
	Type        string `json:"type"`
	RecipeID    int64  `json:"recipe_id"`
	RecipeName  string `json:"recipe_name"`
	AuthorID    int64  `json:"author_id"`
	CookingTime int    `json:"cooking_time"`
}

// Notifier pushes recipe events to online followers. Delivery is best
// effort; offline followers simply miss the event.
type Notifier struct {
	hub  *Hub
	subs SubscriberSource
}

func NewNotifier(hub *Hub, subs SubscriberSource) *Notifier {
	return &Notifier{hub: hub, subs: subs}
}

func (n *Notifier) RecipePublished(ctx context.Context, recipe *domain.Recipe) {
	followers, err := n.subs.ListFollowerIDs(ctx, recipe.AuthorID)
	if err != nil {
		log.Printf("feed: listing followers of author %d failed: %v", recipe.AuthorID, err)
		return
	}

	event := RecipeEvent{
		Type:        "recipe_published",
		RecipeID:    recipe.ID,
		RecipeName:  recipe.Name,
		AuthorID:    recipe.AuthorID,
		CookingTime: recipe.CookingTime,
	}
	for _, followerID := range followers {
		if !n.hub.IsOnline(followerID) {
			continue
		}
		n.hub.SendToUser(followerID, event)
	}
}
