package recipe

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"recipehub/internal/domain"
	"recipehub/internal/repository"
)

type Service struct {
	recipes     RecipeRepository
	ingredients IngredientResolver
	tags        TagResolver
	users       UserGetter
	favorites   MembershipChecker
	cart        MembershipChecker
	subs        SubscriptionChecker
	notifier    PublishNotifier
}

func NewService(
	recipes RecipeRepository,
	ingredients IngredientResolver,
	tags TagResolver,
	users UserGetter,
	favorites MembershipChecker,
	cart MembershipChecker,
	subs SubscriptionChecker,
	notifier PublishNotifier,
) *Service {
	return &Service{
		recipes:     recipes,
		ingredients: ingredients,
		tags:        tags,
		users:       users,
		favorites:   favorites,
		cart:        cart,
		subs:        subs,
		notifier:    notifier,
	}
}

// Create publishes a recipe for the acting user. The recipe row, its
// ingredient rows and its tag links are written in one transaction; resolving
// an unknown ingredient or tag id fails before anything is written.
func (s *Service) Create(ctx context.Context, actorID int64, req CreateRecipeRequest) (*RecipeResponse, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	rows, tags, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		AuthorID:    actor.ID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		Ingredients: rows,
	}
	if err := s.recipes.CreateWithIngredients(ctx, recipe, tags); err != nil {
		return nil, err
	}
	recipe.Author = actor

	if s.notifier != nil {
		s.notifier.RecipePublished(ctx, recipe)
	}

	return s.buildResponse(ctx, recipe, actorID)
}

func (s *Service) Get(ctx context.Context, actorID, recipeID int64) (*RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return s.buildResponse(ctx, recipe, actorID)
}

func (s *Service) List(ctx context.Context, actorID int64, q ListQuery) ([]RecipeResponse, int64, error) {
	filter := repository.RecipeFilter{
		AuthorID: q.AuthorID,
		TagSlugs: q.TagSlugs,
	}
	if q.Favorited && actorID != 0 {
		filter.FavoritedBy = actorID
	}
	if q.InShoppingCart && actorID != 0 {
		filter.InCartOf = actorID
	}

	recipes, total, err := s.recipes.List(ctx, filter, q.PerPage, (q.Page-1)*q.PerPage)
	if err != nil {
		return nil, 0, err
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		resp, err := s.buildResponse(ctx, &recipes[i], actorID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *resp)
	}
	return out, total, nil
}

func (s *Service) Update(ctx context.Context, actorID, recipeID int64, req UpdateRecipeRequest) (*RecipeResponse, error) {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !canMutate(actor, recipe) {
		return nil, ErrForbidden
	}

	rows, tags, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.Image = req.Image
	recipe.CookingTime = req.CookingTime
	recipe.Ingredients = rows
	if err := s.recipes.UpdateWithIngredients(ctx, recipe, tags); err != nil {
		return nil, err
	}

	return s.buildResponse(ctx, recipe, actorID)
}

func (s *Service) Delete(ctx context.Context, actorID, recipeID int64) error {
	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !canMutate(actor, recipe) {
		return ErrForbidden
	}

	return s.recipes.Delete(ctx, recipeID)
}

// resolve turns the request's ingredient amounts and tag ids into entity
// rows. Duplicate ingredient ids in the payload collapse into one row with
// their amounts summed, so a recipe never references an ingredient twice.
func (s *Service) resolve(ctx context.Context, req CreateRecipeRequest) ([]domain.RecipeIngredient, []domain.Tag, error) {
	if req.CookingTime < 1 {
		return nil, nil, ErrValidation
	}

	amounts := make(map[int64]int, len(req.Ingredients))
	for _, ia := range req.Ingredients {
		if ia.Amount < 1 {
			return nil, nil, ErrValidation
		}
		amounts[ia.ID] += ia.Amount
	}

	ids := make([]int64, 0, len(amounts))
	for id := range amounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	found, err := s.ingredients.GetByIDs(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	if len(found) != len(ids) {
		return nil, nil, ErrIngredientNotFound
	}

	byID := make(map[int64]domain.Ingredient, len(found))
	for _, ing := range found {
		byID[ing.ID] = ing
	}

	rows := make([]domain.RecipeIngredient, 0, len(ids))
	for _, id := range ids {
		ing := byID[id]
		rows = append(rows, domain.RecipeIngredient{
			IngredientID: id,
			Amount:       amounts[id],
			Ingredient:   &ing,
		})
	}

	tags, err := s.tags.GetByIDs(ctx, dedupe(req.Tags))
	if err != nil {
		return nil, nil, err
	}
	if len(tags) != len(dedupe(req.Tags)) {
		return nil, nil, ErrTagNotFound
	}

	return rows, tags, nil
}

func (s *Service) buildResponse(ctx context.Context, r *domain.Recipe, actorID int64) (*RecipeResponse, error) {
	author := r.Author
	if author == nil {
		var err error
		author, err = s.users.GetByID(ctx, r.AuthorID)
		if err != nil {
			return nil, err
		}
	}

	isSubscribed := false
	isFavorited := false
	isInCart := false
	if actorID != 0 {
		var err error
		if actorID != author.ID {
			if isSubscribed, err = s.subs.Exists(ctx, actorID, author.ID); err != nil {
				return nil, err
			}
		}
		if isFavorited, err = s.favorites.Exists(ctx, actorID, r.ID); err != nil {
			return nil, err
		}
		if isInCart, err = s.cart.Exists(ctx, actorID, r.ID); err != nil {
			return nil, err
		}
	}

	lines := make([]IngredientLine, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		line := IngredientLine{ID: ri.IngredientID, Amount: ri.Amount}
		if ri.Ingredient != nil {
			line.Name = ri.Ingredient.Name
			line.MeasurementUnit = ri.Ingredient.MeasurementUnit
		}
		lines = append(lines, line)
	}

	tags := r.Tags
	if tags == nil {
		tags = []domain.Tag{}
	}

	return &RecipeResponse{
		ID: r.ID,
		Author: AuthorBrief{
			ID:           author.ID,
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			IsSubscribed: isSubscribed,
		},
		Name:             r.Name,
		Text:             r.Text,
		Image:            r.Image,
		CookingTime:      r.CookingTime,
		Ingredients:      lines,
		Tags:             tags,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInCart,
		CreatedAt:        r.CreatedAt,
	}, nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
