package cart

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"recipehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(ctx context.Context, item *domain.ShoppingCartItem) error {
	args := m.Called(ctx, item)
	if item != nil {
		item.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) Exists(ctx context.Context, userID, recipeID int64) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ShoppingCartItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingCartItem), args.Error(1)
}

type MockRecipeGetter struct {
	mock.Mock
}

func (m *MockRecipeGetter) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func TestService_Add_Success(t *testing.T) {
	mockItems := new(MockCartRepository)
	mockRecipes := new(MockRecipeGetter)

	recipe := &domain.Recipe{ID: 7, Name: "Pancakes", CookingTime: 20}
	mockRecipes.On("GetByID", mock.Anything, int64(7)).Return(recipe, nil)
	mockItems.On("Exists", mock.Anything, int64(1), int64(7)).Return(false, nil)
	mockItems.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockItems, mockRecipes)

	brief, err := service.Add(context.Background(), 1, 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), brief.ID)
	mockItems.AssertExpectations(t)
}

func TestService_Add_Twice(t *testing.T) {
	mockItems := new(MockCartRepository)
	mockRecipes := new(MockRecipeGetter)

	recipe := &domain.Recipe{ID: 7, Name: "Pancakes"}
	mockRecipes.On("GetByID", mock.Anything, int64(7)).Return(recipe, nil)
	mockItems.On("Exists", mock.Anything, int64(1), int64(7)).Return(false, nil).Once()
	mockItems.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	service := NewService(mockItems, mockRecipes)

	_, err := service.Add(context.Background(), 1, 7)
	assert.NoError(t, err)

	mockItems.On("Exists", mock.Anything, int64(1), int64(7)).Return(true, nil).Once()

	_, err = service.Add(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAlreadyInCart)
	mockItems.AssertNumberOfCalls(t, "Create", 1)
}

// A concurrent duplicate slips past the existence check and hits the unique
// index on (user_id, recipe_id); the constraint error maps to the same
// sentinel the fast path returns.
func TestService_Add_RaceLosesToUniqueIndex(t *testing.T) {
	mockItems := new(MockCartRepository)
	mockRecipes := new(MockRecipeGetter)

	mockRecipes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Recipe{ID: 7}, nil)
	mockItems.On("Exists", mock.Anything, int64(1), int64(7)).Return(false, nil)
	mockItems.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: shopping_cart_items.user_id, shopping_cart_items.recipe_id"))

	service := NewService(mockItems, mockRecipes)

	_, err := service.Add(context.Background(), 1, 7)

	assert.ErrorIs(t, err, ErrAlreadyInCart)
}

func TestService_Add_RecipeMissing(t *testing.T) {
	mockItems := new(MockCartRepository)
	mockRecipes := new(MockRecipeGetter)

	mockRecipes.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockItems, mockRecipes)

	_, err := service.Add(context.Background(), 1, 404)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestService_Remove_NotInCart(t *testing.T) {
	mockItems := new(MockCartRepository)
	mockRecipes := new(MockRecipeGetter)

	mockRecipes.On("GetByID", mock.Anything, int64(7)).Return(&domain.Recipe{ID: 7}, nil)
	mockItems.On("Delete", mock.Anything, int64(1), int64(7)).Return(false, nil)

	service := NewService(mockItems, mockRecipes)

	err := service.Remove(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrNotInCart)
}

func TestService_BuildShoppingList(t *testing.T) {
	mockItems := new(MockCartRepository)
	mockRecipes := new(MockRecipeGetter)

	flour := &domain.Ingredient{ID: 1, Name: "Flour", MeasurementUnit: "g"}
	items := []domain.ShoppingCartItem{
		{UserID: 1, RecipeID: 7, Recipe: &domain.Recipe{
			ID:          7,
			Ingredients: []domain.RecipeIngredient{{IngredientID: 1, Amount: 200, Ingredient: flour}},
		}},
		{UserID: 1, RecipeID: 8, Recipe: &domain.Recipe{
			ID:          8,
			Ingredients: []domain.RecipeIngredient{{IngredientID: 1, Amount: 300, Ingredient: flour}},
		}},
	}
	mockItems.On("ListByUser", mock.Anything, int64(1)).Return(items, nil)

	service := NewService(mockItems, mockRecipes)

	report, err := service.BuildShoppingList(context.Background(), 1)

	assert.NoError(t, err)
	assert.Contains(t, report, "Flour - 500 g")
}
