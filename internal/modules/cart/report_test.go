package cart

import (
	"testing"

	"recipehub/internal/domain"

	"github.com/stretchr/testify/assert"
)

func cartItem(recipeID int64, ingredients ...domain.RecipeIngredient) domain.ShoppingCartItem {
	return domain.ShoppingCartItem{
		RecipeID: recipeID,
		Recipe:   &domain.Recipe{ID: recipeID, Ingredients: ingredients},
	}
}

func ri(id int64, name, unit string, amount int) domain.RecipeIngredient {
	return domain.RecipeIngredient{
		IngredientID: id,
		Amount:       amount,
		Ingredient:   &domain.Ingredient{ID: id, Name: name, MeasurementUnit: unit},
	}
}

// Same ingredient across two recipes collapses into one summed line.
func TestAggregate_SumsByName(t *testing.T) {
	items := []domain.ShoppingCartItem{
		cartItem(1, ri(1, "Flour", "g", 200), ri(2, "Eggs", "pcs", 2)),
		cartItem(2, ri(1, "Flour", "g", 300)),
	}

	lines := Aggregate(items)

	assert.Equal(t, []LineItem{
		{Name: "Eggs", Amount: 2, Unit: "pcs"},
		{Name: "Flour", Amount: 500, Unit: "g"},
	}, lines)
}

// Distinct catalog rows sharing a name merge into a single line.
func TestAggregate_MergesByNameNotID(t *testing.T) {
	items := []domain.ShoppingCartItem{
		cartItem(1, ri(1, "Salt", "g", 5)),
		cartItem(2, ri(9, "Salt", "g", 3)),
	}

	lines := Aggregate(items)

	assert.Len(t, lines, 1)
	assert.Equal(t, LineItem{Name: "Salt", Amount: 8, Unit: "g"}, lines[0])
}

func TestAggregate_OrderIndependent(t *testing.T) {
	a := cartItem(1, ri(1, "Flour", "g", 200), ri(3, "Milk", "ml", 100))
	b := cartItem(2, ri(1, "Flour", "g", 300))

	forward := Aggregate([]domain.ShoppingCartItem{a, b})
	reverse := Aggregate([]domain.ShoppingCartItem{b, a})

	assert.Equal(t, forward, reverse)
}

func TestAggregate_SkipsUnloadedRows(t *testing.T) {
	items := []domain.ShoppingCartItem{
		{RecipeID: 1}, // recipe not preloaded
		cartItem(2, domain.RecipeIngredient{IngredientID: 5, Amount: 10}), // ingredient not preloaded
		cartItem(3, ri(1, "Flour", "g", 100)),
	}

	lines := Aggregate(items)

	assert.Equal(t, []LineItem{{Name: "Flour", Amount: 100, Unit: "g"}}, lines)
}

func TestRenderReport_Framing(t *testing.T) {
	report := RenderReport([]LineItem{
		{Name: "Eggs", Amount: 2, Unit: "pcs"},
		{Name: "Flour", Amount: 500, Unit: "g"},
	})

	assert.Equal(t, "Shopping list:\n\nEggs - 2 pcs\nFlour - 500 g\n\n\nHave a nice day!", report)
}

// An empty cart still renders the header and footer.
func TestRenderReport_Empty(t *testing.T) {
	report := RenderReport(nil)

	assert.Equal(t, "Shopping list:\n\n\n\nHave a nice day!", report)
}
