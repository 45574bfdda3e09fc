package matcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/pantry/internal/catalog"
	"github.com/vbonduro/pantry/internal/domain"
)

var now = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func item(id, name string, daysLeft float64) domain.InventoryItem {
	return domain.InventoryItem{
		ID:         id,
		Name:       name,
		Category:   "Produce",
		Quantity:   1,
		Unit:       "pieces",
		ExpiryDate: now.Add(time.Duration(daysLeft * float64(24*time.Hour))),
		Price:      1.5,
	}
}

func recipe(id string, ingredients ...domain.Ingredient) domain.Recipe {
	return domain.Recipe{ID: id, Name: "Recipe " + id, CookingTime: 10, Servings: 1, Ingredients: ingredients}
}

func required(name string) domain.Ingredient {
	return domain.Ingredient{Name: name, Amount: 1, Unit: "whole"}
}

func optional(name string) domain.Ingredient {
	return domain.Ingredient{Name: name, Amount: 1, Unit: "whole", Optional: true}
}

func ids(recipes []domain.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestMatchEmptyInventory(t *testing.T) {
	res := Match(nil, catalog.Default(), now)

	require.Len(t, res.Recipes, 3)
	for _, r := range res.Recipes {
		assert.Equal(t, 0, res.MatchPercentages[r.ID], r.Name)
	}
	assert.Empty(t, res.ExpiringIngredients)
	assert.Equal(t, []string{"1", "2", "3"}, ids(res.Recipes))
}

func TestMatchNilRecipesUsesDefaultCatalog(t *testing.T) {
	res := Match(nil, nil, now)
	assert.Equal(t, []string{"1", "2", "3"}, ids(res.Recipes))
}

func TestMatchEmptyCatalog(t *testing.T) {
	res := Match([]domain.InventoryItem{item("a", "pasta", 5)}, []domain.Recipe{}, now)
	assert.Empty(t, res.Recipes)
	assert.Empty(t, res.MatchPercentages)
}

func TestMatchFullMatch(t *testing.T) {
	inventory := []domain.InventoryItem{
		item("a", "pasta", 10),
		item("b", "tomato", 10),
		item("c", "garlic", 10),
		item("d", "olive oil", 10),
		item("e", "salt", 10),
		item("f", "pepper", 10),
	}

	res := Match(inventory, catalog.Default(), now)
	assert.Equal(t, 100, res.MatchPercentages["1"])
}

func TestMatchConcreteScenario(t *testing.T) {
	tomato := item("t", "tomato", 2)
	inventory := []domain.InventoryItem{
		item("p", "pasta", 10),
		tomato,
		item("g", "garlic", 20),
	}

	res := Match(inventory, catalog.Default(), now)

	assert.Equal(t, 50, res.MatchPercentages["1"])
	assert.Equal(t, []domain.InventoryItem{tomato}, res.ExpiringIngredients["1"])

	// Omelette and stir fry each match one of eight required ingredients.
	assert.Equal(t, 13, res.MatchPercentages["2"])
	assert.Equal(t, 13, res.MatchPercentages["3"])
	assert.Equal(t, []domain.InventoryItem{tomato}, res.ExpiringIngredients["3"])
	assert.NotContains(t, res.ExpiringIngredients, "2")

	assert.Equal(t, []string{"1", "3", "2"}, ids(res.Recipes))
}

func TestMatchExpiryWindowBoundary(t *testing.T) {
	tests := []struct {
		name     string
		daysLeft float64
		expiring bool
	}{
		{name: "exactly three days", daysLeft: 3, expiring: true},
		{name: "under one day", daysLeft: 0.25, expiring: true},
		{name: "exactly now", daysLeft: 0, expiring: false},
		{name: "already expired", daysLeft: -1, expiring: false},
		{name: "expired an hour ago", daysLeft: -1.0 / 24, expiring: false},
		{name: "exactly four days", daysLeft: 4, expiring: false},
		{name: "three days and an hour", daysLeft: 3 + 1.0/24, expiring: false},
	}

	recipes := []domain.Recipe{recipe("r", required("milk"))}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match([]domain.InventoryItem{item("m", "milk", tt.daysLeft)}, recipes, now)

			assert.Equal(t, 100, res.MatchPercentages["r"])
			if tt.expiring {
				assert.Len(t, res.ExpiringIngredients["r"], 1)
			} else {
				assert.NotContains(t, res.ExpiringIngredients, "r")
			}
		})
	}
}

func TestMatchExpiringSortsFirst(t *testing.T) {
	recipes := []domain.Recipe{
		recipe("fresh", required("rice"), required("beans")),
		recipe("expiring", required("spinach"), required("feta")),
	}
	inventory := []domain.InventoryItem{
		item("r", "rice", 30),
		item("s", "spinach", 1),
	}

	res := Match(inventory, recipes, now)

	assert.Equal(t, 50, res.MatchPercentages["fresh"])
	assert.Equal(t, 50, res.MatchPercentages["expiring"])
	assert.Equal(t, []string{"expiring", "fresh"}, ids(res.Recipes))
}

func TestMatchExpiringOutranksHigherPercentage(t *testing.T) {
	recipes := []domain.Recipe{
		recipe("complete", required("rice")),
		recipe("partial", required("spinach"), required("feta"), required("lemon")),
	}
	inventory := []domain.InventoryItem{
		item("r", "rice", 30),
		item("s", "spinach", 2),
	}

	res := Match(inventory, recipes, now)

	assert.Equal(t, 100, res.MatchPercentages["complete"])
	assert.Equal(t, 33, res.MatchPercentages["partial"])
	assert.Equal(t, []string{"partial", "complete"}, ids(res.Recipes))
}

func TestMatchSortsByPercentageDescending(t *testing.T) {
	recipes := []domain.Recipe{
		recipe("low", required("rice"), required("beans"), required("corn"), required("salsa")),
		recipe("high", required("rice")),
		recipe("mid", required("rice"), required("eggs")),
	}
	inventory := []domain.InventoryItem{item("r", "rice", 30)}

	res := Match(inventory, recipes, now)
	assert.Equal(t, []string{"high", "mid", "low"}, ids(res.Recipes))
}

func TestMatchTiesKeepCatalogOrder(t *testing.T) {
	recipes := []domain.Recipe{
		recipe("c", required("rice"), required("beans")),
		recipe("a", required("rice"), required("corn")),
		recipe("b", required("rice"), required("peas")),
		recipe("top", required("rice")),
	}
	inventory := []domain.InventoryItem{item("r", "rice", 30)}

	res := Match(inventory, recipes, now)
	assert.Equal(t, []string{"top", "c", "a", "b"}, ids(res.Recipes))
}

func TestMatchSubstringSymmetry(t *testing.T) {
	tests := []struct {
		name       string
		item       string
		ingredient string
		matches    bool
	}{
		{name: "item name contains ingredient", item: "Tomatoes", ingredient: "tomato", matches: true},
		{name: "ingredient contains item name", item: "Oil", ingredient: "olive oil", matches: true},
		{name: "case insensitive", item: "ORGANIC MILK", ingredient: "Milk", matches: true},
		{name: "unrelated", item: "Avocados", ingredient: "tomato", matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Match(
				[]domain.InventoryItem{item("x", tt.item, 10)},
				[]domain.Recipe{recipe("r", required(tt.ingredient))},
				now,
			)
			if tt.matches {
				assert.Equal(t, 100, res.MatchPercentages["r"])
			} else {
				assert.Equal(t, 0, res.MatchPercentages["r"])
			}
		})
	}
}

func TestMatchFirstInventoryMatchWins(t *testing.T) {
	inventory := []domain.InventoryItem{
		item("fresh", "tomato", 10),
		item("old", "cherry tomato", 1),
	}

	res := Match(inventory, []domain.Recipe{recipe("r", required("tomato"))}, now)

	assert.Equal(t, 100, res.MatchPercentages["r"])
	assert.NotContains(t, res.ExpiringIngredients, "r")
}

func TestMatchOptionalIngredientsCountTowardMatches(t *testing.T) {
	recipes := []domain.Recipe{recipe("r", required("bread"), optional("jam"))}
	inventory := []domain.InventoryItem{
		item("b", "bread", 10),
		item("j", "jam", 10),
	}

	res := Match(inventory, recipes, now)
	assert.Equal(t, 200, res.MatchPercentages["r"])
}

func TestMatchAllOptionalRecipe(t *testing.T) {
	recipes := []domain.Recipe{recipe("r", optional("parsley"), optional("chives"))}

	res := Match(nil, recipes, now)
	assert.Equal(t, 100, res.MatchPercentages["r"])
}

func TestMatchDuplicateExpiringEntries(t *testing.T) {
	pepper := item("p", "pepper", 1)

	res := Match([]domain.InventoryItem{pepper}, catalog.Default(), now)

	// The omelette lists both "bell pepper" and "pepper"; each matches the
	// same inventory item.
	assert.Equal(t, []domain.InventoryItem{pepper, pepper}, res.ExpiringIngredients["3"])
	assert.Equal(t, 25, res.MatchPercentages["3"])
}

func TestMatchIsIdempotent(t *testing.T) {
	inventory := []domain.InventoryItem{
		item("p", "pasta", 10),
		item("t", "tomato", 2),
		item("e", "eggs", 1),
	}
	recipes := catalog.Default()

	first := Match(inventory, recipes, now)
	second := Match(inventory, recipes, now)

	assert.Equal(t, first, second)
}

func TestMatchDoesNotMutateInputs(t *testing.T) {
	inventory := []domain.InventoryItem{
		item("e", "eggs", 1),
		item("p", "pasta", 10),
	}
	recipes := catalog.Default()

	inventoryBefore := append([]domain.InventoryItem(nil), inventory...)
	recipesBefore := append([]domain.Recipe(nil), recipes...)

	res := Match(inventory, recipes, now)

	assert.Equal(t, inventoryBefore, inventory)
	assert.Equal(t, recipesBefore, recipes)
	// Omelette uses the expiring eggs so it moves ahead in the result only.
	assert.Equal(t, "3", res.Recipes[0].ID)
	assert.Equal(t, "1", recipes[0].ID)
}

func TestMatchDayBoundaryDependsOnNow(t *testing.T) {
	inventory := []domain.InventoryItem{item("m", "milk", 3.5)}
	recipes := []domain.Recipe{recipe("r", required("milk"))}

	before := Match(inventory, recipes, now)
	after := Match(inventory, recipes, now.Add(12*time.Hour))

	assert.NotContains(t, before.ExpiringIngredients, "r")
	assert.Contains(t, after.ExpiringIngredients, "r")
}
