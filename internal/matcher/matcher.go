// Package matcher ranks recipes by how much of each recipe the current
// inventory covers, surfacing recipes that use items about to expire.
//
// Match is a pure function of its inputs and the supplied time: it never
// mutates the inventory or the catalog and keeps no state between calls.
package matcher

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/vbonduro/pantry/internal/catalog"
	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/expiry"
)

// Result is the ranked view of a recipe catalog against an inventory.
type Result struct {
	// Recipes is a reordered copy of the catalog: recipes using expiring
	// items first, then by descending match percentage, catalog order on ties.
	Recipes []domain.Recipe `json:"recipes"`
	// MatchPercentages maps recipe id to its match percentage.
	MatchPercentages map[string]int `json:"match_percentages"`
	// ExpiringIngredients maps recipe id to the matched inventory items that
	// expire within expiry.Window days. Recipes without any are absent.
	ExpiringIngredients map[string][]domain.InventoryItem `json:"expiring_ingredients"`
}

// Match scores every recipe against inventory. A nil recipes slice selects
// the built-in catalog.
func Match(inventory []domain.InventoryItem, recipes []domain.Recipe, now time.Time) *Result {
	if recipes == nil {
		recipes = catalog.Default()
	}

	res := &Result{
		MatchPercentages:    make(map[string]int, len(recipes)),
		ExpiringIngredients: make(map[string][]domain.InventoryItem),
	}

	for _, recipe := range recipes {
		matched := 0
		var expiring []domain.InventoryItem

		for _, ing := range recipe.Ingredients {
			item, ok := findItem(inventory, ing.Name)
			if !ok {
				continue
			}
			matched++
			// The same item may be listed twice when two ingredients match it.
			if expiry.InWindow(expiry.DaysUntil(item.ExpiryDate, now)) {
				expiring = append(expiring, item)
			}
		}

		res.MatchPercentages[recipe.ID] = percentage(matched, len(recipe.RequiredIngredients()))
		if len(expiring) > 0 {
			res.ExpiringIngredients[recipe.ID] = expiring
		}
	}

	res.Recipes = slices.Clone(recipes)
	slices.SortStableFunc(res.Recipes, func(a, b domain.Recipe) int {
		aExpiring := len(res.ExpiringIngredients[a.ID]) > 0
		bExpiring := len(res.ExpiringIngredients[b.ID]) > 0
		if aExpiring != bExpiring {
			if aExpiring {
				return -1
			}
			return 1
		}
		return cmp.Compare(res.MatchPercentages[b.ID], res.MatchPercentages[a.ID])
	})

	return res
}

// percentage counts optional matches in the numerator but only required
// ingredients in the denominator, so a recipe can score above 100. A recipe
// with no required ingredients is complete by definition.
func percentage(matched, required int) int {
	if required == 0 {
		return 100
	}
	return int(math.Round(float64(matched) / float64(required) * 100))
}

// findItem returns the first inventory item whose name contains the
// ingredient name or is contained by it, ignoring case.
func findItem(inventory []domain.InventoryItem, ingredient string) (domain.InventoryItem, bool) {
	ing := strings.ToLower(ingredient)
	for _, item := range inventory {
		name := strings.ToLower(item.Name)
		if strings.Contains(name, ing) || strings.Contains(ing, name) {
			return item, true
		}
	}
	return domain.InventoryItem{}, false
}
