package matcher

import (
	"time"

	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/expiry"
)

// IngredientAvailability is one line of a recipe's ingredient list annotated
// with the inventory item that covers it.
type IngredientAvailability struct {
	Ingredient domain.Ingredient     `json:"ingredient"`
	Item       *domain.InventoryItem `json:"item,omitempty"`
	Expiring   bool                  `json:"expiring"`
}

// Availability resolves each ingredient of recipe against inventory using the
// same rule as Match.
func Availability(recipe domain.Recipe, inventory []domain.InventoryItem, now time.Time) []IngredientAvailability {
	out := make([]IngredientAvailability, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		line := IngredientAvailability{Ingredient: ing}
		if item, ok := findItem(inventory, ing.Name); ok {
			line.Item = &item
			line.Expiring = expiry.InWindow(expiry.DaysUntil(item.ExpiryDate, now))
		}
		out = append(out, line)
	}
	return out
}
