package web

import (
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/expiry"
	"github.com/vbonduro/pantry/internal/matcher"
	"github.com/vbonduro/pantry/internal/service"
)

type itemView struct {
	domain.InventoryItem
	DaysUntilExpiry int           `json:"days_until_expiry"`
	Status          expiry.Status `json:"status"`
	Expires         string        `json:"expires"`
	PriceDisplay    string        `json:"price_display"`
}

func newItemView(item domain.InventoryItem, now time.Time) itemView {
	days := expiry.DaysUntil(item.ExpiryDate, now)
	return itemView{
		InventoryItem:   item,
		DaysUntilExpiry: days,
		Status:          expiry.StatusOf(days),
		Expires:         humanize.RelTime(item.ExpiryDate, now, "ago", "from now"),
		PriceDisplay:    formatPrice(item.Price),
	}
}

func newItemViews(items []domain.InventoryItem, now time.Time) []itemView {
	out := make([]itemView, 0, len(items))
	for _, item := range items {
		out = append(out, newItemView(item, now))
	}
	return out
}

// formatPrice renders an amount in US dollars, e.g. $1,234.50.
func formatPrice(amount float64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("$%v", number.Decimal(amount, number.Scale(2)))
}

type inventoryResponse struct {
	Category string     `json:"category,omitempty"`
	Items    []itemView `json:"items"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type recipeSummaryView struct {
	domain.Recipe
	MatchPercentage     int        `json:"match_percentage"`
	ExpiringIngredients []itemView `json:"expiring_ingredients"`
}

type recipesResponse struct {
	Query   string              `json:"query,omitempty"`
	Recipes []recipeSummaryView `json:"recipes"`
}

func newRecipesResponse(query string, result *matcher.Result, now time.Time) recipesResponse {
	recipes := make([]recipeSummaryView, 0, len(result.Recipes))
	for _, r := range result.Recipes {
		recipes = append(recipes, recipeSummaryView{
			Recipe:              r,
			MatchPercentage:     result.MatchPercentages[r.ID],
			ExpiringIngredients: newItemViews(result.ExpiringIngredients[r.ID], now),
		})
	}
	return recipesResponse{Query: query, Recipes: recipes}
}

type availabilityView struct {
	domain.Ingredient
	Available bool      `json:"available"`
	UseSoon   bool      `json:"use_soon"`
	Item      *itemView `json:"item,omitempty"`
}

type recipeDetailView struct {
	recipeSummaryView
	Availability []availabilityView `json:"availability"`
}

func newRecipeDetailView(detail *service.RecipeDetail, now time.Time) recipeDetailView {
	lines := make([]availabilityView, 0, len(detail.Availability))
	for _, a := range detail.Availability {
		line := availabilityView{Ingredient: a.Ingredient, UseSoon: a.Expiring}
		if a.Item != nil {
			v := newItemView(*a.Item, now)
			line.Available = true
			line.Item = &v
		}
		lines = append(lines, line)
	}
	return recipeDetailView{
		recipeSummaryView: recipeSummaryView{
			Recipe:              detail.Recipe,
			MatchPercentage:     detail.MatchPercentage,
			ExpiringIngredients: newItemViews(detail.ExpiringIngredients, now),
		},
		Availability: lines,
	}
}
