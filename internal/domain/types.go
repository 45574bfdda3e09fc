package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when an inventory item or recipe does not exist.
var ErrNotFound = errors.New("not found")

type InventoryItem struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Category   string    `json:"category" yaml:"category"`
	Quantity   float64   `json:"quantity" yaml:"quantity"`
	Unit       string    `json:"unit" yaml:"unit"`
	ExpiryDate time.Time `json:"expiry_date" yaml:"expiry_date"`
	Price      float64   `json:"price" yaml:"price"`
	Image      string    `json:"image,omitempty" yaml:"image,omitempty"`
}

type Ingredient struct {
	Name     string  `json:"name" yaml:"name"`
	Amount   float64 `json:"amount" yaml:"amount"`
	Unit     string  `json:"unit" yaml:"unit"`
	Optional bool    `json:"optional,omitempty" yaml:"optional,omitempty"`
}

type Recipe struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Description  string       `json:"description" yaml:"description"`
	CookingTime  int          `json:"cooking_time" yaml:"cooking_time"` // minutes
	Servings     int          `json:"servings" yaml:"servings"`
	Ingredients  []Ingredient `json:"ingredients" yaml:"ingredients"`
	Instructions []string     `json:"instructions" yaml:"instructions"`
	Image        string       `json:"image,omitempty" yaml:"image,omitempty"`
	Tags         []string     `json:"tags" yaml:"tags"`
}

// RequiredIngredients returns the ingredients not marked optional.
func (r Recipe) RequiredIngredients() []Ingredient {
	required := make([]Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		if !ing.Optional {
			required = append(required, ing)
		}
	}
	return required
}
