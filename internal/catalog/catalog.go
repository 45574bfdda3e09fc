// Package catalog loads recipe definitions from YAML. A three-recipe catalog
// is embedded and used when no catalog file is configured.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/vbonduro/pantry/internal/domain"
)

//go:embed recipes.yaml
var defaultYAML []byte

// ErrInvalidCatalog is matched by every ValidationError.
var ErrInvalidCatalog = errors.New("invalid recipe catalog")

// ValidationError describes the first problem found in a catalog.
type ValidationError struct {
	RecipeID string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.RecipeID == "" {
		return fmt.Sprintf("recipe catalog: %s %s", e.Field, e.Message)
	}
	return fmt.Sprintf("recipe %q: %s %s", e.RecipeID, e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}

var loadDefault = sync.OnceValues(func() ([]domain.Recipe, error) {
	return Parse(defaultYAML)
})

// Default returns a deep copy of the embedded catalog. It panics if the
// embedded file is invalid, which the package tests rule out.
func Default() []domain.Recipe {
	recipes, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("embedded recipe catalog: %v", err))
	}
	out := make([]domain.Recipe, len(recipes))
	for i, r := range recipes {
		r.Ingredients = slices.Clone(r.Ingredients)
		r.Instructions = slices.Clone(r.Instructions)
		r.Tags = slices.Clone(r.Tags)
		out[i] = r
	}
	return out
}

// Load reads and validates a catalog file. An empty path yields Default().
func Load(path string) ([]domain.Recipe, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe catalog: %w", err)
	}
	recipes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return recipes, nil
}

// Parse decodes a YAML list of recipes and validates it.
func Parse(data []byte) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := yaml.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to decode recipe catalog: %w", err)
	}
	if err := Validate(recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// Validate enforces the catalog invariants the matcher relies on. Every
// recipe must have at least one required ingredient so that its match
// percentage has a non-zero denominator.
func Validate(recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return &ValidationError{Field: "recipes", Message: "must not be empty"}
	}

	seen := make(map[string]bool, len(recipes))
	for i, r := range recipes {
		if strings.TrimSpace(r.ID) == "" {
			return &ValidationError{Field: fmt.Sprintf("recipes[%d].id", i), Message: "is required"}
		}
		if seen[r.ID] {
			return &ValidationError{RecipeID: r.ID, Field: "id", Message: "is duplicated"}
		}
		seen[r.ID] = true

		switch {
		case strings.TrimSpace(r.Name) == "":
			return &ValidationError{RecipeID: r.ID, Field: "name", Message: "is required"}
		case r.CookingTime <= 0:
			return &ValidationError{RecipeID: r.ID, Field: "cooking_time", Message: "must be positive"}
		case r.Servings <= 0:
			return &ValidationError{RecipeID: r.ID, Field: "servings", Message: "must be positive"}
		case len(r.Ingredients) == 0:
			return &ValidationError{RecipeID: r.ID, Field: "ingredients", Message: "must not be empty"}
		}

		for j, ing := range r.Ingredients {
			field := fmt.Sprintf("ingredients[%d]", j)
			if strings.TrimSpace(ing.Name) == "" {
				return &ValidationError{RecipeID: r.ID, Field: field + ".name", Message: "is required"}
			}
			if ing.Amount <= 0 {
				return &ValidationError{RecipeID: r.ID, Field: field + ".amount", Message: "must be positive"}
			}
		}

		if len(r.RequiredIngredients()) == 0 {
			return &ValidationError{RecipeID: r.ID, Field: "ingredients", Message: "must include at least one required ingredient"}
		}
	}
	return nil
}

// Find returns the recipe with the given id.
func Find(recipes []domain.Recipe, id string) (domain.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Recipe{}, false
}
