package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vbonduro/pantry/internal/catalog"
	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/matcher"
	"github.com/vbonduro/pantry/internal/scanner"
)

// itemRepository is the subset of store.ItemStore that PantryService requires.
type itemRepository interface {
	Create(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error)
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	FindByNameAndCategory(ctx context.Context, name, category string) (*domain.InventoryItem, error)
	List(ctx context.Context, category string) ([]*domain.InventoryItem, error)
	Categories(ctx context.Context) ([]string, error)
	AddQuantity(ctx context.Context, id string, delta float64) error
	Delete(ctx context.Context, id string) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type PantryService struct {
	itemStore itemRepository
	scanner   scanner.ReceiptScanner
	recipes   []domain.Recipe
	now       func() time.Time
	logger    *slog.Logger
}

func NewPantryService(
	itemStore itemRepository,
	receiptScanner scanner.ReceiptScanner,
	recipes []domain.Recipe,
	logger *slog.Logger,
) *PantryService {
	return &PantryService{
		itemStore: itemStore,
		scanner:   receiptScanner,
		recipes:   recipes,
		now:       time.Now,
		logger:    logger,
	}
}

// ScanResult reports what a scan produced and how many of those items were
// new to the inventory rather than merged into an existing item.
type ScanResult struct {
	Items []domain.InventoryItem
	Added int
}

// ScanReceipt reads the receipt with the configured scanner and adds the
// detected items to the inventory.
func (s *PantryService) ScanReceipt(ctx context.Context, data []byte, mimeType string) (*ScanResult, error) {
	s.logger.Info("receipt scan started", "mime_type", mimeType, "bytes", len(data))

	result, err := s.scanner.Scan(ctx, bytes.NewReader(data), mimeType)
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipt: %w", err)
	}
	s.logger.Info("receipt scan complete", "items_detected", len(result.Items))

	added, err := s.AddItems(ctx, result.Items)
	if err != nil {
		return nil, err
	}

	return &ScanResult{Items: result.Items, Added: added}, nil
}

// AddItems merges items into the inventory. An item whose name (ignoring
// case) and category match an existing item increases that item's quantity;
// any other item is inserted, with an id assigned if it has none. The batch
// is applied atomically: on error nothing is added or merged. It returns the
// number of inserted items.
func (s *PantryService) AddItems(ctx context.Context, items []domain.InventoryItem) (int, error) {
	added := 0
	err := s.itemStore.WithTx(ctx, func(ctx context.Context) error {
		added = 0
		for _, item := range items {
			existing, err := s.itemStore.FindByNameAndCategory(ctx, item.Name, item.Category)
			if err != nil {
				return fmt.Errorf("failed to look up %q: %w", item.Name, err)
			}

			if existing != nil {
				if err := s.itemStore.AddQuantity(ctx, existing.ID, item.Quantity); err != nil {
					return fmt.Errorf("failed to merge %q: %w", item.Name, err)
				}
				s.logger.Debug("merged item", "id", existing.ID, "name", existing.Name, "quantity_added", item.Quantity)
				continue
			}

			if item.ID == "" {
				item.ID = uuid.NewString()
			}
			if _, err := s.itemStore.Create(ctx, item); err != nil {
				return fmt.Errorf("failed to add %q: %w", item.Name, err)
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("items added to inventory", "received", len(items), "added", added)
	return added, nil
}

// ListInventory lists items in the order they were added, optionally limited
// to one category.
func (s *PantryService) ListInventory(ctx context.Context, category string) ([]domain.InventoryItem, error) {
	items, err := s.itemStore.List(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]domain.InventoryItem, 0, len(items))
	for _, item := range items {
		out = append(out, *item)
	}
	return out, nil
}

func (s *PantryService) Categories(ctx context.Context) ([]string, error) {
	return s.itemStore.Categories(ctx)
}

func (s *PantryService) GetItem(ctx context.Context, id string) (*domain.InventoryItem, error) {
	item, err := s.itemStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return item, nil
}

func (s *PantryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemStore.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("item removed", "id", id)
	return nil
}

// Now returns the service clock's current time.
func (s *PantryService) Now() time.Time {
	return s.now()
}

// SuggestRecipes ranks the catalog against the current inventory. A non-blank
// query narrows Recipes by name or tag; the percentage and expiring maps
// still cover the whole catalog.
func (s *PantryService) SuggestRecipes(ctx context.Context, query string) (*matcher.Result, error) {
	inventory, err := s.ListInventory(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	result := matcher.Match(inventory, s.recipes, s.now())
	result.Recipes = matcher.Filter(result.Recipes, query)
	return result, nil
}

// RecipeDetail is a recipe with its score and per-ingredient coverage.
type RecipeDetail struct {
	Recipe              domain.Recipe
	MatchPercentage     int
	ExpiringIngredients []domain.InventoryItem
	Availability        []matcher.IngredientAvailability
}

func (s *PantryService) GetRecipe(ctx context.Context, id string) (*RecipeDetail, error) {
	recipe, ok := catalog.Find(s.recipes, id)
	if !ok {
		return nil, fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}

	inventory, err := s.ListInventory(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	now := s.now()
	result := matcher.Match(inventory, []domain.Recipe{recipe}, now)
	return &RecipeDetail{
		Recipe:              recipe,
		MatchPercentage:     result.MatchPercentages[recipe.ID],
		ExpiringIngredients: result.ExpiringIngredients[recipe.ID],
		Availability:        matcher.Availability(recipe, inventory, now),
	}, nil
}
