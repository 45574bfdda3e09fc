// Package mock is a receipt scanner that ignores the receipt and returns a
// fixed basket of groceries after a short delay, standing in for OCR.
package mock

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/scanner"
)

// DefaultDelay simulates receipt processing time.
const DefaultDelay = 1500 * time.Millisecond

type basketItem struct {
	name      string
	category  string
	quantity  float64
	unit      string
	daysFresh int
	price     float64
	image     string
}

var basket = []basketItem{
	{"Organic Milk", "Dairy", 1, "liter", 7, 2.99, "https://images.unsplash.com/photo-1563636619-e9143da7973b?auto=format&fit=crop&w=500&q=60"},
	{"Sourdough Bread", "Bakery", 1, "loaf", 5, 4.50, "https://images.unsplash.com/photo-1585478259715-1c093a7b7d3a?auto=format&fit=crop&w=500&q=60"},
	{"Avocados", "Produce", 3, "pieces", 4, 3.99, "https://images.unsplash.com/photo-1601039641847-7857b994d704?auto=format&fit=crop&w=500&q=60"},
	{"Free-Range Eggs", "Dairy", 12, "pieces", 14, 3.49, "https://images.unsplash.com/photo-1509479100390-67f4b366d591?auto=format&fit=crop&w=500&q=60"},
	{"Organic Spinach", "Produce", 1, "bag", 6, 2.99, "https://images.unsplash.com/photo-1576045057995-568f588f82fb?auto=format&fit=crop&w=500&q=60"},
	{"Greek Yogurt", "Dairy", 1, "container", 10, 5.49, "https://images.unsplash.com/photo-1488477181946-6428a0291777?auto=format&fit=crop&w=500&q=60"},
}

type MockScanner struct {
	delay time.Duration
	now   func() time.Time
}

func NewMockScanner(delay time.Duration) *MockScanner {
	return &MockScanner{delay: delay, now: time.Now}
}

// Scan waits for the configured delay, or until ctx is done, and returns the
// basket with fresh ids and expiry dates counted from the current time.
func (s *MockScanner) Scan(ctx context.Context, _ io.Reader, _ string) (*scanner.ScanResult, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	now := s.now()
	items := make([]domain.InventoryItem, 0, len(basket))
	for _, b := range basket {
		items = append(items, domain.InventoryItem{
			ID:         uuid.NewString(),
			Name:       b.name,
			Category:   b.category,
			Quantity:   b.quantity,
			Unit:       b.unit,
			ExpiryDate: now.AddDate(0, 0, b.daysFresh),
			Price:      b.price,
			Image:      b.image,
		})
	}
	return &scanner.ScanResult{Items: items}, nil
}
