package scanner

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vbonduro/pantry/internal/domain"
)

// ReceiptFormat documents the line layout understood by ParseLine.
const ReceiptFormat = "name | category | quantity unit | price | expiry (YYYY-MM-DD or days)"

const dateLayout = "2006-01-02"

// ParseReceipt parses one item per line and skips lines that are not items.
// now anchors relative expiry values.
func ParseReceipt(raw string, now time.Time) []domain.InventoryItem {
	items := make([]domain.InventoryItem, 0)
	for _, line := range strings.Split(raw, "\n") {
		if item := ParseLine(line, now); item != nil {
			items = append(items, *item)
		}
	}
	return items
}

// ParseLine parses a single "name | category | quantity unit | price | expiry"
// line. It returns nil for blank lines, lines without a pipe separator,
// lines with a missing name and the column header row. Unparseable numeric fields default to zero and
// a missing expiry defaults to a week from now.
func ParseLine(line string, now time.Time) *domain.InventoryItem {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, "|") {
		return nil
	}

	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if strings.EqualFold(parts[0], "name") {
		return nil
	}

	item := &domain.InventoryItem{
		ID:         uuid.NewString(),
		Name:       parts[0],
		Quantity:   1,
		ExpiryDate: now.AddDate(0, 0, 7),
	}
	if item.Name == "" {
		return nil
	}

	if len(parts) >= 2 {
		item.Category = parts[1]
	}
	if len(parts) >= 3 {
		item.Quantity, item.Unit = parseQuantity(parts[2])
	}
	if len(parts) >= 4 {
		item.Price = parsePrice(parts[3])
	}
	if len(parts) >= 5 {
		if expires, err := parseExpiry(parts[4], now); err == nil {
			item.ExpiryDate = expires
		}
	}
	return item
}

// parseQuantity splits "3 pieces" into (3, "pieces"). A bare unit counts as one.
func parseQuantity(s string) (float64, string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 1, ""
	}
	qty, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 1, strings.Join(fields, " ")
	}
	return qty, strings.Join(fields[1:], " ")
}

func parsePrice(s string) float64 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

func parseExpiry(s string, now time.Time) (time.Time, error) {
	if days, err := strconv.Atoi(s); err == nil {
		return now.AddDate(0, 0, days), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry %q: %w", s, err)
	}
	return t, nil
}
