// Package scanner turns an uploaded receipt into inventory items.
package scanner

import (
	"context"
	"errors"
	"io"

	"github.com/vbonduro/pantry/internal/domain"
)

// ErrUnsupportedFormat is returned when a backend cannot read the receipt's
// content type.
var ErrUnsupportedFormat = errors.New("unsupported receipt format")

type ReceiptScanner interface {
	Scan(ctx context.Context, r io.Reader, mimeType string) (*ScanResult, error)
}

type ScanResult struct {
	Items   []domain.InventoryItem
	RawText string
}
