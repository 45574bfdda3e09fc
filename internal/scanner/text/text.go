// Package text reads plain-text receipts in the scanner.ReceiptFormat layout.
package text

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vbonduro/pantry/internal/scanner"
)

// maxReceiptBytes bounds how much of a receipt is read.
const maxReceiptBytes = 1 << 20

type TextScanner struct {
	now func() time.Time
}

func NewTextScanner() *TextScanner {
	return &TextScanner{now: time.Now}
}

func (s *TextScanner) Scan(ctx context.Context, r io.Reader, mimeType string) (*scanner.ScanResult, error) {
	if !strings.HasPrefix(mimeType, "text/plain") {
		return nil, fmt.Errorf("%w: %s", scanner.ErrUnsupportedFormat, mimeType)
	}

	data, err := io.ReadAll(io.LimitReader(r, maxReceiptBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := string(data)
	return &scanner.ScanResult{
		Items:   scanner.ParseReceipt(raw, s.now()),
		RawText: raw,
	}, nil
}
