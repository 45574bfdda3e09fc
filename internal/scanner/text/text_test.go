package text

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/pantry/internal/scanner"
)

func TestTextScan(t *testing.T) {
	now := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	s := NewTextScanner()
	s.now = func() time.Time { return now }

	receipt := "Tomatoes | Produce | 4 pieces | 2.40 | 2\nPasta | Pantry | 500 g | 1.10 | 2025-01-01\n"

	result, err := s.Scan(context.Background(), strings.NewReader(receipt), "text/plain; charset=utf-8")
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, receipt, result.RawText)
	assert.Equal(t, "Tomatoes", result.Items[0].Name)
	assert.Equal(t, now.AddDate(0, 0, 2), result.Items[0].ExpiryDate)
	assert.Equal(t, "g", result.Items[1].Unit)
}

func TestTextScanRejectsImages(t *testing.T) {
	s := NewTextScanner()

	_, err := s.Scan(context.Background(), strings.NewReader("\xff\xd8"), "image/jpeg")
	assert.ErrorIs(t, err, scanner.ErrUnsupportedFormat)
}

func TestTextScanCancelled(t *testing.T) {
	s := NewTextScanner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Scan(ctx, strings.NewReader("Milk | Dairy"), "text/plain")
	assert.ErrorIs(t, err, context.Canceled)
}
