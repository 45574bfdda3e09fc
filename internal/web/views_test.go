package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vbonduro/pantry/internal/domain"
	"github.com/vbonduro/pantry/internal/expiry"
)

func TestNewItemView(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expires  time.Time
		days     int
		status   expiry.Status
		relative string
	}{
		{name: "fresh", expires: now.AddDate(0, 0, 10), days: 10, status: expiry.StatusFresh, relative: "from now"},
		{name: "use soon", expires: now.AddDate(0, 0, 2), days: 2, status: expiry.StatusUseSoon, relative: "from now"},
		{name: "expired", expires: now.AddDate(0, 0, -2), days: -2, status: expiry.StatusExpired, relative: "ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newItemView(domain.InventoryItem{ID: "1", Name: "Milk", ExpiryDate: tt.expires, Price: 2.99}, now)
			assert.Equal(t, tt.days, v.DaysUntilExpiry)
			assert.Equal(t, tt.status, v.Status)
			assert.Contains(t, v.Expires, tt.relative)
			assert.Equal(t, "Milk", v.Name)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{2.99, "$2.99"},
		{4.5, "$4.50"},
		{1234.5, "$1,234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPrice(tt.amount))
		})
	}
}
