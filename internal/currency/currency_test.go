package currency_test

import (
	"testing"

	"restropay/internal/currency"

	"github.com/stretchr/testify/assert"
)

func TestRupeeFormatter(t *testing.T) {
	f := currency.NewRupeeFormatter()

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"no grouping below a thousand", 500, "₹500"},
		{"thousands", 5400, "₹5,400"},
		{"lakh grouping", 123456, "₹1,23,456"},
		{"crore grouping", 12345678, "₹1,23,45,678"},
		{"zero", 0, "₹0"},
		{"negative", -500, "-₹500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.amount))
		})
	}
}
