package pricing_test

import (
	"math"
	"testing"

	"shiftmatch/internal/pricing"

	"github.com/stretchr/testify/assert"
)

func TestFeeAndTotal(t *testing.T) {
	tests := []struct {
		payout, fee, total int64
	}{
		{payout: 1000, fee: 200, total: 1200},
		{payout: 0, fee: 0, total: 0},
		{payout: 1, fee: 0, total: 1},
		{payout: 3, fee: 1, total: 4},         // 0.6 rounds up
		{payout: 1234, fee: 247, total: 1481}, // 246.8
		{payout: 12345, fee: 2469, total: 14814},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fee, pricing.FeeCents(tt.payout), "fee for %d", tt.payout)
		assert.Equal(t, tt.total, pricing.EmployerTotalCents(tt.payout), "total for %d", tt.payout)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12.00 €", pricing.FormatCents(1200))
	assert.Equal(t, "0.05 €", pricing.FormatCents(5))
	assert.Equal(t, "1234.56 €", pricing.FormatCents(123456))
	assert.Equal(t, "-2.50 €", pricing.FormatCents(-250))
}

func TestFeeCents_LargeAndNegative(t *testing.T) {
	tests := []struct {
		payout, fee int64
	}{
		{payout: -3, fee: -1},
		{payout: -1234, fee: -247},
		{payout: pricing.MaxPayoutCents, fee: 180143985094820},
		// Beyond 2^53 a float multiply would drop cents.
		{payout: 9007199254740993, fee: 1801439850948199},
		{payout: math.MaxInt64, fee: 1844674407370955161},
		{payout: math.MinInt64, fee: -1844674407370955162},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.fee, pricing.FeeCents(tt.payout), "fee for %d", tt.payout)
	}

	total := pricing.EmployerTotalCents(pricing.MaxPayoutCents)
	assert.Equal(t, int64(1080863910568919), total)
	assert.Positive(t, total)
}

func TestFormatCents_Extremes(t *testing.T) {
	assert.Equal(t, "-92233720368547758.08 €", pricing.FormatCents(math.MinInt64))
	assert.Equal(t, "92233720368547758.07 €", pricing.FormatCents(math.MaxInt64))
}
