package accounting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSettlement(t *testing.T) {
	lines := []SettlementLine{
		{Description: "Phí cố định", Amount: decimal.NewFromInt(15000)},
		{Description: "Shopee Xu được hoàn lại", Amount: decimal.NewFromInt(2000)},
		{Description: "Phí bí ẩn", Amount: decimal.NewFromInt(99)},
	}

	postings, unmatched := MapSettlement(lines, ShopeeSettlementFees, "chi_phi")

	require.Len(t, postings, 2)
	require.Len(t, unmatched, 1)

	t.Run("Matched line posts to the configured account", func(t *testing.T) {
		assert.Equal(t, "phiCoDinh", postings[0].Field)
		assert.Equal(t, "64173", postings[0].Account)
		assert.Equal(t, "chi_phi", postings[0].Column)
		assert.Equal(t, 1, postings[0].Row)
		assert.True(t, decimal.NewFromInt(15000).Equal(postings[0].Amount))
	})

	t.Run("Target column override routes the posting", func(t *testing.T) {
		assert.Equal(t, "shopeeXuHoanLai", postings[1].Field)
		assert.Equal(t, "giam_tru", postings[1].Column)
	})

	t.Run("Unknown label comes back unmatched", func(t *testing.T) {
		assert.Equal(t, "Phí bí ẩn", unmatched[0].Description)
	})
}

func TestMapSettlementEmpty(t *testing.T) {
	postings, unmatched := MapSettlement(nil, TikTokSettlementFees, "chi_phi")
	assert.Empty(t, postings)
	assert.Empty(t, unmatched)
}
