package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFee(t *testing.T) {
	t.Run("Known description returns configured rule", func(t *testing.T) {
		rule, ok := ResolveFee(ShopeeSettlementFees, "Phí cố định")
		require.True(t, ok)
		assert.Equal(t, "phiCoDinh", rule.Field)
		assert.Equal(t, "64173", rule.DefaultAccount)
		assert.Equal(t, 1, rule.Row)
	})

	t.Run("Unknown description is a miss not an error", func(t *testing.T) {
		_, ok := ResolveFee(ShopeeSettlementFees, "Phí bí ẩn")
		assert.False(t, ok)
	})

	t.Run("Match is exact including casing", func(t *testing.T) {
		_, ok := ResolveFee(ShopeeSettlementFees, "phí cố định")
		assert.False(t, ok)
	})

	t.Run("Each table resolves its own labels", func(t *testing.T) {
		rule, ok := ResolveFee(TikTokImportFees, "TikTok Shop commission fee")
		require.True(t, ok)
		assert.Equal(t, "phiHoaHong", rule.Field)

		rule, ok = ResolveFee(TikTokSettlementFees, "Phí hoa hồng TikTok Shop")
		require.True(t, ok)
		assert.Equal(t, "phiHoaHong", rule.Field)

		_, ok = ResolveFee(TikTokSettlementFees, "TikTok Shop commission fee")
		assert.False(t, ok)
	})
}

func TestTableFor(t *testing.T) {
	tests := []struct {
		platform Platform
		variant  ReportVariant
		want     []FeeMappingRule
	}{
		{PlatformShopee, VariantSettlement, ShopeeSettlementFees},
		{PlatformShopee, VariantImport, ShopeeImportFees},
		{PlatformTikTok, VariantImport, TikTokImportFees},
		{PlatformTikTok, VariantSettlement, TikTokSettlementFees},
	}
	for _, tt := range tests {
		table, ok := TableFor(tt.platform, tt.variant)
		require.True(t, ok)
		assert.Equal(t, tt.want, table)
	}

	_, ok := TableFor(Platform("LAZADA"), VariantSettlement)
	assert.False(t, ok)
}

func TestValidateRules(t *testing.T) {
	t.Run("Built-in tables are valid", func(t *testing.T) {
		assert.NoError(t, ValidateAllTables())
	})

	t.Run("Duplicate description and row is rejected", func(t *testing.T) {
		rules := []FeeMappingRule{
			{Field: "a", Description: "Fee X", Row: 1},
			{Field: "b", Description: "Fee X", Row: 1},
		}
		assert.Error(t, ValidateRules(rules))
	})

	t.Run("Same description on different rows is allowed", func(t *testing.T) {
		rules := []FeeMappingRule{
			{Field: "a", Description: "Fee X", Row: 1},
			{Field: "b", Description: "Fee X", Row: 2},
		}
		assert.NoError(t, ValidateRules(rules))
	})

	t.Run("Same row with different descriptions is allowed", func(t *testing.T) {
		rules := []FeeMappingRule{
			{Field: "a", Description: "Fee X", Row: 1},
			{Field: "b", Description: "Fee Y", Row: 1},
		}
		assert.NoError(t, ValidateRules(rules))
	})
}
