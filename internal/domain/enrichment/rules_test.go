package enrichment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestWarehouseCode(t *testing.T) {
	prefixes := map[string]string{"BL": "KBL", "BB": "KBB"}

	t.Run("Prefix plus branch", func(t *testing.T) {
		assert.Equal(t, "KBLCN01", WarehouseCode(prefixes, "BL", "CN01"))
	})

	t.Run("Unknown order type yields no code", func(t *testing.T) {
		assert.Equal(t, "", WarehouseCode(prefixes, "XX", "CN01"))
	})

	t.Run("Blank branch yields no code", func(t *testing.T) {
		assert.Equal(t, "", WarehouseCode(prefixes, "BL", "  "))
	})

	t.Run("Inputs trimmed", func(t *testing.T) {
		assert.Equal(t, "KBBCN02", WarehouseCode(prefixes, " BB ", " CN02 "))
	})
}

func TestCalculateVCType(t *testing.T) {
	tests := []struct {
		name           string
		productType    string
		trackInventory bool
		want           string
	}{
		{"Service wins regardless of tracking", "DIVU", true, "VCDV"},
		{"Service without tracking", "DIVU", false, "VCDV"},
		{"Gift", "GIFT", false, "VCKM"},
		{"Gift never reaches inventory branch", "GIFT", true, "VCKM"},
		{"Tracked goods", "SHAMPOO", true, "VCHB"},
		{"Untracked goods", "SHAMPOO", false, ""},
		{"Blank product type", "", true, ""},
		{"Case and whitespace normalized", "  divu ", false, "VCDV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateVCType(tt.productType, tt.trackInventory))
		})
	}
}

func TestCalculateGiaBan(t *testing.T) {
	t.Run("Revenue divided by quantity", func(t *testing.T) {
		got := CalculateGiaBan(decPtr(100000), decPtr(5))
		assert.True(t, decimal.NewFromInt(20000).Equal(got))
	})

	t.Run("Zero quantity returns fallback", func(t *testing.T) {
		got := CalculateGiaBan(decPtr(100000), decPtr(0), decimal.NewFromInt(999))
		assert.True(t, decimal.NewFromInt(999).Equal(got))
	})

	t.Run("Negative quantity returns fallback", func(t *testing.T) {
		got := CalculateGiaBan(decPtr(100000), decPtr(-3), decimal.NewFromInt(999))
		assert.True(t, decimal.NewFromInt(999).Equal(got))
	})

	t.Run("Absent inputs return fallback", func(t *testing.T) {
		got := CalculateGiaBan(nil, nil, decimal.NewFromInt(50))
		assert.True(t, decimal.NewFromInt(50).Equal(got))
	})

	t.Run("No fallback defaults to zero", func(t *testing.T) {
		got := CalculateGiaBan(nil, decPtr(2))
		assert.True(t, got.IsZero())
	})
}
