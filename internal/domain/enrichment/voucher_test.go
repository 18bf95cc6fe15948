package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateVoucherLabels(t *testing.T) {
	t.Run("No monetary basis yields no labels", func(t *testing.T) {
		sale := &SaleItem{
			Revenue:       decPtr(0),
			LineTotal:     decPtr(0),
			PaidByVoucher: decPtr(50),
			Cat1:          "CHANDO",
		}
		assert.Equal(t, "", CalculateVoucherLabels(sale))
	})

	t.Run("Voucher amount must be strictly positive", func(t *testing.T) {
		sale := &SaleItem{Revenue: decPtr(100), PaidByVoucher: decPtr(0), Cat1: "CHANDO"}
		assert.Equal(t, "", CalculateVoucherLabels(sale))

		sale.PaidByVoucher = nil
		assert.Equal(t, "", CalculateVoucherLabels(sale))
	})

	t.Run("CHANDO category gets FBV TT VCHB", func(t *testing.T) {
		sale := &SaleItem{
			Revenue:       decPtr(100),
			PaidByVoucher: decPtr(50),
			Cat1:          "CHANDO",
			Brand:         "chando",
		}
		assert.Equal(t, "FBV TT VCHB", CalculateVoucherLabels(sale))
	})

	t.Run("Menard brand suppresses FBV and TT", func(t *testing.T) {
		sale := &SaleItem{
			Revenue:       decPtr(100),
			PaidByVoucher: decPtr(50),
			Cat1:          "CHANDO",
			Brand:         "Menard",
		}
		assert.Equal(t, "VCHB", CalculateVoucherLabels(sale))
	})

	t.Run("Brand falls back to product brand code then name", func(t *testing.T) {
		sale := &SaleItem{
			Revenue:       decPtr(100),
			PaidByVoucher: decPtr(50),
			Cat1:          "CHANDO",
			Product:       &OrderProduct{BrandCode: strPtr("MENARD")},
		}
		assert.Equal(t, "VCHB", CalculateVoucherLabels(sale))

		sale.Product = &OrderProduct{BrandName: strPtr("menard")}
		assert.Equal(t, "VCHB", CalculateVoucherLabels(sale))
	})

	t.Run("Item code initial drives VCHB and VCDV", func(t *testing.T) {
		sale := &SaleItem{Revenue: decPtr(100), PaidByVoucher: decPtr(50), ItemCode: "s123"}
		assert.Equal(t, "FBV TT VCHB", CalculateVoucherLabels(sale))

		sale.ItemCode = "H500"
		assert.Equal(t, "FBV TT VCHB", CalculateVoucherLabels(sale))

		sale.ItemCode = "f77"
		assert.Equal(t, "FBV TT VCDV", CalculateVoucherLabels(sale))

		sale.ItemCode = "V01"
		assert.Equal(t, "FBV TT VCDV", CalculateVoucherLabels(sale))
	})

	t.Run("FACIALBAR category appends VCDV", func(t *testing.T) {
		sale := &SaleItem{Revenue: decPtr(100), PaidByVoucher: decPtr(50), CatCode: "FACIALBAR"}
		assert.Equal(t, "FBV TT VCDV", CalculateVoucherLabels(sale))
	})

	t.Run("Both goods and service tokens in fixed order", func(t *testing.T) {
		sale := &SaleItem{
			Revenue:       decPtr(100),
			PaidByVoucher: decPtr(50),
			Cat1:          "FACIALBAR",
			ItemCode:      "S900",
		}
		assert.Equal(t, "FBV TT VCHB VCDV", CalculateVoucherLabels(sale))
	})

	t.Run("Menard with neither category yields no labels", func(t *testing.T) {
		sale := &SaleItem{
			Revenue:       decPtr(100),
			PaidByVoucher: decPtr(50),
			Brand:         "MENARD",
			ItemCode:      "X01",
		}
		assert.Equal(t, "", CalculateVoucherLabels(sale))
	})

	t.Run("Line total falls back to secondary total", func(t *testing.T) {
		sale := &SaleItem{
			Total:         decPtr(200),
			PaidByVoucher: decPtr(50),
			Cat1:          "CHANDO",
		}
		assert.Equal(t, "FBV TT VCHB", CalculateVoucherLabels(sale))
	})

	t.Run("Idempotent and non-mutating", func(t *testing.T) {
		sale := &SaleItem{Revenue: decPtr(100), PaidByVoucher: decPtr(50), Cat1: "CHANDO"}
		first := CalculateVoucherLabels(sale)
		second := CalculateVoucherLabels(sale)
		assert.Equal(t, first, second)
	})
}
