package enrichment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Voucher label tokens, in their fixed output order.
const (
	// VoucherLabelFBV marks voucher-funded brand revenue
	VoucherLabelFBV = "FBV"
	// VoucherLabelTT marks voucher-funded payment
	VoucherLabelTT = "TT"
)

// brandMenard is exempt from the FBV/TT tokens.
const brandMenard = "menard"

// CalculateVoucherLabels derives the space-joined voucher label sequence for
// one sale, or "" when no voucher treatment applies. The input sale is not
// mutated and the function is idempotent over the same sale.
//
// Labels only apply when the sale has a monetary basis (revenue or line
// total non-zero) and a strictly positive voucher-paid amount. The FBV and
// TT tokens are suppressed for the menard brand; VCHB and VCDV are appended
// from the category code and item-code initial. Token order is fixed:
// FBV TT VCHB VCDV.
func CalculateVoucherLabels(sale *SaleItem) string {
	if sale == nil {
		return ""
	}

	revenue := amountOrZero(sale.Revenue)
	lineTotal := amountOrZero(sale.LineTotal)
	if lineTotal.IsZero() {
		lineTotal = amountOrZero(sale.Total)
	}
	paidByVoucher := amountOrZero(sale.PaidByVoucher)

	category := FirstString(sale.Cat1, sale.CatCode)
	itemCode := strings.ToUpper(strings.TrimSpace(sale.ItemCode))
	brand := resolveBrand(sale)

	// No monetary basis to attribute a voucher to.
	if revenue.IsZero() && lineTotal.IsZero() {
		return ""
	}
	if !paidByVoucher.IsPositive() {
		return ""
	}

	labels := make([]string, 0, 4)
	if !strings.EqualFold(brand, brandMenard) {
		labels = append(labels, VoucherLabelFBV, VoucherLabelTT)
	}
	if category == "CHANDO" || strings.HasPrefix(itemCode, "S") || strings.HasPrefix(itemCode, "H") {
		labels = append(labels, VCTypeGoods)
	}
	if category == "FACIALBAR" || strings.HasPrefix(itemCode, "F") || strings.HasPrefix(itemCode, "V") {
		labels = append(labels, VCTypeService)
	}
	return strings.Join(labels, " ")
}

// resolveBrand picks the sale's brand in priority order: the customer brand
// on the sale, then the attached product's brand code, then its brand name.
func resolveBrand(sale *SaleItem) string {
	var productBrandCode, productBrandName string
	if sale.Product != nil {
		if sale.Product.BrandCode != nil {
			productBrandCode = *sale.Product.BrandCode
		}
		if sale.Product.BrandName != nil {
			productBrandName = *sale.Product.BrandName
		}
	}
	return FirstString(sale.Brand, productBrandCode, productBrandName)
}

// amountOrZero unwraps an optional amount, defaulting to zero.
func amountOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
