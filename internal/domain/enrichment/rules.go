package enrichment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// VC types classify a sale line for downstream accounting treatment.
const (
	// VCTypeService marks service lines
	VCTypeService = "VCDV"
	// VCTypeGift marks promotional-gift lines
	VCTypeGift = "VCKM"
	// VCTypeGoods marks inventory-tracked goods lines
	VCTypeGoods = "VCHB"
)

// WarehouseCode derives the posting warehouse for a sale as the order-type
// prefix plus the branch code. When either part is missing the result is "";
// a partial concatenation would post to a garbage warehouse.
func WarehouseCode(prefixes map[string]string, orderType, branchCode string) string {
	prefix := prefixes[strings.TrimSpace(orderType)]
	branch := strings.TrimSpace(branchCode)
	if prefix == "" || branch == "" {
		return ""
	}
	return prefix + branch
}

// CalculateVCType classifies a product line. Precedence is strict: a DIVU
// product is a service even when it tracks inventory, a GIFT product is a
// gift regardless of tracking, and only a remaining non-blank product type
// with TrackInventory exactly true counts as goods. Anything else yields "".
func CalculateVCType(productType string, trackInventory bool) string {
	normalized := strings.ToUpper(strings.TrimSpace(productType))
	switch {
	case normalized == "DIVU":
		return VCTypeService
	case normalized == "GIFT":
		return VCTypeGift
	case normalized != "" && trackInventory:
		return VCTypeGoods
	default:
		return ""
	}
}

// CalculateGiaBan computes the average unit price revenue/quantity. When the
// revenue is absent or the quantity is absent or non-positive, the optional
// fallback (zero when omitted) is returned instead; the division is never
// attempted on a guarded input.
func CalculateGiaBan(revenue, quantity *decimal.Decimal, fallback ...decimal.Decimal) decimal.Decimal {
	if revenue != nil && quantity != nil && quantity.IsPositive() {
		return revenue.Div(*quantity)
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return decimal.Zero
}
