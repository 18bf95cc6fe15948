package enrichment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents one marketplace order with its ordered sequence of sale
// items. The sale sequence reflects the original order's line sequence and is
// preserved through enrichment.
type Order struct {
	// OrderID is the marketplace order identifier
	OrderID string `json:"order_id"`
	// OrderType is the internal order-type code (drives warehouse prefixing)
	OrderType string `json:"order_type"`
	// OrderedAt is when the order was placed on the marketplace
	OrderedAt time.Time `json:"ordered_at"`
	// Sales are the order lines, in marketplace line order
	Sales []*SaleItem `json:"sales"`
}

// SaleItem is one order line, the unit of accounting enrichment.
type SaleItem struct {
	// ItemCode is the marketplace item/product code
	ItemCode string `json:"item_code"`
	// PromCode is the raw promotion code, possibly compound ("<code>-<name>")
	PromCode string `json:"prom_code"`
	// BranchCode identifies the department/outlet the sale belongs to
	BranchCode string `json:"branch_code"`

	// Quantity is the line quantity
	Quantity *decimal.Decimal `json:"quantity"`
	// Revenue is the recognized revenue amount for the line
	Revenue *decimal.Decimal `json:"revenue"`
	// LineTotal is the primary line total amount
	LineTotal *decimal.Decimal `json:"line_total"`
	// Total is the secondary line total, used when LineTotal is absent
	Total *decimal.Decimal `json:"total"`
	// PaidByVoucher is the amount of the line paid by voucher
	PaidByVoucher *decimal.Decimal `json:"paid_by_voucher"`

	// Cat1 is the primary category code
	Cat1 string `json:"cat1"`
	// CatCode is the secondary category code, used when Cat1 is absent
	CatCode string `json:"cat_code"`
	// Brand is the customer-facing brand carried on the sale itself
	Brand string `json:"brand"`

	// MuaHangGiamGia is the discounted-purchase flag (1 or 0). It is
	// overridden during enrichment when the attached promotion carries a
	// discount flag, and left untouched otherwise.
	MuaHangGiamGia *int `json:"mua_hang_giam_gia"`

	// Product is the canonical product record attached during enrichment.
	// May already be embedded on input; a cache miss never clears it.
	Product *OrderProduct `json:"product"`
	// Promotion is the promotion record attached during enrichment.
	// Unlike Product, a cache miss always leaves it nil.
	Promotion *OrderPromotion `json:"promotion"`
	// Department is the department record attached during enrichment.
	Department *OrderDepartment `json:"department"`
}
