package enrichment

import "strings"

// Enrich joins a batch of orders against the three reference caches and
// returns enriched copies. Sale sequence is preserved; nil orders and nil
// sales are dropped, like the code extractors drop them. Every output sale
// is a shallow copy of its input, never an in-place mutation. Each sale is
// processed independently:
//
//  1. Product: cache hit attaches the cached record; a miss keeps whatever
//     product was already embedded on the sale (possibly nil).
//  2. Promotion: the raw code is normalized first; a miss leaves the
//     promotion nil even when the input carried an embedded one. The
//     asymmetry with product attachment is intentional and load-bearing for
//     downstream postings.
//  3. Department: cache hit or nil, no fallback.
//  4. MuaHangGiamGia: overridden from the attached promotion's flag when that
//     flag is stated, otherwise the sale's pre-existing value survives.
//
// Missing cache entries are normal control flow, never an error. A nil cache
// argument is a programmer error and panics.
func Enrich(orders []*Order, products ProductCache, promotions PromotionCache, departments DepartmentCache) []*Order {
	if products == nil {
		panic("enrichment: nil product cache")
	}
	if promotions == nil {
		panic("enrichment: nil promotion cache")
	}
	if departments == nil {
		panic("enrichment: nil department cache")
	}

	enriched := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if order == nil {
			continue
		}
		out := *order
		out.Sales = make([]*SaleItem, 0, len(order.Sales))
		for _, sale := range order.Sales {
			if sale == nil {
				continue
			}
			out.Sales = append(out.Sales, enrichSale(sale, products, promotions, departments))
		}
		enriched = append(enriched, &out)
	}
	return enriched
}

// enrichSale produces the enriched shallow copy of one sale.
func enrichSale(sale *SaleItem, products ProductCache, promotions PromotionCache, departments DepartmentCache) *SaleItem {
	cp := *sale

	if code := strings.TrimSpace(cp.ItemCode); code != "" {
		if product, ok := products.Get(code); ok {
			cp.Product = product
		}
		// miss: the embedded product, if any, stays
	}

	cp.Promotion = nil
	if code := ParsePromCode(cp.PromCode); code != "" {
		if promotion, ok := promotions.Get(code); ok {
			cp.Promotion = promotion
		}
	}

	cp.Department = nil
	if code := strings.TrimSpace(cp.BranchCode); code != "" {
		if department, ok := departments.Get(code); ok {
			cp.Department = department
		}
	}

	if cp.Promotion != nil && cp.Promotion.MuaHangGiamGia != nil {
		flag := 0
		if *cp.Promotion.MuaHangGiamGia {
			flag = 1
		}
		cp.MuaHangGiamGia = &flag
	}

	return &cp
}
