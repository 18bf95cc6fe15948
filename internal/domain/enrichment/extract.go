package enrichment

import "strings"

// Code extractors scan an order batch and produce the distinct lookup keys
// the boundary layer must fetch before enrichment can run. Each extractor's
// output matches exactly the key space the corresponding cache is probed
// with: codes are trimmed, blanks dropped, promotion codes normalized. Order
// of first appearance is preserved so fetch requests stay deterministic.

// CollectItemCodes returns the distinct trimmed item codes of the batch.
func CollectItemCodes(orders []*Order) []string {
	return collect(orders, func(s *SaleItem) string {
		return strings.TrimSpace(s.ItemCode)
	})
}

// CollectPromotionCodes returns the distinct normalized promotion codes of
// the batch. Raw compound codes are parsed first so the result matches the
// promotion cache's key space.
func CollectPromotionCodes(orders []*Order) []string {
	return collect(orders, func(s *SaleItem) string {
		return ParsePromCode(s.PromCode)
	})
}

// CollectBranchCodes returns the distinct trimmed branch codes of the batch.
func CollectBranchCodes(orders []*Order) []string {
	return collect(orders, func(s *SaleItem) string {
		return strings.TrimSpace(s.BranchCode)
	})
}

// collect walks every sale of every order, applies key and keeps the first
// occurrence of each non-blank result.
func collect(orders []*Order, key func(*SaleItem) string) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)
	for _, order := range orders {
		if order == nil {
			continue
		}
		for _, sale := range order.Sales {
			if sale == nil {
				continue
			}
			code := key(sale)
			if code == "" {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}
	return codes
}
