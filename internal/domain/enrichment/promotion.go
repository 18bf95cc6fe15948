package enrichment

import "strings"

// OrderPromotion is the promotion record attached to sale items, keyed by the
// normalized promotion code. Lifecycle mirrors OrderProduct: cache-owned,
// immutable, shared by reference.
type OrderPromotion struct {
	// Code is the normalized promotion code
	Code string `json:"code"`
	// Name is the promotion display name
	Name string `json:"name"`
	// MuaHangGiamGia marks the promotion as a discounted-purchase program.
	// Nil means the catalog did not state it either way; enrichment then
	// leaves the sale's own flag untouched.
	MuaHangGiamGia *bool `json:"mua_hang_giam_gia"`
}

// ParsePromCode normalizes a raw, possibly compound promotion code of the
// form "<code>-<free-text name>" down to the bare code. Returns the substring
// before the first dash when that prefix is non-empty, otherwise the whole
// trimmed input; "" when the input is blank.
//
// A dash at position 0 yields no valid prefix, so "-LeadingDash" comes back
// whole rather than empty.
func ParsePromCode(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if i := strings.Index(trimmed, "-"); i > 0 {
		return strings.TrimSpace(trimmed[:i])
	}
	return trimmed
}
