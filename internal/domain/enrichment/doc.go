// Package enrichment contains the marketplace order enrichment core:
// normalization of raw marketplace orders (Shopee, TikTok Shop and similar
// channels) into accounting-ready sale records.
//
// The package is pure and I/O free. It consumes already-deserialized orders
// plus three read-only reference caches (products, promotions, departments)
// populated by the boundary layer, and produces enriched copies of the
// orders. Missing reference data is never an error here: every lookup miss
// degrades to a nil attachment or a default value, because marketplace
// exports are expected to be incomplete.
package enrichment
