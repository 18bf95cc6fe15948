// Package accounting maps raw marketplace settlement fee lines onto fixed
// internal accounting codes. The mapping tables are pure declarative
// configuration, version-controlled with the code so the accounting
// treatment of every marketplace fee stays auditable.
package accounting

import "fmt"

// Platform identifies the marketplace a settlement report came from.
type Platform string

const (
	// PlatformShopee is the Shopee marketplace
	PlatformShopee Platform = "SHOPEE"
	// PlatformTikTok is the TikTok Shop marketplace
	PlatformTikTok Platform = "TIKTOK"
)

// IsValid returns true if the platform is known.
func (p Platform) IsValid() bool {
	return p == PlatformShopee || p == PlatformTikTok
}

// ReportVariant identifies which report shape the fee lines came from.
type ReportVariant string

const (
	// VariantSettlement is the marketplace settlement (payout) report
	VariantSettlement ReportVariant = "SETTLEMENT"
	// VariantImport is the import-reconciliation report
	VariantImport ReportVariant = "IMPORT"
)

// IsValid returns true if the variant is known.
func (v ReportVariant) IsValid() bool {
	return v == VariantSettlement || v == VariantImport
}

// FeeMappingRule declares how one raw marketplace fee description posts.
// Rules are immutable configuration; Row is an ordering hint for report
// layout, not a uniqueness key on its own.
type FeeMappingRule struct {
	// Field is the internal field name the fee amount lands on
	Field string `json:"field"`
	// Description is the raw marketplace-provided label, matched exactly
	Description string `json:"description"`
	// DefaultAccount is the accounting code the fee posts to
	DefaultAccount string `json:"default_account"`
	// Row is the report row position
	Row int `json:"row"`
	// TargetColumn, when set, overrides the variant's default ledger column
	// for this rule. Used only where two rules would otherwise collide on
	// the same accounting row.
	TargetColumn string `json:"target_column,omitempty"`
}

// ResolveFee finds the rule whose raw description exactly matches the given
// fee line label, scanning the sequence in declared order. A miss is not an
// error: unknown fee labels are reported back to the operator, not posted.
func ResolveFee(rules []FeeMappingRule, description string) (FeeMappingRule, bool) {
	for _, rule := range rules {
		if rule.Description == description {
			return rule, true
		}
	}
	return FeeMappingRule{}, false
}

// TableFor selects the rule sequence for a platform/variant pair.
func TableFor(platform Platform, variant ReportVariant) ([]FeeMappingRule, bool) {
	switch {
	case platform == PlatformShopee && variant == VariantSettlement:
		return ShopeeSettlementFees, true
	case platform == PlatformShopee && variant == VariantImport:
		return ShopeeImportFees, true
	case platform == PlatformTikTok && variant == VariantImport:
		return TikTokImportFees, true
	case platform == PlatformTikTok && variant == VariantSettlement:
		return TikTokSettlementFees, true
	default:
		return nil, false
	}
}

// ValidateRules checks the configuration invariant that no two rules in one
// sequence share both the raw description and the row. A violation is a
// data-entry bug in the tables, so it is surfaced at startup rather than
// handled at resolution time.
func ValidateRules(rules []FeeMappingRule) error {
	type key struct {
		description string
		row         int
	}
	seen := make(map[key]string, len(rules))
	for _, rule := range rules {
		k := key{rule.Description, rule.Row}
		if prior, dup := seen[k]; dup {
			return fmt.Errorf("accounting: duplicate fee rule %q row %d (fields %s and %s)",
				rule.Description, rule.Row, prior, rule.Field)
		}
		seen[k] = rule.Field
	}
	return nil
}

// ValidateAllTables validates the four built-in rule sequences. Called once
// at startup; any error is a programmer error.
func ValidateAllTables() error {
	for _, table := range []struct {
		name  string
		rules []FeeMappingRule
	}{
		{"shopee settlement", ShopeeSettlementFees},
		{"shopee import", ShopeeImportFees},
		{"tiktok import", TikTokImportFees},
		{"tiktok settlement", TikTokSettlementFees},
	} {
		if err := ValidateRules(table.rules); err != nil {
			return fmt.Errorf("%s: %w", table.name, err)
		}
	}
	return nil
}
