package accounting

import "github.com/shopspring/decimal"

// SettlementLine is one raw fee line of a marketplace settlement payload:
// the marketplace's own label plus the amount.
type SettlementLine struct {
	// Description is the raw fee label as exported by the marketplace
	Description string `json:"description"`
	// Amount is the fee amount
	Amount decimal.Decimal `json:"amount"`
}

// Posting is one resolved accounting posting for a settlement fee line.
type Posting struct {
	// Field is the internal field name from the matched rule
	Field string `json:"field"`
	// Account is the accounting code the amount posts to
	Account string `json:"account"`
	// Column is the ledger column the posting routes to
	Column string `json:"column"`
	// Row is the report row position from the matched rule
	Row int `json:"row"`
	// Amount is the posted amount
	Amount decimal.Decimal `json:"amount"`
}

// MapSettlement resolves a settlement payload's fee lines against a rule
// sequence and produces the accounting postings. Lines with no matching rule
// come back in unmatched for the operator to review; an unknown label is
// expected marketplace drift, not an error. A rule's TargetColumn, when set,
// routes the posting away from the variant's default ledger column.
func MapSettlement(lines []SettlementLine, rules []FeeMappingRule, defaultColumn string) (postings []Posting, unmatched []SettlementLine) {
	postings = make([]Posting, 0, len(lines))
	for _, line := range lines {
		rule, ok := ResolveFee(rules, line.Description)
		if !ok {
			unmatched = append(unmatched, line)
			continue
		}
		column := defaultColumn
		if rule.TargetColumn != "" {
			column = rule.TargetColumn
		}
		postings = append(postings, Posting{
			Field:   rule.Field,
			Account: rule.DefaultAccount,
			Column:  column,
			Row:     rule.Row,
			Amount:  line.Amount,
		})
	}
	return postings, unmatched
}
