package enrichment

// FirstValue returns the first candidate that is neither nil nor an empty
// string, or nil when no candidate qualifies. It is the single place that
// decides the "absent value" policy for synonym-key resolution: every mapper
// that sources one target field from several schema-variant keys goes through
// it, so nil and "" are treated identically everywhere.
func FirstValue(values ...any) any {
	for _, v := range values {
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		return v
	}
	return nil
}

// FirstString is FirstValue narrowed to string candidates. Returns "" when
// no candidate is non-empty.
func FirstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
