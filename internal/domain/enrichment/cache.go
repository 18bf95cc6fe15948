package enrichment

// Reference caches are plain key→record associations populated by the
// boundary layer once per enrichment batch and treated as immutable for the
// batch's duration. Enrichment only reads them; separate batches run on
// independent instances.

// ProductCache associates item codes with canonical product records.
type ProductCache map[string]*OrderProduct

// Get returns the product for the given item code.
func (c ProductCache) Get(code string) (*OrderProduct, bool) {
	p, ok := c[code]
	return p, ok
}

// PromotionCache associates normalized promotion codes with promotion records.
type PromotionCache map[string]*OrderPromotion

// Get returns the promotion for the given normalized code.
func (c PromotionCache) Get(code string) (*OrderPromotion, bool) {
	p, ok := c[code]
	return p, ok
}

// DepartmentCache associates branch codes with department records.
type DepartmentCache map[string]*OrderDepartment

// Get returns the department for the given branch code.
func (c DepartmentCache) Get(code string) (*OrderDepartment, bool) {
	d, ok := c[code]
	return d, ok
}
