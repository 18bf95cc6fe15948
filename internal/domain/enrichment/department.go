package enrichment

// OrderDepartment is the department/branch record attached to sale items,
// keyed by branch code. The enrichment core only needs the key; the remaining
// fields ride along for the presentation layer.
type OrderDepartment struct {
	// Code is the branch code
	Code string `json:"code"`
	// Name is the department display name
	Name string `json:"name"`
	// Region groups branches for reporting
	Region string `json:"region"`
}
