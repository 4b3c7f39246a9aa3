package models

// BudgetRow is one parsed line of the model's cost breakdown.
type BudgetRow struct {
	Category string `json:"category"`
	Details  string `json:"details"`
	Cost     string `json:"cost"`
}

// BudgetHeader is the fixed header row present at index 0 of every parsed
// table, regardless of what the model returned.
var BudgetHeader = BudgetRow{
	Category: "Category",
	Details:  "Details",
	Cost:     "Estimated Cost (INR)",
}

// BudgetTable is the structured form of a budget response. TotalRow is the
// index of the row flagged as the grand total, or -1 when no total-like line
// was found. Notes carries the budget-fit verdict line plus any prose the
// parser could not classify as a row.
type BudgetTable struct {
	Rows     []BudgetRow `json:"rows"`
	Notes    string      `json:"notes,omitempty"`
	TotalRow int         `json:"total_row"`
}

// HasTotal reports whether a row was flagged as the grand total.
func (t BudgetTable) HasTotal() bool {
	return t.TotalRow >= 0 && t.TotalRow < len(t.Rows)
}
