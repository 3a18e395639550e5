package domain

// Totals are the per-account sums derived from a full scan of its transactions.
type Totals struct {
	IncomeTotal  float64 `json:"income_total"`  // Sum of income amounts
	ExpenseTotal float64 `json:"expense_total"` // Sum of expense amounts
	Balance      float64 `json:"balance"`       // IncomeTotal - ExpenseTotal
}

// Summary combines totals and the recent view computed from one snapshot.
type Summary struct {
	Totals
	Recent []Transaction `json:"recent"` // Most recent first
}
