package ledger

import "budget_ledger/internal/domain"

// Totals sums income and expense amounts in input order. An empty input
// yields all-zero totals.
func Totals(txs []domain.Transaction) domain.Totals {
	var t domain.Totals
	for _, tx := range txs {
		switch tx.Kind {
		case domain.Income:
			t.IncomeTotal += tx.Amount
		case domain.Expense:
			t.ExpenseTotal += tx.Amount
		}
	}
	t.Balance = t.IncomeTotal - t.ExpenseTotal
	return t
}

// MostRecent returns the last n transactions, most recently appended first.
// The result never aliases txs.
func MostRecent(txs []domain.Transaction, n int) []domain.Transaction {
	if n <= 0 {
		return []domain.Transaction{}
	}
	if n > len(txs) {
		n = len(txs)
	}
	out := make([]domain.Transaction, 0, n)
	for i := len(txs) - 1; i >= len(txs)-n; i-- {
		out = append(out, txs[i])
	}
	return out
}
