package internal

import "sort"

// TopLimit is the number of transactions shown in the report's top section.
const TopLimit = 5

// TopTransactions returns the n largest transactions by amount, descending.
// The sort is stable, so ties keep their original relative order. Fewer
// than n transactions are returned as-is. The input slice is not modified.
func TopTransactions(txs []Transaction, n int) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Amount.GreaterThan(out[j].Amount)
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
