package internal

import "github.com/shopspring/decimal"

// CardSummary is the per-card section of the month-to-date report.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// SummarizeByCard accumulates spend and cashback per card, keyed by the
// last four digits. Cards appear in order of first appearance. Totals are
// rounded only at emission so intermediate sums keep full precision.
func SummarizeByCard(txs []Transaction) []CardSummary {
	type totals struct {
		spent    decimal.Decimal
		cashback decimal.Decimal
	}
	byCard := make(map[string]*totals)
	var order []string
	for _, tx := range txs {
		key := tx.LastDigits()
		t := byCard[key]
		if t == nil {
			t = &totals{}
			byCard[key] = t
			order = append(order, key)
		}
		t.spent = t.spent.Add(tx.Amount)
		t.cashback = t.cashback.Add(tx.Cashback)
	}

	out := make([]CardSummary, 0, len(order))
	for _, key := range order {
		t := byCard[key]
		out = append(out, CardSummary{
			LastDigits: key,
			TotalSpent: t.spent.Round(2).InexactFloat64(),
			Cashback:   t.cashback.Round(2).InexactFloat64(),
		})
	}
	return out
}
