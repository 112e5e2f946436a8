package internal

import (
	"regexp"
	"time"
)

// FilterByDateWindow returns the transactions whose payment date falls
// inside [start, end], both ends inclusive. Rows with missing or unparsable
// payment dates are skipped. An empty window yields an empty result.
func FilterByDateWindow(txs []Transaction, start, end time.Time) []Transaction {
	if start.IsZero() && end.IsZero() {
		return nil
	}
	var out []Transaction
	for _, tx := range txs {
		d, ok := tx.PaymentTime()
		if !ok {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterByPattern returns the transactions whose category or description
// matches the pattern, case-insensitively and in original order. The search
// term is a regular expression, not a literal substring, so metacharacters
// must be escaped by the caller. An invalid pattern yields an empty result.
func FilterByPattern(txs []Transaction, pattern string) []Transaction {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil
	}
	var out []Transaction
	for _, tx := range txs {
		if re.MatchString(tx.Category) || re.MatchString(tx.Description) {
			out = append(out, tx)
		}
	}
	return out
}
