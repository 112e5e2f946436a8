package internal

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownCard is the card key used when the card number is missing or too
// short to carry four digits.
const UnknownCard = "----"

// Transaction is one row of the operations export. Dates are kept in the
// export's day-first string form; they are parsed where they are actually
// compared, so a row with a broken date is dropped by the filters instead
// of failing the whole load. Amount and cashback default to zero when the
// source cell is missing or non-numeric.
type Transaction struct {
	OperationDate string
	PaymentDate   string
	Amount        decimal.Decimal
	Category      string
	Description   string
	CardNumber    string
	Cashback      decimal.Decimal
}

// paymentDateLayouts covers the payment date column ("31.12.2021") and the
// occasional export that carries a time component as well.
var paymentDateLayouts = []string{"02.01.2006", "02.01.2006 15:04:05"}

// PaymentTime parses the payment date using the day-first convention.
// The second return value is false when the date is missing or unparsable.
func (t Transaction) PaymentTime() (time.Time, bool) {
	raw := t.PaymentDate
	for _, layout := range paymentDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// LastDigits returns the last four characters of the card number, or
// UnknownCard when the field is absent or shorter than four characters.
func (t Transaction) LastDigits() string {
	if len(t.CardNumber) < 4 {
		return UnknownCard
	}
	return t.CardNumber[len(t.CardNumber)-4:]
}
