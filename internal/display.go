package internal

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// AmountFormatter renders amounts for table output with locale-aware digit
// grouping and the currency symbol.
type AmountFormatter struct {
	Code    string // "RUB", "USD", "EUR"
	unit    currency.Unit
	printer *message.Printer
}

// symbolOverrides provides custom symbols where x/text defaults aren't ideal
var symbolOverrides = map[string]string{
	"RUB": "₽",
}

// defaultLocaleForCurrency picks a "home" locale per currency for number
// formatting.
var defaultLocaleForCurrency = map[string]language.Tag{
	"RUB": language.Russian,
	"USD": language.AmericanEnglish,
	"EUR": language.German,
	"GBP": language.BritishEnglish,
}

// NewAmountFormatter returns the formatter for a given currency code.
func NewAmountFormatter(code string) AmountFormatter {
	code = strings.ToUpper(code)

	// Get the currency unit (validates the code)
	unit, err := currency.ParseISO(code)
	isUnknown := err != nil
	if isUnknown {
		unit = currency.USD // fallback unit for number formatting only
	}

	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.English
	}

	f := AmountFormatter{
		Code:    code,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}

	// For unknown currencies, use the code as the symbol
	if isUnknown {
		symbolOverrides[code] = code
	}

	return f
}

// getSymbol returns the currency symbol, using overrides where needed
func (f AmountFormatter) getSymbol() string {
	if sym, ok := symbolOverrides[f.Code]; ok {
		return sym
	}
	return f.printer.Sprint(currency.NarrowSymbol(f.unit))
}

// isPrefix returns true if the symbol should be placed before the amount.
func (f AmountFormatter) isPrefix() bool {
	switch f.Code {
	case "USD", "GBP":
		return true
	default:
		return false
	}
}

// Format formats an amount with two fraction digits and the currency symbol
func (f AmountFormatter) Format(amount float64) string {
	formatted := f.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := f.getSymbol()

	if f.isPrefix() {
		return symbol + formatted
	}
	return formatted + " " + symbol
}
