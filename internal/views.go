package internal

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Time-of-day greetings, picked by wall-clock hour.
const (
	GreetingMorning   = "Доброе утро"
	GreetingAfternoon = "Добрый день"
	GreetingEvening   = "Добрый вечер"
	GreetingNight     = "Доброй ночи"
)

// Greeting returns the greeting for the given hour. Bands are half-open:
// [5,12) morning, [12,18) afternoon, [18,22) evening, night otherwise.
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return GreetingMorning
	case hour >= 12 && hour < 18:
		return GreetingAfternoon
	case hour >= 18 && hour < 22:
		return GreetingEvening
	default:
		return GreetingNight
	}
}

// TopTransaction is the projection of one transaction in the report's
// top section.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// ReportDocument is the month-to-date JSON report.
type ReportDocument struct {
	Greeting        string           `json:"greeting"`
	Cards           []CardSummary    `json:"cards"`
	TopTransactions []TopTransaction `json:"top_transactions"`
	CurrencyRates   []CurrencyRate   `json:"currency_rates"`
	StockPrices     []StockPrice     `json:"stock_prices"`
}

// Reporter assembles report documents over a transaction table loaded once
// at startup. The table is read-only; callers must not mutate it while
// reports are being built.
type Reporter struct {
	Transactions []Transaction
	Fetcher      QuoteFetcher
	SettingsPath string
	Now          func() time.Time
	Logger       zerolog.Logger
}

func NewReporter(txs []Transaction, fetcher QuoteFetcher, settingsPath string, logger zerolog.Logger) *Reporter {
	return &Reporter{
		Transactions: txs,
		Fetcher:      fetcher,
		SettingsPath: settingsPath,
		Now:          time.Now,
		Logger:       logger,
	}
}

// BuildReport assembles the report for the month-to-date window ending at
// ref. It never fails: a bad reference date empties the card and top
// sections, missing settings or a broken feed empty the quote sections,
// and everything else stays populated.
func (r *Reporter) BuildReport(ctx context.Context, ref string) ReportDocument {
	doc := ReportDocument{
		Greeting:        Greeting(r.Now().Hour()),
		Cards:           []CardSummary{},
		TopTransactions: []TopTransaction{},
		CurrencyRates:   []CurrencyRate{},
		StockPrices:     []StockPrice{},
	}

	start, end, err := MonthRange(ref)
	if err != nil {
		r.Logger.Warn().Str("date", ref).Msg("invalid reference date, card and top sections will be empty")
	} else {
		monthToDate := FilterByDateWindow(r.Transactions, start, end)
		if cards := SummarizeByCard(monthToDate); cards != nil {
			doc.Cards = cards
		}
		for _, tx := range TopTransactions(monthToDate, TopLimit) {
			doc.TopTransactions = append(doc.TopTransactions, TopTransaction{
				Date:        tx.PaymentDate,
				Amount:      tx.Amount.Round(2).InexactFloat64(),
				Category:    tx.Category,
				Description: tx.Description,
			})
		}
	}

	settings, err := LoadUserSettings(r.SettingsPath)
	if err != nil {
		r.Logger.Warn().Err(err).Msg("user settings unavailable, skipping quotes")
		return doc
	}
	rates, prices := r.Fetcher.Fetch(ctx, settings)
	if rates != nil {
		doc.CurrencyRates = rates
	}
	if prices != nil {
		doc.StockPrices = prices
	}
	return doc
}
