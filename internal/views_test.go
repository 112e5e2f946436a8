package internal

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, GreetingNight},
		{4, GreetingNight},
		{5, GreetingMorning},
		{11, GreetingMorning},
		{12, GreetingAfternoon},
		{17, GreetingAfternoon},
		{18, GreetingEvening},
		{21, GreetingEvening},
		{22, GreetingNight},
		{23, GreetingNight},
	}
	for _, tt := range tests {
		if got := Greeting(tt.hour); got != tt.want {
			t.Errorf("Greeting(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

// stubFetcher records whether it was called and returns canned quotes.
type stubFetcher struct {
	called bool
	rates  []CurrencyRate
	prices []StockPrice
}

func (s *stubFetcher) Fetch(ctx context.Context, settings UserSettings) ([]CurrencyRate, []StockPrice) {
	s.called = true
	return s.rates, s.prices
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_settings.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestReporter(t *testing.T, txs []Transaction, fetcher QuoteFetcher, settingsPath string) *Reporter {
	t.Helper()
	r := NewReporter(txs, fetcher, settingsPath, zerolog.Nop())
	r.Now = func() time.Time {
		return time.Date(2018, 5, 28, 13, 0, 0, 0, time.UTC) // afternoon
	}
	return r
}

func TestBuildReport(t *testing.T) {
	txs := []Transaction{
		{PaymentDate: "05.05.2018", CardNumber: "1234567890123456", Category: "Еда", Description: "Кафе",
			Amount: dec(150.75), Cashback: dec(5.25)},
		{PaymentDate: "20.05.2018", CardNumber: "*7197", Category: "Транспорт", Description: "Метро",
			Amount: dec(300)},
		{PaymentDate: "30.05.2018", CardNumber: "*7197", Category: "Еда", Description: "after reference day",
			Amount: dec(9999)},
		{PaymentDate: "01.04.2018", CardNumber: "*7197", Category: "Еда", Description: "previous month",
			Amount: dec(8888)},
	}
	fetcher := &stubFetcher{
		rates:  []CurrencyRate{{Currency: "USD", Rate: 79.51}},
		prices: []StockPrice{{Stock: "AAPL", Price: 224.5}},
	}
	settings := writeSettings(t, `{"user_currencies": ["USD"], "user_stocks": ["AAPL"]}`)

	r := newTestReporter(t, txs, fetcher, settings)
	doc := r.BuildReport(context.Background(), "2018-05-28 00:00:00")

	if doc.Greeting != GreetingAfternoon {
		t.Errorf("Greeting = %q, want %q", doc.Greeting, GreetingAfternoon)
	}
	if len(doc.Cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(doc.Cards))
	}
	if doc.Cards[0].LastDigits != "3456" || doc.Cards[0].TotalSpent != 150.75 || doc.Cards[0].Cashback != 5.25 {
		t.Errorf("cards[0] = %+v", doc.Cards[0])
	}
	if len(doc.TopTransactions) != 2 {
		t.Fatalf("got %d top transactions, want 2", len(doc.TopTransactions))
	}
	if doc.TopTransactions[0].Amount != 300 || doc.TopTransactions[0].Date != "20.05.2018" {
		t.Errorf("top[0] = %+v, want the 300 transaction first", doc.TopTransactions[0])
	}
	if !fetcher.called {
		t.Error("fetcher was not called despite valid settings")
	}
	if len(doc.CurrencyRates) != 1 || doc.CurrencyRates[0].Currency != "USD" {
		t.Errorf("CurrencyRates = %+v", doc.CurrencyRates)
	}
	if len(doc.StockPrices) != 1 || doc.StockPrices[0].Stock != "AAPL" {
		t.Errorf("StockPrices = %+v", doc.StockPrices)
	}
}

func TestBuildReport_MissingSettings(t *testing.T) {
	txs := []Transaction{
		{PaymentDate: "05.05.2018", CardNumber: "*7197", Category: "Еда", Amount: dec(100)},
	}
	fetcher := &stubFetcher{rates: []CurrencyRate{{Currency: "USD", Rate: 80}}}
	missing := filepath.Join(t.TempDir(), "nope.json")

	r := newTestReporter(t, txs, fetcher, missing)
	doc := r.BuildReport(context.Background(), "2018-05-28 00:00:00")

	if fetcher.called {
		t.Error("fetcher called despite missing settings")
	}
	if len(doc.Cards) != 1 || len(doc.TopTransactions) != 1 {
		t.Errorf("cards/top not populated: %d cards, %d top", len(doc.Cards), len(doc.TopTransactions))
	}

	// The document stays well-formed: empty arrays, not null.
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"currency_rates":[]`, `"stock_prices":[]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("marshaled document missing %s:\n%s", want, data)
		}
	}
}

func TestBuildReport_InvalidReferenceDate(t *testing.T) {
	txs := []Transaction{
		{PaymentDate: "05.05.2018", CardNumber: "*7197", Amount: dec(100)},
	}
	fetcher := &stubFetcher{rates: []CurrencyRate{{Currency: "USD", Rate: 80}}}
	settings := writeSettings(t, `{"user_currencies": ["USD"], "user_stocks": []}`)

	r := newTestReporter(t, txs, fetcher, settings)
	doc := r.BuildReport(context.Background(), "гарбаж")

	if len(doc.Cards) != 0 || len(doc.TopTransactions) != 0 {
		t.Errorf("expected empty card/top sections, got %d cards, %d top", len(doc.Cards), len(doc.TopTransactions))
	}
	if doc.Greeting == "" {
		t.Error("greeting missing")
	}
	if len(doc.CurrencyRates) != 1 {
		t.Errorf("quotes should still be fetched, got %+v", doc.CurrencyRates)
	}
}
