package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestFetcher(currencyURL, stockURL string) *HTTPQuoteFetcher {
	return &HTTPQuoteFetcher{
		CurrencyURL: currencyURL,
		StockURL:    stockURL,
		CurrencyKey: "test-key",
		StockKey:    "test-key",
		Client:      &http.Client{Timeout: 5 * time.Second},
		Logger:      zerolog.Nop(),
	}
}

func TestHTTPQuoteFetcher_Fetch(t *testing.T) {
	currencySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("access_key"); got != "test-key" {
			t.Errorf("access_key = %q, want test-key", got)
		}
		if got := r.URL.Query().Get("currencies"); got != "USD,EUR" {
			t.Errorf("currencies = %q, want USD,EUR", got)
		}
		w.Write([]byte(`{"quotes": {"USDRUB": 79.5123, "EURRUB": 90.0}}`))
	}))
	defer currencySrv.Close()

	stockSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/v1/eod/latest" {
			t.Errorf("path = %q, want /v1/eod/latest", got)
		}
		w.Write([]byte(`{"data": [{"symbol": "AAPL", "close": 224.5}, {"symbol": "AMZN", "close": 189.01}]}`))
	}))
	defer stockSrv.Close()

	f := newTestFetcher(currencySrv.URL, stockSrv.URL)
	rates, prices := f.Fetch(context.Background(), UserSettings{
		Currencies: []string{"USD", "EUR"},
		Stocks:     []string{"AAPL", "AMZN"},
	})

	wantRates := []CurrencyRate{{Currency: "USD", Rate: 79.51}, {Currency: "EUR", Rate: 90}}
	if len(rates) != 2 || rates[0] != wantRates[0] || rates[1] != wantRates[1] {
		t.Errorf("rates = %+v, want %+v", rates, wantRates)
	}
	wantPrices := []StockPrice{{Stock: "AAPL", Price: 224.5}, {Stock: "AMZN", Price: 189.01}}
	if len(prices) != 2 || prices[0] != wantPrices[0] || prices[1] != wantPrices[1] {
		t.Errorf("prices = %+v, want %+v", prices, wantPrices)
	}
}

// A failing feed must not take the other one down with it.
func TestHTTPQuoteFetcher_FeedFailureIsolated(t *testing.T) {
	currencySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer currencySrv.Close()

	stockSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"symbol": "AAPL", "close": 224.5}]}`))
	}))
	defer stockSrv.Close()

	f := newTestFetcher(currencySrv.URL, stockSrv.URL)
	rates, prices := f.Fetch(context.Background(), UserSettings{
		Currencies: []string{"USD"},
		Stocks:     []string{"AAPL"},
	})

	if len(rates) != 0 {
		t.Errorf("rates = %+v, want empty on feed failure", rates)
	}
	if len(prices) != 1 {
		t.Errorf("prices = %+v, want the stock feed to survive", prices)
	}
}

func TestHTTPQuoteFetcher_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL, srv.URL)
	rates, prices := f.Fetch(context.Background(), UserSettings{
		Currencies: []string{"USD"},
		Stocks:     []string{"AAPL"},
	})
	if len(rates) != 0 || len(prices) != 0 {
		t.Errorf("got rates=%+v prices=%+v from malformed responses, want empty", rates, prices)
	}
}

func TestHTTPQuoteFetcher_NoSymbolsNoRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request with no symbols selected")
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL, srv.URL)
	rates, prices := f.Fetch(context.Background(), UserSettings{})
	if rates != nil || prices != nil {
		t.Errorf("got rates=%+v prices=%+v, want nil", rates, prices)
	}
}

// Symbols the provider did not quote are silently omitted.
func TestHTTPQuoteFetcher_MissingQuoteOmitted(t *testing.T) {
	currencySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"quotes": {"USDRUB": 79.51}}`))
	}))
	defer currencySrv.Close()
	stockSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer stockSrv.Close()

	f := newTestFetcher(currencySrv.URL, stockSrv.URL)
	rates, _ := f.Fetch(context.Background(), UserSettings{Currencies: []string{"USD", "GBP"}})
	if len(rates) != 1 || rates[0].Currency != "USD" {
		t.Errorf("rates = %+v, want only USD", rates)
	}
}
