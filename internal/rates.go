package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CurrencyRate is the current rate of one user-selected currency to RUB.
type CurrencyRate struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// StockPrice is the latest closing price of one user-selected stock.
type StockPrice struct {
	Stock string  `json:"stock"`
	Price float64 `json:"price"`
}

// QuoteFetcher returns current currency rates and stock prices for the
// user-selected symbols. The feeds fail independently: a fetch problem
// yields an empty slice for that feed, never an error.
type QuoteFetcher interface {
	Fetch(ctx context.Context, settings UserSettings) ([]CurrencyRate, []StockPrice)
}

// HTTPQuoteFetcher fetches quotes from the currencylayer and marketstack
// APIs. Requests share one client with a bounded timeout, so a stuck feed
// degrades to an empty section instead of hanging the report.
type HTTPQuoteFetcher struct {
	CurrencyURL string
	StockURL    string
	CurrencyKey string
	StockKey    string
	Client      *http.Client
	Logger      zerolog.Logger
}

// NewHTTPQuoteFetcher builds a fetcher from the app config and the API keys
// taken from the environment (API_KEY_CUR_USD, API_KEY_STOCK).
func NewHTTPQuoteFetcher(cfg *Config, logger zerolog.Logger) *HTTPQuoteFetcher {
	return &HTTPQuoteFetcher{
		CurrencyURL: cfg.CurrencyAPIURL,
		StockURL:    cfg.StockAPIURL,
		CurrencyKey: cfg.currencyKey(),
		StockKey:    cfg.stockKey(),
		Client:      &http.Client{Timeout: cfg.HTTPTimeout()},
		Logger:      logger,
	}
}

func (f *HTTPQuoteFetcher) Fetch(ctx context.Context, settings UserSettings) ([]CurrencyRate, []StockPrice) {
	return f.fetchCurrencyRates(ctx, settings.Currencies), f.fetchStockPrices(ctx, settings.Stocks)
}

func (f *HTTPQuoteFetcher) fetchCurrencyRates(ctx context.Context, currencies []string) []CurrencyRate {
	if len(currencies) == 0 {
		return nil
	}
	url := fmt.Sprintf("%s/live?access_key=%s&currencies=%s",
		f.CurrencyURL, f.CurrencyKey, strings.Join(currencies, ","))

	var payload struct {
		Quotes map[string]float64 `json:"quotes"`
	}
	if err := f.getJSON(ctx, url, &payload); err != nil {
		f.Logger.Error().Err(err).Msg("fetching currency rates")
		return nil
	}

	var rates []CurrencyRate
	for _, cur := range currencies {
		if rate, ok := payload.Quotes[cur+"RUB"]; ok {
			rates = append(rates, CurrencyRate{
				Currency: cur,
				Rate:     decimal.NewFromFloat(rate).Round(2).InexactFloat64(),
			})
		}
	}
	return rates
}

func (f *HTTPQuoteFetcher) fetchStockPrices(ctx context.Context, stocks []string) []StockPrice {
	if len(stocks) == 0 {
		return nil
	}
	url := fmt.Sprintf("%s/v1/eod/latest?access_key=%s&symbols=%s",
		f.StockURL, f.StockKey, strings.Join(stocks, ","))

	var payload struct {
		Data []struct {
			Symbol string  `json:"symbol"`
			Close  float64 `json:"close"`
		} `json:"data"`
	}
	if err := f.getJSON(ctx, url, &payload); err != nil {
		f.Logger.Error().Err(err).Msg("fetching stock prices")
		return nil
	}

	var prices []StockPrice
	for _, d := range payload.Data {
		prices = append(prices, StockPrice{Stock: d.Symbol, Price: d.Close})
	}
	return prices
}

func (f *HTTPQuoteFetcher) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status from %s: %s", req.URL.Host, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Host, err)
	}
	return nil
}

// defaultHTTPTimeout bounds each feed request.
const defaultHTTPTimeout = 10 * time.Second
