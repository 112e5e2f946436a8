package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"
	"github.com/vkuzmina/spendview/internal"
)

type Params struct {
	File       string `descr:"Path to the operations spreadsheet (overrides config)"`
	Source     string `descr:"Data source type" alts:"tinkoff-xlsx,simple-json"`
	Config     string `descr:"Path to the config file"`
	Date       string `descr:"Reference timestamp for the month-to-date report" default:"2018-05-28 00:00:00"`
	Search     string `descr:"Search pattern for the category/description filter" default:"Рестораны"`
	ReportDate string `descr:"Reference timestamp for the weekday report" default:"2018-05-18 00:00:00"`
	Output     string `descr:"Output format" alts:"text,json" strict:"true" default:"text"`
	ReportFile string `descr:"Path for the weekday report JSONL export" default:"data/reports.jsonl"`
}

// combinedOutput is the --output json form of all three views.
type combinedOutput struct {
	Report            internal.ReportDocument   `json:"report"`
	FoundTransactions []internal.TopTransaction `json:"found_transactions"`
	WeekdaySpending   []internal.WeekdayRow     `json:"weekday_spending"`
}

func main() {
	boa.NewCmdT[Params]("spendview").
		WithShort("Derive spending reports from a personal-finance transaction spreadsheet").
		WithLong("Loads a bank operations export and prints the month-to-date JSON report (cards, top transactions, currency and stock quotes), a category/description search, and the rolling 90-day average-spend-by-weekday report.").
		WithRunFunc(run).
		Run()
}

func run(params *Params) {
	_ = godotenv.Load() // .env with API keys is optional
	logger := internal.NewLogger()

	cfg := loadConfig(params.Config)
	file := params.File
	if file == "" {
		file = cfg.DataFile
	}
	source := params.Source
	if source == "" {
		source = cfg.Source
	}
	if format, path := internal.ParseFileArg(file); format != "" {
		source, file = format, path
	}

	parser, err := internal.GetParser(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The one fatal condition: without the table there is nothing to
	// search or aggregate over.
	transactions, err := parser.Parse(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing file: %v\n", err)
		os.Exit(1)
	}
	logger.Info().Int("count", len(transactions)).Str("file", file).Msg("loaded transactions")

	fetcher := internal.NewHTTPQuoteFetcher(cfg, logger)
	reporter := internal.NewReporter(transactions, fetcher, cfg.UserSettings, logger)

	doc := reporter.BuildReport(context.Background(), params.Date)
	found := internal.FilterByPattern(transactions, params.Search)
	weekdays := internal.AverageSpendByWeekday(transactions, params.ReportDate)

	if err := exportWeekdayReport(params.ReportFile, weekdays); err != nil {
		logger.Warn().Err(err).Str("file", params.ReportFile).Msg("weekday report export failed")
	}

	if params.Output == "json" {
		printCombinedJSON(doc, found, weekdays)
		return
	}

	amounts := internal.NewAmountFormatter("RUB")

	fmt.Println("=== JSON Report ===")
	internal.PrintReportJSON(os.Stdout, doc)

	fmt.Printf("\n=== Найденные транзакции по запросу %q ===\n", params.Search)
	internal.PrintSearchResults(os.Stdout, found, amounts)

	fmt.Println("\n=== Средние траты по дням недели ===")
	internal.PrintWeekdayReport(os.Stdout, weekdays, amounts)
}

func printCombinedJSON(doc internal.ReportDocument, found []internal.Transaction, weekdays []internal.WeekdayRow) {
	out := combinedOutput{
		Report:            doc,
		FoundTransactions: []internal.TopTransaction{},
		WeekdaySpending:   []internal.WeekdayRow{},
	}
	for _, tx := range found {
		out.FoundTransactions = append(out.FoundTransactions, internal.TopTransaction{
			Date:        tx.PaymentDate,
			Amount:      tx.Amount.InexactFloat64(),
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	if weekdays != nil {
		out.WeekdaySpending = weekdays
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}

// loadConfig reads the config file, falling back to defaults when no path
// was given and the default file does not exist.
func loadConfig(path string) *internal.Config {
	explicit := path != ""
	if !explicit {
		path = internal.DefaultConfigPath()
	}
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		if explicit {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		return internal.DefaultConfig()
	}
	return cfg
}

func exportWeekdayReport(path string, rows []internal.WeekdayRow) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()
	return internal.WriteJSONL(f, rows)
}
