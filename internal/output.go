package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintReportJSON writes the report document as indented JSON.
func PrintReportJSON(w io.Writer, doc ReportDocument) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// PrintSearchResults renders matched transactions as a formatted table.
func PrintSearchResults(w io.Writer, txs []Transaction, amounts AmountFormatter) {
	if len(txs) == 0 {
		fmt.Fprintln(w, "Ничего не найдено.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Дата платежа", "Категория", "Описание", "Сумма"})
	for _, tx := range txs {
		t.AppendRow(table.Row{
			tx.PaymentDate,
			tx.Category,
			tx.Description,
			amounts.Format(tx.Amount.InexactFloat64()),
		})
	}
	t.Render()
}

// PrintWeekdayReport renders the weekday report as a formatted table, in
// the order the rows were produced (most recent date first).
func PrintWeekdayReport(w io.Writer, rows []WeekdayRow, amounts AmountFormatter) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "Нет данных за период.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Дата платежа", "День недели", "Средняя трата"})
	for _, row := range rows {
		t.AppendRow(table.Row{row.Date, row.Weekday, amounts.Format(row.Average)})
	}
	t.Render()
}
