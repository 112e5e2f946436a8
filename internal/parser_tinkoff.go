package internal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Canonical column names of the Tinkoff operations export. The capitalized
// Russian headers are the one schema this tool accepts; everything after
// the parser works on Transaction fields, never on raw row maps.
const (
	colOperationDate = "Дата операции"
	colPaymentDate   = "Дата платежа"
	colCardNumber    = "Номер карты"
	colCategory      = "Категория"
	colDescription   = "Описание"
	colCashback      = "Кэшбэк"
	colAmount        = "Сумма операции с округлением"
)

// ParseTinkoffXLSX reads transactions from a Tinkoff operations export.
// Rows are kept even when their dates cannot be parsed; the date filters
// decide what to do with them. Missing or non-numeric amount and cashback
// cells become zero.
func ParseTinkoffXLSX(path string) ([]Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}

	// Find the header row and column indices
	cols := map[string]int{}
	dataStartRow := -1
	for i, row := range rows {
		for j, cell := range row {
			switch strings.TrimSpace(cell) {
			case colOperationDate, colPaymentDate, colCardNumber,
				colCategory, colDescription, colCashback, colAmount:
				cols[strings.TrimSpace(cell)] = j
				dataStartRow = i + 1
			}
		}
		if hasRequiredColumns(cols) {
			break
		}
	}
	if !hasRequiredColumns(cols) {
		return nil, fmt.Errorf("could not find required columns (%s, %s)", colPaymentDate, colAmount)
	}

	var transactions []Transaction
	for i := dataStartRow; i < len(rows); i++ {
		row := rows[i]

		operationDate := cellAt(row, cols, colOperationDate)
		paymentDate := cellAt(row, cols, colPaymentDate)
		amountStr := cellAt(row, cols, colAmount)

		// Skip empty rows
		if operationDate == "" && paymentDate == "" && amountStr == "" {
			continue
		}

		transactions = append(transactions, Transaction{
			OperationDate: operationDate,
			PaymentDate:   paymentDate,
			Amount:        parseAmount(amountStr),
			Category:      cellAt(row, cols, colCategory),
			Description:   cellAt(row, cols, colDescription),
			CardNumber:    cellAt(row, cols, colCardNumber),
			Cashback:      parseAmount(cellAt(row, cols, colCashback)),
		})
	}

	return transactions, nil
}

func hasRequiredColumns(cols map[string]int) bool {
	_, hasDate := cols[colPaymentDate]
	_, hasAmount := cols[colAmount]
	return hasDate && hasAmount
}

// cellAt returns the trimmed cell for a named column, or "" when the row
// is too short or the column was not present at all.
func cellAt(row []string, cols map[string]int, name string) string {
	j, ok := cols[name]
	if !ok || j >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[j])
}

// parseAmount parses a decimal cell, accepting a comma decimal separator.
// Missing or non-numeric values become zero.
func parseAmount(s string) decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	s = strings.ReplaceAll(s, " ", "") // non-breaking thousand separators
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
