package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// SimpleJSONFormat is a minimal JSON format for importing transactions
// Example:
//
//	{
//	  "transactions": [
//	    {"payment_date": "15.01.2025", "amount": 99.00, "category": "Кино", "card": "*1234"}
//	  ]
//	}
//
// This format is easy to convert to from any bank export or data source.
type SimpleJSONFormat struct {
	Transactions []SimpleJSONTransaction `json:"transactions"`
}

type SimpleJSONTransaction struct {
	OperationDate string  `json:"operation_date"` // DD.MM.YYYY, optionally with time
	PaymentDate   string  `json:"payment_date"`   // DD.MM.YYYY
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Card          string  `json:"card"`
	Cashback      float64 `json:"cashback"`
}

// ParseSimpleJSON parses a JSON file in the simple JSON format
func ParseSimpleJSON(path string) ([]Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData SimpleJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	var transactions []Transaction
	for _, tx := range jsonData.Transactions {
		transactions = append(transactions, Transaction{
			OperationDate: tx.OperationDate,
			PaymentDate:   tx.PaymentDate,
			Amount:        decimal.NewFromFloat(tx.Amount),
			Category:      tx.Category,
			Description:   tx.Description,
			CardNumber:    tx.Card,
			Cashback:      decimal.NewFromFloat(tx.Cashback),
		})
	}

	return transactions, nil
}
