// Package importer holds the types shared between upload parsers and the
// bulk import endpoint.
package importer

import (
	"github.com/shopspring/decimal"
)

// Row is one parsed transaction from an uploaded file. Fields are kept
// close to their raw form, validation happens when the row is turned into a
// transaction.
type Row struct {
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transaction_date"`
	PaymentMethod   string          `json:"payment_method"`
	IsPersonal      bool            `json:"is_personal"`
}
