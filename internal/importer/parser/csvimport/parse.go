// Package csvimport parses the CSV files users upload for bulk import.
package csvimport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/neuralcash/backend/internal/importer"
	"github.com/shopspring/decimal"
)

// The columns the parser reads. Unknown columns are ignored so that users
// can upload exports with extra data.
const (
	columnAmount          = "amount"
	columnDescription     = "description"
	columnTransactionDate = "transaction_date"
	columnPaymentMethod   = "payment_method"
	columnIsPersonal      = "is_personal"
)

// Parse reads transactions from a CSV file. The first row must be a header
// naming the columns, the column order is free.
//
// Parsing is lenient: the amount is coerced to a decimal where possible and
// left at zero otherwise, all other fields pass through as they are. Rows
// are validated when they are turned into transactions, not here.
func Parse(f io.Reader) ([]importer.Row, error) {
	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []importer.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var rows []importer.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvReadError(reader, fmt.Errorf("could not read line in CSV: %w", err))
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		row := importer.Row{
			Description:     field(columnDescription),
			TransactionDate: field(columnTransactionDate),
			PaymentMethod:   field(columnPaymentMethod),
			IsPersonal:      field(columnIsPersonal) == "true",
		}

		// A zero amount is rejected by validation downstream, so an
		// unparseable amount does not need to fail the whole file.
		if amount, err := decimal.NewFromString(field(columnAmount)); err == nil {
			row.Amount = amount
		}

		rows = append(rows, row)
	}

	if rows == nil {
		rows = []importer.Row{}
	}

	return rows, nil
}

// csvReadError returns an error that includes the line of the input the
// error occurred in.
func csvReadError(r *csv.Reader, err error) error {
	// always use the first field, we are only interested in the line
	line, _ := r.FieldPos(1)

	return fmt.Errorf("error in line %d of the CSV: %w", line, err)
}
