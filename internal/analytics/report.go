package analytics

import (
	"encoding/csv"
	"io"

	"github.com/neuralcash/backend/internal/models"
)

// Report is a collection of transactions for a reporting period.
type Report struct {
	GroupBy string               `json:"group_by"`
	Rows    []models.Transaction `json:"rows"`
}

// WriteCSV writes the transactions of a report as CSV.
func WriteCSV(w io.Writer, rows []models.Transaction) error {
	writer := csv.NewWriter(w)

	err := writer.Write([]string{"id", "amount", "description", "transaction_date", "category_id"})
	if err != nil {
		return err
	}

	for _, row := range rows {
		categoryID := ""
		if row.CategoryID != nil {
			categoryID = row.CategoryID.String()
		}

		err = writer.Write([]string{
			row.ID.String(),
			row.Amount.String(),
			row.Description,
			row.Date.Format("2006-01-02"),
			categoryID,
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
