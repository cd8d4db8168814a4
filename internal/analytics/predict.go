package analytics

import (
	"time"

	"github.com/neuralcash/backend/internal/models"
	"github.com/shopspring/decimal"
)

const (
	forecastSize       = 3
	forecastConfidence = 0.5
)

// Prediction is one expected future expense.
type Prediction struct {
	Merchant        string          `json:"merchant"`
	PredictedAmount decimal.Decimal `json:"predicted_amount"`
	PredictedDate   time.Time       `json:"predicted_date"`
	Confidence      float64         `json:"confidence"`
}

// Forecast groups predictions by horizon.
type Forecast struct {
	Next7Days        []Prediction `json:"next_7_days"`
	Next30Days       []Prediction `json:"next_30_days"`
	SpecialOccasions []Prediction `json:"special_occasions"`
}

// PredictRecurring is a recency-based stand-in for a trained model: it
// returns the most recent transactions as the next expected occurrences,
// with a fixed confidence.
func PredictRecurring(transactions []models.Transaction) Forecast {
	if len(transactions) > forecastSize {
		transactions = transactions[:forecastSize]
	}

	predictions := make([]Prediction, 0, len(transactions))
	for _, t := range transactions {
		merchant := t.Merchant
		if merchant == "" {
			merchant = t.Description
		}

		predictions = append(predictions, Prediction{
			Merchant:        merchant,
			PredictedAmount: t.Amount,
			PredictedDate:   t.Date,
			Confidence:      forecastConfidence,
		})
	}

	return Forecast{
		Next7Days:        predictions,
		Next30Days:       []Prediction{},
		SpecialOccasions: []Prediction{},
	}
}
