// Package analytics derives spending insights from a user's transactions.
//
// The cross-cut suggestion engine and the recurring expense predictor are
// placeholders for statistical models that do not exist yet. Their output
// shapes are stable, the contents are trivially derived from recent
// transactions.
package analytics

import (
	"github.com/neuralcash/backend/internal/models"
	"github.com/shopspring/decimal"
)

// LargeSpendThreshold is the amount above which a single transaction
// triggers cross-cut suggestions.
var LargeSpendThreshold = decimal.NewFromInt(10000)

// reductionRate is the share of a budget a cross-cut suggestion proposes to cut.
var reductionRate = decimal.NewFromFloat(0.15)

const maxSuggestions = 2

// Budget is the spend so far against a planned amount for one category.
type Budget struct {
	Category     string          `json:"category"`
	CurrentSpent decimal.Decimal `json:"current_spent"`
	Budget       decimal.Decimal `json:"budget"`
}

// Suggestion is a proposed reduction for one budget category.
type Suggestion struct {
	Category           string          `json:"category"`
	CurrentSpent       decimal.Decimal `json:"current_spent"`
	Budget             decimal.Decimal `json:"budget"`
	SuggestedReduction decimal.Decimal `json:"suggested_reduction"`
	Percentage         int             `json:"percentage"`
}

// CrossCut is the suggestion set produced for a large single spend.
type CrossCut struct {
	TriggerTransaction  *models.Transaction `json:"trigger_transaction,omitempty"`
	Suggestions         []Suggestion        `json:"suggestions"`
	RemainingDisposable *decimal.Decimal    `json:"remaining_disposable"`
}

// BuildCrossCut scans the given transactions for a trigger spend and
// proposes reductions for up to two of the given budgets. Without a trigger
// the suggestion list is empty, regardless of the budgets.
func BuildCrossCut(transactions []models.Transaction, budgets []Budget) CrossCut {
	var trigger *models.Transaction
	for i := range transactions {
		if transactions[i].Amount.GreaterThan(LargeSpendThreshold) {
			trigger = &transactions[i]
			break
		}
	}

	if trigger == nil {
		return CrossCut{Suggestions: []Suggestion{}}
	}

	if len(budgets) > maxSuggestions {
		budgets = budgets[:maxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(budgets))
	for _, b := range budgets {
		suggestions = append(suggestions, Suggestion{
			Category:           b.Category,
			CurrentSpent:       b.CurrentSpent,
			Budget:             b.Budget,
			SuggestedReduction: b.Budget.Mul(reductionRate),
			Percentage:         15,
		})
	}

	return CrossCut{
		TriggerTransaction: trigger,
		Suggestions:        suggestions,
	}
}
