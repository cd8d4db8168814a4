package v1

import (
	"github.com/neuralcash/backend/internal/categorizer"
	"github.com/neuralcash/backend/internal/importer"
	"github.com/neuralcash/backend/internal/models"
	"github.com/neuralcash/backend/internal/ocr"
	"github.com/neuralcash/backend/internal/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable are the fields of a transaction users can set. All
// fields are pointers so that validation can distinguish absent fields from
// zero values.
type TransactionEditable struct {
	Amount          *decimal.Decimal `json:"amount" example:"14.03"`
	Description     *string          `json:"description" example:"Coffee at the corner shop"`
	TransactionDate *string          `json:"transaction_date" example:"2024-01-01"`
	PaymentMethod   *string          `json:"payment_method" example:"cash" enums:"cash,online,credit_card,upi"`
	IsPersonal      *bool            `json:"is_personal" example:"true" default:"false"`
}

// rules returns the ordered field rules for a manual entry payload. The
// rules are evaluated in full, so users get every violation at once.
func (e TransactionEditable) rules() []validate.Rule {
	rules := []validate.Rule{
		{Field: "amount", Required: true, Present: e.Amount != nil},
		{Field: "description", Required: true, Present: e.Description != nil},
		{Field: "transaction_date", Required: true, Present: e.TransactionDate != nil},
		{Field: "payment_method", Required: true, Present: e.PaymentMethod != nil},
		{Field: "is_personal", Present: e.IsPersonal != nil},
	}

	if e.Amount != nil {
		rules[0].Check = validate.Positive("amount", *e.Amount)
	}
	if e.Description != nil {
		rules[1].Check = validate.NonEmpty("description", *e.Description)
	}
	if e.TransactionDate != nil {
		rules[2].Check = validate.ISODate("transaction_date", *e.TransactionDate)
	}
	if e.PaymentMethod != nil {
		rules[3].Check = validate.OneOf("payment_method", *e.PaymentMethod, paymentMethodValues())
	}

	return rules
}

// model validates the payload and converts it into a transaction owned by
// the user. The personal flag defaults to false when absent.
func (e TransactionEditable) model(userID uuid.UUID) (models.Transaction, error) {
	if violations := validate.Run(e.rules()); len(violations) > 0 {
		return models.Transaction{}, violations
	}

	// The date rule guarantees that parsing succeeds here
	date, _ := validate.ParseDate(*e.TransactionDate)

	isPersonal := false
	if e.IsPersonal != nil {
		isPersonal = *e.IsPersonal
	}

	return models.Transaction{
		UserID:        userID,
		Amount:        *e.Amount,
		Description:   *e.Description,
		Merchant:      categorizer.Merchant(*e.Description),
		Date:          date,
		PaymentMethod: models.PaymentMethod(*e.PaymentMethod),
		IsPersonal:    isPersonal,
		Status:        models.StatusApproved,
	}, nil
}

// editableFromRow converts a parsed import row into the payload type used
// for manual entries, so that bulk import runs through the same validation.
func editableFromRow(row importer.Row) TransactionEditable {
	return TransactionEditable{
		Amount:          &row.Amount,
		Description:     &row.Description,
		TransactionDate: &row.TransactionDate,
		PaymentMethod:   &row.PaymentMethod,
		IsPersonal:      &row.IsPersonal,
	}
}

func paymentMethodValues() []string {
	values := make([]string, 0, len(models.PaymentMethods))
	for _, m := range models.PaymentMethods {
		values = append(values, string(m))
	}

	return values
}

type TransactionQueryFilter struct {
	StartDate string `form:"start_date"` // Transactions at and after this date
	EndDate   string `form:"end_date"`   // Transactions before and at this date
	Offset    int    `form:"offset"`     // The offset of the first transaction returned. Defaults to 0.
	Limit     int    `form:"limit"`      // Maximum number of transactions to return. Defaults to 50.
}

type ApprovalRequest struct {
	Action string `json:"action" binding:"required" enums:"pending,approved,rejected"` // The new approval status
}

type RecategorizeRequest struct {
	CategoryID        uuid.UUID `json:"category_id" binding:"required"` // The corrected category
	Description       string    `json:"description"`
	PredictedCategory string    `json:"predicted_category"`
	Confidence        float64   `json:"confidence"`
}

// TransactionImportResult is the outcome for a single row of a bulk import.
type TransactionImportResult struct {
	Row   int                 `json:"row"` // Data row number, starting at 1
	Data  *models.Transaction `json:"data,omitempty"`
	Error *string             `json:"error,omitempty"`
}

type BulkImportResponse struct {
	Imported int                       `json:"imported"` // Number of rows that were inserted
	Results  []TransactionImportResult `json:"results"`
}

// ReceiptCapture is the response for a receipt upload: the placeholder
// parse plus the public URL of the stored image.
type ReceiptCapture struct {
	ocr.Receipt
	ReceiptURL string `json:"receipt_url"`
}
