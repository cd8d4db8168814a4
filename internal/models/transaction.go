package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod is the way a transaction was paid.
//
// swagger:enum PaymentMethod
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodOnline     PaymentMethod = "online"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodUPI        PaymentMethod = "upi"
)

// PaymentMethods lists all valid payment methods.
var PaymentMethods = []PaymentMethod{PaymentMethodCash, PaymentMethodOnline, PaymentMethodCreditCard, PaymentMethodUPI}

// ApprovalStatus is the review state of a transaction.
//
// swagger:enum ApprovalStatus
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// ApprovalStatuses lists all valid approval statuses.
var ApprovalStatuses = []ApprovalStatus{StatusPending, StatusApproved, StatusRejected}

// Transaction represents a single expense of a user.
type Transaction struct {
	DefaultModel
	UserID        uuid.UUID       `json:"user_id" gorm:"index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Description   string          `json:"description"`    // The description as entered or imported
	Merchant      string          `json:"merchant_clean"` // Normalized merchant name derived from the description
	Date          time.Time       `json:"transaction_date"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	IsPersonal    bool            `json:"is_personal"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	Category      *Category       `json:"-"`
	Status        ApprovalStatus  `json:"status"`
	AICategorized bool            `json:"is_ai_categorized"`
	Confidence    float64         `json:"confidence_score"` // Confidence of the category assignment, between 0 and 1
	ReceiptURL    string          `json:"receipt_url,omitempty"`
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, see DefaultModel.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	if err := t.DefaultModel.AfterFind(tx); err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(t.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}
