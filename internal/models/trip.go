package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trip represents a journey a user budgets for. Trips do not reference
// transactions.
type Trip struct {
	DefaultModel
	UserID    uuid.UUID       `json:"user_id" gorm:"index"`
	Name      string          `json:"name"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Budget    decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)"`
	Note      string          `json:"note,omitempty"`
}

func (t *Trip) BeforeSave(_ *gorm.DB) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Note = strings.TrimSpace(t.Note)

	return nil
}
