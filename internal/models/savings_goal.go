package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SavingsGoal represents a target amount a user saves towards. The current
// amount only ever grows through contributions.
type SavingsGoal struct {
	DefaultModel
	UserID        uuid.UUID       `json:"user_id" gorm:"index"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount" gorm:"type:DECIMAL(20,8)"`
	CurrentAmount decimal.Decimal `json:"current_amount" gorm:"type:DECIMAL(20,8)"`
	Note          string          `json:"note,omitempty"`
}

func (g *SavingsGoal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *SavingsGoal) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(g.TargetAmount) {
		return ErrTargetAmountNotPositive
	}

	return nil
}

// AddContribution increments the current amount of the goal by exactly the
// contributed amount. The increment happens in the database so that
// concurrent contributions do not overwrite each other.
func AddContribution(id, userID uuid.UUID, amount decimal.Decimal) (SavingsGoal, error) {
	var goal SavingsGoal
	err := DB.First(&goal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return SavingsGoal{}, err
	}

	err = DB.Model(&goal).Update("current_amount", gorm.Expr("current_amount + ?", amount)).Error
	if err != nil {
		return SavingsGoal{}, err
	}

	err = DB.First(&goal, "id = ?", id).Error
	if err != nil {
		return SavingsGoal{}, err
	}

	return goal, nil
}
