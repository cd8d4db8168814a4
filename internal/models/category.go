package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a spending category of a user. The keyword list is
// used by the rule based categorizer to assign transactions to the category.
type Category struct {
	DefaultModel
	UserID   uuid.UUID `json:"user_id" gorm:"uniqueIndex:category_name_user"`
	Name     string    `json:"name" gorm:"uniqueIndex:category_name_user"`
	Keywords []string  `json:"keywords" gorm:"serializer:json"`
	Note     string    `json:"note,omitempty"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
