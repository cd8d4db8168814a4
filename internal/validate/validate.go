// Package validate implements an ordered, reflection-free field rule list.
// All rules are evaluated so that callers get every violation of a payload
// at once instead of only the first one.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Violation is a single failed constraint on a named field.
type Violation struct {
	Field   string `json:"field" example:"amount"`
	Message string `json:"message" example:"must be larger than zero"`
}

// Violations collects all failed constraints of a payload.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, fmt.Sprintf("%s %s", violation.Field, violation.Message))
	}

	return strings.Join(parts, "; ")
}

// Constraint checks the value of a single field.
type Constraint func() *Violation

// Rule ties a field name to its presence requirement and constraint.
type Rule struct {
	Field    string
	Required bool
	Present  bool
	Check    Constraint // nil means only the presence requirement applies
}

// Run evaluates all rules in order and returns every violation found.
// It returns nil when the payload is valid.
func Run(rules []Rule) Violations {
	var violations Violations

	for _, rule := range rules {
		if !rule.Present {
			if rule.Required {
				violations = append(violations, Violation{Field: rule.Field, Message: "is required"})
			}
			continue
		}

		if rule.Check == nil {
			continue
		}

		if v := rule.Check(); v != nil {
			violations = append(violations, *v)
		}
	}

	return violations
}

// Positive requires a decimal amount to be larger than zero.
func Positive(field string, amount decimal.Decimal) Constraint {
	return func() *Violation {
		if !amount.IsPositive() {
			return &Violation{Field: field, Message: "must be larger than zero"}
		}
		return nil
	}
}

// NonEmpty requires a string to contain more than whitespace.
func NonEmpty(field, value string) Constraint {
	return func() *Violation {
		if strings.TrimSpace(value) == "" {
			return &Violation{Field: field, Message: "must not be empty"}
		}
		return nil
	}
}

// OneOf requires the value to be a member of the allowed set.
func OneOf(field, value string, allowed []string) Constraint {
	return func() *Violation {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return &Violation{Field: field, Message: fmt.Sprintf("must be one of [%s]", strings.Join(allowed, ", "))}
	}
}

// ISODate requires the value to parse as an ISO-8601 date.
func ISODate(field, value string) Constraint {
	return func() *Violation {
		if _, err := ParseDate(value); err != nil {
			return &Violation{Field: field, Message: "must be an ISO-8601 date"}
		}
		return nil
	}
}

// ParseDate parses an ISO-8601 date, with or without a time component.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(time.UTC), nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}

	return t.In(time.UTC), nil
}
