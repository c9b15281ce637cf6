package validation

import (
	"slices"
	"strings"
	"unicode/utf8"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

const defaultMaxFieldLength = 255

// Validator provides the checks shared by the category and task forms
type Validator struct {
	maxFieldLength int
}

// NewValidator creates a validator with default limits
func NewValidator() *Validator {
	return &Validator{maxFieldLength: defaultMaxFieldLength}
}

// NewValidatorWithConfig creates a validator using the configured limits
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	v := NewValidator()
	if cfg != nil && cfg.Validation.MaxFieldLength > 0 {
		v.maxFieldLength = cfg.Validation.MaxFieldLength
	}
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks the trimmed rune count against the configured limit
func (v *Validator) IsWithinMaxLength(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= v.maxFieldLength
}

// MaxFieldLength returns the configured field limit
func (v *Validator) MaxFieldLength() int {
	return v.maxFieldLength
}

// IsValidDueDate checks a YYYY/MM/DD calendar date
func (v *Validator) IsValidDueDate(s string) bool {
	_, err := domain.ParseDueDate(strings.TrimSpace(s))
	return err == nil
}

// IsKnownValue reports whether s is one of values, compared exactly
func (v *Validator) IsKnownValue(s string, values []string) bool {
	return slices.Contains(values, s)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
