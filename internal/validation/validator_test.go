package validation

import (
	"strings"
	"testing"

	"task-manager/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "Finish report", true},
		{"String with leading/trailing spaces", "  Work  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := validator.IsNonEmptyString(tt.input); result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidDueDate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		input    string
		expected bool
	}{
		{"2024/12/31", true},
		{" 2024/12/31 ", true},
		{"2024/02/29", true},
		{"2024/1/5", true},
		{"2023/02/29", false},
		{"2024/13/45", false},
		{"2024-12-31", false},
		{"31/12/2024", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := validator.IsValidDueDate(tt.input); result != tt.expected {
				t.Errorf("IsValidDueDate(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinMaxLength(t *testing.T) {
	validator := NewValidator()

	if !validator.IsWithinMaxLength(strings.Repeat("a", 255)) {
		t.Error("255 characters should be within the default limit")
	}
	if validator.IsWithinMaxLength(strings.Repeat("a", 256)) {
		t.Error("256 characters should exceed the default limit")
	}
	if !validator.IsWithinMaxLength(strings.Repeat("é", 255)) {
		t.Error("limit should count runes, not bytes")
	}
}

func TestNewValidatorWithConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Validation.MaxFieldLength = 5

	validator := NewValidatorWithConfig(cfg)
	if validator.MaxFieldLength() != 5 {
		t.Errorf("MaxFieldLength() = %d, expected 5", validator.MaxFieldLength())
	}
	if validator.IsWithinMaxLength("toolong") {
		t.Error("7 characters should exceed a limit of 5")
	}

	if got := NewValidatorWithConfig(nil).MaxFieldLength(); got != defaultMaxFieldLength {
		t.Errorf("nil config should use the default limit, got %d", got)
	}
}

func TestValidator_IsKnownValue(t *testing.T) {
	validator := NewValidator()
	categories := []string{"Work", "Home"}

	if !validator.IsKnownValue("Work", categories) {
		t.Error("Work should be known")
	}
	if validator.IsKnownValue("work", categories) {
		t.Error("comparison should be case-sensitive")
	}
	if validator.IsKnownValue("Work", nil) {
		t.Error("nothing is known in an empty list")
	}
}
