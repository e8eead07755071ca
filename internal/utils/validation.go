package utils

import (
	"strings"

	"github.com/ama-mesquita/app-declaracao/internal/models"
)

// NameRequiredMessage is shown when the form is submitted without a name
const NameRequiredMessage = "Preencha o nome!"

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// FirstMessage returns the message of the first error, or "" when valid
func (vr *ValidationResult) FirstMessage() string {
	if len(vr.Errors) == 0 {
		return ""
	}
	return vr.Errors[0].Message
}

// ValidateSubmission validates a declaration form submission.
// Only the name is required. Every other field, however long or malformed,
// is printed as typed.
func ValidateSubmission(input models.SubmissionRecord) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(input.Name) == "" {
		result.AddError("nome", NameRequiredMessage)
	}

	return result
}

// SanitizeString trims surrounding whitespace
func SanitizeString(s string) string {
	return strings.TrimSpace(s)
}
