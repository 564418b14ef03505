// =============================================================================
// MISMO Anonymizer - Validation Engine
// =============================================================================
//
// Structural validation for the normalized record set. Validates:
//   - Debt entities (non-negative amounts, well-formed dates, actionable
//     classification)
//   - Credit scores and their factors
//   - Credit-summary attributes, including the bureau "not applicable"
//     sentinels
//
// ERROR HANDLING:
//   - Errors are collected, not returned on first failure
//   - Each error carries the entity index, field and offending value
//   - Warnings do not fail a document; errors do
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
	"github.com/Solve-Finance/mismo-anonymizer/pkg/utils"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// ValidationError represents a single validation error.
type ValidationError struct {
	// Severity is "error" (fatal) or "warning" (non-fatal).
	Severity string

	// Entity names the record kind: "debt", "creditScore" or
	// "creditSummaryAttribute".
	Entity string

	// Index is the position of the record within its slice.
	Index int

	// Field is the name of the field that failed validation.
	Field string

	// Value is the offending value.
	Value string

	// Message is a human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s %d, field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.Entity,
		e.Index,
		e.Field,
		e.Message,
		e.Value,
	)
}

// ValidationResult contains the results of validating one document.
type ValidationResult struct {
	// IsValid is true if there are no fatal errors.
	IsValid bool

	// Errors contains all validation errors, warnings included.
	Errors []*ValidationError

	// ErrorCount is the number of fatal errors.
	ErrorCount int

	// WarningCount is the number of warnings.
	WarningCount int

	// RecordsValidated is the total number of records checked.
	RecordsValidated int
}

func (r *ValidationResult) add(e *ValidationError) {
	r.Errors = append(r.Errors, e)
	if e.Severity == "warning" {
		r.WarningCount++
	} else {
		r.ErrorCount++
		r.IsValid = false
	}
}

// =============================================================================
// BUREAU NAMES
// =============================================================================

// knownBureaus are the full repository names a valid score may carry.
var knownBureaus = map[string]bool{
	"TransUnion": true,
	"Equifax":    true,
	"Experian":   true,
}

// IsKnownBureau reports whether name is a recognized bureau full name.
func IsKnownBureau(name string) bool {
	return knownBureaus[name]
}

// =============================================================================
// RECORD PREDICATES
// =============================================================================

// IsValidCreditScore reports whether a score is structurally sound: a
// positive value, a well-formed date and a recognized bureau name.
func IsValidCreditScore(score types.CreditScore) bool {
	return score.Value > 0 &&
		utils.IsValidDate(score.Date) &&
		IsKnownBureau(score.Provider)
}

// IsValidCreditScoreFactor reports whether a factor carries both a code
// and a description.
func IsValidCreditScoreFactor(factor types.CreditScoreFactor) bool {
	return factor.Code != "" && factor.Description != ""
}

// IsValidCreditSummaryAttribute reports whether a summary attribute is
// structurally sound. Unknown is a valid type; it marks codes missing
// from the trait table, not malformed records.
func IsValidCreditSummaryAttribute(attr types.CreditSummaryAttribute) bool {
	switch attr.Type {
	case types.SummaryNumber, types.SummaryPercentage, types.SummaryUnknown:
	default:
		return false
	}
	return attr.Code != "" && attr.Name != "" && attr.Value != ""
}

// IsApplicableCreditSummaryAttribute reports whether the attribute value
// applies to this consumer. Bureaus send -4, -5 or N/A for attributes
// that do not apply.
func IsApplicableCreditSummaryAttribute(attr types.CreditSummaryAttribute) bool {
	switch attr.Value {
	case "-4", "-5", "N/A":
		return false
	}
	return true
}

// =============================================================================
// DOCUMENT VALIDATION
// =============================================================================

// ValidateDocument checks every record in a normalized document and
// collects the violations.
func ValidateDocument(doc *types.Document) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	for i, debt := range doc.Debts {
		validateDebt(result, i, debt)
		result.RecordsValidated++
	}

	for i, score := range doc.CreditScores {
		if !IsValidCreditScore(score) {
			result.add(&ValidationError{
				Severity: "error",
				Entity:   "creditScore",
				Index:    i,
				Field:    "value",
				Value:    fmt.Sprintf("%d", score.Value),
				Message:  "score must have a positive value, a valid date and a known bureau",
			})
		}
		result.RecordsValidated++
	}

	for i, attr := range doc.CreditSummaryAttributes {
		if !IsValidCreditSummaryAttribute(attr) {
			result.add(&ValidationError{
				Severity: "error",
				Entity:   "creditSummaryAttribute",
				Index:    i,
				Field:    "code",
				Value:    attr.Code,
				Message:  "summary attribute must carry a code, a name, a value and a recognized type",
			})
		}
		result.RecordsValidated++
	}

	return result
}

// validateDebt collects the violations for one debt entity.
func validateDebt(result *ValidationResult, index int, debt types.Debt) {
	if debt.Group == types.GroupUnactionable {
		result.add(&ValidationError{
			Severity: "error",
			Entity:   "debt",
			Index:    index,
			Field:    "group",
			Value:    string(debt.Group),
			Message:  "unactionable debts must not reach the output",
		})
	}

	if debt.ExternalID == "" {
		result.add(&ValidationError{
			Severity: "error",
			Entity:   "debt",
			Index:    index,
			Field:    "externalId",
			Value:    "",
			Message:  "external reference is required",
		})
	}

	if debt.PrincipalBalance < 0 {
		result.add(&ValidationError{
			Severity: "error",
			Entity:   "debt",
			Index:    index,
			Field:    "principalBalance",
			Value:    fmt.Sprintf("%.2f", debt.PrincipalBalance),
			Message:  "principal balance must not be negative",
		})
	}

	if debt.InitialBalance < 0 {
		result.add(&ValidationError{
			Severity: "error",
			Entity:   "debt",
			Index:    index,
			Field:    "initialBalance",
			Value:    fmt.Sprintf("%.2f", debt.InitialBalance),
			Message:  "initial balance must not be negative",
		})
	}

	if debt.Term < 0 {
		result.add(&ValidationError{
			Severity: "error",
			Entity:   "debt",
			Index:    index,
			Field:    "term",
			Value:    fmt.Sprintf("%d", debt.Term),
			Message:  "term must not be negative",
		})
	}

	for _, date := range []struct {
		field string
		value string
	}{
		{"originationDate", debt.OriginationDate},
		{"lastPaymentDate", debt.LastPaymentDate},
	} {
		if date.value != "" && !utils.IsValidDate(date.value) {
			result.add(&ValidationError{
				Severity: "warning",
				Entity:   "debt",
				Index:    index,
				Field:    date.field,
				Value:    date.value,
				Message:  "date is not in YYYY-MM-DD form",
			})
		}
	}

	if debt.Lender == "" {
		result.add(&ValidationError{
			Severity: "warning",
			Entity:   "debt",
			Index:    index,
			Field:    "lender",
			Value:    "",
			Message:  "no creditor name was reported",
		})
	}
}
