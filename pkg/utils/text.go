// =============================================================================
// MISMO Anonymizer - Text Utilities
// =============================================================================
//
// Small string helpers shared by the consolidation engine and the
// validators: amount parsing for bureau-formatted monetary strings and
// report-date normalization.
//
// =============================================================================

package utils

import (
	"regexp"
	"strconv"
	"time"
)

var (
	nonNumericPattern = regexp.MustCompile(`[^0-9.\-]`)
	isoDatePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// RemoveNonNumeric strips every character that cannot be part of a decimal
// number. Bureaus format amounts inconsistently ("$1,234", "1234.00 USD").
func RemoveNonNumeric(s string) string {
	return nonNumericPattern.ReplaceAllString(s, "")
}

// ParseAmount converts a bureau-formatted monetary string to a float64.
// The boolean is false when the string holds no usable number; callers
// treat that as an absent amount.
func ParseAmount(s string) (float64, bool) {
	cleaned := RemoveNonNumeric(s)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	if !isoDatePattern.MatchString(s) {
		return false
	}

	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// NormalizeDate pads a bare year-month ("2021-05") to the first of the
// month ("2021-05-01"). Full dates and empty strings pass through.
func NormalizeDate(s string) string {
	if s == "" || len(s) >= 10 {
		return s
	}
	return s + "-01"
}
