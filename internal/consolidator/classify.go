// =============================================================================
// MISMO Anonymizer - Schema Classifier
// =============================================================================
//
// Maps the free-text loan-type codes found on raw liability records onto
// the DebtGroup taxonomy, and derives the classification-driven flags
// (federal student loan, FHA mortgage, revolving treatment).
//
// Classification is total: an unrecognized code maps to the Unactionable
// sentinel, never to an error.
//
// =============================================================================

package consolidator

import (
	"strings"

	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

// NormalizeLoanType canonicalizes a raw loan-type code for table lookup:
// case is folded and all non-alphanumeric characters are stripped, so
// "Credit Card", "CREDIT-CARD" and "CreditCard" collide.
func NormalizeLoanType(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range strings.ToLower(code) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify maps a raw loan-type code to its DebtGroup. Unknown codes map
// to GroupUnactionable; a missing code maps to GroupPersonal.
func Classify(code string) types.DebtGroup {
	if group, ok := debtGroupByLoanType[NormalizeLoanType(code)]; ok {
		return group
	}
	return types.GroupUnactionable
}

// DefaultTerm returns the fallback term in months for a group, used only
// when a record carries no explicit term.
func DefaultTerm(group types.DebtGroup) int {
	return defaultTermByGroup[group]
}

// loanTypeCode returns the raw loan-type code of a liability record.
func loanTypeCode(rec mismoparser.Record) string {
	v, _ := rec.Attr("CreditLoanType")
	return v
}

// creditorName returns the reported creditor name, or "".
func creditorName(rec mismoparser.Record) string {
	creditor := mismoparser.FirstChild(rec, "_CREDITOR")
	if creditor == nil {
		return ""
	}
	return mismoparser.AttrOr(creditor, "_Name", "")
}

// isRevolving reports whether a liability gets the revolving treatment:
// either its raw loan-type code is a known revolving tradeline code, or
// its classified group is a revolving group.
func isRevolving(rec mismoparser.Record) bool {
	code := loanTypeCode(rec)
	return revolvingLoanTypes[code] || revolvingGroups[Classify(code)]
}

// isFederalStudentLoan reports whether the record carries a federal
// student-loan signal: a Student classification combined with a creditor
// name containing one of the federal servicer fragments.
func isFederalStudentLoan(rec mismoparser.Record) bool {
	if Classify(loanTypeCode(rec)) != types.GroupStudent {
		return false
	}

	return containsFederalFlag(creditorName(rec))
}

// isFHAMortgage reports whether the record's loan-type code is in the
// FHA code set.
func isFHAMortgage(rec mismoparser.Record) bool {
	return fhaMortgageCodes[NormalizeLoanType(loanTypeCode(rec))]
}
