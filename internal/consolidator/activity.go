// =============================================================================
// MISMO Anonymizer - Activity Filter
// =============================================================================
//
// Decides whether a raw liability record is active: open, in collection,
// or charged off. Inactive records never enter a bucket.
//
// Two status conventions exist across report generations and both are
// supported:
//   - explicit Y/N indicator attributes (IsCollectionIndicator,
//     IsClosedIndicator, IsChargeoffIndicator)
//   - a current-rating code on a _CURRENT_RATING child combined with the
//     account-status type
//
// A record carrying neither convention and no usable loan-type code is
// excluded.
//
// =============================================================================

package consolidator

import "github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"

// IsActive reports whether a liability record describes an active debt.
func IsActive(rec mismoparser.Record) bool {
	hasLoanType := NormalizeLoanType(loanTypeCode(rec)) != ""

	collection, hasCollection := rec.Attr("IsCollectionIndicator")
	closed, hasClosed := rec.Attr("IsClosedIndicator")
	chargeoff, hasChargeoff := rec.Attr("IsChargeoffIndicator")

	if hasCollection || hasClosed || hasChargeoff {
		inCollection := collection == "Y"
		open := closed == "N"
		isChargeoff := chargeoff == "Y"

		active := inCollection || open || isChargeoff
		return active && (hasLoanType || inCollection)
	}

	rating := currentRatingType(rec)
	status, hasStatus := rec.Attr("_AccountStatusType")

	if rating != "" || hasStatus {
		delinquent := delinquentRatingTypes[rating]
		active := status == "Open" || delinquent
		return active && (hasLoanType || delinquent)
	}

	return false
}

// currentRatingType returns the rating code of the record's current-rating
// child, or "".
func currentRatingType(rec mismoparser.Record) string {
	rating := mismoparser.FirstChild(rec, "_CURRENT_RATING")
	if rating == nil {
		return ""
	}
	return mismoparser.AttrOr(rating, "_Type", "")
}
