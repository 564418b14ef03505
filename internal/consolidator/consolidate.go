// =============================================================================
// MISMO Anonymizer - Canonicalizer
// =============================================================================
//
// Selects the single authoritative record out of each account bucket:
//   1. For revolving tradelines, the preferred bureau's member (Equifax by
//      default) is treated as authoritative for tradeline metadata.
//   2. Otherwise, a member explicitly flagged as the Primary tradeline
//      reference wins.
//   3. Otherwise, the first record encountered.
//
// Independently of which member wins, a federal student-loan signal on any
// member overrides the creditor name of the result: the federal
// designation must survive even when the canonical record came from a
// duplicate without the federal label.
//
// =============================================================================

package consolidator

import "github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"

// canonical is the chosen record for one account bucket, together with the
// creditor name to emit (possibly donated by a federal duplicate).
type canonical struct {
	lia    *liability
	lender string
}

// canonicalize picks the authoritative member of a bucket.
func canonicalize(b *bucket, revolvingBureau string) canonical {
	first := b.members[0]
	isTradeline := revolvingLoanTypes[loanTypeCode(first.rec)]

	var bureauMember, primaryMember *liability
	for _, m := range b.members {
		if bureauMember == nil && reportedBy(m.rec, revolvingBureau) {
			bureauMember = m
		}
		if primaryMember == nil && mismoparser.AttrOr(m.rec, "CreditTradeReferenceID", "") == "Primary" {
			primaryMember = m
		}
	}

	result := first
	if isTradeline && bureauMember != nil {
		result = bureauMember
	} else if primaryMember != nil {
		result = primaryMember
	}

	lender := creditorName(result.rec)
	for _, m := range b.members {
		if isFederalStudentLoan(m.rec) {
			lender = creditorName(m.rec)
			break
		}
	}

	return canonical{lia: result, lender: lender}
}

// reportedBy reports whether the record's credit repository names the
// given bureau as its source.
func reportedBy(rec mismoparser.Record, bureau string) bool {
	for _, repo := range rec.Children("CREDIT_REPOSITORY") {
		if mismoparser.AttrOr(repo, "_SourceType", "") == bureau {
			return true
		}
	}
	return false
}
