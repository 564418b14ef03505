// =============================================================================
// MISMO Anonymizer - Identity Grouper & Matcher
// =============================================================================
//
// Clusters active liability records into per-account buckets. Bureaus
// report the same account under slightly different identifiers (one
// truncates, another pads), so besides exact matching the grouper merges
// identifiers where one is a prefix of the other -- but only after a
// confidence match corroborates that the two records describe the same
// account.
//
// The scan is O(buckets x records) per report. Reports carry tens of
// liabilities; correctness wins over throughput here.
//
// =============================================================================

package consolidator

import (
	"math"
	"strings"

	"github.com/Solve-Finance/mismo-anonymizer/internal/config"
	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/pkg/utils"
)

// liability is one raw record plus the working identifier the grouper
// maintains for it. The identifier may be rewritten when a prefix match
// is confirmed; the record itself is never mutated.
type liability struct {
	rec       mismoparser.Record
	accountID string
}

// workingIdentifier computes the identifier a record is grouped under: the
// explicit account identifier when present, otherwise a key synthesized
// from the original balance (or high credit amount) and the loan-type code.
func workingIdentifier(rec mismoparser.Record) string {
	if id := mismoparser.AttrOr(rec, "_AccountIdentifier", ""); id != "" {
		return id
	}

	balance := mismoparser.AttrOr(rec, "_OriginalBalanceAmount", "")
	if balance == "" {
		balance = mismoparser.AttrOr(rec, "_HighCreditAmount", "")
	}
	return balance + loanTypeCode(rec)
}

// bucket holds the records believed to represent one account, in the
// order they were encountered.
type bucket struct {
	key     string
	members []*liability
}

// grouper accumulates buckets for one report.
type grouper struct {
	policy  config.Policy
	buckets []*bucket
	index   map[string]*bucket
}

func newGrouper(policy config.Policy) *grouper {
	return &grouper{
		policy: policy,
		index:  make(map[string]*bucket),
	}
}

// add places an active record into a bucket, merging identifiers where a
// corroborated prefix relationship exists.
func (g *grouper) add(l *liability) {
	// Exact key match needs no corroboration.
	if existing, ok := g.index[l.accountID]; ok {
		existing.members = append(existing.members, l)
		return
	}

	for _, b := range g.buckets {
		if b.key == l.accountID {
			continue
		}

		// An empty identifier is a prefix of every key but carries no
		// identity. Such records bucket by exact key only.
		if l.accountID == "" || b.key == "" {
			continue
		}

		recordBelongsToBucket := strings.HasPrefix(b.key, l.accountID)
		bucketBelongsToRecord := strings.HasPrefix(l.accountID, b.key)
		if !recordBelongsToBucket && !bucketBelongsToRecord {
			continue
		}

		if !g.confidentMatch(l, b.members[0]) {
			// A failed confidence check is "no match", never an error.
			continue
		}

		if recordBelongsToBucket {
			// The bucket key is the longer identifier: normalize the
			// record to it.
			l.accountID = b.key
		} else {
			// The record carries the longer identifier: reattach the
			// bucket under it.
			delete(g.index, b.key)
			b.key = l.accountID
			g.index[b.key] = b
		}

		b.members = append(b.members, l)
		return
	}

	b := &bucket{key: l.accountID, members: []*liability{l}}
	g.buckets = append(g.buckets, b)
	g.index[b.key] = b
}

// =============================================================================
// CONFIDENCE MATCHING
// =============================================================================

// confidentMatch decides whether two records with prefix-related
// identifiers describe the same account. Ownership, status, opened date
// and classified group must agree exactly; the monetary fields agree
// within policy tolerance (categorically for revolving accounts). A
// monetary field absent on either side passes through.
func (g *grouper) confidentMatch(a, b *liability) bool {
	if !attrEqual(a.rec, b.rec, "_AccountOwnershipType") {
		return false
	}
	if !attrEqual(a.rec, b.rec, "_AccountStatusType") {
		return false
	}
	if !attrEqual(a.rec, b.rec, "_AccountOpenedDate") {
		return false
	}
	if Classify(loanTypeCode(a.rec)) != Classify(loanTypeCode(b.rec)) {
		return false
	}

	revolving := isRevolving(a.rec)

	if !amountsMatch(a.rec, b.rec, "_MonthlyPaymentAmount", revolving, *g.policy.PaymentTolerance) {
		return false
	}
	if !amountsMatch(a.rec, b.rec, "_UnpaidBalanceAmount", revolving, *g.policy.BalanceTolerance) {
		return false
	}

	return true
}

// attrEqual reports whether a field agrees exactly on both records.
// Absent on both sides counts as agreement.
func attrEqual(a, b mismoparser.Record, name string) bool {
	va, _ := a.Attr(name)
	vb, _ := b.Attr(name)
	return va == vb
}

// amountsMatch compares a monetary field under the tolerance rules: a side
// with no usable amount passes; revolving accounts match categorically
// (both zero or both positive); installment accounts match within the
// given relative tolerance.
func amountsMatch(a, b mismoparser.Record, name string, revolving bool, tolerance float64) bool {
	va, oka := utils.ParseAmount(mismoparser.AttrOr(a, name, ""))
	vb, okb := utils.ParseAmount(mismoparser.AttrOr(b, name, ""))
	if !oka || !okb {
		return true
	}

	if revolving {
		return (va == 0) == (vb == 0)
	}

	larger := math.Max(math.Abs(va), math.Abs(vb))
	if larger == 0 {
		return true
	}
	return math.Abs(va-vb) <= tolerance*larger
}
