package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Solve-Finance/mismo-anonymizer/internal/config"
	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
)

func testPolicy() config.Policy {
	return config.Default().Policy
}

func addAll(g *grouper, recs ...mismoparser.Record) {
	for _, r := range recs {
		g.add(&liability{rec: r, accountID: workingIdentifier(r)})
	}
}

// installmentPair builds two records of the same account as reported by
// two bureaus, one with a truncated identifier.
func installmentPair(payA, payB string) (mismoparser.Record, mismoparser.Record) {
	a := rec(map[string]any{
		"@_AccountIdentifier":    "123456789",
		"@CreditLoanType":        "Automobile",
		"@_AccountOwnershipType": "Individual",
		"@_AccountStatusType":    "Open",
		"@_AccountOpenedDate":    "2020-01-15",
		"@_MonthlyPaymentAmount": payA,
		"@_UnpaidBalanceAmount":  "9000",
	})
	b := rec(map[string]any{
		"@_AccountIdentifier":    "12345",
		"@CreditLoanType":        "Automobile",
		"@_AccountOwnershipType": "Individual",
		"@_AccountStatusType":    "Open",
		"@_AccountOpenedDate":    "2020-01-15",
		"@_MonthlyPaymentAmount": payB,
		"@_UnpaidBalanceAmount":  "9000",
	})
	return a, b
}

func TestWorkingIdentifier(t *testing.T) {
	explicit := rec(map[string]any{"@_AccountIdentifier": "ABC123"})
	assert.Equal(t, "ABC123", workingIdentifier(explicit))

	synthesized := rec(map[string]any{
		"@CreditLoanType":         "Automobile",
		"@_OriginalBalanceAmount": "25000",
	})
	assert.Equal(t, "25000Automobile", workingIdentifier(synthesized))

	highCredit := rec(map[string]any{
		"@CreditLoanType":    "CreditCard",
		"@_HighCreditAmount": "5000",
	})
	assert.Equal(t, "5000CreditCard", workingIdentifier(highCredit))
}

func TestGrouperExactIdentifierMerge(t *testing.T) {
	a, _ := installmentPair("100", "100")
	b, _ := installmentPair("100", "100")

	g := newGrouper(testPolicy())
	addAll(g, a, b)

	require.Len(t, g.buckets, 1)
	assert.Len(t, g.buckets[0].members, 2)
}

func TestGrouperPrefixMergeKeyedByLongerIdentifier(t *testing.T) {
	long, short := installmentPair("100", "100")

	// Long identifier first: the short record joins its bucket.
	g := newGrouper(testPolicy())
	addAll(g, long, short)
	require.Len(t, g.buckets, 1)
	assert.Equal(t, "123456789", g.buckets[0].key)
	assert.Equal(t, "123456789", g.buckets[0].members[1].accountID)

	// Short identifier first: the bucket is re-keyed to the long one.
	g = newGrouper(testPolicy())
	addAll(g, short, long)
	require.Len(t, g.buckets, 1)
	assert.Equal(t, "123456789", g.buckets[0].key)
	_, indexed := g.index["123456789"]
	assert.True(t, indexed)
	_, stale := g.index["12345"]
	assert.False(t, stale)
}

func TestGrouperInstallmentPaymentTolerance(t *testing.T) {
	// 100 vs 104 is within the 5% payment tolerance.
	a, b := installmentPair("100", "104")
	g := newGrouper(testPolicy())
	addAll(g, a, b)
	assert.Len(t, g.buckets, 1)

	// 100 vs 110 is not.
	a, b = installmentPair("100", "110")
	g = newGrouper(testPolicy())
	addAll(g, a, b)
	assert.Len(t, g.buckets, 2)
}

func TestGrouperRevolvingCategoricalAmounts(t *testing.T) {
	card := func(id, balance string) mismoparser.Record {
		return rec(map[string]any{
			"@_AccountIdentifier":    id,
			"@CreditLoanType":        "CreditCard",
			"@_AccountOwnershipType": "Individual",
			"@_AccountStatusType":    "Open",
			"@_AccountOpenedDate":    "2019-06-01",
			"@_UnpaidBalanceAmount":  balance,
		})
	}

	// Both positive: categorical match regardless of magnitude.
	g := newGrouper(testPolicy())
	addAll(g, card("400123456789", "3100"), card("400123", "900"))
	assert.Len(t, g.buckets, 1)

	// Zero against positive: no match.
	g = newGrouper(testPolicy())
	addAll(g, card("400123456789", "0"), card("400123", "900"))
	assert.Len(t, g.buckets, 2)

	// Both zero: match.
	g = newGrouper(testPolicy())
	addAll(g, card("400123456789", "0"), card("400123", "0"))
	assert.Len(t, g.buckets, 1)
}

func TestGrouperAbsentAmountPasses(t *testing.T) {
	a, b := installmentPair("100", "100")
	// Strip the payment from one side by rebuilding it without the field.
	b = rec(map[string]any{
		"@_AccountIdentifier":    "12345",
		"@CreditLoanType":        "Automobile",
		"@_AccountOwnershipType": "Individual",
		"@_AccountStatusType":    "Open",
		"@_AccountOpenedDate":    "2020-01-15",
		"@_UnpaidBalanceAmount":  "9000",
	})

	g := newGrouper(testPolicy())
	addAll(g, a, b)
	assert.Len(t, g.buckets, 1)
}

func TestGrouperExactFieldMismatchBlocksMerge(t *testing.T) {
	a, b := installmentPair("100", "100")
	mismatched := rec(map[string]any{
		"@_AccountIdentifier":    "12345",
		"@CreditLoanType":        "Automobile",
		"@_AccountOwnershipType": "JointContractualLiability",
		"@_AccountStatusType":    "Open",
		"@_AccountOpenedDate":    "2020-01-15",
		"@_MonthlyPaymentAmount": "100",
		"@_UnpaidBalanceAmount":  "9000",
	})

	g := newGrouper(testPolicy())
	addAll(g, a, mismatched)
	assert.Len(t, g.buckets, 2)

	// Different opened date likewise.
	g = newGrouper(testPolicy())
	b = rec(map[string]any{
		"@_AccountIdentifier":    "12345",
		"@CreditLoanType":        "Automobile",
		"@_AccountOwnershipType": "Individual",
		"@_AccountStatusType":    "Open",
		"@_AccountOpenedDate":    "2021-03-01",
		"@_MonthlyPaymentAmount": "100",
		"@_UnpaidBalanceAmount":  "9000",
	})
	addAll(g, a, b)
	assert.Len(t, g.buckets, 2)
}

func TestGrouperEmptyIdentifierNeverPrefixMerges(t *testing.T) {
	// A record with no identifier, no loan type and no balance amounts
	// synthesizes an empty working identifier. That is a prefix of every
	// bucket key, so it must never enter the prefix scan: with all the
	// confidence fields absent on both sides it would otherwise be
	// absorbed into an unrelated account.
	personal := rec(map[string]any{
		"@_AccountIdentifier": "12345",
	})
	sparse := rec(map[string]any{
		"@IsCollectionIndicator": "Y",
	})
	require.Equal(t, "", workingIdentifier(sparse))

	g := newGrouper(testPolicy())
	addAll(g, personal, sparse)
	assert.Len(t, g.buckets, 2)

	g = newGrouper(testPolicy())
	addAll(g, sparse, personal)
	assert.Len(t, g.buckets, 2)

	// Identical empty identifiers still share a bucket by exact key.
	g = newGrouper(testPolicy())
	addAll(g, sparse, rec(map[string]any{"@IsCollectionIndicator": "Y"}))
	assert.Len(t, g.buckets, 1)
}

func TestGrouperUnrelatedIdentifiersStaySeparate(t *testing.T) {
	a, _ := installmentPair("100", "100")
	other := rec(map[string]any{
		"@_AccountIdentifier":    "987654321",
		"@CreditLoanType":        "Automobile",
		"@_AccountOwnershipType": "Individual",
		"@_AccountStatusType":    "Open",
		"@_AccountOpenedDate":    "2020-01-15",
		"@_MonthlyPaymentAmount": "100",
		"@_UnpaidBalanceAmount":  "9000",
	})

	g := newGrouper(testPolicy())
	addAll(g, a, other)
	assert.Len(t, g.buckets, 2)
}
