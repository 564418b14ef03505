// =============================================================================
// MISMO Anonymizer - Field Derivation
// =============================================================================
//
// Converts the canonical raw record of each bucket into the normalized
// Debt entity: balance reconciliation (including trended-data parsing out
// of free-text comment blocks), term defaulting, rate-type inference, the
// delinquency/federal/FHA flags, and date normalization.
//
// Every step is a total function over possibly-absent inputs. Absence
// always has a defined fallback; nothing in here returns an error.
//
// =============================================================================

package consolidator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Solve-Finance/mismo-anonymizer/internal/config"
	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
	"github.com/Solve-Finance/mismo-anonymizer/pkg/utils"
)

// Trended-data blocks embed historical balances and payments as pseudo-tags
// inside comment text. Matches keep the tag so the amounts stay ordered.
var (
	unpaidBalancePattern = regexp.MustCompile(`<CreditLiabilityUnpaidBalanceAmount>\d+`)
	actualPaymentPattern = regexp.MustCompile(`<CreditLiabilityActualPaymentAmount>\d+`)
	nonDigitPattern      = regexp.MustCompile(`\D`)
)

// deriveDebt builds the normalized Debt for one consolidated account.
// The boolean is false for Unactionable records, which are dropped from
// the output entirely.
func deriveDebt(c canonical, policy config.Policy, newReference func() string) (types.Debt, bool) {
	rec := c.lia.rec

	code := loanTypeCode(rec)
	group := Classify(code)
	if group == types.GroupUnactionable {
		return types.Debt{}, false
	}

	debtType := code
	if debtType == "" {
		debtType = string(types.GroupUnactionable)
	}

	externalID := newReference()
	if policy.ReferencePolicy == config.ReferenceStable {
		externalID = c.lia.accountID
	}

	monthlyPayment, _ := utils.ParseAmount(mismoparser.AttrOr(rec, "_MonthlyPaymentAmount", ""))

	rateType := types.VariableRate
	if hasFixedRateComment(rec) {
		rateType = types.FixedRate
	}

	inCollection := mismoparser.AttrOr(rec, "IsCollectionIndicator", "") == "Y"
	chargeoff := mismoparser.AttrOr(rec, "IsChargeoffIndicator", "") == "Y"

	// Rating-based reports carry no Y/N indicators; the rating code
	// supplies the delinquency flags instead.
	switch currentRatingType(rec) {
	case "Collection":
		inCollection = true
	case "ChargeOff":
		chargeoff = true
	case "CollectionOrChargeOff":
		inCollection = true
		chargeoff = true
	}

	isFederal := group == types.GroupStudent && containsFederalFlag(c.lender)

	return types.Debt{
		Group:                   group,
		ExternalID:              externalID,
		Lender:                  c.lender,
		Type:                    debtType,
		InterestRateType:        rateType,
		InitialBalance:          initialBalance(rec),
		PrincipalBalance:        principalBalance(rec),
		Term:                    termMonths(rec, group),
		ScheduledMonthlyPayment: monthlyPayment,
		PaymentInterval:         types.Monthly,
		OriginationDate:         utils.NormalizeDate(mismoparser.AttrOr(rec, "_AccountOpenedDate", "")),
		LastPaymentDate:         utils.NormalizeDate(lastPaymentDate(rec)),
		IsDeferred:              isDeferred(rec),
		IsFederalLoan:           isFederal,
		IsChargeoff:             chargeoff,
		IsInCollection:          inCollection,
		IsFHA:                   isFHAMortgage(rec),
	}, true
}

// =============================================================================
// BALANCES
// =============================================================================

// principalBalance reconciles the outstanding balance. Revolving accounts
// prefer the rolled-over amount from trended data; everything else takes
// the reported unpaid balance. The result never goes below zero.
func principalBalance(rec mismoparser.Record) float64 {
	balance, _ := utils.ParseAmount(mismoparser.AttrOr(rec, "_UnpaidBalanceAmount", ""))

	if isRevolving(rec) {
		if rolled, ok := rolledOverAmount(rec); ok {
			balance = rolled
		}
	}

	if balance < 0 {
		return 0
	}
	return balance
}

// initialBalance is the original balance, falling back to the high credit
// amount when the bureau did not report one.
func initialBalance(rec mismoparser.Record) float64 {
	raw := mismoparser.AttrOr(rec, "_OriginalBalanceAmount", "")
	if raw == "" {
		raw = mismoparser.AttrOr(rec, "_HighCreditAmount", "")
	}
	value, _ := utils.ParseAmount(raw)
	return value
}

// rolledOverAmount derives the balance carried forward after the most
// recent payment from the trended-data comment block:
//
//	secondMostRecentUnpaidBalance - mostRecentActualPayment
//
// floored at zero. It needs at least two unpaid-balance entries and one
// payment entry; otherwise the caller falls back to the reported balance.
func rolledOverAmount(rec mismoparser.Record) (float64, bool) {
	text := trendedDataText(rec)
	if text == "" {
		return 0, false
	}

	balances := unpaidBalancePattern.FindAllString(text, -1)
	if len(balances) < 2 {
		return 0, false
	}

	payments := actualPaymentPattern.FindAllString(text, -1)
	if len(payments) == 0 {
		return 0, false
	}

	balance, _ := utils.ParseAmount(balances[1])
	payment, _ := utils.ParseAmount(payments[0])

	rolled := balance - payment
	if rolled < 0 {
		rolled = 0
	}
	return rolled, true
}

// trendedDataText locates the comment text holding the trended-data block.
// A comment tagged as TrendedData wins; a record with a single untagged
// comment uses that comment's text. The tag name carries the typo as the
// bureaus actually send it.
func trendedDataText(rec mismoparser.Record) string {
	comments := rec.Children("CREDIT_COMMENT")

	for _, comment := range comments {
		if mismoparser.AttrOr(comment, "_TypeOtherDescripton", "") == "TrendedData" {
			if text := mismoparser.AttrOr(comment, "_Text", ""); text != "" {
				return text
			}
		}
	}

	if len(comments) == 1 {
		return mismoparser.AttrOr(comments[0], "_Text", "")
	}
	return ""
}

// =============================================================================
// TERMS, RATES AND FLAGS
// =============================================================================

// termMonths resolves the loan term: the explicit month count, else the
// digits of the free-text term description, else the group default.
func termMonths(rec mismoparser.Record, group types.DebtGroup) int {
	if raw, ok := rec.Attr("_TermsMonthsCount"); ok {
		if term, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && term >= 0 {
			return term
		}
	}

	if raw, ok := rec.Attr("_TermsDescription"); ok {
		digits := nonDigitPattern.ReplaceAllString(raw, "")
		if term, err := strconv.Atoi(digits); err == nil {
			return term
		}
	}

	return DefaultTerm(group)
}

// hasFixedRateComment reports whether any comment entry is the literal
// fixed-rate remark.
func hasFixedRateComment(rec mismoparser.Record) bool {
	for _, comment := range rec.Children("CREDIT_COMMENT") {
		if mismoparser.AttrOr(comment, "_Text", "") == "FIXED RATE" {
			return true
		}
	}
	return false
}

// isDeferred reports whether the liability is in deferment, signaled
// either through the collateral description or a bureau remark.
func isDeferred(rec mismoparser.Record) bool {
	collateral := mismoparser.AttrOr(rec, "_CollateralDescription", "")
	if strings.Contains(strings.ToLower(collateral), "deferred") {
		return true
	}

	for _, comment := range rec.Children("CREDIT_COMMENT") {
		if mismoparser.AttrOr(comment, "_Type", "") == "BureauRemarks" &&
			mismoparser.AttrOr(comment, "_Text", "") == "PAYMENT DEFERRED" {
			return true
		}
	}
	return false
}

// containsFederalFlag checks a creditor name for the federal servicer
// fragments.
func containsFederalFlag(lender string) bool {
	lower := strings.ToLower(lender)
	if lower == "" {
		return false
	}
	for _, flag := range federalStudentLoanFlags {
		if strings.Contains(lower, flag) {
			return true
		}
	}
	return false
}

// lastPaymentDate picks the last-payment date, falling back to the
// last-activity date.
func lastPaymentDate(rec mismoparser.Record) string {
	if date := mismoparser.AttrOr(rec, "LastPaymentDate", ""); date != "" {
		return date
	}
	return mismoparser.AttrOr(rec, "_LastActivityDate", "")
}
