// =============================================================================
// MISMO Anonymizer - Credit Score & Summary Extraction
// =============================================================================
//
// Sibling pipelines to the debt consolidator. Both walk the decoded
// credit response through the same record adapter the consolidator uses,
// so one extractor covers both report encodings and both schema
// generations.
//
// =============================================================================

package creditscore

import (
	"strconv"
	"strings"

	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
	"github.com/Solve-Finance/mismo-anonymizer/internal/validation"
)

// Scores extracts the bureau scores from a decoded credit response.
// Malformed entries are dropped. When bureau is non-empty the result is
// filtered to that bureau, unless the filter would leave nothing, in
// which case all valid scores are kept.
func Scores(response mismoparser.Record, bureau string) []types.CreditScore {
	var scores []types.CreditScore

	for _, rec := range response.Children("CREDIT_SCORE") {
		value, _ := strconv.Atoi(strings.TrimSpace(mismoparser.AttrOr(rec, "_Value", "")))

		score := types.CreditScore{
			Value:    value,
			Date:     mismoparser.AttrOr(rec, "_Date", ""),
			Provider: mismoparser.AttrOr(rec, "CreditRepositorySourceType", ""),
			Factors:  scoreFactors(rec),
		}

		if validation.IsValidCreditScore(score) {
			scores = append(scores, score)
		}
	}

	if bureau != "" {
		filtered := make([]types.CreditScore, 0, len(scores))
		for _, score := range scores {
			if score.Provider == bureau {
				filtered = append(filtered, score)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	return scores
}

// scoreFactors collects the valid reason codes attached to one score.
func scoreFactors(score mismoparser.Record) []types.CreditScoreFactor {
	var factors []types.CreditScoreFactor

	for _, rec := range score.Children("_FACTOR") {
		factor := types.CreditScoreFactor{
			Code:        mismoparser.AttrOr(rec, "_Code", ""),
			Description: mismoparser.AttrOr(rec, "_Text", ""),
		}
		if validation.IsValidCreditScoreFactor(factor) {
			factors = append(factors, factor)
		}
	}
	return factors
}

// Summaries extracts the credit-summary attributes from a decoded credit
// response. Each attribute is typed from the static trait table;
// malformed or not-applicable entries are dropped.
func Summaries(response mismoparser.Record) []types.CreditSummaryAttribute {
	var attrs []types.CreditSummaryAttribute

	for _, summary := range response.Children("CREDIT_SUMMARY") {
		for _, rec := range summary.Children("_DATA_SET") {
			code := mismoparser.AttrOr(rec, "_ID", "")

			attr := types.CreditSummaryAttribute{
				Code:  code,
				Name:  mismoparser.AttrOr(rec, "_Name", ""),
				Value: mismoparser.AttrOr(rec, "_Value", ""),
				Type:  TraitsFor(code).Type,
			}

			if validation.IsValidCreditSummaryAttribute(attr) &&
				validation.IsApplicableCreditSummaryAttribute(attr) {
				attrs = append(attrs, attr)
			}
		}
	}
	return attrs
}
