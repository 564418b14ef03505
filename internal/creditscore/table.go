// =============================================================================
// MISMO Anonymizer - Credit Summary Attribute Traits
// =============================================================================

package creditscore

import "github.com/Solve-Finance/mismo-anonymizer/internal/types"

// AttributeTraits describes how a credit-summary attribute code should be
// read by downstream consumers.
type AttributeTraits struct {
	Importance types.CreditImportance
	HighIsGood bool
	Type       types.CreditSummaryType
}

// summaryAttributeTraits is the static trait table for the attribute
// codes the optimizer acts on. Codes follow the bureau attribute
// dictionary; anything not listed here is typed Unknown.
var summaryAttributeTraits = map[string]AttributeTraits{
	"AT103S": {
		Importance: types.ImportanceHigh,
		HighIsGood: true,
		Type:       types.SummaryPercentage,
	},
	"AP001": {
		Importance: types.ImportanceLow,
		HighIsGood: false,
		Type:       types.SummaryNumber,
	},
	"AP002": {
		Importance: types.ImportanceMedium,
		HighIsGood: true,
		Type:       types.SummaryNumber,
	},
	"AP004": {
		Importance: types.ImportanceLow,
		HighIsGood: false,
		Type:       types.SummaryNumber,
	},
	"AP006": {
		Importance: types.ImportanceHigh,
		HighIsGood: false,
		Type:       types.SummaryPercentage,
	},
	"AP008": {
		Importance: types.ImportanceHigh,
		HighIsGood: false,
		Type:       types.SummaryNumber,
	},
}

// TraitsFor returns the traits for an attribute code. Unlisted codes get
// Unknown type and NotApplicable importance.
func TraitsFor(code string) AttributeTraits {
	if traits, ok := summaryAttributeTraits[code]; ok {
		return traits
	}
	return AttributeTraits{
		Importance: types.ImportanceNotApplicable,
		Type:       types.SummaryUnknown,
	}
}
