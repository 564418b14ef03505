package creditscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

func scoreReport(scores ...map[string]any) mismoparser.Record {
	items := make([]any, len(scores))
	for i, s := range scores {
		items[i] = s
	}
	return mismoparser.NewObjectRecord(map[string]any{"CREDIT_SCORE": items})
}

func TestScores(t *testing.T) {
	resp := scoreReport(
		map[string]any{
			"@_Value":                     "712",
			"@_Date":                      "2024-03-01",
			"@CreditRepositorySourceType": "Equifax",
			"_FACTOR": []any{
				map[string]any{"@_Code": "10", "@_Text": "Proportion of balances to credit limits is too high"},
				map[string]any{"@_Code": "", "@_Text": "dropped"},
			},
		},
		map[string]any{
			"@_Value":                     "705",
			"@_Date":                      "2024-03-01",
			"@CreditRepositorySourceType": "TransUnion",
		},
	)

	scores := Scores(resp, "")
	require.Len(t, scores, 2)

	assert.Equal(t, 712, scores[0].Value)
	assert.Equal(t, "Equifax", scores[0].Provider)
	require.Len(t, scores[0].Factors, 1)
	assert.Equal(t, "10", scores[0].Factors[0].Code)

	assert.Empty(t, scores[1].Factors)
}

func TestScoresDropMalformedEntries(t *testing.T) {
	resp := scoreReport(
		map[string]any{
			"@_Value":                     "0",
			"@_Date":                      "2024-03-01",
			"@CreditRepositorySourceType": "Equifax",
		},
		map[string]any{
			"@_Value":                     "700",
			"@_Date":                      "not-a-date",
			"@CreditRepositorySourceType": "Equifax",
		},
		map[string]any{
			"@_Value":                     "700",
			"@_Date":                      "2024-03-01",
			"@CreditRepositorySourceType": "SomeAggregator",
		},
	)

	assert.Empty(t, Scores(resp, ""))
}

func TestScoresBureauFilter(t *testing.T) {
	resp := scoreReport(
		map[string]any{
			"@_Value":                     "712",
			"@_Date":                      "2024-03-01",
			"@CreditRepositorySourceType": "Equifax",
		},
		map[string]any{
			"@_Value":                     "705",
			"@_Date":                      "2024-03-01",
			"@CreditRepositorySourceType": "TransUnion",
		},
	)

	filtered := Scores(resp, "TransUnion")
	require.Len(t, filtered, 1)
	assert.Equal(t, "TransUnion", filtered[0].Provider)

	// A filter that would discard everything falls back to all scores.
	fallback := Scores(resp, "Experian")
	assert.Len(t, fallback, 2)
}

func TestSummaries(t *testing.T) {
	resp := mismoparser.NewObjectRecord(map[string]any{
		"CREDIT_SUMMARY": map[string]any{
			"_DATA_SET": []any{
				map[string]any{"@_ID": "AT103S", "@_Name": "Pct satisfactory tradelines", "@_Value": "98"},
				map[string]any{"@_ID": "AP001", "@_Name": "Open credit cards", "@_Value": "4"},
				map[string]any{"@_ID": "AP006", "@_Name": "Utilization", "@_Value": "-4"},
				map[string]any{"@_ID": "XX999", "@_Name": "Unmapped attribute", "@_Value": "7"},
				map[string]any{"@_ID": "", "@_Name": "Nameless", "@_Value": "1"},
				map[string]any{"@_ID": "AP002", "@_Name": "Valueless"},
			},
		},
	})

	attrs := Summaries(resp)
	require.Len(t, attrs, 3)

	assert.Equal(t, "AT103S", attrs[0].Code)
	assert.Equal(t, types.SummaryPercentage, attrs[0].Type)

	assert.Equal(t, "AP001", attrs[1].Code)
	assert.Equal(t, types.SummaryNumber, attrs[1].Type)

	// Codes outside the trait table are kept with Unknown type.
	assert.Equal(t, "XX999", attrs[2].Code)
	assert.Equal(t, types.SummaryUnknown, attrs[2].Type)
}

func TestTraitsFor(t *testing.T) {
	at103s := TraitsFor("AT103S")
	assert.Equal(t, types.ImportanceHigh, at103s.Importance)
	assert.True(t, at103s.HighIsGood)
	assert.Equal(t, types.SummaryPercentage, at103s.Type)

	unknown := TraitsFor("ZZ000")
	assert.Equal(t, types.ImportanceNotApplicable, unknown.Importance)
	assert.Equal(t, types.SummaryUnknown, unknown.Type)
}
