package jsonwriter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

func TestGenerateEmptyCollectionsAsArrays(t *testing.T) {
	w := NewWriter(GenerateOptions{Pretty: false})

	data, err := w.Generate(&types.Document{})
	require.NoError(t, err)

	out := strings.TrimSpace(string(data))
	assert.Equal(t, `{"debts":[],"creditScores":[],"creditSummaryAttributes":[]}`, out)
}

func TestGeneratePretty(t *testing.T) {
	w := NewWriter(GenerateOptions{Pretty: true, Indent: "  "})

	doc := &types.Document{
		Debts: []types.Debt{{
			Group:            types.GroupAuto,
			ExternalID:       "ref-1",
			Lender:           "ALLY FINANCIAL",
			Type:             "Automobile",
			InterestRateType: types.VariableRate,
			PrincipalBalance: 9000,
			PaymentInterval:  types.Monthly,
		}},
	}

	data, err := w.Generate(doc)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"debts\"")
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	debts, ok := decoded["debts"].([]any)
	require.True(t, ok)
	require.Len(t, debts, 1)

	first := debts[0].(map[string]any)
	assert.Equal(t, "Auto", first["group"])
	assert.Equal(t, "ref-1", first["externalId"])
	assert.Equal(t, "MONTHLY", first["paymentInterval"])
}

func TestWriteToFile(t *testing.T) {
	w := NewWriter(DefaultGenerateOptions())
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, w.WriteToFile(&types.Document{}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"debts"`)
}
