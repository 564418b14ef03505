package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

func validDebt() types.Debt {
	return types.Debt{
		Group:            types.GroupAuto,
		ExternalID:       "ref-1",
		Lender:           "ALLY FINANCIAL",
		Type:             "Automobile",
		InterestRateType: types.VariableRate,
		PrincipalBalance: 9000,
		InitialBalance:   25000,
		Term:             36,
		PaymentInterval:  types.Monthly,
		OriginationDate:  "2020-01-15",
	}
}

func TestValidateDocumentCleanPass(t *testing.T) {
	doc := &types.Document{
		Debts: []types.Debt{validDebt()},
		CreditScores: []types.CreditScore{
			{Value: 712, Date: "2024-03-01", Provider: "Equifax"},
		},
		CreditSummaryAttributes: []types.CreditSummaryAttribute{
			{Code: "AP001", Name: "Open credit cards", Value: "4", Type: types.SummaryNumber},
		},
	}

	result := ValidateDocument(doc)
	assert.True(t, result.IsValid)
	assert.Zero(t, result.ErrorCount)
	assert.Equal(t, 3, result.RecordsValidated)
}

func TestValidateDocumentDebtViolations(t *testing.T) {
	bad := validDebt()
	bad.Group = types.GroupUnactionable
	bad.ExternalID = ""
	bad.PrincipalBalance = -1

	result := ValidateDocument(&types.Document{Debts: []types.Debt{bad}})
	assert.False(t, result.IsValid)
	assert.Equal(t, 3, result.ErrorCount)
}

func TestValidateDocumentDateWarnings(t *testing.T) {
	debt := validDebt()
	debt.OriginationDate = "01/15/2020"

	result := ValidateDocument(&types.Document{Debts: []types.Debt{debt}})
	// A malformed date degrades to a warning; the document stays valid.
	assert.True(t, result.IsValid)
	assert.Equal(t, 1, result.WarningCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "originationDate", result.Errors[0].Field)
	assert.Equal(t, "warning", result.Errors[0].Severity)
}

func TestIsValidCreditScore(t *testing.T) {
	assert.True(t, IsValidCreditScore(types.CreditScore{Value: 700, Date: "2024-03-01", Provider: "TransUnion"}))
	assert.False(t, IsValidCreditScore(types.CreditScore{Value: 0, Date: "2024-03-01", Provider: "TransUnion"}))
	assert.False(t, IsValidCreditScore(types.CreditScore{Value: 700, Date: "bad", Provider: "TransUnion"}))
	assert.False(t, IsValidCreditScore(types.CreditScore{Value: 700, Date: "2024-03-01", Provider: "Unknown"}))
}

func TestIsValidCreditScoreFactor(t *testing.T) {
	assert.True(t, IsValidCreditScoreFactor(types.CreditScoreFactor{Code: "10", Description: "text"}))
	assert.False(t, IsValidCreditScoreFactor(types.CreditScoreFactor{Code: "", Description: "text"}))
	assert.False(t, IsValidCreditScoreFactor(types.CreditScoreFactor{Code: "10", Description: ""}))
}

func TestSummaryAttributePredicates(t *testing.T) {
	valid := types.CreditSummaryAttribute{Code: "AP001", Name: "n", Value: "4", Type: types.SummaryNumber}
	assert.True(t, IsValidCreditSummaryAttribute(valid))

	missingName := valid
	missingName.Name = ""
	assert.False(t, IsValidCreditSummaryAttribute(missingName))

	missingValue := valid
	missingValue.Value = ""
	assert.False(t, IsValidCreditSummaryAttribute(missingValue))

	badType := valid
	badType.Type = "SOMETHING"
	assert.False(t, IsValidCreditSummaryAttribute(badType))

	for _, v := range []string{"-4", "-5", "N/A"} {
		na := valid
		na.Value = v
		assert.False(t, IsApplicableCreditSummaryAttribute(na), "value %q", v)
	}
	assert.True(t, IsApplicableCreditSummaryAttribute(valid))
}

func TestValidationErrorString(t *testing.T) {
	e := &ValidationError{
		Severity: "error",
		Entity:   "debt",
		Index:    2,
		Field:    "term",
		Value:    "-1",
		Message:  "term must not be negative",
	}
	assert.Equal(t, "[ERROR] debt 2, field 'term': term must not be negative (value: '-1')", e.Error())
}
