package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActiveIndicatorConvention(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]any
		want  bool
	}{
		{
			name: "open account",
			attrs: map[string]any{
				"@CreditLoanType":        "CreditCard",
				"@IsClosedIndicator":     "N",
				"@IsCollectionIndicator": "N",
				"@IsChargeoffIndicator":  "N",
			},
			want: true,
		},
		{
			name: "closed account",
			attrs: map[string]any{
				"@CreditLoanType":        "CreditCard",
				"@IsClosedIndicator":     "Y",
				"@IsCollectionIndicator": "N",
				"@IsChargeoffIndicator":  "N",
			},
			want: false,
		},
		{
			name: "closed but in collection",
			attrs: map[string]any{
				"@CreditLoanType":        "CreditCard",
				"@IsClosedIndicator":     "Y",
				"@IsCollectionIndicator": "Y",
				"@IsChargeoffIndicator":  "N",
			},
			want: true,
		},
		{
			name: "charged off",
			attrs: map[string]any{
				"@CreditLoanType":        "Automobile",
				"@IsClosedIndicator":     "Y",
				"@IsCollectionIndicator": "N",
				"@IsChargeoffIndicator":  "Y",
			},
			want: true,
		},
		{
			name: "open but no loan type",
			attrs: map[string]any{
				"@IsClosedIndicator":     "N",
				"@IsCollectionIndicator": "N",
				"@IsChargeoffIndicator":  "N",
			},
			want: false,
		},
		{
			name: "collection without loan type",
			attrs: map[string]any{
				"@IsClosedIndicator":     "Y",
				"@IsCollectionIndicator": "Y",
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsActive(rec(tc.attrs)))
		})
	}
}

func TestIsActiveRatingConvention(t *testing.T) {
	open := rec(map[string]any{
		"@CreditLoanType":     "CreditCard",
		"@_AccountStatusType": "Open",
	})
	assert.True(t, IsActive(open))

	paid := rec(map[string]any{
		"@CreditLoanType":     "CreditCard",
		"@_AccountStatusType": "Paid",
	})
	assert.False(t, IsActive(paid))

	collectionRated := rec(map[string]any{
		"@_AccountStatusType": "Closed",
		"_CURRENT_RATING":     map[string]any{"@_Type": "Collection"},
	})
	assert.True(t, IsActive(collectionRated))

	chargeoffRated := rec(map[string]any{
		"@CreditLoanType": "Automobile",
		"_CURRENT_RATING": map[string]any{"@_Type": "ChargeOff"},
	})
	assert.True(t, IsActive(chargeoffRated))

	asAgreed := rec(map[string]any{
		"@CreditLoanType":     "Automobile",
		"@_AccountStatusType": "Closed",
		"_CURRENT_RATING":     map[string]any{"@_Type": "AsAgreed"},
	})
	assert.False(t, IsActive(asAgreed))
}

func TestIsActiveNoStatusInformation(t *testing.T) {
	assert.False(t, IsActive(rec(map[string]any{"@CreditLoanType": "CreditCard"})))
	assert.False(t, IsActive(rec(map[string]any{})))
}
