// =============================================================================
// MISMO Anonymizer - Shared Types
// =============================================================================
//
// This package contains the normalized entities produced by the processing
// pipeline. Types defined here are shared across multiple modules to avoid
// import cycles:
//   - consolidator (debt normalization)
//   - creditscore (score/summary extraction)
//   - validation
//   - jsonwriter / xlsxwriter
//
// =============================================================================

package types

// =============================================================================
// DEBT TYPES
// =============================================================================

// DebtGroup is the coarse business taxonomy a raw loan-type code maps to.
type DebtGroup string

const (
	GroupAuto           DebtGroup = "Auto"
	GroupCreditCard     DebtGroup = "CreditCard"
	GroupCreditBuilder  DebtGroup = "CreditBuilder"
	GroupLineOfCredit   DebtGroup = "LineOfCredit"
	GroupMedical        DebtGroup = "Medical"
	GroupMortgage       DebtGroup = "Mortgage"
	GroupMortgageVA     DebtGroup = "Mortgage-VA"
	GroupPersonal       DebtGroup = "Personal"
	GroupSecondMortgage DebtGroup = "SecondMortgage"
	GroupStudent        DebtGroup = "Student"
	GroupUnsecured      DebtGroup = "Unsecured"

	// GroupUnactionable is the sentinel for unrecognized loan-type codes.
	// Records classified as Unactionable never reach the final output.
	GroupUnactionable DebtGroup = "Unactionable"
)

// InterestRateType distinguishes fixed-rate from variable-rate debts.
type InterestRateType string

const (
	FixedRate    InterestRateType = "FIXED_RATE"
	VariableRate InterestRateType = "VARIABLE_RATE"
)

// PaymentInterval is the payment cadence of a debt.
// Bureau tradelines only ever report monthly schedules.
type PaymentInterval string

const (
	Monthly PaymentInterval = "MONTHLY"
)

// Debt is the normalized, deduplicated representation of one liability
// account, ready for a downstream debt-optimization engine.
//
// Invariants:
//   - PrincipalBalance >= 0 (floored)
//   - Term >= 0
//   - Dates are YYYY-MM-DD (a bare year-month is padded to day 01)
//
// A Debt is constructed once per consolidated account bucket and is not
// modified afterwards.
type Debt struct {
	// Group is the business classification of the account.
	Group DebtGroup `json:"group"`

	// ExternalID is an opaque reference for the debt. Under the default
	// "random" reference policy this is a fresh UUID, deliberately not
	// derived from the bureau account identifier.
	ExternalID string `json:"externalId"`

	// Lender is the creditor name as reported, possibly overridden by a
	// federally-flagged duplicate during consolidation.
	Lender string `json:"lender"`

	// Type is the raw loan-type code from the report.
	Type string `json:"type"`

	InterestRateType InterestRateType `json:"interestRateType"`

	// InitialBalance is the original balance, falling back to the high
	// credit amount when the original balance is not reported.
	InitialBalance float64 `json:"initialBalance"`

	// PrincipalBalance is the reconciled outstanding balance. For revolving
	// accounts this prefers the rolled-over amount derived from trended
	// data; otherwise it is the reported unpaid balance.
	PrincipalBalance float64 `json:"principalBalance"`

	// Term is the term of the loan in months.
	Term int `json:"term"`

	ScheduledMonthlyPayment float64         `json:"scheduledMonthlyPayment"`
	PaymentInterval         PaymentInterval `json:"paymentInterval"`

	OriginationDate string `json:"originationDate"`
	LastPaymentDate string `json:"lastPaymentDate"`

	IsDeferred     bool `json:"isDeferred"`
	IsFederalLoan  bool `json:"isFederalLoan"`
	IsChargeoff    bool `json:"isChargeoff"`
	IsInCollection bool `json:"isInCollection"`
	IsFHA          bool `json:"isFHA"`
}

// =============================================================================
// CREDIT SCORE TYPES
// =============================================================================

// CreditScoreFactor is one reason code attached to a bureau score.
type CreditScoreFactor struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CreditScore is one bureau-reported score with its factors.
type CreditScore struct {
	Value    int                 `json:"value"`
	Date     string              `json:"date"`
	Provider string              `json:"provider"`
	Factors  []CreditScoreFactor `json:"factors"`
}

// =============================================================================
// CREDIT SUMMARY TYPES
// =============================================================================

// CreditSummaryType tags how a summary attribute value should be read.
type CreditSummaryType string

const (
	SummaryNumber     CreditSummaryType = "NUMBER"
	SummaryPercentage CreditSummaryType = "PERCENTAGE"
	SummaryUnknown    CreditSummaryType = "UNKNOWN"
)

// CreditImportance ranks how much a summary attribute matters.
type CreditImportance string

const (
	ImportanceHigh          CreditImportance = "HIGH"
	ImportanceMedium        CreditImportance = "MEDIUM"
	ImportanceLow           CreditImportance = "LOW"
	ImportanceNotApplicable CreditImportance = "NOT_APPLICABLE"
)

// CreditSummaryAttribute is one credit-summary data point from the report.
type CreditSummaryAttribute struct {
	Code  string            `json:"code"`
	Name  string            `json:"name"`
	Value string            `json:"value"`
	Type  CreditSummaryType `json:"type"`
}

// =============================================================================
// RESULT DOCUMENT
// =============================================================================

// Document is the normalized record set emitted for one credit report.
type Document struct {
	Debts                   []Debt                   `json:"debts"`
	CreditScores            []CreditScore            `json:"creditScores"`
	CreditSummaryAttributes []CreditSummaryAttribute `json:"creditSummaryAttributes"`
}
