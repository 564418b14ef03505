// =============================================================================
// MISMO Anonymizer - Classification Tables
// =============================================================================
//
// Static business tables for debt classification. These are immutable,
// process-wide data: the set of loan-type spellings the bureaus are known
// to emit, the name fragments that mark a federal student-loan servicer,
// and the FHA loan-type codes. They change with bureau behavior, not with
// user configuration, so they live in code rather than in config.yaml.
//
// =============================================================================

package consolidator

import "github.com/Solve-Finance/mismo-anonymizer/internal/types"

// debtGroupByLoanType maps a normalized loan-type code (lower case, all
// non-alphanumerics stripped) to its business group. The empty key covers
// records that carry no loan-type code at all: bureaus report generic
// tradelines that way, and they are treated as personal loans.
var debtGroupByLoanType = map[string]types.DebtGroup{
	"":                               types.GroupPersonal,
	"autoloan":                       types.GroupAuto,
	"automobile":                     types.GroupAuto,
	"autorefinance":                  types.GroupAuto,
	"businesscreditcard":             types.GroupCreditCard,
	"chargeaccount":                  types.GroupCreditCard,
	"consolidation":                  types.GroupPersonal,
	"conventionalrealestatemortgage": types.GroupMortgage,
	"creditcard":                     types.GroupCreditCard,
	"creditlinesecured":              types.GroupCreditBuilder,
	"educational":                    types.GroupStudent,
	"fhacomakernotborrower":          types.GroupMortgage,
	"fhahomeimprovement":             types.GroupMortgage,
	"fharealestatemortgage":          types.GroupMortgage,
	"flexiblespendingcreditcard":     types.GroupCreditCard,
	"homeequity":                     types.GroupSecondMortgage,
	"homeimprovement":                types.GroupSecondMortgage,
	"installmentloan":                types.GroupPersonal,
	"lineofcredit":                   types.GroupLineOfCredit,
	"manualmortgage":                 types.GroupMortgage,
	"medicaldebt":                    types.GroupMedical,
	"mobilehome":                     types.GroupMortgage,
	"mortgage":                       types.GroupMortgage,
	"personallineofcredit":           types.GroupLineOfCredit,
	"realestatejuniorliens":          types.GroupSecondMortgage,
	"realestatespecifictypeunknown":  types.GroupMortgage,
	"recreational":                   types.GroupAuto,
	"recreationalvehicle":            types.GroupAuto,
	"refinance":                      types.GroupMortgage,
	"secondmortgage":                 types.GroupSecondMortgage,
	"securedbycosigner":              types.GroupPersonal,
	"securedcreditcard":              types.GroupCreditBuilder,
	"semimonthlymortgagepayment":     types.GroupMortgage,
	"unsecured":                      types.GroupUnsecured,
	"veteransadministrationloan":     types.GroupMortgageVA,
	"veteransadministrationrealestatemortgage": types.GroupMortgageVA,
}

// defaultTermByGroup supplies a fallback term (in months) when a record
// carries no explicit term. Groups not listed default to 0.
var defaultTermByGroup = map[types.DebtGroup]int{
	types.GroupMortgage:  360,
	types.GroupStudent:   120,
	types.GroupUnsecured: 24,
	types.GroupAuto:      36,
}

// federalStudentLoanFlags are creditor-name fragments that mark a student
// loan as federally serviced. Matched case-insensitively.
var federalStudentLoanFlags = []string{
	"fed loan",
	"dept",
	"department",
	"federal",
	"doe",
	"dofed",
}

// fhaMortgageCodes are the normalized loan-type codes that identify an
// FHA-backed mortgage.
var fhaMortgageCodes = map[string]bool{
	"fhacomakernotborrower": true,
	"fhahomeimprovement":    true,
	"fharealestatemortgage": true,
}

// revolvingLoanTypes are the raw loan-type codes of revolving tradelines.
// Revolving accounts get categorical amount matching, trended-data balance
// reconciliation, and the bureau preference during canonicalization.
var revolvingLoanTypes = map[string]bool{
	"CreditCard":    true,
	"ChargeAccount": true,
}

// revolvingGroups extends the revolving treatment to groups whose codes
// vary too much to enumerate.
var revolvingGroups = map[types.DebtGroup]bool{
	types.GroupCreditCard:   true,
	types.GroupLineOfCredit: true,
}

// delinquentRatingTypes are the current-rating codes that imply an account
// is in collection or charged off under the rating-based status convention.
var delinquentRatingTypes = map[string]bool{
	"Collection":            true,
	"ChargeOff":             true,
	"CollectionOrChargeOff": true,
}
