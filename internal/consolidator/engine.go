// =============================================================================
// MISMO Anonymizer - Consolidation Engine
// =============================================================================
//
// Ties the liability pipeline together: activity filtering, identity
// grouping, canonical record selection and field derivation. One Engine
// is safe to reuse across reports; it holds only policy and the external
// reference source.
//
// =============================================================================

package consolidator

import (
	"github.com/google/uuid"

	"github.com/Solve-Finance/mismo-anonymizer/internal/config"
	"github.com/Solve-Finance/mismo-anonymizer/internal/mismoparser"
	"github.com/Solve-Finance/mismo-anonymizer/internal/types"
)

// Engine extracts normalized debts from a decoded credit response.
type Engine struct {
	policy       config.Policy
	newReference func() string
}

// New creates an Engine for the given policy. External references default
// to random UUIDs.
func New(policy config.Policy) *Engine {
	return &Engine{
		policy:       policy,
		newReference: uuid.NewString,
	}
}

// SetReferenceSource replaces the external reference generator. Used by
// tests that need deterministic identifiers under the random policy.
func (e *Engine) SetReferenceSource(fn func() string) {
	e.newReference = fn
}

// Extract runs the full pipeline over every CREDIT_LIABILITY in the
// response and returns one Debt per consolidated account. Inactive and
// Unactionable records produce no output.
func (e *Engine) Extract(response mismoparser.Record) []types.Debt {
	g := newGrouper(e.policy)

	for _, rec := range mismoparser.Liabilities(response) {
		if !IsActive(rec) {
			continue
		}
		g.add(&liability{rec: rec, accountID: workingIdentifier(rec)})
	}

	debts := make([]types.Debt, 0, len(g.buckets))
	for _, b := range g.buckets {
		c := canonicalize(b, e.policy.RevolvingBureau)
		if debt, ok := deriveDebt(c, e.policy, e.newReference); ok {
			debts = append(debts, debt)
		}
	}
	return debts
}
