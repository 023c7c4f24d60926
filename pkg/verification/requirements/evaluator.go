// Package requirements decides whether a worker's document file is complete.
package requirements

import (
	"fmt"
	"strings"

	"github.com/zXpect/Panel-admln-ADS-backend/internal/entity"
)

// Policy names the rule used to derive IsComplete.
type Policy string

const (
	// PolicyStrict requires hoja de vida, antecedentes, at least one título
	// and the minimum number of cartas.
	PolicyStrict Policy = "strict"
	// PolicyLenient requires hoja de vida and antecedentes, plus either a
	// título or the minimum number of cartas.
	PolicyLenient Policy = "lenient"
)

// DefaultPolicy is the rule applied unless configuration selects another.
const DefaultPolicy = PolicyStrict

// ParsePolicy reads a policy name. Empty selects DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicyStrict:
		return PolicyStrict, nil
	case PolicyLenient:
		return PolicyLenient, nil
	default:
		return "", fmt.Errorf("unknown requirement policy %q", s)
	}
}

type Evaluator struct {
	policy Policy
}

func NewEvaluator(policy Policy) *Evaluator {
	if policy == "" {
		policy = DefaultPolicy
	}
	return &Evaluator{policy: policy}
}

func (e *Evaluator) Policy() Policy {
	return e.policy
}

// Evaluate computes the completion snapshot of one worker's tree. A nil or
// empty tree yields the zero snapshot.
func (e *Evaluator) Evaluate(docs *entity.WorkerDocuments) entity.RequirementSnapshot {
	var snap entity.RequirementSnapshot
	if docs == nil {
		return snap
	}

	snap.HasHojaVida = docs.Singleton(entity.CategoryHojaDeVida) != nil
	snap.HasAntecedentes = docs.Singleton(entity.CategoryAntecedentes) != nil
	snap.HasTitulo = docs.Collection(entity.SubcategoryTitulos).Size() > 0
	snap.CartasCount = docs.Collection(entity.SubcategoryCartas).Size()
	snap.HasMinimumCartas = snap.CartasCount >= entity.MinimumCartas
	snap.IsComplete = e.complete(snap)
	return snap
}

func (e *Evaluator) complete(s entity.RequirementSnapshot) bool {
	if !s.HasHojaVida || !s.HasAntecedentes {
		return false
	}
	if e.policy == PolicyLenient {
		return s.HasTitulo || s.HasMinimumCartas
	}
	return s.HasTitulo && s.HasMinimumCartas
}
