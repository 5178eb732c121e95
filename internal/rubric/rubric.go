package rubric

import (
	"fmt"

	"github.com/graderly/essay-engine/internal/errors"
)

// Role identifies which scoring heuristic a criterion is graded with.
// Dispatching on the role rather than the display name lets rubrics rename
// criteria freely.
type Role string

const (
	RoleContent         Role = "content"
	RoleOrganization    Role = "organization"
	RoleGrammar         Role = "grammar"
	RoleStyle           Role = "style"
	RoleEvidence        Role = "evidence"
	RoleAnalysis        Role = "analysis"
	RoleCreativity      Role = "creativity"
	RoleClaim           Role = "claim"
	RoleReasoning       Role = "reasoning"
	RoleCounterargument Role = "counterargument"
	RoleGeneral         Role = "general"
)

// Criterion is one weighted dimension of a rubric.
type Criterion struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Role        Role    `json:"role"`
	Weight      float64 `json:"weight"`
	MaxScore    float64 `json:"max_score"`
	Description string  `json:"description"`
}

// Rubric is an ordered set of criteria used to grade an essay.
type Rubric struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Criteria    []Criterion `json:"criteria"`
}

// TotalWeight sums the criterion weights.
func (r Rubric) TotalWeight() float64 {
	total := 0.0
	for _, c := range r.Criteria {
		total += c.Weight
	}
	return total
}

// WeightedMaxScore is the weighted average of the per-criterion maximums,
// the denominator for normalizing an overall score to a percentage.
func (r Rubric) WeightedMaxScore() float64 {
	totalWeight := r.TotalWeight()
	if totalWeight == 0 {
		return 0
	}
	weighted := 0.0
	for _, c := range r.Criteria {
		weighted += c.MaxScore * c.Weight
	}
	return weighted / totalWeight
}

// Validate checks a rubric for structural problems before registration.
func (r Rubric) Validate() error {
	if r.Key == "" {
		return errors.NewValidationError("rubric key must not be empty", nil)
	}
	if len(r.Criteria) == 0 {
		return errors.NewValidationError(fmt.Sprintf("rubric %q has no criteria", r.Key), nil)
	}

	seen := make(map[string]bool, len(r.Criteria))
	for _, c := range r.Criteria {
		if c.Key == "" {
			return errors.NewValidationError(fmt.Sprintf("rubric %q has a criterion without a key", r.Key), nil)
		}
		if seen[c.Key] {
			return errors.NewValidationError(fmt.Sprintf("rubric %q has duplicate criterion %q", r.Key, c.Key), nil)
		}
		seen[c.Key] = true
		if c.Weight < 0 {
			return errors.NewValidationError(fmt.Sprintf("criterion %q has negative weight", c.Key), nil)
		}
		if c.MaxScore <= 0 {
			return errors.NewValidationError(fmt.Sprintf("criterion %q has non-positive max score", c.Key), nil)
		}
	}

	return nil
}
