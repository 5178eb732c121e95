package grading

import (
	"math"
	"strings"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/rubric"
)

// CriterionResult is the per-criterion slice of a grade breakdown.
type CriterionResult struct {
	Name             string  `json:"name"`
	Score            float64 `json:"score"`
	MaxScore         float64 `json:"max_score"`
	Percentage       float64 `json:"percentage"`
	Weight           float64 `json:"weight"`
	Description      string  `json:"description"`
	PerformanceLevel string  `json:"performance_level"`
}

// Result is a complete grading outcome for one essay.
type Result struct {
	OverallScore     float64                    `json:"overall_score"`
	LetterGrade      string                     `json:"letter_grade"`
	GradeDescription string                     `json:"grade_description"`
	RubricUsed       string                     `json:"rubric_used"`
	Scores           map[string]float64         `json:"criteria_scores"`
	Breakdown        map[string]CriterionResult `json:"grading_breakdown"`
}

// Engine grades essays against a rubric using deterministic heuristics over
// an analysis feature bundle. Stateless and safe for concurrent use.
type Engine struct{}

// NewEngine builds a grading engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Grade scores an essay against the rubric. The bundle must carry the
// always-computed groups; the essay text itself is scanned for the
// marker-phrase heuristics.
func (e *Engine) Grade(text string, bundle *analysis.FeatureBundle, rb rubric.Rubric) (*Result, error) {
	if err := bundle.Validate(); err != nil {
		return nil, err
	}

	lower := strings.ToLower(text)
	scores := make(map[string]float64, len(rb.Criteria))
	breakdown := make(map[string]CriterionResult, len(rb.Criteria))

	for _, c := range rb.Criteria {
		score := e.gradeCriterion(lower, bundle, c)
		scores[c.Key] = score

		percentage := score / c.MaxScore * 100
		breakdown[c.Key] = CriterionResult{
			Name:             c.Name,
			Score:            round1(score),
			MaxScore:         c.MaxScore,
			Percentage:       round1(percentage),
			Weight:           c.Weight,
			Description:      c.Description,
			PerformanceLevel: PerformanceLevel(percentage),
		}
	}

	overall := overallScore(scores, rb)

	letter := LetterGrade(overall)

	return &Result{
		OverallScore:     round1(overall),
		LetterGrade:      letter,
		GradeDescription: GradeDescription(letter),
		RubricUsed:       rb.Key,
		Scores:           scores,
		Breakdown:        breakdown,
	}, nil
}

func (e *Engine) gradeCriterion(lower string, bundle *analysis.FeatureBundle, c rubric.Criterion) float64 {
	var score float64
	switch c.Role {
	case rubric.RoleContent:
		score = gradeContent(bundle, c.MaxScore)
	case rubric.RoleOrganization:
		score = gradeOrganization(bundle, c.MaxScore)
	case rubric.RoleGrammar:
		return gradeGrammar(bundle, c.MaxScore)
	case rubric.RoleStyle:
		score = gradeStyle(bundle, c.MaxScore)
	case rubric.RoleEvidence:
		score = gradeEvidence(lower, c.MaxScore)
	case rubric.RoleAnalysis:
		score = gradeAnalysis(lower, bundle, c.MaxScore)
	case rubric.RoleCreativity:
		score = gradeCreativity(lower, bundle, c.MaxScore)
	case rubric.RoleClaim:
		score = gradeClaim(lower, c.MaxScore)
	case rubric.RoleReasoning:
		score = gradeReasoning(lower, bundle, c.MaxScore)
	case rubric.RoleCounterargument:
		score = gradeCounterargument(lower, c.MaxScore)
	default:
		score = gradeDefault(bundle, c.MaxScore)
	}
	return clamp(score, 0, c.MaxScore)
}

// overallScore normalizes the weighted average of criterion scores by the
// rubric's weighted maximum, so rubrics with non-standard maximums still map
// onto a 0-100 scale.
func overallScore(scores map[string]float64, rb rubric.Rubric) float64 {
	totalScore := 0.0
	totalWeight := 0.0
	for _, c := range rb.Criteria {
		if score, ok := scores[c.Key]; ok {
			totalScore += score * c.Weight
			totalWeight += c.Weight
		}
	}
	if totalWeight == 0 {
		return 0
	}

	weightedMax := rb.WeightedMaxScore()
	if weightedMax == 0 {
		return 0
	}

	return totalScore / totalWeight / weightedMax * 100
}

// LetterGrade maps a 0-100 overall score onto the common American scale.
func LetterGrade(overall float64) string {
	switch {
	case overall >= 97:
		return "A+"
	case overall >= 93:
		return "A"
	case overall >= 90:
		return "A-"
	case overall >= 87:
		return "B+"
	case overall >= 83:
		return "B"
	case overall >= 80:
		return "B-"
	case overall >= 77:
		return "C+"
	case overall >= 73:
		return "C"
	case overall >= 70:
		return "C-"
	case overall >= 67:
		return "D+"
	case overall >= 63:
		return "D"
	case overall >= 60:
		return "D-"
	default:
		return "F"
	}
}

// gradeDescriptions pairs each letter grade with its scale description.
var gradeDescriptions = map[string]string{
	"A+": "Exceptional",
	"A":  "Excellent",
	"A-": "Very Good",
	"B+": "Good",
	"B":  "Above Average",
	"B-": "Satisfactory",
	"C+": "Fair",
	"C":  "Average",
	"C-": "Below Average",
	"D+": "Poor",
	"D":  "Very Poor",
	"D-": "Minimal",
	"F":  "Failing",
}

// GradeDescription returns the scale description for a letter grade.
func GradeDescription(letter string) string {
	return gradeDescriptions[letter]
}

// PerformanceLevel maps a per-criterion percentage onto a descriptive band.
func PerformanceLevel(percentage float64) string {
	switch {
	case percentage >= 90:
		return "Excellent"
	case percentage >= 80:
		return "Proficient"
	case percentage >= 70:
		return "Developing"
	case percentage >= 60:
		return "Beginning"
	default:
		return "Below Basic"
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
