package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/rubric"
)

const gradedEssay = `In this essay I will discuss why cities should invest in public libraries. My position is that libraries remain essential civic infrastructure. However, budgets keep shrinking.

Research shows that library access improves literacy. For example, neighborhood branches lend far more than books. Furthermore, studies indicate that students with library cards read more often. Critics argue that the internet replaced libraries, but this view is flawed because access is not evenly distributed.

In conclusion, libraries deserve stable funding. Therefore, city councils should protect their budgets, because the benefits compound over decades.`

func analyze(t *testing.T, text string) *analysis.FeatureBundle {
	t.Helper()
	bundle, err := analysis.NewAnalyzer(false).Analyze(text, analysis.DefaultOptions())
	require.NoError(t, err)
	return bundle
}

func TestGradeScoreBounds(t *testing.T) {
	engine := NewEngine()
	registry := rubric.NewRegistry()
	bundle := analyze(t, gradedEssay)

	for _, key := range registry.Keys() {
		t.Run(key, func(t *testing.T) {
			rb, err := registry.Resolve(key)
			require.NoError(t, err)

			result, err := engine.Grade(gradedEssay, bundle, rb)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.OverallScore, 0.0)
			assert.LessOrEqual(t, result.OverallScore, 100.0)
			assert.Equal(t, key, result.RubricUsed)

			for _, c := range rb.Criteria {
				score, ok := result.Scores[c.Key]
				require.True(t, ok, "missing score for %s", c.Key)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, c.MaxScore)
			}
		})
	}
}

func TestGradeBreakdownFields(t *testing.T) {
	engine := NewEngine()
	rb := rubric.NewRegistry().GetOrDefault("standard")
	bundle := analyze(t, gradedEssay)

	result, err := engine.Grade(gradedEssay, bundle, rb)
	require.NoError(t, err)
	require.Len(t, result.Breakdown, len(rb.Criteria))

	for _, c := range rb.Criteria {
		entry, ok := result.Breakdown[c.Key]
		require.True(t, ok)
		assert.Equal(t, c.Name, entry.Name)
		assert.Equal(t, c.MaxScore, entry.MaxScore)
		assert.Equal(t, c.Weight, entry.Weight)
		assert.GreaterOrEqual(t, entry.Percentage, 0.0)
		assert.LessOrEqual(t, entry.Percentage, 100.0)
		assert.NotEmpty(t, entry.PerformanceLevel)
	}
}

func TestGradeRejectsInvalidBundle(t *testing.T) {
	engine := NewEngine()
	rb := rubric.NewRegistry().GetOrDefault("standard")

	incomplete := &analysis.FeatureBundle{BasicStats: &analysis.BasicStats{}}
	_, err := engine.Grade(gradedEssay, incomplete, rb)
	assert.Error(t, err)

	_, err = engine.Grade(gradedEssay, nil, rb)
	assert.Error(t, err)
}

func TestGradeIdempotent(t *testing.T) {
	engine := NewEngine()
	rb := rubric.NewRegistry().GetOrDefault("argumentative")
	bundle := analyze(t, gradedEssay)

	first, err := engine.Grade(gradedEssay, bundle, rb)
	require.NoError(t, err)
	second, err := engine.Grade(gradedEssay, bundle, rb)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGrammarScoreFloor(t *testing.T) {
	// Pile up short-sentence issues to push the error ratio well past 5 per
	// 100 words.
	text := strings.Repeat("Bad. ", 40)
	bundle := analyze(t, text)
	require.NotNil(t, bundle.Grammar)
	require.Greater(t, bundle.Grammar.IssueCount, 10)

	score := gradeGrammar(bundle, 25)
	assert.GreaterOrEqual(t, score, 25*0.3)
}

func TestRicherEssayScoresHigherOnContent(t *testing.T) {
	thin := "Dogs are nice. I like dogs."
	bundle := analyze(t, thin)
	low := gradeContent(bundle, 25)

	rich := analyze(t, gradedEssay)
	high := gradeContent(rich, 25)

	assert.GreaterOrEqual(t, high, low)
}

func TestCounterargumentRewardsOpposingViews(t *testing.T) {
	oneSided := strings.ToLower("Parks are good. Parks help people. Everyone agrees.")
	balanced := strings.ToLower("However, critics argue parks cost too much. Although maintenance is real, this argument fails because benefits outweigh it. Nevertheless, some may say otherwise.")

	assert.Greater(t, gradeCounterargument(balanced, 25), gradeCounterargument(oneSided, 25))
}

func TestClaimFirstParagraphBonus(t *testing.T) {
	late := strings.ToLower("Parks matter to cities.\n\nI believe parks deserve funding.")
	early := strings.ToLower("I believe parks deserve funding.\n\nParks matter to cities.")

	assert.Greater(t, gradeClaim(early, 25), gradeClaim(late, 25))
}

func TestLetterGradeBands(t *testing.T) {
	tests := []struct {
		score float64
		grade string
	}{
		{100, "A+"}, {97, "A+"}, {96.9, "A"}, {93, "A"}, {90, "A-"},
		{87, "B+"}, {83, "B"}, {80, "B-"}, {77, "C+"}, {73, "C"},
		{70, "C-"}, {67, "D+"}, {63, "D"}, {60, "D-"}, {59.9, "F"}, {0, "F"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.grade, LetterGrade(tt.score), "score %.1f", tt.score)
	}
}

func TestGradeDescriptions(t *testing.T) {
	tests := []struct {
		grade       string
		description string
	}{
		{"A+", "Exceptional"}, {"A", "Excellent"}, {"B", "Above Average"},
		{"C-", "Below Average"}, {"D-", "Minimal"}, {"F", "Failing"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.description, GradeDescription(tt.grade))
	}
	assert.Empty(t, GradeDescription("Z"))
}

func TestLetterGradeMonotonic(t *testing.T) {
	order := map[string]int{
		"A+": 12, "A": 11, "A-": 10, "B+": 9, "B": 8, "B-": 7,
		"C+": 6, "C": 5, "C-": 4, "D+": 3, "D": 2, "D-": 1, "F": 0,
	}

	prev := order[LetterGrade(0)]
	for score := 1.0; score <= 100; score++ {
		current := order[LetterGrade(score)]
		assert.GreaterOrEqual(t, current, prev, "score %.0f", score)
		prev = current
	}
}

func TestPerformanceLevels(t *testing.T) {
	tests := []struct {
		percentage float64
		level      string
	}{
		{95, "Excellent"}, {90, "Excellent"}, {85, "Proficient"},
		{75, "Developing"}, {65, "Beginning"}, {50, "Below Basic"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, PerformanceLevel(tt.percentage))
	}
}

func TestOverallScoreNormalizesByWeightedMax(t *testing.T) {
	rb := rubric.Rubric{
		Key: "tens",
		Criteria: []rubric.Criterion{
			{Key: "a", Role: rubric.RoleGeneral, Weight: 0.5, MaxScore: 10},
			{Key: "b", Role: rubric.RoleGeneral, Weight: 0.5, MaxScore: 10},
		},
	}

	// Perfect criterion scores should land at exactly 100 even though the
	// maximums are not 25.
	scores := map[string]float64{"a": 10, "b": 10}
	assert.InDelta(t, 100.0, overallScore(scores, rb), 1e-9)

	half := map[string]float64{"a": 5, "b": 5}
	assert.InDelta(t, 50.0, overallScore(half, rb), 1e-9)

	empty := rubric.Rubric{Key: "none"}
	assert.Zero(t, overallScore(map[string]float64{}, empty))
}
