package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/grading"
	"github.com/graderly/essay-engine/internal/narrative"
	"github.com/graderly/essay-engine/internal/rubric"
)

const feedbackEssay = `In this essay I will discuss the benefits of daily walking. Walking improves mood and health. However, many people skip it.

Research shows that a short daily walk lowers stress. For example, a lunchtime loop around the block helps focus. Furthermore, walking is free and needs no equipment.

In conclusion, walking is a simple habit worth keeping. Therefore, everyone should try a daily walk.`

type fakeGenerator struct {
	content string
	err     error
	called  bool
}

func (f *fakeGenerator) Generate(_ context.Context, _ narrative.Request) (string, error) {
	f.called = true
	return f.content, f.err
}

func (f *fakeGenerator) Name() string { return "fake-model" }

func gradeEssay(t *testing.T, text string) (*analysis.FeatureBundle, *grading.Result) {
	t.Helper()

	bundle, err := analysis.NewAnalyzer(false).Analyze(text, analysis.DefaultOptions())
	require.NoError(t, err)

	rb := rubric.NewRegistry().GetOrDefault("standard")
	result, err := grading.NewEngine().Grade(text, bundle, rb)
	require.NoError(t, err)

	return bundle, result
}

func TestBuildAllCategoriesNonEmpty(t *testing.T) {
	bundle, result := gradeEssay(t, feedbackEssay)

	fb, err := NewBuilder(nil).Build(context.Background(), feedbackEssay, bundle, result, "")
	require.NoError(t, err)

	assert.NotEmpty(t, fb.Strengths)
	assert.NotEmpty(t, fb.Improvements)
	assert.NotEmpty(t, fb.Suggestions)
	assert.NotEmpty(t, fb.GrammarFeedback)
	assert.NotEmpty(t, fb.StyleFeedback)
	assert.NotEmpty(t, fb.StructureFeedback)
	assert.Empty(t, fb.Narrative)
}

func TestBuildMinimalEssayStillHasFallbacks(t *testing.T) {
	text := "Short text here."
	bundle, result := gradeEssay(t, text)

	fb, err := NewBuilder(nil).Build(context.Background(), text, bundle, result, "")
	require.NoError(t, err)

	assert.NotEmpty(t, fb.Strengths)
	assert.NotEmpty(t, fb.Improvements)
	assert.Contains(t, fb.Improvements, "Essay Length")
}

func TestBuildRejectsInvalidBundle(t *testing.T) {
	_, result := gradeEssay(t, feedbackEssay)

	incomplete := &analysis.FeatureBundle{BasicStats: &analysis.BasicStats{}}
	_, err := NewBuilder(nil).Build(context.Background(), feedbackEssay, incomplete, result, "")
	assert.Error(t, err)
}

func TestNarrativeSuccess(t *testing.T) {
	bundle, result := gradeEssay(t, feedbackEssay)
	gen := &fakeGenerator{content: "A thoughtful essay with room to grow."}

	fb, err := NewBuilder(gen).Build(context.Background(), feedbackEssay, bundle, result, "Why walk?")
	require.NoError(t, err)

	assert.True(t, gen.called)
	assert.Equal(t, "A thoughtful essay with room to grow.", fb.Narrative)
	assert.Equal(t, "fake-model", fb.NarrativeProvider)
}

func TestNarrativeFailureDegradesInline(t *testing.T) {
	bundle, result := gradeEssay(t, feedbackEssay)
	gen := &fakeGenerator{err: errors.New("upstream down")}

	fb, err := NewBuilder(gen).Build(context.Background(), feedbackEssay, bundle, result, "")
	require.NoError(t, err, "narrative failure must not fail feedback")

	assert.Contains(t, fb.Narrative, "unavailable")
	assert.Equal(t, "unavailable", fb.NarrativeProvider)
	assert.NotEmpty(t, fb.Strengths, "deterministic sections still present")
}

func TestStrengthsThresholds(t *testing.T) {
	bundle, _ := gradeEssay(t, feedbackEssay)

	strengths := identifyStrengths(bundle)
	assert.Contains(t, strengths, "Strong Introduction")
	assert.Contains(t, strengths, "Effective Conclusion")
}

func TestImprovementsForWeakStructure(t *testing.T) {
	text := "one paragraph only with few words and no markers at all"
	bundle, result := gradeEssay(t, text)

	improvements := identifyImprovements(bundle, result)
	assert.Contains(t, improvements, "Introduction")
	assert.Contains(t, improvements, "Conclusion")
	assert.Contains(t, improvements, "Paragraph Structure")
	assert.Contains(t, improvements, "Transitions")
}

func TestSuggestionsAlwaysIncludeRevisionAdvice(t *testing.T) {
	bundle, _ := gradeEssay(t, feedbackEssay)

	suggestions := generateSuggestions(bundle)
	for _, want := range []string{"Support with Evidence", "Read Aloud", "Peer Review", "Final Proofread"} {
		assert.Contains(t, suggestions, want)
	}
}

func TestGrammarFeedbackGroupsByType(t *testing.T) {
	text := strings.Repeat("The ball was kicked by the team. ", 3) + "Hi."
	bundle, _ := gradeEssay(t, text)
	require.NotNil(t, bundle.Grammar)
	require.NotEmpty(t, bundle.Grammar.Issues)

	fb := grammarFeedback(bundle)
	assert.Contains(t, fb, "Passive Voice")
	assert.Contains(t, fb, "instances")
}

func TestGrammarFeedbackCleanEssay(t *testing.T) {
	bundle := &analysis.FeatureBundle{
		BasicStats:  &analysis.BasicStats{},
		Readability: &analysis.Readability{},
		Structure:   &analysis.Structure{},
		Vocabulary:  &analysis.Vocabulary{},
		Grammar:     &analysis.Grammar{},
	}

	assert.Contains(t, grammarFeedback(bundle), "Excellent Grammar")
}

func TestStructureFeedbackWellFormed(t *testing.T) {
	bundle := &analysis.FeatureBundle{
		BasicStats:  &analysis.BasicStats{},
		Readability: &analysis.Readability{},
		Structure: &analysis.Structure{
			ParagraphCount:       5,
			AvgParagraphLength:   80,
			ParagraphLengths:     []int{60, 90, 85, 80, 85},
			HasClearIntroduction: true,
			HasClearConclusion:   true,
			TransitionWordCount:  5,
		},
		Vocabulary: &analysis.Vocabulary{},
	}

	assert.Contains(t, structureFeedback(bundle), "Well-Structured")
}
