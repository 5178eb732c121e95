package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graderly/essay-engine/internal/errors"
)

const sampleEssay = `In this essay I will discuss the value of reading. Reading builds vocabulary and empathy. However, many students read less every year.

Reading fiction exposes readers to new perspectives. For example, novels let us inhabit other minds. Furthermore, research shows measurable gains in comprehension.

In conclusion, reading deserves a central place in education. Therefore, schools should protect time for it.`

func TestAnalyzeEmptyInput(t *testing.T) {
	analyzer := NewAnalyzer(false)

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "whitespace only", input: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := analyzer.Analyze(tt.input, DefaultOptions())
			assert.Nil(t, bundle)
			require.Error(t, err)
			assert.True(t, errors.IsEmptyInput(err))
		})
	}
}

func TestAnalyzeAlwaysComputedGroups(t *testing.T) {
	analyzer := NewAnalyzer(false)

	bundle, err := analyzer.Analyze(sampleEssay, Options{})
	require.NoError(t, err)
	require.NoError(t, bundle.Validate())

	assert.NotNil(t, bundle.BasicStats)
	assert.NotNil(t, bundle.Readability)
	assert.NotNil(t, bundle.Structure)
	assert.NotNil(t, bundle.Vocabulary)
	assert.Nil(t, bundle.Grammar)
	assert.Nil(t, bundle.Style)
	assert.Nil(t, bundle.Sentiment)
	assert.Nil(t, bundle.Plagiarism)

	assert.Equal(t, 3, bundle.BasicStats.ParagraphCount)
	assert.Greater(t, bundle.BasicStats.WordCount, 40)
	assert.Greater(t, bundle.BasicStats.SentenceCount, 5)
}

func TestAnalyzeOptionalGroups(t *testing.T) {
	analyzer := NewAnalyzer(false)

	bundle, err := analyzer.Analyze(sampleEssay, Options{
		Grammar:    true,
		Style:      true,
		Sentiment:  true,
		Plagiarism: true,
	})
	require.NoError(t, err)

	assert.NotNil(t, bundle.Grammar)
	assert.NotNil(t, bundle.Style)
	assert.NotNil(t, bundle.Sentiment)
	assert.NotNil(t, bundle.Plagiarism)
}

func TestIntroductionAndConclusionDetection(t *testing.T) {
	analyzer := NewAnalyzer(false)

	tests := []struct {
		name           string
		text           string
		wantIntro      bool
		wantConclusion bool
	}{
		{
			name:           "explicit markers in both positions",
			text:           sampleEssay,
			wantIntro:      true,
			wantConclusion: true,
		},
		{
			name:           "no markers anywhere",
			text:           "Cats sleep a lot.\n\nDogs bark at strangers.\n\nBirds sing at dawn.",
			wantIntro:      false,
			wantConclusion: false,
		},
		{
			name:           "thesis marker counts as introduction",
			text:           "My thesis is that cities need parks.\n\nParks reduce heat and noise.",
			wantIntro:      true,
			wantConclusion: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := analyzer.Analyze(tt.text, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntro, bundle.Structure.HasClearIntroduction)
			assert.Equal(t, tt.wantConclusion, bundle.Structure.HasClearConclusion)
		})
	}
}

func TestTransitionWordCount(t *testing.T) {
	analyzer := NewAnalyzer(false)

	text := "However, we tried. Therefore, we learned. Furthermore, we grew. For example, this works."
	bundle, err := analyzer.Analyze(text, Options{})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, bundle.Structure.TransitionWordCount, 4)
}

func TestPassiveVoiceDetection(t *testing.T) {
	analyzer := NewAnalyzer(false)

	tests := []struct {
		name        string
		text        string
		wantPassive bool
	}{
		{
			name:        "passive construction flagged",
			text:        "The ball was kicked by the player across the entire field today.",
			wantPassive: true,
		},
		{
			name:        "active construction not flagged",
			text:        "The player kicked the ball across the entire field today.",
			wantPassive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := analyzer.Analyze(tt.text, Options{Grammar: true})
			require.NoError(t, err)

			found := false
			for _, issue := range bundle.Grammar.Issues {
				if issue.Type == issuePassiveVoice {
					found = true
					assert.Equal(t, "medium", issue.Severity)
				}
			}
			assert.Equal(t, tt.wantPassive, found)
		})
	}
}

func TestSentenceLengthIssues(t *testing.T) {
	analyzer := NewAnalyzer(false)

	long := strings.Repeat("word ", 35) + "end."
	bundle, err := analyzer.Analyze(long, Options{Grammar: true})
	require.NoError(t, err)

	types := issueTypes(bundle.Grammar.Issues)
	assert.Contains(t, types, issueLongSentence)

	short, err := analyzer.Analyze("Too short. This sentence is comfortably long enough to pass.", Options{Grammar: true})
	require.NoError(t, err)
	assert.Contains(t, issueTypes(short.Grammar.Issues), issueShortSentence)
}

func TestFragmentDetectionRequiresDeepParse(t *testing.T) {
	fragment := "The old house on the hill. It was abandoned years ago."

	shallow := NewAnalyzer(false)
	bundle, err := shallow.Analyze(fragment, Options{Grammar: true})
	require.NoError(t, err)
	assert.NotContains(t, issueTypes(bundle.Grammar.Issues), issueFragment)

	deep := NewAnalyzer(true)
	bundle, err = deep.Analyze(fragment, Options{Grammar: true})
	require.NoError(t, err)
	assert.Contains(t, issueTypes(bundle.Grammar.Issues), issueFragment)

	// Fragment findings carry no sentence position.
	for _, issue := range bundle.Grammar.Issues {
		if issue.Type == issueFragment {
			assert.Zero(t, issue.SentenceNumber)
		}
	}
}

func TestLexicalDiversityBounds(t *testing.T) {
	analyzer := NewAnalyzer(false)

	tests := []struct {
		name string
		text string
	}{
		{name: "all repeated words", text: "word word word word word."},
		{name: "all distinct words", text: "Every single token differs completely here."},
		{name: "mixed text", text: sampleEssay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := analyzer.Analyze(tt.text, Options{})
			require.NoError(t, err)

			d := bundle.Vocabulary.LexicalDiversity
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, 1.0)
		})
	}
}

func TestStyleOverusedWordsAndCliches(t *testing.T) {
	analyzer := NewAnalyzer(false)

	text := "This is very good. Very nice. Very fine. Very well. At the end of the day, it works."
	bundle, err := analyzer.Analyze(text, Options{Style: true})
	require.NoError(t, err)

	types := issueTypes(bundle.Style.Issues)
	assert.Contains(t, types, issueOverusedWord)
	assert.Contains(t, types, issueCliche)
}

func TestSentenceVarietyIsPopulationVariance(t *testing.T) {
	analyzer := NewAnalyzer(false)

	// Sentence lengths 2 and 10: mean 6, squared deviations 16 each.
	text := "Cats sleep. The old dog runs around the yard every single day."
	bundle, err := analyzer.Analyze(text, Options{Style: true})
	require.NoError(t, err)

	assert.InDelta(t, 16.0, bundle.Style.SentenceVarietyScore, 0.001)
}

func TestSentimentTone(t *testing.T) {
	analyzer := NewAnalyzer(false)

	tests := []struct {
		name string
		text string
		tone string
	}{
		{
			name: "positive text",
			text: "This wonderful essay is excellent, delightful, and truly inspiring work.",
			tone: tonePositive,
		},
		{
			name: "negative text",
			text: "This terrible essay is awful, dreadful, and deeply disappointing work.",
			tone: toneNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := analyzer.Analyze(tt.text, Options{Sentiment: true})
			require.NoError(t, err)
			assert.Equal(t, tt.tone, bundle.Sentiment.OverallTone)
		})
	}
}

func TestPlagiarismPhraseCheck(t *testing.T) {
	analyzer := NewAnalyzer(false)

	clean, err := analyzer.Analyze("An original essay about gardens and light.", Options{Plagiarism: true})
	require.NoError(t, err)
	assert.Empty(t, clean.Plagiarism.SuspiciousPhrases)
	assert.Equal(t, "low", clean.Plagiarism.RiskLevel)

	single, err := analyzer.Analyze("According to Wikipedia, cats are great.", Options{Plagiarism: true})
	require.NoError(t, err)
	assert.Len(t, single.Plagiarism.SuspiciousPhrases, 1)
	assert.Equal(t, "high", single.Plagiarism.RiskLevel)

	flagged, err := analyzer.Analyze("According to Wikipedia, this is true. I just copy and paste facts.", Options{Plagiarism: true})
	require.NoError(t, err)
	assert.Len(t, flagged.Plagiarism.SuspiciousPhrases, 2)
	assert.Equal(t, "high", flagged.Plagiarism.RiskLevel)
}

func TestAnalyzeDeterministic(t *testing.T) {
	analyzer := NewAnalyzer(false)

	first, err := analyzer.Analyze(sampleEssay, DefaultOptions())
	require.NoError(t, err)
	second, err := analyzer.Analyze(sampleEssay, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestValidateMissingGroups(t *testing.T) {
	bundle := &FeatureBundle{
		BasicStats:  &BasicStats{},
		Readability: &Readability{},
		Structure:   &Structure{},
	}

	err := bundle.Validate()
	require.Error(t, err)

	var nilBundle *FeatureBundle
	assert.Error(t, nilBundle.Validate())
}

func issueTypes(issues []Issue) []string {
	types := make([]string, 0, len(issues))
	for _, issue := range issues {
		types = append(types, issue.Type)
	}
	return types
}
