package grading

import (
	"strings"

	"github.com/graderly/essay-engine/internal/analysis"
)

// Marker lists for the phrase-presence heuristics. Counts are the number of
// distinct markers present in the text, not total occurrences.
var (
	evidenceMarkers = []string{
		"according to", "research shows", "studies indicate", "for example",
		"for instance", "data reveals", "statistics show", "evidence suggests",
	}
	exampleMarkers = []string{"such as", "including", "like", "namely"}

	analyticalMarkers = []string{
		"analyze", "examine", "evaluate", "assess", "compare", "contrast",
		"interpret", "conclude", "infer", "imply", "suggest", "indicate",
	}

	creativeMarkers = []string{
		"imagine", "picture", "visualize", "metaphor", "simile",
		"suddenly", "unexpectedly", "mysterious", "magical",
	}

	claimMarkers = []string{
		"i believe", "i argue", "my position", "i contend", "i maintain",
		"it is clear that", "therefore", "thus", "in conclusion",
	}

	reasoningMarkers = []string{
		"because", "since", "therefore", "thus", "consequently",
		"as a result", "due to", "leads to", "causes", "results in",
	}

	counterMarkers = []string{
		"however", "although", "while", "despite", "nevertheless",
		"on the other hand", "critics argue", "opponents claim",
		"some may say", "it could be argued",
	}
	refutationMarkers = []string{
		"but", "yet", "still", "nonetheless", "even so",
		"this argument fails", "this view is flawed",
	}
)

func countMarkers(lower string, markers []string) int {
	count := 0
	for _, m := range markers {
		if strings.Contains(lower, m) {
			count++
		}
	}
	return count
}

func gradeContent(b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.6

	switch wc := b.BasicStats.WordCount; {
	case wc >= 500:
		score += max * 0.1
	case wc >= 300:
		score += max * 0.05
	}

	if b.Vocabulary.LexicalDiversity > 0.6 {
		score += max * 0.1
	}
	if b.Vocabulary.ComplexWordRatio > 0.15 {
		score += max * 0.1
	}

	return score
}

func gradeOrganization(b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.5

	if b.Structure.HasClearIntroduction {
		score += max * 0.15
	}
	if b.Structure.HasClearConclusion {
		score += max * 0.15
	}
	if pc := b.Structure.ParagraphCount; pc >= 3 && pc <= 7 {
		score += max * 0.1
	}
	if b.Structure.TransitionWordCount >= 3 {
		score += max * 0.1
	}

	return score
}

// gradeGrammar starts high and deducts per error density; it alone carries a
// floor, at 30% of the maximum.
func gradeGrammar(b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.8

	issueCount := 0
	if b.Grammar != nil {
		issueCount = b.Grammar.IssueCount
	}

	wordCount := b.BasicStats.WordCount
	if wordCount < 1 {
		wordCount = 1
	}
	errorRatio := float64(issueCount) / float64(wordCount) * 100

	switch {
	case errorRatio > 5:
		score -= max * 0.3
	case errorRatio > 2:
		score -= max * 0.2
	case errorRatio > 1:
		score -= max * 0.1
	}

	if b.Readability.FleschReadingEase > 60 {
		score += max * 0.1
	}

	if floor := max * 0.3; score < floor {
		return floor
	}
	if score > max {
		return max
	}
	return score
}

func gradeStyle(b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.6

	if b.Style != nil {
		if b.Style.SentenceVarietyScore > 10 {
			score += max * 0.15
		}
		if b.Style.SentenceStarterVariety > 0.7 {
			score += max * 0.1
		}
	}
	if b.Vocabulary.ComplexWordRatio > 0.1 {
		score += max * 0.15
	}

	return score
}

func gradeEvidence(lower string, max float64) float64 {
	score := max * 0.5

	switch n := countMarkers(lower, evidenceMarkers); {
	case n >= 3:
		score += max * 0.3
	case n >= 1:
		score += max * 0.2
	}

	if countMarkers(lower, exampleMarkers) >= 2 {
		score += max * 0.2
	}

	return score
}

func gradeAnalysis(lower string, b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.6

	switch n := countMarkers(lower, analyticalMarkers); {
	case n >= 5:
		score += max * 0.25
	case n >= 3:
		score += max * 0.15
	}

	if b.Vocabulary.ComplexWordRatio > 0.2 {
		score += max * 0.15
	}

	return score
}

func gradeCreativity(lower string, b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.7

	switch n := countMarkers(lower, creativeMarkers); {
	case n >= 3:
		score += max * 0.2
	case n >= 1:
		score += max * 0.1
	}

	if b.Vocabulary.LexicalDiversity > 0.7 {
		score += max * 0.1
	}

	return score
}

func gradeClaim(lower string, max float64) float64 {
	score := max * 0.6

	switch n := countMarkers(lower, claimMarkers); {
	case n >= 2:
		score += max * 0.25
	case n >= 1:
		score += max * 0.15
	}

	// A claim stated up front reads as a thesis.
	if paragraphs := analysis.Paragraphs(lower); len(paragraphs) > 0 {
		if countMarkers(paragraphs[0], claimMarkers) > 0 {
			score += max * 0.15
		}
	}

	return score
}

func gradeReasoning(lower string, b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.6

	switch n := countMarkers(lower, reasoningMarkers); {
	case n >= 5:
		score += max * 0.25
	case n >= 3:
		score += max * 0.15
	}

	if b.Structure.TransitionWordCount >= 5 {
		score += max * 0.15
	}

	return score
}

// gradeCounterargument starts from a lower base since most essays skip
// opposing views entirely.
func gradeCounterargument(lower string, max float64) float64 {
	score := max * 0.4

	switch n := countMarkers(lower, counterMarkers); {
	case n >= 3:
		score += max * 0.4
	case n >= 1:
		score += max * 0.2
	}

	if countMarkers(lower, refutationMarkers) >= 1 {
		score += max * 0.2
	}

	return score
}

func gradeDefault(b *analysis.FeatureBundle, max float64) float64 {
	score := max * 0.6

	if b.BasicStats.WordCount >= 300 {
		score += max * 0.2
	}
	if b.Readability.FleschReadingEase > 50 {
		score += max * 0.2
	}

	return score
}
