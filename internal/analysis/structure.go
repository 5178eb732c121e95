package analysis

import (
	"regexp"
	"strings"
)

var introductionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(in this essay|this essay will|i will discuss|this paper examines)\b`),
	regexp.MustCompile(`\b(introduction|background|context)\b`),
	regexp.MustCompile(`\b(thesis|argument|main point)\b`),
}

var conclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(in conclusion|to conclude|in summary|finally)\b`),
	regexp.MustCompile(`\b(therefore|thus|hence|consequently)\b`),
	regexp.MustCompile(`\b(overall|ultimately|in the end)\b`),
}

var transitionWords = []string{
	"however", "therefore", "furthermore", "moreover", "additionally",
	"consequently", "nevertheless", "nonetheless", "meanwhile",
	"first", "second", "third", "finally", "next", "then",
	"for example", "for instance", "in contrast", "on the other hand",
	"similarly", "likewise", "in addition", "as a result",
}

func computeStructure(text string, paragraphs []string) *Structure {
	s := &Structure{
		ParagraphCount:   len(paragraphs),
		ParagraphLengths: make([]int, 0, len(paragraphs)),
	}

	total := 0
	for _, p := range paragraphs {
		length := len(Words(p))
		s.ParagraphLengths = append(s.ParagraphLengths, length)
		total += length
		if s.MinParagraphLength == 0 || length < s.MinParagraphLength {
			s.MinParagraphLength = length
		}
		if length > s.MaxParagraphLength {
			s.MaxParagraphLength = length
		}
	}
	if len(paragraphs) > 0 {
		s.AvgParagraphLength = round2(float64(total) / float64(len(paragraphs)))
		s.HasClearIntroduction = matchesAny(paragraphs[0], introductionPatterns)
		s.HasClearConclusion = matchesAny(paragraphs[len(paragraphs)-1], conclusionPatterns)
	}

	s.TransitionWordCount = countTransitions(text)

	return s
}

func matchesAny(paragraph string, patterns []*regexp.Regexp) bool {
	lower := strings.ToLower(paragraph)
	for _, p := range patterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// countTransitions counts non-overlapping occurrences of each transition
// marker across the whole text.
func countTransitions(text string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, t := range transitionWords {
		count += strings.Count(lower, t)
	}
	return count
}
