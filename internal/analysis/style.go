package analysis

import (
	"fmt"
	"strings"
)

var overusedWords = []string{"very", "really", "quite", "just", "actually", "basically"}

var cliches = []string{
	"at the end of the day",
	"think outside the box",
	"in today's society",
	"since the dawn of time",
}

const (
	issueOverusedWord = "Overused Word"
	issueCliche       = "Cliché"
)

func analyzeStyle(text string, words, sentences []string) *Style {
	s := &Style{Issues: []Issue{}}

	if len(sentences) > 0 {
		lengths := make([]float64, len(sentences))
		total := 0.0
		starters := make(map[string]bool, len(sentences))
		for i, sentence := range sentences {
			sw := Words(sentence)
			lengths[i] = float64(len(sw))
			total += lengths[i]
			if len(sw) > 0 {
				starters[strings.ToLower(sw[0])] = true
			}
		}
		mean := total / float64(len(sentences))
		s.AvgSentenceLength = round2(mean)
		s.SentenceVarietyScore = round2(variance(lengths, mean))
		s.SentenceStarterVariety = round3(float64(len(starters)) / float64(len(sentences)))
	}

	if len(words) > 0 {
		sophisticated := 0
		for _, w := range words {
			if len(w) > 6 && isAlpha(w) {
				sophisticated++
			}
		}
		s.SophisticatedWordRatio = round3(float64(sophisticated) / float64(len(words)))
	}

	lower := strings.ToLower(text)
	counts := make(map[string]int, len(overusedWords))
	for _, w := range Words(lower) {
		counts[w]++
	}
	for _, w := range overusedWords {
		if counts[w] > 3 {
			s.Issues = append(s.Issues, Issue{
				Type:        issueOverusedWord,
				Description: fmt.Sprintf("The word '%s' appears %d times; consider synonyms", w, counts[w]),
				Severity:    "low",
			})
		}
	}
	for _, c := range cliches {
		if strings.Contains(lower, c) {
			s.Issues = append(s.Issues, Issue{
				Type:        issueCliche,
				Description: fmt.Sprintf("'%s' is a cliché; consider a fresher phrasing", c),
				Severity:    "medium",
			})
		}
	}

	return s
}

// variance is the population variance of sentence word counts. The variety
// thresholds downstream are calibrated to this scale, not to the standard
// deviation.
func variance(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

func isAlpha(word string) bool {
	for _, r := range word {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(word) > 0
}
