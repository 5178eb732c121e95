package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(was|were|is|are|been|being)\s+\w+ed\b`),
	regexp.MustCompile(`\b(was|were|is|are|been|being)\s+\w+en\b`),
}

// Finite verb forms used by the fragment heuristic when deep parsing is on.
var finiteVerbs = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "am": true, "has": true, "have": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"can": true, "could": true, "shall": true, "should": true,
	"may": true, "might": true, "must": true,
}

const (
	issuePassiveVoice  = "Passive Voice"
	issueLongSentence  = "Long Sentence"
	issueShortSentence = "Short Sentence"
	issueFragment      = "Sentence Fragment"
)

// checkGrammar flags heuristic mechanics findings per sentence. Fragment
// detection needs a parse-capable pipeline and only runs when deepParse is
// set.
func checkGrammar(sentences []string, sentiment *Sentiment, deepParse bool) *Grammar {
	g := &Grammar{Issues: []Issue{}}

	for i, sentence := range sentences {
		num := i + 1
		lower := strings.ToLower(sentence)

		for _, p := range passivePatterns {
			if p.MatchString(lower) {
				g.Issues = append(g.Issues, Issue{
					Type:           issuePassiveVoice,
					SentenceNumber: num,
					Description:    "Consider using active voice for stronger writing",
					Severity:       "medium",
				})
				break
			}
		}

		wordCount := len(strings.Fields(sentence))
		if wordCount > 30 {
			g.Issues = append(g.Issues, Issue{
				Type:           issueLongSentence,
				SentenceNumber: num,
				Description:    fmt.Sprintf("Sentence has %d words; consider breaking it up", wordCount),
				Severity:       "medium",
			})
		} else if wordCount < 5 && wordCount > 0 {
			g.Issues = append(g.Issues, Issue{
				Type:           issueShortSentence,
				SentenceNumber: num,
				Description:    "Very short sentence; consider combining with adjacent sentences",
				Severity:       "low",
			})
		}

		// Fragment findings are not position-tagged; the heuristic reports
		// the sentence text problem, not a location.
		if deepParse && isFragment(sentence) {
			g.Issues = append(g.Issues, Issue{
				Type:        issueFragment,
				Description: "Sentence appears to lack a main verb",
				Severity:    "high",
			})
		}
	}

	g.IssueCount = len(g.Issues)

	if sentiment != nil {
		g.Polarity = sentiment.Compound
		g.Subjectivity = round3(sentiment.Positive + sentiment.Negative)
	}

	return g
}

// isFragment reports whether a sentence lacks any finite verb or common
// verb ending. A shallow check; it trades recall for zero dependencies on
// a full parser.
func isFragment(sentence string) bool {
	words := Words(strings.ToLower(sentence))
	if len(words) < 3 {
		return false
	}
	for _, w := range words {
		if finiteVerbs[w] {
			return false
		}
		if strings.HasSuffix(w, "ed") || strings.HasSuffix(w, "ing") || strings.HasSuffix(w, "s") {
			return false
		}
	}
	return true
}
