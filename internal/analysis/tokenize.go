package analysis

import (
	"regexp"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`[A-Za-z0-9]+(?:'[A-Za-z]+)?`)
	sentenceEnd     = regexp.MustCompile(`[.!?]+`)
	paragraphSplit  = regexp.MustCompile(`\n\s*\n`)
	whitespaceOnly  = regexp.MustCompile(`^\s*$`)
	vowelGroup      = regexp.MustCompile(`[aeiouy]+`)
	nonAlphaNumeric = regexp.MustCompile(`[^a-z0-9']`)
)

// Abbreviations that end with a period but do not terminate a sentence.
var abbreviations = map[string]bool{
	"mr":   true,
	"mrs":  true,
	"ms":   true,
	"dr":   true,
	"prof": true,
	"sr":   true,
	"jr":   true,
	"st":   true,
	"etc":  true,
	"vs":   true,
	"e.g":  true,
	"i.e":  true,
}

// Words tokenizes text into words. A word is a run of letters or digits,
// optionally followed by an apostrophe suffix ("don't" is one word).
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// Sentences splits text into sentences on terminal punctuation, keeping
// common abbreviations attached to the sentence they appear in. Empty
// fragments are dropped.
func Sentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// Consume any run of terminal punctuation.
		for i+1 < len(runes) && (runes[i+1] == '.' || runes[i+1] == '!' || runes[i+1] == '?') {
			i++
			current.WriteRune(runes[i])
		}

		if r == '.' && isAbbreviation(current.String()) {
			continue
		}

		s := strings.TrimSpace(current.String())
		if s != "" && !whitespaceOnly.MatchString(s) {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if tail := strings.TrimSpace(current.String()); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}

// isAbbreviation reports whether the chunk ends with a known abbreviation
// followed by the period just written.
func isAbbreviation(chunk string) bool {
	trimmed := strings.TrimRight(chunk, ".")
	idx := strings.LastIndexAny(trimmed, " \t\n")
	last := strings.ToLower(trimmed[idx+1:])
	return abbreviations[last]
}

// Paragraphs splits text into paragraphs on blank lines, dropping empty
// chunks.
func Paragraphs(text string) []string {
	chunks := paragraphSplit.Split(text, -1)
	paragraphs := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if trimmed := strings.TrimSpace(chunk); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// SyllableCount estimates syllables in a word by counting vowel groups,
// discounting a silent trailing "e". Every word counts at least one.
func SyllableCount(word string) int {
	w := nonAlphaNumeric.ReplaceAllString(strings.ToLower(word), "")
	if w == "" {
		return 1
	}

	count := len(vowelGroup.FindAllString(w, -1))
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// normalizeWord lowercases a word and strips leading/trailing punctuation.
func normalizeWord(word string) string {
	return strings.Trim(strings.ToLower(word), ".,;:!?\"'()[]{}")
}
