package analysis

import "math"

func computeVocabulary(words []string) *Vocabulary {
	v := &Vocabulary{TotalWords: len(words)}
	if len(words) == 0 {
		return v
	}

	unique := make(map[string]bool, len(words))
	totalLength := 0
	for _, w := range words {
		normalized := normalizeWord(w)
		if normalized != "" {
			unique[normalized] = true
		}
		totalLength += len(w)
		if SyllableCount(w) >= 3 {
			v.ComplexWordCount++
		}
	}

	v.UniqueWords = len(unique)
	v.LexicalDiversity = round3(float64(v.UniqueWords) / float64(v.TotalWords))
	v.AvgWordLength = round2(float64(totalLength) / float64(v.TotalWords))
	v.ComplexWordRatio = round3(float64(v.ComplexWordCount) / float64(v.TotalWords))

	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
