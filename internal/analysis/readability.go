package analysis

import "math"

// Milliseconds per character, the baseline behind the reading-time estimate.
const readingMSPerChar = 14.69

func computeBasicStats(text string, words, sentences, paragraphs []string) *BasicStats {
	stats := &BasicStats{
		WordCount:      len(words),
		SentenceCount:  len(sentences),
		ParagraphCount: len(paragraphs),
		CharacterCount: len([]rune(text)),
	}

	noSpaces := 0
	for _, r := range text {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			noSpaces++
		}
	}
	stats.CharacterCountNoSpaces = noSpaces

	if stats.SentenceCount > 0 {
		stats.AvgWordsPerSentence = round2(float64(stats.WordCount) / float64(stats.SentenceCount))
	}
	if stats.ParagraphCount > 0 {
		stats.AvgSentencesPerParagraph = round2(float64(stats.SentenceCount) / float64(stats.ParagraphCount))
	}

	return stats
}

func computeReadability(words, sentences []string) *Readability {
	r := &Readability{}

	wordCount := len(words)
	sentenceCount := len(sentences)
	if wordCount == 0 || sentenceCount == 0 {
		return r
	}

	syllables := 0
	letters := 0
	complexWords := 0
	for _, w := range words {
		s := SyllableCount(w)
		syllables += s
		if s >= 3 {
			complexWords++
		}
		letters += len(w)
	}

	wordsPerSentence := float64(wordCount) / float64(sentenceCount)
	syllablesPerWord := float64(syllables) / float64(wordCount)
	complexRatio := float64(complexWords) / float64(wordCount)
	lettersPerWord := float64(letters) / float64(wordCount)

	r.FleschReadingEase = round2(206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord)
	r.FleschKincaidGrade = round2(0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59)
	r.GunningFog = round2(0.4 * (wordsPerSentence + 100*complexRatio))
	r.AutomatedReadabilityIndex = round2(4.71*lettersPerWord + 0.5*wordsPerSentence - 21.43)

	// Coleman-Liau uses letters and sentences per 100 words.
	l := lettersPerWord * 100
	s := float64(sentenceCount) / float64(wordCount) * 100
	r.ColemanLiauIndex = round2(0.0588*l - 0.296*s - 15.8)

	r.ReadingTimeMinutes = round2(float64(letters) * readingMSPerChar / 1000.0 / 60.0)

	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
