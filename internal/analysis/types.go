package analysis

import (
	"github.com/graderly/essay-engine/internal/errors"
)

// BasicStats holds raw counts and averages over the essay text.
type BasicStats struct {
	WordCount                int     `json:"word_count"`
	SentenceCount            int     `json:"sentence_count"`
	ParagraphCount           int     `json:"paragraph_count"`
	CharacterCount           int     `json:"character_count"`
	CharacterCountNoSpaces   int     `json:"character_count_no_spaces"`
	AvgWordsPerSentence      float64 `json:"avg_words_per_sentence"`
	AvgSentencesPerParagraph float64 `json:"avg_sentences_per_paragraph"`
}

// Readability holds the published readability indices plus a reading-time
// estimate in minutes.
type Readability struct {
	FleschReadingEase         float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade        float64 `json:"flesch_kincaid_grade"`
	GunningFog                float64 `json:"gunning_fog"`
	AutomatedReadabilityIndex float64 `json:"automated_readability_index"`
	ColemanLiauIndex          float64 `json:"coleman_liau_index"`
	ReadingTimeMinutes        float64 `json:"reading_time_minutes"`
}

// Structure describes paragraph organization and discourse markers.
type Structure struct {
	ParagraphCount       int     `json:"paragraph_count"`
	AvgParagraphLength   float64 `json:"avg_paragraph_length"`
	MinParagraphLength   int     `json:"min_paragraph_length"`
	MaxParagraphLength   int     `json:"max_paragraph_length"`
	HasClearIntroduction bool    `json:"has_clear_introduction"`
	HasClearConclusion   bool    `json:"has_clear_conclusion"`
	TransitionWordCount  int     `json:"transition_word_count"`
	ParagraphLengths     []int   `json:"paragraph_lengths"`
}

// Vocabulary describes lexical diversity and word-complexity metrics.
type Vocabulary struct {
	TotalWords       int     `json:"total_words"`
	UniqueWords      int     `json:"unique_words"`
	LexicalDiversity float64 `json:"lexical_diversity"`
	AvgWordLength    float64 `json:"avg_word_length"`
	ComplexWordCount int     `json:"complex_word_count"`
	ComplexWordRatio float64 `json:"complex_word_ratio"`
}

// Issue is a single flagged grammar or style finding. SentenceNumber is
// 1-based and zero for findings that are not tied to a sentence.
type Issue struct {
	Type           string `json:"type"`
	SentenceNumber int    `json:"sentence_number,omitempty"`
	Description    string `json:"description"`
	Severity       string `json:"severity"`
}

// Grammar holds heuristic mechanics findings and overall text polarity.
type Grammar struct {
	Issues       []Issue `json:"grammar_issues"`
	IssueCount   int     `json:"issue_count"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Style holds sentence-variety and word-choice metrics.
type Style struct {
	SentenceVarietyScore   float64 `json:"sentence_variety_score"`
	SentenceStarterVariety float64 `json:"sentence_starter_variety"`
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	SophisticatedWordRatio float64 `json:"sophisticated_word_ratio"`
	Issues                 []Issue `json:"style_issues"`
}

// Sentiment holds lexicon-based sentiment scores and the derived tone.
type Sentiment struct {
	Positive    float64 `json:"positive"`
	Negative    float64 `json:"negative"`
	Neutral     float64 `json:"neutral"`
	Compound    float64 `json:"compound"`
	OverallTone string  `json:"overall_tone"`
}

// Plagiarism is a phrase-list heuristic, not a similarity engine.
type Plagiarism struct {
	SuspiciousPhrases []string `json:"suspicious_phrases"`
	RiskLevel         string   `json:"risk_level"`
	Note              string   `json:"note"`
}

// FeatureBundle is the full set of deterministic metrics extracted from an
// essay. The first four groups are always populated; the rest are nil unless
// the corresponding option was enabled. A bundle is built once per analysis
// and never mutated afterwards.
type FeatureBundle struct {
	BasicStats  *BasicStats  `json:"basic_stats"`
	Readability *Readability `json:"readability"`
	Structure   *Structure   `json:"structure"`
	Vocabulary  *Vocabulary  `json:"vocabulary"`
	Grammar     *Grammar     `json:"grammar,omitempty"`
	Style       *Style       `json:"style,omitempty"`
	Sentiment   *Sentiment   `json:"sentiment,omitempty"`
	Plagiarism  *Plagiarism  `json:"plagiarism,omitempty"`
}

// Validate checks that the always-computed groups are present. Downstream
// stages call this before scoring; a failure is an integration bug in the
// caller rather than a user error.
func (b *FeatureBundle) Validate() error {
	if b == nil {
		return errors.NewInvalidFeatureBundleError("bundle")
	}

	switch {
	case b.BasicStats == nil:
		return errors.NewInvalidFeatureBundleError("basic_stats")
	case b.Readability == nil:
		return errors.NewInvalidFeatureBundleError("readability")
	case b.Structure == nil:
		return errors.NewInvalidFeatureBundleError("structure")
	case b.Vocabulary == nil:
		return errors.NewInvalidFeatureBundleError("vocabulary")
	}

	return nil
}
