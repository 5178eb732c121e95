package analysis

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/graderly/essay-engine/internal/config"
	"github.com/graderly/essay-engine/internal/errors"
)

// Options selects which optional feature groups an analysis computes. Basic
// stats, readability, structure and vocabulary are always computed.
type Options struct {
	Grammar    bool
	Style      bool
	Sentiment  bool
	Plagiarism bool
}

// DefaultOptions enables every optional group except the plagiarism phrase
// check.
func DefaultOptions() Options {
	return Options{Grammar: true, Style: true, Sentiment: true, Plagiarism: false}
}

// OptionsFromConfig maps the analysis configuration onto extraction options.
func OptionsFromConfig(cfg config.AnalysisConfig) Options {
	return Options{
		Grammar:    cfg.EnableGrammar,
		Style:      cfg.EnableStyle,
		Sentiment:  cfg.EnableSentiment,
		Plagiarism: cfg.EnablePlagiarism,
	}
}

// Analyzer extracts deterministic feature bundles from essay text. It is
// stateless between calls and safe for concurrent use.
type Analyzer struct {
	deepParse bool
	vader     *govader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds an analyzer. deepParse enables the fragment heuristic,
// which needs sentence-level verb inspection and stays off by default.
func NewAnalyzer(deepParse bool) *Analyzer {
	return &Analyzer{
		deepParse: deepParse,
		vader:     govader.NewSentimentIntensityAnalyzer(),
	}
}

// Analyze tokenizes the text once and computes every requested feature
// group from the shared token streams. Returns an error for empty or
// whitespace-only input.
func (a *Analyzer) Analyze(text string, opts Options) (*FeatureBundle, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewEmptyInputError()
	}

	words := Words(text)
	sentences := Sentences(text)
	paragraphs := Paragraphs(text)

	bundle := &FeatureBundle{
		BasicStats:  computeBasicStats(text, words, sentences, paragraphs),
		Readability: computeReadability(words, sentences),
		Structure:   computeStructure(text, paragraphs),
		Vocabulary:  computeVocabulary(words),
	}

	if opts.Sentiment || opts.Grammar {
		bundle.Sentiment = analyzeSentiment(a.vader, text)
	}
	if opts.Grammar {
		bundle.Grammar = checkGrammar(sentences, bundle.Sentiment, a.deepParse)
	}
	if !opts.Sentiment {
		bundle.Sentiment = nil
	}
	if opts.Style {
		bundle.Style = analyzeStyle(text, words, sentences)
	}
	if opts.Plagiarism {
		bundle.Plagiarism = checkPlagiarismIndicators(text)
	}

	return bundle, nil
}
