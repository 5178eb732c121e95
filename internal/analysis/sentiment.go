package analysis

import "github.com/jonreiter/govader"

const (
	toneThreshold = 0.05

	tonePositive = "positive"
	toneNegative = "negative"
	toneNeutral  = "neutral"
)

func analyzeSentiment(analyzer *govader.SentimentIntensityAnalyzer, text string) *Sentiment {
	scores := analyzer.PolarityScores(text)

	s := &Sentiment{
		Positive: round3(scores.Positive),
		Negative: round3(scores.Negative),
		Neutral:  round3(scores.Neutral),
		Compound: round3(scores.Compound),
	}

	switch {
	case s.Compound >= toneThreshold:
		s.OverallTone = tonePositive
	case s.Compound <= -toneThreshold:
		s.OverallTone = toneNegative
	default:
		s.OverallTone = toneNeutral
	}

	return s
}
