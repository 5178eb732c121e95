// Package narrative generates free-form instructor commentary through an
// OpenAI-compatible chat completions API. The rest of the pipeline is fully
// deterministic; this is the only network-facing stage and it is optional.
package narrative

import "context"

// Request carries the essay and its grading context into a generator.
type Request struct {
	EssayText    string
	Prompt       string
	OverallScore float64
	LetterGrade  string
	WordCount    int
}

// Generator produces instructor-style commentary for a graded essay.
// Implementations must honor the context deadline. Callers treat any error
// as "commentary unavailable" and never fail the grading request over it.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}
