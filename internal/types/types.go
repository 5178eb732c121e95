package types

import (
	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/feedback"
	"github.com/graderly/essay-engine/internal/grading"
)

// GradeRequest is the body of POST /grade.
type GradeRequest struct {
	EssayText string `json:"essay_text" binding:"required"`
	Rubric    string `json:"rubric,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
}

// GradeResponse is the full grading report returned by POST /grade.
type GradeResponse struct {
	Result   *grading.Result         `json:"result"`
	Feedback *feedback.Feedback      `json:"feedback"`
	Analysis *analysis.FeatureBundle `json:"analysis"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	EssayText string `json:"essay_text" binding:"required"`
}

// AnalyzeResponse wraps the extracted features of POST /analyze.
type AnalyzeResponse struct {
	Analysis *analysis.FeatureBundle `json:"analysis"`
}
