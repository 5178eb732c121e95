// Package encoding renders grading reports into portable formats for
// download or archival.
package encoding

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/feedback"
	"github.com/graderly/essay-engine/internal/grading"
)

// Report is an exportable grading record. Each export gets a fresh ID and
// timestamp.
type Report struct {
	ID        string                  `json:"id"`
	Timestamp string                  `json:"timestamp"`
	Analysis  *analysis.FeatureBundle `json:"analysis_results"`
	Result    *grading.Result         `json:"grade_results"`
	Feedback  *feedback.Feedback      `json:"feedback"`
}

// NewReport stamps a grading outcome for export.
func NewReport(bundle *analysis.FeatureBundle, result *grading.Result, fb *feedback.Feedback) *Report {
	return &Report{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Analysis:  bundle,
		Result:    result,
		Feedback:  fb,
	}
}

// ToJSON renders the report as indented JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToCSV flattens the report into Category/Metric/Value rows. Long-form
// feedback text stays out of the CSV; it is a metrics export.
func (r *Report) ToCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{{"Category", "Metric", "Value"}}
	rows = append(rows,
		[]string{"Report", "id", r.ID},
		[]string{"Report", "timestamp", r.Timestamp},
	)

	if r.Analysis != nil && r.Analysis.BasicStats != nil {
		s := r.Analysis.BasicStats
		rows = append(rows,
			statRow("Basic Statistics", "word_count", s.WordCount),
			statRow("Basic Statistics", "sentence_count", s.SentenceCount),
			statRow("Basic Statistics", "paragraph_count", s.ParagraphCount),
			statRow("Basic Statistics", "character_count", s.CharacterCount),
			statRow("Basic Statistics", "character_count_no_spaces", s.CharacterCountNoSpaces),
			floatRow("Basic Statistics", "avg_words_per_sentence", s.AvgWordsPerSentence),
			floatRow("Basic Statistics", "avg_sentences_per_paragraph", s.AvgSentencesPerParagraph),
		)
	}

	if r.Analysis != nil && r.Analysis.Readability != nil {
		rd := r.Analysis.Readability
		rows = append(rows,
			floatRow("Readability", "flesch_reading_ease", rd.FleschReadingEase),
			floatRow("Readability", "flesch_kincaid_grade", rd.FleschKincaidGrade),
			floatRow("Readability", "gunning_fog", rd.GunningFog),
			floatRow("Readability", "automated_readability_index", rd.AutomatedReadabilityIndex),
			floatRow("Readability", "coleman_liau_index", rd.ColemanLiauIndex),
			floatRow("Readability", "reading_time_minutes", rd.ReadingTimeMinutes),
		)
	}

	if r.Result != nil {
		rows = append(rows,
			floatRow("Grades", "overall_score", r.Result.OverallScore),
			[]string{"Grades", "letter_grade", r.Result.LetterGrade},
			[]string{"Grades", "grade_description", r.Result.GradeDescription},
			[]string{"Grades", "rubric_used", r.Result.RubricUsed},
		)
		for _, key := range sortedScoreKeys(r.Result.Scores) {
			rows = append(rows, floatRow("Criterion Scores", key, r.Result.Scores[key]))
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func statRow(category, metric string, value int) []string {
	return []string{category, metric, fmt.Sprintf("%d", value)}
}

func floatRow(category, metric string, value float64) []string {
	return []string{category, metric, fmt.Sprintf("%g", value)}
}

func sortedScoreKeys(scores map[string]float64) []string {
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
