package encoding

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/feedback"
	"github.com/graderly/essay-engine/internal/grading"
	"github.com/graderly/essay-engine/internal/rubric"
)

const exportEssay = `In this essay I will discuss bicycles. Bicycles are efficient machines. However, cities rarely plan for them.

For example, protected lanes raise ridership. Therefore, planners should build more of them.

In conclusion, bicycles deserve road space.`

func buildReport(t *testing.T) *Report {
	t.Helper()

	bundle, err := analysis.NewAnalyzer(false).Analyze(exportEssay, analysis.DefaultOptions())
	require.NoError(t, err)

	rb := rubric.NewRegistry().GetOrDefault("standard")
	result, err := grading.NewEngine().Grade(exportEssay, bundle, rb)
	require.NoError(t, err)

	fb, err := feedback.NewBuilder(nil).Build(context.Background(), exportEssay, bundle, result, "")
	require.NoError(t, err)

	return NewReport(bundle, result, fb)
}

func TestNewReportStampsIdentity(t *testing.T) {
	first := buildReport(t)
	second := buildReport(t)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEmpty(t, first.Timestamp)
}

func TestToJSONRoundTrips(t *testing.T) {
	report := buildReport(t)

	data, err := report.ToJSON()
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.ID, decoded.ID)
	assert.Equal(t, report.Result.LetterGrade, decoded.Result.LetterGrade)
	assert.Equal(t, report.Analysis.BasicStats.WordCount, decoded.Analysis.BasicStats.WordCount)
}

func TestToCSVStructure(t *testing.T) {
	report := buildReport(t)

	data, err := report.ToCSV()
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, []string{"Category", "Metric", "Value"}, rows[0])

	categories := make(map[string]bool)
	metrics := make(map[string]bool)
	for _, row := range rows[1:] {
		require.Len(t, row, 3)
		categories[row[0]] = true
		metrics[row[1]] = true
	}

	assert.True(t, categories["Basic Statistics"])
	assert.True(t, categories["Readability"])
	assert.True(t, categories["Grades"])
	assert.True(t, categories["Criterion Scores"])
	assert.True(t, metrics["word_count"])
	assert.True(t, metrics["flesch_reading_ease"])
	assert.True(t, metrics["overall_score"])
}
