package render

import (
	"testing"

	"github.com/RuvinSL/content-seo-check/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestDeviation(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		suggestion *float64
		expected   float64
	}{
		{name: "absent suggestion yields zero", value: 12, suggestion: nil, expected: 0},
		{name: "zero suggestion yields zero", value: 12, suggestion: floatPtr(0), expected: 0},
		{name: "on target exactly", value: 10, suggestion: floatPtr(10), expected: 0},
		{name: "above target", value: 12, suggestion: floatPtr(10), expected: 0.2},
		{name: "below target is absolute", value: 8, suggestion: floatPtr(10), expected: 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Deviation(tt.value, tt.suggestion), 1e-9)
		})
	}
}

func TestClassify_BandBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		deviation float64
		expected  Band
	}{
		{name: "zero is on-target", deviation: 0, expected: BandOnTarget},
		{name: "exactly 0.05 is still on-target", deviation: 0.05, expected: BandOnTarget},
		{name: "just above 0.05 is caution", deviation: 0.050001, expected: BandCaution},
		{name: "exactly 0.20 is still caution", deviation: 0.20, expected: BandCaution},
		{name: "just above 0.20 is off-target", deviation: 0.200001, expected: BandOffTarget},
		{name: "large deviation is off-target", deviation: 3.5, expected: BandOffTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.deviation))
		})
	}
}

func TestBuildView_V1(t *testing.T) {
	report := models.Report{V1: &models.ReportV1{
		Version:         "mock-v1-text-mode",
		Keywords:        []string{"content", "audit", "keywords"},
		Readability:     85,
		SemanticScore:   0.88,
		Recommendations: []string{"Add a clear H1 heading", "Use the primary keyword in the first 100 words"},
	}}

	view := BuildView(report)

	require.Len(t, view.Fields, 4)
	assert.Equal(t, Field{Label: "Version", Value: "mock-v1-text-mode"}, view.Fields[0])
	assert.Equal(t, Field{Label: "Keywords", Value: "content, audit, keywords"}, view.Fields[1])
	assert.Equal(t, Field{Label: "Readability", Value: "85%"}, view.Fields[2])

	// Semantic score formatted as a percentage with one decimal place
	assert.Equal(t, Field{Label: "Semantic Score", Value: "88.0%"}, view.Fields[3])

	assert.Len(t, view.Recommendations, 2)
	assert.Empty(t, view.Rows)
}

func TestBuildView_V2(t *testing.T) {
	report := models.Report{V2: &models.ReportV2{
		Version:         "engine-v2",
		Mode:            "url",
		FactorsAnalyzed: 3,
		Readability:     62,
		SemanticScore:   71,
		Results: []models.FactorResult{
			{Factor: "keyword_density", Value: 2.05, SuggestionValue: floatPtr(2.0), Score: 95, Suggestion: "Close to ideal"},
			{Factor: "word_count", Value: 850, SuggestionValue: floatPtr(1000), Score: 70, Suggestion: "Write a bit more"},
			{Factor: "title_length", Value: 90, SuggestionValue: floatPtr(60), Score: 30, Suggestion: "Shorten the title"},
		},
	}}

	view := BuildView(report)

	require.Len(t, view.Rows, 3)
	assert.Equal(t, BandOnTarget, view.Rows[0].Band)  // deviation 0.025
	assert.Equal(t, BandCaution, view.Rows[1].Band)   // deviation 0.15
	assert.Equal(t, BandOffTarget, view.Rows[2].Band) // deviation 0.5
	assert.Empty(t, view.Recommendations)

	require.Len(t, view.Fields, 5)
	assert.Equal(t, Field{Label: "Mode", Value: "url"}, view.Fields[1])
	assert.Equal(t, Field{Label: "Factors Analyzed", Value: "3"}, view.Fields[2])
}

func TestBuildView_V2_MissingOptionalFields(t *testing.T) {
	report := models.Report{V2: &models.ReportV2{
		Version: "engine-v2",
		Results: []models.FactorResult{
			{Value: 40, Score: 10},
		},
	}}

	view := BuildView(report)

	// Mode absent renders as N/A, missing suggestion renders N/A and
	// classifies as on-target with deviation zero.
	assert.Equal(t, Field{Label: "Mode", Value: "N/A"}, view.Fields[1])

	require.Len(t, view.Rows, 1)
	row := view.Rows[0]
	assert.Equal(t, "N/A", row.Factor)
	assert.Equal(t, "N/A", row.SuggestionValue)
	assert.Zero(t, row.Deviation)
	assert.Equal(t, BandOnTarget, row.Band)
}

func TestBuildView_EmptyUnionDoesNotPanic(t *testing.T) {
	view := BuildView(models.Report{})
	assert.Equal(t, "Analysis Report", view.Title)
	assert.Empty(t, view.Fields)
}

func TestViewRender(t *testing.T) {
	view := BuildView(models.Report{V1: &models.ReportV1{
		Version:         "mock-v1-url-mode",
		Keywords:        []string{"url-audit", "placeholder", "example.com"},
		Readability:     55,
		SemanticScore:   0.52,
		Recommendations: []string{"first tip", "second tip", "third tip"},
	}})

	out := view.Render()

	assert.Contains(t, out, "Analysis Report")
	assert.Contains(t, out, "url-audit, placeholder, example.com")
	assert.Contains(t, out, "55%")
	assert.Contains(t, out, "52.0%")
	assert.Contains(t, out, "1. first tip")
	assert.Contains(t, out, "3. third tip")
}

func TestRenderError(t *testing.T) {
	out := RenderError(&models.AnalysisError{
		Message: "Core engine request timed out (30s limit).",
		Details: "upstream gave up",
	})

	assert.Contains(t, out, "Analysis Failed: Core engine request timed out (30s limit).")
	assert.Contains(t, out, "Details: upstream gave up")

	bare := RenderError(&models.AnalysisError{Message: "An unknown error occurred."})
	assert.Contains(t, bare, "An unknown error occurred.")
	assert.NotContains(t, bare, "Details:")
}
