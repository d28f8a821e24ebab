package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RuvinSL/content-seo-check/pkg/mocks"
)

func newTestSynthesizer(t *testing.T, delay time.Duration) *MockSynthesizer {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()

	return NewMockSynthesizer(delay, mockLogger)
}

func TestMockSynthesizer_TextMode(t *testing.T) {
	synth := newTestSynthesizer(t, 0)

	content := "This is a long enough piece of sample content about keyword research and readability."
	report, err := synth.Synthesize(context.Background(), models.AnalysisRequest{Content: content})
	require.NoError(t, err)

	assert.Equal(t, "mock-v1-text-mode", report.Version)
	assert.Equal(t, "text", report.Mode)
	assert.Equal(t, 85.0, report.Readability)
	assert.Equal(t, 0.88, report.SemanticScore)
	assert.Len(t, report.Recommendations, 3)

	// Keywords come from the content itself
	assert.Contains(t, report.Keywords, "keyword")
	assert.Contains(t, report.Keywords, "readability")
	assert.LessOrEqual(t, len(report.Keywords), 10)
}

func TestMockSynthesizer_TextMode_Deterministic(t *testing.T) {
	synth := newTestSynthesizer(t, 0)

	req := models.AnalysisRequest{Content: "Sample content for repeated deterministic synthesis runs with stable keywords."}

	first, err := synth.Synthesize(context.Background(), req)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := synth.Synthesize(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestMockSynthesizer_URLMode(t *testing.T) {
	synth := newTestSynthesizer(t, 0)

	report, err := synth.Synthesize(context.Background(), models.AnalysisRequest{URL: "https://www.example.com/page"})
	require.NoError(t, err)

	assert.Equal(t, "mock-v1-url-mode", report.Version)
	assert.Equal(t, "url", report.Mode)
	assert.Equal(t, 55.0, report.Readability)
	assert.Equal(t, 0.52, report.SemanticScore)
	assert.Len(t, report.Recommendations, 3)

	// Fixed three-entry keyword list with the hostname stripped of "www."
	require.Len(t, report.Keywords, 3)
	assert.Equal(t, "url-audit", report.Keywords[0])
	assert.NotEmpty(t, report.Keywords[1])
	assert.Equal(t, "example.com", report.Keywords[2])

	// The submitted URL shows up in one of the recommendations
	joined := strings.Join(report.Recommendations, " ")
	assert.Contains(t, joined, "https://www.example.com/page")
}

func TestMockSynthesizer_DelayRespectsContext(t *testing.T) {
	synth := newTestSynthesizer(t, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := synth.Synthesize(ctx, models.AnalysisRequest{Content: "some content"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHostOf(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "strips leading www", url: "https://www.example.com/page", expected: "example.com"},
		{name: "plain hostname", url: "http://blog.example.org", expected: "blog.example.org"},
		{name: "unparseable input returned as-is", url: "://nope", expected: "://nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, hostOf(tt.url))
		})
	}
}
