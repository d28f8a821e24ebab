package core

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

const (
	textReadability = 85
	textSemantic    = 0.88
	urlReadability  = 55
	urlSemantic     = 0.52
	maxKeywords     = 10
	maxURLKeywords  = 5
	fallbackKeyword = "analysis"
	urlAuditKeyword = "url-audit"
	versionTextMode = "mock-v1-text-mode"
	versionURLMode  = "mock-v1-url-mode"
)

// MockSynthesizer builds deterministic fallback reports when no core
// engine is configured. The response is held back by a fixed delay so the
// client progress indicator has something to race against.
type MockSynthesizer struct {
	delay  time.Duration
	logger interfaces.Logger
}

func NewMockSynthesizer(delay time.Duration, logger interfaces.Logger) *MockSynthesizer {
	return &MockSynthesizer{
		delay:  delay,
		logger: logger,
	}
}

// Synthesize produces a v1 mock report for the request. The caller is
// responsible for rejecting requests with neither content nor URL.
func (s *MockSynthesizer) Synthesize(ctx context.Context, req models.AnalysisRequest) (*models.ReportV1, error) {
	start := time.Now()
	mode := req.Mode()

	s.logger.Info("Synthesizing mock report", "mode", string(mode))

	subject := req.Content
	if mode == models.ModeURL {
		subject = fmt.Sprintf("Placeholder page audit for %s covering headings metadata keyword usage and internal linking", req.URL)
	}

	keywords := ExtractKeywords(subject, maxKeywords)

	report := &models.ReportV1{
		Mode:     string(mode),
		Keywords: keywords,
	}

	switch mode {
	case models.ModeURL:
		if len(keywords) > maxURLKeywords {
			keywords = keywords[:maxURLKeywords]
		}
		first := fallbackKeyword
		if len(keywords) > 0 {
			first = keywords[0]
		}
		report.Version = versionURLMode
		report.Keywords = []string{urlAuditKeyword, first, hostOf(req.URL)}
		report.Readability = urlReadability
		report.SemanticScore = urlSemantic
		report.Recommendations = []string{
			fmt.Sprintf("Run a full crawl of %s to confirm every page is reachable from the homepage", req.URL),
			"Add descriptive title and meta description tags to the audited page",
			"Compress above-the-fold images to improve perceived load time",
		}
	default:
		report.Version = versionTextMode
		report.Readability = textReadability
		report.SemanticScore = textSemantic
		report.Recommendations = []string{
			"Add a clear H1 heading",
			"Use the primary keyword in the first 100 words",
			"Add internal links to cornerstone content",
		}
	}

	// Simulated engine latency; abandoned requests stop waiting.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}

	s.logger.Info("Mock report ready",
		"mode", string(mode),
		"keywords", len(report.Keywords),
		"duration", time.Since(start),
	)

	return report, nil
}

// hostOf extracts the hostname with any leading "www." stripped.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return rawURL
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

// Ensure MockSynthesizer implements interfaces.Synthesizer
var _ interfaces.Synthesizer = (*MockSynthesizer)(nil)
