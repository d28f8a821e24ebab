package core

import (
	"errors"
	"net/url"
	"strings"

	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// Validation failures. These never reach the network; the caller blocks
// submission when one is returned.
var (
	ErrContentTooShort = errors.New("content too short")
	ErrMissingURL      = errors.New("missing URL")
	ErrInvalidURL      = errors.New("invalid URL format")
)

// minContentLength is the smallest trimmed text input worth auditing
const minContentLength = 50

// Validate checks the raw input for the given mode and builds the request
// that will be submitted. Pure; no I/O.
func Validate(mode models.AnalysisMode, rawText, rawURL string) (*models.AnalysisRequest, error) {
	switch mode {
	case models.ModeURL:
		trimmed := strings.TrimSpace(rawURL)
		if trimmed == "" {
			return nil, ErrMissingURL
		}
		if !isValidURL(trimmed) {
			return nil, ErrInvalidURL
		}
		return &models.AnalysisRequest{URL: trimmed}, nil
	default:
		trimmed := strings.TrimSpace(rawText)
		if len(trimmed) < minContentLength {
			return nil, ErrContentTooShort
		}
		return &models.AnalysisRequest{Content: trimmed}, nil
	}
}

// isValidURL reports whether s is a well-formed absolute http or https URL.
func isValidURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}
