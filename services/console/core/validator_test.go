package core

import (
	"strings"
	"testing"

	"github.com/RuvinSL/content-seo-check/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_TextMode(t *testing.T) {
	tests := []struct {
		name        string
		rawText     string
		expectedErr error
	}{
		{
			name:        "empty content blocked",
			rawText:     "",
			expectedErr: ErrContentTooShort,
		},
		{
			name:        "short content blocked",
			rawText:     "too short to audit",
			expectedErr: ErrContentTooShort,
		},
		{
			name:        "whitespace padding does not count",
			rawText:     "   " + strings.Repeat("a", 49) + "   ",
			expectedErr: ErrContentTooShort,
		},
		{
			name:    "exactly fifty trimmed characters accepted",
			rawText: strings.Repeat("a", 50),
		},
		{
			name:    "long content accepted",
			rawText: strings.Repeat("lorem ipsum ", 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(models.ModeText, tt.rawText, "")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, req)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.rawText), req.Content)
			assert.Empty(t, req.URL)
		})
	}
}

func TestValidate_URLMode(t *testing.T) {
	tests := []struct {
		name        string
		rawURL      string
		expectedErr error
	}{
		{
			name:        "empty URL blocked",
			rawURL:      "",
			expectedErr: ErrMissingURL,
		},
		{
			name:        "whitespace only blocked",
			rawURL:      "   ",
			expectedErr: ErrMissingURL,
		},
		{
			name:        "relative path blocked",
			rawURL:      "/just/a/path",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "bare hostname without scheme blocked",
			rawURL:      "example.com/page",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "unsupported scheme blocked",
			rawURL:      "ftp://example.com/file",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "scheme without host blocked",
			rawURL:      "https://",
			expectedErr: ErrInvalidURL,
		},
		{
			name:   "http URL accepted",
			rawURL: "http://example.com",
		},
		{
			name:   "https URL with path and query accepted",
			rawURL: "https://example.com/page?ref=audit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := Validate(models.ModeURL, "", tt.rawURL)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, req)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.rawURL), req.URL)
			assert.Empty(t, req.Content)
		})
	}
}
