package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		max      int
		expected []string
	}{
		{
			name:     "lowercases and strips punctuation",
			subject:  "Great CONTENT, with Punctuation! And structure.",
			max:      10,
			expected: []string{"great", "content", "with", "punctuation", "structure"},
		},
		{
			name:     "drops tokens of three characters or fewer",
			subject:  "the cat sat on a mat near the content audit",
			max:      10,
			expected: []string{"near", "content", "audit"},
		},
		{
			name:     "deduplicates preserving first-seen order",
			subject:  "audit content audit keywords content audit",
			max:      10,
			expected: []string{"audit", "content", "keywords"},
		},
		{
			name:     "caps at max entries",
			subject:  "alpha bravo charlie delta echo foxtrot",
			max:      3,
			expected: []string{"alpha", "bravo", "charlie"},
		},
		{
			name:     "empty subject yields no keywords",
			subject:  "   ",
			max:      10,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.subject, tt.max))
		})
	}
}

func TestExtractKeywords_Deterministic(t *testing.T) {
	subject := "Deterministic keyword extraction, yields the SAME ordered list each time!"

	first := ExtractKeywords(subject, 10)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractKeywords(subject, 10))
	}
}
