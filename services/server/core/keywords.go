package core

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)

// minKeywordLength filters out filler words ("the", "and", "for", ...)
const minKeywordLength = 3

// ExtractKeywords produces the ordered, deduplicated keyword list for a
// subject string: lowercase, alphanumeric tokens only, tokens longer than
// three characters, first-seen order, capped at max entries.
func ExtractKeywords(subject string, max int) []string {
	normalized := nonAlphanumeric.ReplaceAllString(strings.ToLower(subject), "")

	seen := make(map[string]struct{})
	keywords := make([]string, 0, max)

	for _, token := range strings.Fields(normalized) {
		if len(token) <= minKeywordLength {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}

		keywords = append(keywords, token)
		if len(keywords) == max {
			break
		}
	}

	return keywords
}
