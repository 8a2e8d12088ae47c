package magazine

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple title", input: "Hello World", expected: "hello-world"},
		{name: "punctuation stripped", input: "What's New, in Go?!", expected: "whats-new-in-go"},
		{name: "whitespace runs collapse", input: "too   many\tspaces", expected: "too-many-spaces"},
		{name: "existing hyphens collapse", input: "pre--formatted -- title", expected: "pre-formatted-title"},
		{name: "leading and trailing trimmed", input: "  - edges -  ", expected: "edges"},
		{name: "uppercase lowered", input: "CAPS LOCK", expected: "caps-lock"},
		{name: "only punctuation", input: "?!...", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestArticleSlug(t *testing.T) {
	now := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	suffix := strconv.FormatInt(now.Unix(), 36)

	assert.Equal(t, "hello-world-"+suffix, ArticleSlug("Hello World", now))

	// Unslugifiable titles still produce a usable slug.
	assert.Equal(t, suffix, ArticleSlug("???", now))

	// Equal titles at different instants diverge.
	later := now.Add(1 * time.Second)
	assert.NotEqual(t, ArticleSlug("Hello World", now), ArticleSlug("Hello World", later))
}
