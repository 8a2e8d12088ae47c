package magazine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify lowercases the text, strips everything but letters, digits, spaces
// and hyphens, turns whitespace runs into single hyphens and collapses
// repeated hyphens.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// ArticleSlug derives the slug for a new article: the slugified title plus a
// time-based suffix. Uniqueness is advisory only; the suffix keeps repeated
// titles apart. Editing an existing article never calls this.
func ArticleSlug(title string, now time.Time) string {
	suffix := strconv.FormatInt(now.Unix(), 36)
	slug := Slugify(title)
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}
