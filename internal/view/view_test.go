package view

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitpress/magazine/internal/magazine"
)

func sampleArticle() magazine.Article {
	return magazine.Article{
		ID:        1,
		Title:     "Hello World",
		Slug:      "hello-world-abc",
		Excerpt:   "A short excerpt",
		ImageURL:  "https://cdn.example.org/cover.jpg",
		CreatedAt: time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC),
		Category:  &magazine.Category{ID: 2, Name: "Culture", Slug: "culture"},
		Author:    &magazine.Author{ID: 3, Name: "Vera Olsen", Verified: true},
	}
}

func TestFeatured(t *testing.T) {
	html, err := Featured(sampleArticle())
	require.NoError(t, err)

	assert.Contains(t, html, `href="/p/hello-world-abc"`)
	assert.Contains(t, html, "<h2>Hello World</h2>")
	assert.Contains(t, html, "Culture")
	assert.Contains(t, html, "By Vera Olsen")
	assert.Contains(t, html, "January 14, 2024")
	assert.Contains(t, html, "&#10003;", "verified authors get the check mark")
}

func TestNewArticleVM_Fallbacks(t *testing.T) {
	a := sampleArticle()
	a.Category = nil
	a.Author = nil

	vm := NewArticleVM(a)
	assert.Equal(t, "Uncategorized", vm.Category)
	assert.Equal(t, "Unknown", vm.Author)
	assert.False(t, vm.Verified)
}

func TestFragments_EscapeUntrustedText(t *testing.T) {
	a := sampleArticle()
	a.Title = `<script>alert("x")</script>`
	a.Excerpt = `"quoted" & <b>bold</b>`

	for _, renderFn := range []func(magazine.Article) (string, error){Featured, SidebarItem, GridCard, SearchResult} {
		html, err := renderFn(a)
		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.NotContains(t, html, "<b>")
		assert.Contains(t, html, "&lt;script&gt;")
	}
}

func TestFeedFragment_SlotRouting(t *testing.T) {
	a := sampleArticle()

	featured, err := FeedFragment(magazine.SlotFeatured, a)
	require.NoError(t, err)
	assert.Contains(t, featured, "featured-article")

	sidebar, err := FeedFragment(magazine.SlotSidebar, a)
	require.NoError(t, err)
	assert.Contains(t, sidebar, "sidebar-item")

	grid, err := FeedFragment(magazine.SlotGrid, a)
	require.NoError(t, err)
	assert.Contains(t, grid, "grid-card")
}

func TestEditorCard(t *testing.T) {
	withPhoto, err := EditorCard(magazine.Editor{
		Name:     "Maya Chen",
		Role:     "Editor-in-Chief",
		Bio:      "Writes about culture.",
		PhotoURL: "https://cdn.example.org/maya.jpg",
	})
	require.NoError(t, err)
	assert.Contains(t, withPhoto, `src="https://cdn.example.org/maya.jpg"`)
	assert.NotContains(t, withPhoto, ">MC<")

	withoutPhoto, err := EditorCard(magazine.Editor{Name: "Maya Chen", Role: "Editor-in-Chief"})
	require.NoError(t, err)
	assert.Contains(t, withoutPhoto, ">MC<", "missing photo falls back to initials")
}

func TestSponsorStrip(t *testing.T) {
	empty, err := SponsorStrip(nil)
	require.NoError(t, err)
	assert.Empty(t, empty, "no sponsors renders nothing")

	html, err := SponsorStrip([]magazine.Sponsor{
		{Name: "Acme", LogoURL: "https://cdn.example.org/acme.png", URL: "https://acme.example.org"},
		{Name: "Globex", LogoURL: "https://cdn.example.org/globex.png", URL: "https://globex.example.org"},
	})
	require.NoError(t, err)
	assert.Contains(t, html, `alt="Acme"`)
	assert.Contains(t, html, `alt="Globex"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
}

func TestSpotlightBanner(t *testing.T) {
	empty, err := SpotlightBanner(nil)
	require.NoError(t, err)
	assert.Empty(t, empty, "no spotlight renders nothing")

	html, err := SpotlightBanner(&magazine.Spotlight{
		ImageURL: "https://cdn.example.org/banner.jpg",
		LinkURL:  "https://example.org/event",
		Caption:  "Spring issue",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "spotlight-caption")
	assert.Contains(t, html, "Spring issue")
}

func TestFreeAdSlot(t *testing.T) {
	empty, err := FreeAdSlot(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	html, err := FreeAdSlot(&magazine.FreeAd{
		Name:     "Food Bank",
		ImageURL: "https://cdn.example.org/ad.png",
		LinkURL:  "https://foodbank.example.org",
		AltText:  "Donate today",
	})
	require.NoError(t, err)
	assert.Contains(t, html, `alt="Donate today"`)
	assert.Contains(t, html, "Food Bank")
}

func TestArticleBody(t *testing.T) {
	html, err := ArticleBody(`<p>kept</p><script>alert("x")</script>`)
	require.NoError(t, err)

	assert.Contains(t, html, "<p>kept</p>", "sanitized rich text passes through unescaped")
	assert.NotContains(t, html, "<script>")
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "MC", Initials("Maya Chen"))
	assert.Equal(t, "V", Initials("vera"))
	assert.Equal(t, "ABG", Initials("  alpha   beta gamma "))
	assert.Equal(t, "", Initials(""))
}

func TestTrimExcerpt(t *testing.T) {
	assert.Equal(t, "short", TrimExcerpt("  short  "))

	long := strings.Repeat("word ", 50)
	trimmed := TrimExcerpt(long)
	assert.LessOrEqual(t, len([]rune(trimmed)), 121)
	assert.True(t, strings.HasSuffix(trimmed, "…"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "January 2, 2006", FormatDate(time.Date(2006, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "December 25, 2024", FormatDate(time.Date(2024, 12, 25, 18, 30, 0, 0, time.UTC)))
}
