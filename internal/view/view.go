// Package view maps domain records to the HTML fragments the pages are
// assembled from. All interpolation goes through html/template so escaping
// is enforced in one place; the only raw HTML that survives is the article
// body, and that passes the sanitizer first.
package view

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/orbitpress/magazine/internal/magazine"
)

const dateLayout = "January 2, 2006"

const excerptTrim = 120

var richText = bluemonday.UGCPolicy()

var templates = template.Must(template.New("fragments").Parse(`
{{define "featured"}}<article class="featured-article">
  <a href="/p/{{.Slug}}">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}
    <span class="category">{{.Category}}</span>
    <h2>{{.Title}}</h2>
    {{if .Excerpt}}<p class="excerpt">{{.Excerpt}}</p>{{end}}
    <span class="byline">By {{.Author}}{{if .Verified}} &#10003;{{end}} | {{.Date}}</span>
  </a>
</article>{{end}}

{{define "sidebarItem"}}<li class="sidebar-item">
  <a href="/p/{{.Slug}}">
    <span class="category">{{.Category}}</span>
    <h3>{{.Title}}</h3>
    <span class="byline">{{.Author}} | {{.Date}}</span>
  </a>
</li>{{end}}

{{define "gridCard"}}<article class="grid-card">
  <a href="/p/{{.Slug}}">
    {{if .ImageURL}}<img src="{{.ImageURL}}" alt="{{.Title}}">{{end}}
    <span class="category">{{.Category}}</span>
    <h3>{{.Title}}</h3>
    {{if .Excerpt}}<p class="excerpt">{{.Excerpt}}</p>{{end}}
    <span class="byline">{{.Author}} | {{.Date}}</span>
  </a>
</article>{{end}}

{{define "searchResult"}}<li class="search-result">
  <a href="/p/{{.Slug}}">
    <h3>{{.Title}}</h3>
    {{if .Excerpt}}<p class="excerpt">{{.Excerpt}}</p>{{end}}
    <span class="byline">{{.Author}} | {{.Date}}</span>
  </a>
</li>{{end}}

{{define "editorCard"}}<div class="editor-card">
  {{if .PhotoURL}}<img class="editor-photo" src="{{.PhotoURL}}" alt="{{.Name}}">{{else}}<div class="editor-photo">{{.Initials}}</div>{{end}}
  <h2 class="editor-name">{{.Name}}</h2>
  <p class="editor-role">{{.Role}}</p>
  {{if .Bio}}<p class="editor-bio">{{.Bio}}</p>{{end}}
</div>{{end}}

{{define "sponsorStrip"}}<div class="sponsors-grid">{{range .}}
  <div class="sponsor-item">
    <a href="{{.URL}}" target="_blank" rel="noopener noreferrer"><img src="{{.LogoURL}}" alt="{{.Name}}"></a>
  </div>{{end}}
</div>{{end}}

{{define "spotlightBanner"}}<aside class="spotlight">
  <a href="{{.LinkURL}}"><img src="{{.ImageURL}}" alt="{{.Caption}}"></a>
  {{if .Caption}}<p class="spotlight-caption">{{.Caption}}</p>{{end}}
</aside>{{end}}

{{define "freeAdSlot"}}<aside class="free-ad">
  <a href="{{.LinkURL}}" target="_blank" rel="noopener noreferrer"><img src="{{.ImageURL}}" alt="{{.AltText}}"></a>
  <p class="free-ad-name">{{.Name}}</p>
</aside>{{end}}

{{define "articleBody"}}<div class="article-body">{{.Body}}</div>{{end}}
`))

// ArticleVM is the flat view model shared by the featured, sidebar, grid and
// search fragments.
type ArticleVM struct {
	Title    string
	Slug     string
	Category string
	Author   string
	Verified bool
	Excerpt  string
	ImageURL string
	Date     string
}

type EditorVM struct {
	Name     string
	Role     string
	Bio      string
	PhotoURL string
	Initials string
}

func NewArticleVM(a magazine.Article) ArticleVM {
	vm := ArticleVM{
		Title:    a.Title,
		Slug:     a.Slug,
		Category: "Uncategorized",
		Author:   "Unknown",
		Excerpt:  a.Excerpt,
		ImageURL: a.ImageURL,
		Date:     FormatDate(a.CreatedAt),
	}

	if a.Category != nil {
		vm.Category = a.Category.Name
	}
	if a.Author != nil {
		vm.Author = a.Author.Name
		vm.Verified = a.Author.Verified
	}

	return vm
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// Initials reduces a name to its uppercase initials, the placeholder shown
// when an editor has no photo.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		runes := []rune(part)
		if len(runes) > 0 {
			b.WriteString(strings.ToUpper(string(runes[0])))
		}
	}
	return b.String()
}

// TrimExcerpt shortens text for the search result list.
func TrimExcerpt(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= excerptTrim {
		return string(runes)
	}
	return strings.TrimSpace(string(runes[:excerptTrim])) + "…"
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func Featured(a magazine.Article) (string, error) {
	return render("featured", NewArticleVM(a))
}

func SidebarItem(a magazine.Article) (string, error) {
	return render("sidebarItem", NewArticleVM(a))
}

func GridCard(a magazine.Article) (string, error) {
	return render("gridCard", NewArticleVM(a))
}

// FeedFragment renders a feed item with the template its slot calls for.
func FeedFragment(slot magazine.Slot, a magazine.Article) (string, error) {
	switch slot {
	case magazine.SlotFeatured:
		return Featured(a)
	case magazine.SlotSidebar:
		return SidebarItem(a)
	default:
		return GridCard(a)
	}
}

func SearchResult(a magazine.Article) (string, error) {
	vm := NewArticleVM(a)
	vm.Excerpt = TrimExcerpt(vm.Excerpt)
	return render("searchResult", vm)
}

func EditorCard(e magazine.Editor) (string, error) {
	return render("editorCard", EditorVM{
		Name:     e.Name,
		Role:     e.Role,
		Bio:      e.Bio,
		PhotoURL: e.PhotoURL,
		Initials: Initials(e.Name),
	})
}

// SponsorStrip renders the sponsor row, or nothing when there are no
// sponsors.
func SponsorStrip(sponsors []magazine.Sponsor) (string, error) {
	if len(sponsors) == 0 {
		return "", nil
	}
	return render("sponsorStrip", sponsors)
}

// SpotlightBanner renders the live spotlight. A nil spotlight renders
// nothing at all; the section hides itself rather than showing empty.
func SpotlightBanner(s *magazine.Spotlight) (string, error) {
	if s == nil {
		return "", nil
	}
	return render("spotlightBanner", s)
}

// FreeAdSlot renders the randomly picked free ad, or nothing when the
// collection is empty.
func FreeAdSlot(ad *magazine.FreeAd) (string, error) {
	if ad == nil {
		return "", nil
	}
	return render("freeAdSlot", ad)
}

// ArticleBody wraps the stored rich HTML. The content is sanitized again on
// the way out, so even a row written around the manager cannot inject markup.
func ArticleBody(content string) (string, error) {
	body := template.HTML(richText.Sanitize(content))
	return render("articleBody", struct{ Body template.HTML }{Body: body})
}
