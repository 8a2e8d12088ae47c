package rest

import (
	"github.com/orbitpress/magazine/internal/magazine"
	"github.com/orbitpress/magazine/internal/view"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a magazine.Article) Article {
	article := Article{
		ID:         a.ID,
		Title:      a.Title,
		Slug:       a.Slug,
		CategoryID: a.CategoryID,
		AuthorID:   a.AuthorID,
		Excerpt:    a.Excerpt,
		ImageURL:   a.ImageURL,
		Content:    a.Content,
		Published:  a.Published,
		CreatedAt:  a.CreatedAt,
		Views:      a.Views,
	}

	if a.Category != nil {
		category := NewCategory(*a.Category)
		article.Category = &category
	}
	if a.Author != nil {
		author := NewAuthor(*a.Author)
		article.Author = &author
	}

	return article
}

// NewArticleSummary is NewArticle without the body, for listings.
func NewArticleSummary(a magazine.Article) Article {
	article := NewArticle(a)
	article.Content = ""
	return article
}

func NewCategory(c magazine.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewAuthor(a magazine.Author) Author {
	return Author{
		ID:       a.ID,
		Name:     a.Name,
		Bio:      a.Bio,
		Verified: a.Verified,
		Email:    a.Email,
		HasLogin: a.HasLogin,
	}
}

func NewEditor(e magazine.Editor) Editor {
	return Editor{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role,
		Bio:      e.Bio,
		PhotoURL: e.PhotoURL,
	}
}

func NewSponsor(s magazine.Sponsor) Sponsor {
	return Sponsor{
		ID:      s.ID,
		Name:    s.Name,
		LogoURL: s.LogoURL,
		URL:     s.URL,
	}
}

func NewSpotlight(s magazine.Spotlight) Spotlight {
	return Spotlight{
		ID:       s.ID,
		ImageURL: s.ImageURL,
		LinkURL:  s.LinkURL,
		Caption:  s.Caption,
	}
}

func NewFreeAd(a magazine.FreeAd) FreeAd {
	return FreeAd{
		ID:       a.ID,
		Name:     a.Name,
		ImageURL: a.ImageURL,
		LinkURL:  a.LinkURL,
		AltText:  a.AltText,
	}
}

func NewSubscriber(s magazine.Subscriber) Subscriber {
	return Subscriber{
		ID:      s.ID,
		Email:   s.Email,
		Country: s.Country,
		Active:  s.Active,
	}
}

func NewSession(s magazine.Session) Session {
	return Session{
		Role:                     string(s.Role),
		AuthorID:                 s.AuthorID,
		AuthorName:               s.AuthorName,
		Verified:                 s.Verified,
		CanEditArticles:          s.CanEditArticles(),
		CanCreateSpotlightAndAds: s.CanCreateSpotlightAndAds(),
	}
}

func NewSearchResult(a magazine.Article) (SearchResult, error) {
	html, err := view.SearchResult(a)
	if err != nil {
		return SearchResult{}, err
	}

	result := SearchResult{
		ID:      a.ID,
		Title:   a.Title,
		Slug:    a.Slug,
		Excerpt: view.TrimExcerpt(a.Excerpt),
		Author:  "Unknown",
		Date:    view.FormatDate(a.CreatedAt),
		HTML:    html,
	}
	if a.Author != nil {
		result.Author = a.Author.Name
	}

	return result, nil
}
