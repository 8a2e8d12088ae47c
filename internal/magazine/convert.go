package magazine

import (
	"github.com/orbitpress/magazine/internal/db"
)

func Map[From, To any](items []From, converter func(*From) To) []To {
	result := make([]To, len(items))
	for i := range items {
		result[i] = converter(&items[i])
	}
	return result
}

func NewArticle(a *db.Article) Article {
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
		category := NewCategory(a.Category)
		article.Category = &category
	}

	if a.Author != nil {
		author := NewAuthor(a.Author)
		article.Author = &author
	}

	return article
}

func NewCategory(c *db.Category) Category {
	return Category{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

func NewAuthor(a *db.Author) Author {
	author := Author{
		ID:       a.ID,
		Name:     a.Name,
		Bio:      a.Bio,
		Verified: a.Verified,
	}

	if a.Email != nil {
		author.Email = *a.Email
	}
	author.HasLogin = a.Email != nil && a.PasswordHash != nil

	return author
}

func NewEditor(e *db.Editor) Editor {
	return Editor{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role,
		Bio:      e.Bio,
		PhotoURL: e.PhotoURL,
	}
}

func NewSponsor(s *db.Sponsor) Sponsor {
	return Sponsor{
		ID:      s.ID,
		Name:    s.Name,
		LogoURL: s.LogoURL,
		URL:     s.URL,
	}
}

func NewSpotlight(s *db.Spotlight) Spotlight {
	return Spotlight{
		ID:        s.ID,
		ImageURL:  s.ImageURL,
		LinkURL:   s.LinkURL,
		Caption:   s.Caption,
		CreatedAt: s.CreatedAt,
	}
}

func NewFreeAd(a *db.FreeAd) FreeAd {
	return FreeAd{
		ID:       a.ID,
		Name:     a.Name,
		ImageURL: a.ImageURL,
		LinkURL:  a.LinkURL,
		AltText:  a.AltText,
	}
}

func NewSubscriber(s *db.Subscriber) Subscriber {
	return Subscriber{
		ID:        s.ID,
		Email:     s.Email,
		Country:   s.Country,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
	}
}
