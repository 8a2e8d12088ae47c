package rpc

import "github.com/orbitpress/magazine/internal/magazine"

type Articles []Article
type Categories []Category

func NewArticle(a magazine.Article) Article {
	article := Article{
		ID:        a.ID,
		Title:     a.Title,
		Slug:      a.Slug,
		Excerpt:   a.Excerpt,
		ImageURL:  a.ImageURL,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		Views:     a.Views,
	}

	if a.Category != nil {
		article.Category = NewCategory(*a.Category)
	}
	if a.Author != nil {
		article.Author = NewAuthor(*a.Author)
	}

	return article
}

// NewArticleSummary converts without the content body, for listings.
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
	}
}

func NewArticles(in []magazine.Article) Articles {
	out := make(Articles, len(in))
	for i := range in {
		out[i] = NewArticle(in[i])
	}
	return out
}

func NewArticleSummaries(in []magazine.Article) Articles {
	out := make(Articles, len(in))
	for i := range in {
		out[i] = NewArticleSummary(in[i])
	}
	return out
}

func NewCategories(in []magazine.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(in[i])
	}
	return out
}
