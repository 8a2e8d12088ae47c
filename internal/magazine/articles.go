package magazine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/orbitpress/magazine/internal/db"
)

// ArticleDraft carries the form fields of the article modal. ID zero means
// create; CreatedAt may override the creation timestamp on create.
type ArticleDraft struct {
	ID         int
	Title      string
	CategoryID int
	AuthorID   int
	Excerpt    string
	ImageURL   string
	Content    string
	Published  *bool
	CreatedAt  *string
}

// Articles retrieves published articles, newest first, with pagination.
func (m *Manager) Articles(ctx context.Context, page, pageSize int) ([]Article, error) {
	dbArticles, err := m.store.Articles(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	return Map(dbArticles, NewArticle), nil
}

// AllArticles retrieves every article for the admin listing, drafts included.
func (m *Manager) AllArticles(ctx context.Context) ([]Article, error) {
	dbArticles, err := m.store.AllArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get all articles: %w", err)
	}

	return Map(dbArticles, NewArticle), nil
}

func (m *Manager) PublishedArticleCount(ctx context.Context) (int, error) {
	count, err := m.store.PublishedArticleCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("db get article count: %w", err)
	}

	return count, nil
}

func (m *Manager) ArticleByID(ctx context.Context, id int) (*Article, error) {
	dbArticle, err := m.store.ArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// ArticleBySlug retrieves a published article for the article page and bumps
// its view counter. A failed bump is logged, not surfaced; the read wins.
func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	dbArticle, err := m.store.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get article by slug: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	if err := m.store.IncrementArticleViews(ctx, dbArticle.ID); err != nil {
		m.log.Error("failed to bump article views", "articleId", dbArticle.ID, "error", err)
	} else {
		dbArticle.Views++
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// Search runs one direct search query. Terms shorter than SearchMinLength
// return an empty result without touching the store.
func (m *Manager) Search(ctx context.Context, term string) ([]Article, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < SearchMinLength {
		return nil, nil
	}

	dbArticles, err := m.store.SearchArticles(ctx, term, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("db search articles: %w", err)
	}

	return Map(dbArticles, NewArticle), nil
}

// SaveArticle creates or updates an article. Only the admin may write
// articles. A new article gets a derived slug; updates keep the stored slug
// untouched. The rich HTML body is sanitized on every save.
func (m *Manager) SaveArticle(ctx context.Context, sess Session, draft ArticleDraft) (*Article, error) {
	if !sess.CanEditArticles() {
		return nil, ErrPermissionDenied
	}

	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if draft.CategoryID == 0 || draft.AuthorID == 0 {
		return nil, fmt.Errorf("category and author are required")
	}

	content := m.sanitizer.Sanitize(draft.Content)

	if draft.ID == 0 {
		now := m.now()
		record := &db.Article{
			Title:      draft.Title,
			Slug:       ArticleSlug(draft.Title, now),
			CategoryID: draft.CategoryID,
			AuthorID:   draft.AuthorID,
			Excerpt:    draft.Excerpt,
			ImageURL:   draft.ImageURL,
			Content:    content,
			Published:  true,
			CreatedAt:  now,
		}
		if draft.Published != nil {
			record.Published = *draft.Published
		}
		if draft.CreatedAt != nil {
			createdAt, err := parseOverrideTime(*draft.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("invalid creation timestamp: %w", err)
			}
			record.CreatedAt = createdAt
		}

		if err := m.store.InsertArticle(ctx, record); err != nil {
			return nil, fmt.Errorf("db insert article: %w", err)
		}

		article := NewArticle(record)
		m.announceArticle(article)

		return &article, nil
	}

	record, err := m.store.ArticleByID(ctx, draft.ID)
	if err != nil {
		return nil, fmt.Errorf("db get article for update: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("article %d not found", draft.ID)
	}

	record.Title = draft.Title
	record.CategoryID = draft.CategoryID
	record.AuthorID = draft.AuthorID
	record.Excerpt = draft.Excerpt
	record.ImageURL = draft.ImageURL
	record.Content = content
	if draft.Published != nil {
		record.Published = *draft.Published
	}
	if draft.CreatedAt != nil {
		createdAt, err := parseOverrideTime(*draft.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid creation timestamp: %w", err)
		}
		record.CreatedAt = createdAt
	}
	record.Category = nil
	record.Author = nil

	if err := m.store.UpdateArticle(ctx, record); err != nil {
		return nil, fmt.Errorf("db update article: %w", err)
	}

	article := NewArticle(record)
	return &article, nil
}

func parseOverrideTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func (m *Manager) DeleteArticle(ctx context.Context, sess Session, id int) error {
	if !sess.CanEditArticles() {
		return ErrPermissionDenied
	}

	if err := m.store.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("db delete article: %w", err)
	}

	return nil
}
