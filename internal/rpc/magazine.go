package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/orbitpress/magazine/internal/magazine"
)

//go:generate zenrpc

// MagazineService provides RPC methods for the public site.
type MagazineService struct {
	zenrpc.Service
	manager *magazine.Manager
}

func NewMagazineService(manager *magazine.Manager) *MagazineService {
	return &MagazineService{manager: manager}
}

// List retrieves published articles, newest first, with pagination.
// Returns summaries without the content body.
//
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=10 items per page
//zenrpc:return list of article summaries
//zenrpc:500 internal server error
func (s *MagazineService) List(ctx context.Context, feed Feed) (Articles, error) {
	page, pageSize := feed.Pagination()

	articles, err := s.manager.Articles(ctx, page, pageSize)
	return NewArticleSummaries(articles), err
}

// Count returns the number of published articles.
//
//zenrpc:return published article count
//zenrpc:500 internal server error
func (s *MagazineService) Count(ctx context.Context) (int, error) {
	return s.manager.PublishedArticleCount(ctx)
}

// BySlug retrieves a single published article with its full content,
// category and author, and records the view.
//
//zenrpc:slug article slug
//zenrpc:return article with full content
//zenrpc:400 slug must not be empty
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *MagazineService) BySlug(ctx context.Context, req ArticleBySlugRequest) (*Article, error) {
	if req.Slug == "" {
		return nil, zenrpc.NewStringError(400, "slug must not be empty")
	}

	found, err := s.manager.ArticleBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	if found == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	article := NewArticle(*found)
	return &article, nil
}

// Search matches published articles by title, excerpt or content.
// Queries below the minimum length return an empty list.
//
//zenrpc:query search term
//zenrpc:return list of matching article summaries
//zenrpc:500 internal server error
func (s *MagazineService) Search(ctx context.Context, req SearchRequest) (Articles, error) {
	articles, err := s.manager.Search(ctx, req.Query)
	return NewArticleSummaries(articles), err
}

// Categories retrieves the navigation categories in name order.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *MagazineService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	return NewCategories(categories), err
}
