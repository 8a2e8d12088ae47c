package magazine

import (
	"context"
	"io"
	"log/slog"

	"github.com/orbitpress/magazine/internal/db"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func newTestManager(store Store) *Manager {
	return NewManager(store, Config{TokenSecret: "test-secret"}, nil, noOpLogger())
}

// mockStore is a manual stub implementation of Store. Methods without an
// assigned func field return zero values.
type mockStore struct {
	articlesFunc              func(ctx context.Context, page, pageSize int) ([]db.Article, error)
	allArticlesFunc           func(ctx context.Context) ([]db.Article, error)
	publishedArticleCountFunc func(ctx context.Context) (int, error)
	articleAtFunc             func(ctx context.Context, position int) (*db.Article, error)
	articleByIDFunc           func(ctx context.Context, id int) (*db.Article, error)
	articleBySlugFunc         func(ctx context.Context, slug string) (*db.Article, error)
	searchArticlesFunc        func(ctx context.Context, term string, limit int) ([]db.Article, error)
	incrementArticleViewsFunc func(ctx context.Context, id int) error
	insertArticleFunc         func(ctx context.Context, article *db.Article) error
	updateArticleFunc         func(ctx context.Context, article *db.Article) error
	deleteArticleFunc         func(ctx context.Context, id int) error

	categoriesFunc        func(ctx context.Context) ([]db.Category, error)
	categoryByIDFunc      func(ctx context.Context, id int) (*db.Category, error)
	adminConfigRecordFunc func(ctx context.Context) (*db.Category, error)
	insertCategoryFunc    func(ctx context.Context, category *db.Category) error
	updateCategoryFunc    func(ctx context.Context, category *db.Category) error
	deleteCategoryFunc    func(ctx context.Context, id int) error

	authorsFunc       func(ctx context.Context) ([]db.Author, error)
	authorByIDFunc    func(ctx context.Context, id int) (*db.Author, error)
	authorByEmailFunc func(ctx context.Context, email string) (*db.Author, error)
	insertAuthorFunc  func(ctx context.Context, author *db.Author) error
	updateAuthorFunc  func(ctx context.Context, author *db.Author) error
	deleteAuthorFunc  func(ctx context.Context, id int) error

	editorsFunc      func(ctx context.Context) ([]db.Editor, error)
	editorByIDFunc   func(ctx context.Context, id int) (*db.Editor, error)
	insertEditorFunc func(ctx context.Context, editor *db.Editor) error
	updateEditorFunc func(ctx context.Context, editor *db.Editor) error
	deleteEditorFunc func(ctx context.Context, id int) error

	sponsorsFunc      func(ctx context.Context, limit int) ([]db.Sponsor, error)
	sponsorByIDFunc   func(ctx context.Context, id int) (*db.Sponsor, error)
	insertSponsorFunc func(ctx context.Context, sponsor *db.Sponsor) error
	updateSponsorFunc func(ctx context.Context, sponsor *db.Sponsor) error
	deleteSponsorFunc func(ctx context.Context, id int) error

	activeSpotlightFunc  func(ctx context.Context) (*db.Spotlight, error)
	replaceSpotlightFunc func(ctx context.Context, spotlight *db.Spotlight) error
	deleteSpotlightFunc  func(ctx context.Context, id int) error

	freeAdsFunc      func(ctx context.Context) ([]db.FreeAd, error)
	freeAdByIDFunc   func(ctx context.Context, id int) (*db.FreeAd, error)
	randomFreeAdFunc func(ctx context.Context) (*db.FreeAd, error)
	insertFreeAdFunc func(ctx context.Context, ad *db.FreeAd) error
	updateFreeAdFunc func(ctx context.Context, ad *db.FreeAd) error
	deleteFreeAdFunc func(ctx context.Context, id int) error

	subscribersFunc       func(ctx context.Context) ([]db.Subscriber, error)
	subscriberByEmailFunc func(ctx context.Context, email string) (*db.Subscriber, error)
	insertSubscriberFunc  func(ctx context.Context, subscriber *db.Subscriber) error
	updateSubscriberFunc  func(ctx context.Context, subscriber *db.Subscriber) error
}

func (m *mockStore) Articles(ctx context.Context, page, pageSize int) ([]db.Article, error) {
	if m.articlesFunc != nil {
		return m.articlesFunc(ctx, page, pageSize)
	}
	return nil, nil
}

func (m *mockStore) AllArticles(ctx context.Context) ([]db.Article, error) {
	if m.allArticlesFunc != nil {
		return m.allArticlesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) PublishedArticleCount(ctx context.Context) (int, error) {
	if m.publishedArticleCountFunc != nil {
		return m.publishedArticleCountFunc(ctx)
	}
	return 0, nil
}

func (m *mockStore) ArticleAt(ctx context.Context, position int) (*db.Article, error) {
	if m.articleAtFunc != nil {
		return m.articleAtFunc(ctx, position)
	}
	return nil, nil
}

func (m *mockStore) ArticleByID(ctx context.Context, id int) (*db.Article, error) {
	if m.articleByIDFunc != nil {
		return m.articleByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) ArticleBySlug(ctx context.Context, slug string) (*db.Article, error) {
	if m.articleBySlugFunc != nil {
		return m.articleBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockStore) SearchArticles(ctx context.Context, term string, limit int) ([]db.Article, error) {
	if m.searchArticlesFunc != nil {
		return m.searchArticlesFunc(ctx, term, limit)
	}
	return nil, nil
}

func (m *mockStore) IncrementArticleViews(ctx context.Context, id int) error {
	if m.incrementArticleViewsFunc != nil {
		return m.incrementArticleViewsFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) InsertArticle(ctx context.Context, article *db.Article) error {
	if m.insertArticleFunc != nil {
		return m.insertArticleFunc(ctx, article)
	}
	return nil
}

func (m *mockStore) UpdateArticle(ctx context.Context, article *db.Article) error {
	if m.updateArticleFunc != nil {
		return m.updateArticleFunc(ctx, article)
	}
	return nil
}

func (m *mockStore) DeleteArticle(ctx context.Context, id int) error {
	if m.deleteArticleFunc != nil {
		return m.deleteArticleFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Categories(ctx context.Context) ([]db.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) CategoryByID(ctx context.Context, id int) (*db.Category, error) {
	if m.categoryByIDFunc != nil {
		return m.categoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) AdminConfigRecord(ctx context.Context) (*db.Category, error) {
	if m.adminConfigRecordFunc != nil {
		return m.adminConfigRecordFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) InsertCategory(ctx context.Context, category *db.Category) error {
	if m.insertCategoryFunc != nil {
		return m.insertCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockStore) UpdateCategory(ctx context.Context, category *db.Category) error {
	if m.updateCategoryFunc != nil {
		return m.updateCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockStore) DeleteCategory(ctx context.Context, id int) error {
	if m.deleteCategoryFunc != nil {
		return m.deleteCategoryFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Authors(ctx context.Context) ([]db.Author, error) {
	if m.authorsFunc != nil {
		return m.authorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) AuthorByID(ctx context.Context, id int) (*db.Author, error) {
	if m.authorByIDFunc != nil {
		return m.authorByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) AuthorByEmail(ctx context.Context, email string) (*db.Author, error) {
	if m.authorByEmailFunc != nil {
		return m.authorByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockStore) InsertAuthor(ctx context.Context, author *db.Author) error {
	if m.insertAuthorFunc != nil {
		return m.insertAuthorFunc(ctx, author)
	}
	return nil
}

func (m *mockStore) UpdateAuthor(ctx context.Context, author *db.Author) error {
	if m.updateAuthorFunc != nil {
		return m.updateAuthorFunc(ctx, author)
	}
	return nil
}

func (m *mockStore) DeleteAuthor(ctx context.Context, id int) error {
	if m.deleteAuthorFunc != nil {
		return m.deleteAuthorFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Editors(ctx context.Context) ([]db.Editor, error) {
	if m.editorsFunc != nil {
		return m.editorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) EditorByID(ctx context.Context, id int) (*db.Editor, error) {
	if m.editorByIDFunc != nil {
		return m.editorByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) InsertEditor(ctx context.Context, editor *db.Editor) error {
	if m.insertEditorFunc != nil {
		return m.insertEditorFunc(ctx, editor)
	}
	return nil
}

func (m *mockStore) UpdateEditor(ctx context.Context, editor *db.Editor) error {
	if m.updateEditorFunc != nil {
		return m.updateEditorFunc(ctx, editor)
	}
	return nil
}

func (m *mockStore) DeleteEditor(ctx context.Context, id int) error {
	if m.deleteEditorFunc != nil {
		return m.deleteEditorFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Sponsors(ctx context.Context, limit int) ([]db.Sponsor, error) {
	if m.sponsorsFunc != nil {
		return m.sponsorsFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockStore) SponsorByID(ctx context.Context, id int) (*db.Sponsor, error) {
	if m.sponsorByIDFunc != nil {
		return m.sponsorByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) InsertSponsor(ctx context.Context, sponsor *db.Sponsor) error {
	if m.insertSponsorFunc != nil {
		return m.insertSponsorFunc(ctx, sponsor)
	}
	return nil
}

func (m *mockStore) UpdateSponsor(ctx context.Context, sponsor *db.Sponsor) error {
	if m.updateSponsorFunc != nil {
		return m.updateSponsorFunc(ctx, sponsor)
	}
	return nil
}

func (m *mockStore) DeleteSponsor(ctx context.Context, id int) error {
	if m.deleteSponsorFunc != nil {
		return m.deleteSponsorFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) ActiveSpotlight(ctx context.Context) (*db.Spotlight, error) {
	if m.activeSpotlightFunc != nil {
		return m.activeSpotlightFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) ReplaceSpotlight(ctx context.Context, spotlight *db.Spotlight) error {
	if m.replaceSpotlightFunc != nil {
		return m.replaceSpotlightFunc(ctx, spotlight)
	}
	return nil
}

func (m *mockStore) DeleteSpotlight(ctx context.Context, id int) error {
	if m.deleteSpotlightFunc != nil {
		return m.deleteSpotlightFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) FreeAds(ctx context.Context) ([]db.FreeAd, error) {
	if m.freeAdsFunc != nil {
		return m.freeAdsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) FreeAdByID(ctx context.Context, id int) (*db.FreeAd, error) {
	if m.freeAdByIDFunc != nil {
		return m.freeAdByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) RandomFreeAd(ctx context.Context) (*db.FreeAd, error) {
	if m.randomFreeAdFunc != nil {
		return m.randomFreeAdFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) InsertFreeAd(ctx context.Context, ad *db.FreeAd) error {
	if m.insertFreeAdFunc != nil {
		return m.insertFreeAdFunc(ctx, ad)
	}
	return nil
}

func (m *mockStore) UpdateFreeAd(ctx context.Context, ad *db.FreeAd) error {
	if m.updateFreeAdFunc != nil {
		return m.updateFreeAdFunc(ctx, ad)
	}
	return nil
}

func (m *mockStore) DeleteFreeAd(ctx context.Context, id int) error {
	if m.deleteFreeAdFunc != nil {
		return m.deleteFreeAdFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Subscribers(ctx context.Context) ([]db.Subscriber, error) {
	if m.subscribersFunc != nil {
		return m.subscribersFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) SubscriberByEmail(ctx context.Context, email string) (*db.Subscriber, error) {
	if m.subscriberByEmailFunc != nil {
		return m.subscriberByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockStore) InsertSubscriber(ctx context.Context, subscriber *db.Subscriber) error {
	if m.insertSubscriberFunc != nil {
		return m.insertSubscriberFunc(ctx, subscriber)
	}
	return nil
}

func (m *mockStore) UpdateSubscriber(ctx context.Context, subscriber *db.Subscriber) error {
	if m.updateSubscriberFunc != nil {
		return m.updateSubscriberFunc(ctx, subscriber)
	}
	return nil
}
