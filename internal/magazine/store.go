package magazine

import (
	"context"

	"github.com/orbitpress/magazine/internal/db"
)

// Store is the persistence surface the manager works against. *db.Repository
// is the production implementation; tests substitute func-field mocks.
type Store interface {
	Articles(ctx context.Context, page, pageSize int) ([]db.Article, error)
	AllArticles(ctx context.Context) ([]db.Article, error)
	PublishedArticleCount(ctx context.Context) (int, error)
	ArticleAt(ctx context.Context, position int) (*db.Article, error)
	ArticleByID(ctx context.Context, id int) (*db.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*db.Article, error)
	SearchArticles(ctx context.Context, term string, limit int) ([]db.Article, error)
	IncrementArticleViews(ctx context.Context, id int) error
	InsertArticle(ctx context.Context, article *db.Article) error
	UpdateArticle(ctx context.Context, article *db.Article) error
	DeleteArticle(ctx context.Context, id int) error

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, id int) (*db.Category, error)
	AdminConfigRecord(ctx context.Context) (*db.Category, error)
	InsertCategory(ctx context.Context, category *db.Category) error
	UpdateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, id int) error

	Authors(ctx context.Context) ([]db.Author, error)
	AuthorByID(ctx context.Context, id int) (*db.Author, error)
	AuthorByEmail(ctx context.Context, email string) (*db.Author, error)
	InsertAuthor(ctx context.Context, author *db.Author) error
	UpdateAuthor(ctx context.Context, author *db.Author) error
	DeleteAuthor(ctx context.Context, id int) error

	Editors(ctx context.Context) ([]db.Editor, error)
	EditorByID(ctx context.Context, id int) (*db.Editor, error)
	InsertEditor(ctx context.Context, editor *db.Editor) error
	UpdateEditor(ctx context.Context, editor *db.Editor) error
	DeleteEditor(ctx context.Context, id int) error

	Sponsors(ctx context.Context, limit int) ([]db.Sponsor, error)
	SponsorByID(ctx context.Context, id int) (*db.Sponsor, error)
	InsertSponsor(ctx context.Context, sponsor *db.Sponsor) error
	UpdateSponsor(ctx context.Context, sponsor *db.Sponsor) error
	DeleteSponsor(ctx context.Context, id int) error

	ActiveSpotlight(ctx context.Context) (*db.Spotlight, error)
	ReplaceSpotlight(ctx context.Context, spotlight *db.Spotlight) error
	DeleteSpotlight(ctx context.Context, id int) error

	FreeAds(ctx context.Context) ([]db.FreeAd, error)
	FreeAdByID(ctx context.Context, id int) (*db.FreeAd, error)
	RandomFreeAd(ctx context.Context) (*db.FreeAd, error)
	InsertFreeAd(ctx context.Context, ad *db.FreeAd) error
	UpdateFreeAd(ctx context.Context, ad *db.FreeAd) error
	DeleteFreeAd(ctx context.Context, id int) error

	Subscribers(ctx context.Context) ([]db.Subscriber, error)
	SubscriberByEmail(ctx context.Context, email string) (*db.Subscriber, error)
	InsertSubscriber(ctx context.Context, subscriber *db.Subscriber) error
	UpdateSubscriber(ctx context.Context, subscriber *db.Subscriber) error
}
