package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// ===== Articles =====

// Articles retrieves published articles with category and author expanded,
// newest first, with pagination.
func (r *Repository) Articles(ctx context.Context, page, pageSize int) ([]Article, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author").
		Where(`"t"."published" = ?`, true).
		OrderExpr(`"t"."created_at" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

// AllArticles retrieves every article including unpublished ones, for the
// admin listing.
func (r *Repository) AllArticles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author").
		OrderExpr(`"t"."created_at" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query all articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) PublishedArticleCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."published" = ?`, true).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get article count: %w", err)
	}

	return count, nil
}

// ArticleAt retrieves the published article at the given zero-based position
// in newest-first order. Returns nil when the position is past the end.
func (r *Repository) ArticleAt(ctx context.Context, position int) (*Article, error) {
	if position < 0 {
		return nil, fmt.Errorf("position must not be negative: %d", position)
	}

	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."published" = ?`, true).
		OrderExpr(`"t"."created_at" DESC`).
		Offset(position).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article at position %d: %w", position, err)
	}

	return article, nil
}

func (r *Repository) ArticleByID(ctx context.Context, id int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."id" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."slug" = ?`, slug).
		Where(`"t"."published" = ?`, true).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	return article, nil
}

// SearchArticles matches the term as a case-insensitive substring against
// title, excerpt or content of published articles, newest first, capped at
// limit rows.
func (r *Repository) SearchArticles(ctx context.Context, term string, limit int) ([]Article, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: %d", limit)
	}

	pattern := "%" + term + "%"

	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author").
		Where(`"t"."published" = ?`, true).
		WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern)
			return q, nil
		}).
		OrderExpr(`"t"."created_at" DESC`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) IncrementArticleViews(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set("views = views + 1").
		Where(`"t"."id" = ?`, id).
		Update()
	if err != nil {
		return fmt.Errorf("failed to increment article views: %w", err)
	}
	return nil
}

func (r *Repository) InsertArticle(ctx context.Context, article *Article) error {
	return insert(ctx, r.db, article)
}

func (r *Repository) UpdateArticle(ctx context.Context, article *Article) error {
	return update(ctx, r.db, article)
}

func (r *Repository) DeleteArticle(ctx context.Context, id int) error {
	return deleteByID[Article](ctx, r.db, id)
}

// ===== Categories =====

// Categories retrieves categories in name order. The reserved admin-config
// row is excluded everywhere; it is reachable only via AdminConfigRecord.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"t"."slug" != ?`, AdminConfigSlug).
		OrderExpr(`"t"."name" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category, err := byID[Category](ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	if category != nil && category.Slug == AdminConfigSlug {
		return nil, nil
	}
	return category, nil
}

// AdminConfigRecord retrieves the reserved category row carrying the encoded
// administrator configuration, or nil when it does not exist.
func (r *Repository) AdminConfigRecord(ctx context.Context) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, AdminConfigSlug).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get admin config record: %w", err)
	}

	return category, nil
}

func (r *Repository) InsertCategory(ctx context.Context, category *Category) error {
	return insert(ctx, r.db, category)
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	return update(ctx, r.db, category)
}

func (r *Repository) DeleteCategory(ctx context.Context, id int) error {
	return deleteByID[Category](ctx, r.db, id)
}

// ===== Authors =====

func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	return list[Author](ctx, r.db, `"t"."name" ASC`)
}

func (r *Repository) AuthorByID(ctx context.Context, id int) (*Author, error) {
	return byID[Author](ctx, r.db, id)
}

func (r *Repository) AuthorByEmail(ctx context.Context, email string) (*Author, error) {
	author := &Author{}
	err := r.db.ModelContext(ctx, author).
		Where(`lower("t"."email") = lower(?)`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get author by email: %w", err)
	}

	return author, nil
}

func (r *Repository) InsertAuthor(ctx context.Context, author *Author) error {
	return insert(ctx, r.db, author)
}

func (r *Repository) UpdateAuthor(ctx context.Context, author *Author) error {
	return update(ctx, r.db, author)
}

func (r *Repository) DeleteAuthor(ctx context.Context, id int) error {
	return deleteByID[Author](ctx, r.db, id)
}

// ===== Editors =====

func (r *Repository) Editors(ctx context.Context) ([]Editor, error) {
	return list[Editor](ctx, r.db, `"t"."name" ASC`)
}

func (r *Repository) EditorByID(ctx context.Context, id int) (*Editor, error) {
	return byID[Editor](ctx, r.db, id)
}

func (r *Repository) InsertEditor(ctx context.Context, editor *Editor) error {
	return insert(ctx, r.db, editor)
}

func (r *Repository) UpdateEditor(ctx context.Context, editor *Editor) error {
	return update(ctx, r.db, editor)
}

func (r *Repository) DeleteEditor(ctx context.Context, id int) error {
	return deleteByID[Editor](ctx, r.db, id)
}

// ===== Sponsors =====

func (r *Repository) Sponsors(ctx context.Context, limit int) ([]Sponsor, error) {
	var sponsors []Sponsor
	query := r.db.ModelContext(ctx, &sponsors).
		OrderExpr(`"t"."name" ASC`)

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query sponsors: %w", err)
	}

	return sponsors, nil
}

func (r *Repository) SponsorByID(ctx context.Context, id int) (*Sponsor, error) {
	return byID[Sponsor](ctx, r.db, id)
}

func (r *Repository) InsertSponsor(ctx context.Context, sponsor *Sponsor) error {
	return insert(ctx, r.db, sponsor)
}

func (r *Repository) UpdateSponsor(ctx context.Context, sponsor *Sponsor) error {
	return update(ctx, r.db, sponsor)
}

func (r *Repository) DeleteSponsor(ctx context.Context, id int) error {
	return deleteByID[Sponsor](ctx, r.db, id)
}

// ===== Spotlight =====

// ActiveSpotlight retrieves the single live spotlight, or nil when none.
func (r *Repository) ActiveSpotlight(ctx context.Context) (*Spotlight, error) {
	spotlight := &Spotlight{}
	err := r.db.ModelContext(ctx, spotlight).
		OrderExpr(`"t"."created_at" DESC`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get active spotlight: %w", err)
	}

	return spotlight, nil
}

// ReplaceSpotlight deletes every existing spotlight and inserts the new one
// in a single transaction, so exactly one row survives a successful save.
func (r *Repository) ReplaceSpotlight(ctx context.Context, spotlight *Spotlight) error {
	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ModelContext(ctx, (*Spotlight)(nil)).
			Where("TRUE").
			Delete(); err != nil {
			return fmt.Errorf("failed to clear spotlights: %w", err)
		}

		return insert(ctx, tx, spotlight)
	})
	if err != nil {
		return fmt.Errorf("failed to replace spotlight: %w", err)
	}

	return nil
}

func (r *Repository) DeleteSpotlight(ctx context.Context, id int) error {
	return deleteByID[Spotlight](ctx, r.db, id)
}

// ===== Free ads =====

func (r *Repository) FreeAds(ctx context.Context) ([]FreeAd, error) {
	return list[FreeAd](ctx, r.db, `"t"."name" ASC`)
}

func (r *Repository) FreeAdByID(ctx context.Context, id int) (*FreeAd, error) {
	return byID[FreeAd](ctx, r.db, id)
}

// RandomFreeAd picks one free ad uniformly at random, or nil when the
// collection is empty.
func (r *Repository) RandomFreeAd(ctx context.Context) (*FreeAd, error) {
	ad := &FreeAd{}
	err := r.db.ModelContext(ctx, ad).
		OrderExpr(`random()`).
		Limit(1).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get random free ad: %w", err)
	}

	return ad, nil
}

func (r *Repository) InsertFreeAd(ctx context.Context, ad *FreeAd) error {
	return insert(ctx, r.db, ad)
}

func (r *Repository) UpdateFreeAd(ctx context.Context, ad *FreeAd) error {
	return update(ctx, r.db, ad)
}

func (r *Repository) DeleteFreeAd(ctx context.Context, id int) error {
	return deleteByID[FreeAd](ctx, r.db, id)
}

// ===== Subscribers =====

func (r *Repository) Subscribers(ctx context.Context) ([]Subscriber, error) {
	return list[Subscriber](ctx, r.db, `"t"."created_at" DESC`)
}

func (r *Repository) SubscriberByEmail(ctx context.Context, email string) (*Subscriber, error) {
	subscriber := &Subscriber{}
	err := r.db.ModelContext(ctx, subscriber).
		Where(`lower("t"."email") = lower(?)`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}

	return subscriber, nil
}

func (r *Repository) InsertSubscriber(ctx context.Context, subscriber *Subscriber) error {
	return insert(ctx, r.db, subscriber)
}

func (r *Repository) UpdateSubscriber(ctx context.Context, subscriber *Subscriber) error {
	return update(ctx, r.db, subscriber)
}
