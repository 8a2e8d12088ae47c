package magazine

import (
	"context"
	"fmt"
	"time"
)

type Slot string

const (
	SlotFeatured Slot = "featured"
	SlotSidebar  Slot = "sidebar"
	SlotGrid     Slot = "grid"
)

// SlotFor routes a zero-based feed position to its page region: position 0
// is the featured article, 1-3 fill the sidebar, the rest land in the grid.
func SlotFor(position int) Slot {
	switch {
	case position == 0:
		return SlotFeatured
	case position <= 3:
		return SlotSidebar
	default:
		return SlotGrid
	}
}

// FeedItem is one step of the progressive home feed. Either Article or Err
// is set; an error is scoped to its position and leaves earlier items alone.
type FeedItem struct {
	Position int
	Slot     Slot
	Article  *Article
	Err      error
}

// FeedLoader fetches and emits published articles one at a time, newest
// first, with a fixed pause between fetches for the staggered fade-in.
type FeedLoader struct {
	count func(ctx context.Context) (int, error)
	fetch func(ctx context.Context, position int) (*Article, error)
	pause time.Duration
}

func (m *Manager) NewFeedLoader() *FeedLoader {
	return &FeedLoader{
		count: m.PublishedArticleCount,
		fetch: m.articleAt,
		pause: FeedPause,
	}
}

func (m *Manager) articleAt(ctx context.Context, position int) (*Article, error) {
	dbArticle, err := m.store.ArticleAt(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("db get article at %d: %w", position, err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

// Run streams the feed until every position is emitted or ctx is cancelled.
// The returned channel closes when the run ends. A failed fetch emits an
// error item for that position only and the loop moves on.
func (l *FeedLoader) Run(ctx context.Context) <-chan FeedItem {
	items := make(chan FeedItem)

	go func() {
		defer close(items)

		total, err := l.count(ctx)
		if err != nil {
			select {
			case items <- FeedItem{Position: 0, Slot: SlotFeatured, Err: err}:
			case <-ctx.Done():
			}
			return
		}

		for position := 0; position < total; position++ {
			if position > 0 && l.pause > 0 {
				select {
				case <-time.After(l.pause):
				case <-ctx.Done():
					return
				}
			}

			item := FeedItem{Position: position, Slot: SlotFor(position)}

			article, err := l.fetch(ctx, position)
			switch {
			case err != nil:
				item.Err = err
			case article == nil:
				// The collection shrank mid-run; nothing left to emit.
				return
			default:
				item.Article = article
			}

			select {
			case items <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return items
}
