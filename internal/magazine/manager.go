package magazine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

const (
	// SearchDebounce is the quiet period before a pending search fires.
	SearchDebounce = 300 * time.Millisecond
	// SearchMinLength is the minimum query length; shorter input clears
	// results without querying.
	SearchMinLength = 2
	// SearchLimit caps the number of search results.
	SearchLimit = 10

	// FeedPause is the delay between consecutive home-feed fetches.
	FeedPause = 150 * time.Millisecond

	// SponsorStripLimit caps the sponsor strip on public pages.
	SponsorStripLimit = 4

	defaultSessionTTL = 12 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
)

type Config struct {
	TokenSecret   string
	SessionTTL    time.Duration
	InviteBaseURL string
}

type Manager struct {
	store     Store
	cfg       Config
	announcer *Announcer
	sanitizer *bluemonday.Policy
	log       *slog.Logger

	// now is swapped in tests for deterministic slugs and timestamps.
	now func() time.Time
}

// NewManager wires the domain layer. announcer may be nil, in which case new
// articles are not announced anywhere.
func NewManager(store Store, cfg Config, announcer *Announcer, logger *slog.Logger) *Manager {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	return &Manager{
		store:     store,
		cfg:       cfg,
		announcer: announcer,
		sanitizer: bluemonday.UGCPolicy(),
		log:       logger,
		now:       time.Now,
	}
}
