package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orbitpress/magazine/internal/magazine"
	"github.com/orbitpress/magazine/internal/view"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// Feed handles GET /api/v1/feed
// @Summary Published articles, newest first
// @Description Plain paginated listing of the home feed; the progressive variant is /feed/stream
// @Tags feed
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10)"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/feed [get]
func (h *Handler) Feed(c echo.Context) error {
	var req FeedRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	page, pageSize := defaultPage, defaultPageSize
	if req.Page != nil {
		page = *req.Page
	}
	if req.PageSize != nil {
		pageSize = *req.PageSize
	}

	articles, err := h.uc.Articles(c.Request().Context(), page, pageSize)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticleSummary))
}

// FeedStream handles GET /api/v1/feed/stream
// @Summary Progressive home feed
// @Description Streams one rendered article fragment per event, featured first, then sidebar, then grid
// @Tags feed
// @Produce text/event-stream
// @Success 200 {string} string "server-sent events"
// @Router /api/v1/feed/stream [get]
func (h *Handler) FeedStream(c echo.Context) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	loader := h.uc.NewFeedLoader()

	for item := range loader.Run(ctx) {
		event := FeedEvent{
			Position: item.Position,
			Slot:     string(item.Slot),
		}

		if item.Err != nil {
			h.log.Error("feed item failed", "position", item.Position, "error", item.Err)
			event.Error = "failed to load this section"
		} else {
			html, err := view.FeedFragment(item.Slot, *item.Article)
			if err != nil {
				h.log.Error("feed fragment render failed", "position", item.Position, "error", err)
				event.Error = "failed to load this section"
			} else {
				event.HTML = html
			}
		}

		data, err := json.Marshal(event)
		if err != nil {
			h.log.Error("feed event marshal failed", "error", err)
			continue
		}

		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return nil
		}
		w.Flush()
	}

	return nil
}

// ArticleBySlug handles GET /api/v1/articles/:slug
// @Summary Get a published article by slug
// @Description Retrieves a single published article with full content, category and author; bumps the view counter
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/articles/{slug} [get]
func (h *Handler) ArticleBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return h.handleError(c, nil, http.StatusBadRequest, "invalid slug")
	}

	article, err := h.uc.ArticleBySlug(c.Request().Context(), slug)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// Categories handles GET /api/v1/categories
// @Summary Get navigation categories
// @Description Retrieves categories in name order; the reserved configuration record is never included
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// Editors handles GET /api/v1/editors
// @Summary Get the editorial team
// @Tags editors
// @Produce json
// @Success 200 {array} rest.Editor
// @Failure 500 {object} map[string]string
// @Router /api/v1/editors [get]
func (h *Handler) Editors(c echo.Context) error {
	editors, err := h.uc.Editors(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(editors, NewEditor))
}

// Sponsors handles GET /api/v1/sponsors
// @Summary Get the sponsor strip
// @Tags sponsors
// @Produce json
// @Success 200 {array} rest.Sponsor
// @Failure 500 {object} map[string]string
// @Router /api/v1/sponsors [get]
func (h *Handler) Sponsors(c echo.Context) error {
	sponsors, err := h.uc.Sponsors(c.Request().Context(), magazine.SponsorStripLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(sponsors, NewSponsor))
}

// Spotlight handles GET /api/v1/spotlight
// @Summary Get the live spotlight
// @Description Returns 204 when there is no spotlight; the section hides itself
// @Tags spotlight
// @Produce json
// @Success 200 {object} rest.Spotlight
// @Success 204 {string} string "no spotlight"
// @Failure 500 {object} map[string]string
// @Router /api/v1/spotlight [get]
func (h *Handler) Spotlight(c echo.Context) error {
	spotlight, err := h.uc.ActiveSpotlight(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if spotlight == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, NewSpotlight(*spotlight))
}

// FreeAd handles GET /api/v1/free-ad
// @Summary Get a random free ad
// @Description Picks uniformly among the nonprofit ads; 204 when there are none
// @Tags free-ads
// @Produce json
// @Success 200 {object} rest.FreeAd
// @Success 204 {string} string "no free ads"
// @Failure 500 {object} map[string]string
// @Router /api/v1/free-ad [get]
func (h *Handler) FreeAd(c echo.Context) error {
	ad, err := h.uc.RandomFreeAd(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if ad == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, NewFreeAd(*ad))
}

// Search handles GET /api/v1/search
// @Summary Search published articles
// @Description Case-insensitive substring match over title, excerpt and content; sub-minimum terms return an empty list without querying
// @Tags search
// @Produce json
// @Param query query string true "Search term"
// @Success 200 {array} rest.SearchResult
// @Failure 500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *Handler) Search(c echo.Context) error {
	articles, err := h.uc.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	results := make([]SearchResult, 0, len(articles))
	for _, article := range articles {
		result, err := NewSearchResult(article)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		results = append(results, result)
	}

	return c.JSON(http.StatusOK, results)
}

// Subscribe handles POST /api/v1/subscribe
// @Summary Subscribe to the newsletter
// @Description Registers the email, or reactivates it when it subscribed before
// @Tags subscribers
// @Accept json
// @Produce json
// @Param request body rest.SubscribeRequest true "Subscription"
// @Success 200 {object} rest.Subscriber
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/subscribe [post]
func (h *Handler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), magazine.SubscribeRequest{
		Email:   req.Email,
		Country: req.Country,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, NewSubscriber(*subscriber))
}
