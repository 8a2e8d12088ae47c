// Package rest exposes the magazine over HTTP: the public site endpoints,
// the rendered HTML fragments, and the admin dashboard API.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/orbitpress/magazine/internal/magazine"
)

type Handler struct {
	uc  *magazine.Manager
	log *slog.Logger
	rpc http.Handler
}

func NewHandler(uc *magazine.Manager, rpc http.Handler, logger *slog.Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: logger,
		rpc: rpc,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"error", err,
	)

	return c.JSON(statusCode, map[string]string{"error": message})
}

// RegisterRoutes wires every endpoint onto a fresh echo instance.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(h.requestLogger)
	e.Use(middleware.Recover())
	e.Use(h.withSession)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if h.rpc != nil {
		e.Any("/rpc", echo.WrapHandler(h.rpc))
	}

	api := e.Group("/api/v1")
	api.GET("/feed", h.Feed)
	api.GET("/feed/stream", h.FeedStream)
	api.GET("/articles/:slug", h.ArticleBySlug)
	api.GET("/categories", h.Categories)
	api.GET("/editors", h.Editors)
	api.GET("/sponsors", h.Sponsors)
	api.GET("/spotlight", h.Spotlight)
	api.GET("/free-ad", h.FreeAd)
	api.GET("/search", h.Search)
	api.POST("/subscribe", h.Subscribe)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/redeem", h.Redeem)
	api.GET("/auth/session", h.CurrentSession)

	fragments := e.Group("/fragments")
	fragments.GET("/spotlight", h.SpotlightFragment)
	fragments.GET("/free-ad", h.FreeAdFragment)
	fragments.GET("/editors", h.EditorsFragment)
	fragments.GET("/sponsors", h.SponsorsFragment)

	// Spotlight and free ads are open to any logged-in account; the
	// capability check in the domain layer decides who may write.
	authed := api.Group("/admin", h.requireLogin)
	authed.POST("/spotlight", h.SaveSpotlight)
	authed.DELETE("/spotlight/:id", h.DeleteSpotlight)
	authed.GET("/free-ads", h.AdminFreeAds)
	authed.POST("/free-ads", h.SaveFreeAd)
	authed.PUT("/free-ads/:id", h.SaveFreeAd)
	authed.DELETE("/free-ads/:id", h.DeleteFreeAd)

	admin := authed.Group("", h.requireAdmin)
	admin.GET("/articles", h.AdminArticles)
	admin.GET("/articles/:id", h.AdminArticleByID)
	admin.POST("/articles", h.CreateArticle)
	admin.PUT("/articles/:id", h.UpdateArticle)
	admin.DELETE("/articles/:id", h.DeleteArticle)
	admin.POST("/categories", h.SaveCategory)
	admin.PUT("/categories/:id", h.SaveCategory)
	admin.DELETE("/categories/:id", h.DeleteCategory)
	admin.GET("/authors", h.AdminAuthors)
	admin.POST("/authors", h.SaveAuthor)
	admin.PUT("/authors/:id", h.SaveAuthor)
	admin.DELETE("/authors/:id", h.DeleteAuthor)
	admin.POST("/authors/:id/invite", h.InviteAuthor)
	admin.POST("/editors", h.SaveEditor)
	admin.PUT("/editors/:id", h.SaveEditor)
	admin.DELETE("/editors/:id", h.DeleteEditor)
	admin.POST("/sponsors", h.SaveSponsor)
	admin.PUT("/sponsors/:id", h.SaveSponsor)
	admin.DELETE("/sponsors/:id", h.DeleteSponsor)
	admin.GET("/subscribers", h.Subscribers)

	return e
}
