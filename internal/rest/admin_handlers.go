package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/orbitpress/magazine/internal/magazine"
)

func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

// saveError maps domain failures from save/delete operations onto status
// codes: capability violations become 403, anything else is treated as a
// validation problem and surfaced to the dashboard form.
func (h *Handler) saveError(c echo.Context, err error) error {
	if errors.Is(err, magazine.ErrPermissionDenied) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "permission denied"})
	}
	return h.handleError(c, err, http.StatusBadRequest, err.Error())
}

// AdminArticles handles GET /api/v1/admin/articles
// @Summary List all articles, drafts included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.Article
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/articles [get]
func (h *Handler) AdminArticles(c echo.Context) error {
	articles, err := h.uc.AllArticles(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticleSummary))
}

// AdminArticleByID handles GET /api/v1/admin/articles/:id
// @Summary Get one article for editing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,401,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [get]
func (h *Handler) AdminArticleByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.uc.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// CreateArticle handles POST /api/v1/admin/articles
// @Summary Create an article
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.ArticleRequest true "Article"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	return h.saveArticle(c, 0)
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id
// @Summary Update an article
// @Description The slug assigned at creation is kept even when the title changes
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body rest.ArticleRequest true "Article"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [put]
func (h *Handler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}
	return h.saveArticle(c, id)
}

func (h *Handler) saveArticle(c echo.Context, id int) error {
	var req ArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	article, err := h.uc.SaveArticle(c.Request().Context(), sessionFromContext(c), magazine.ArticleDraft{
		ID:         id,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		AuthorID:   req.AuthorID,
		Excerpt:    req.Excerpt,
		ImageURL:   req.ImageURL,
		Content:    req.Content,
		Published:  req.Published,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
// @Summary Delete an article
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteArticle(c.Request().Context(), sessionFromContext(c), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SaveCategory handles POST /api/v1/admin/categories and PUT /api/v1/admin/categories/:id
// @Summary Create or update a category
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.CategoryRequest true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/categories [post]
func (h *Handler) SaveCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	id := 0
	if c.Param("id") != "" {
		var err error
		if id, err = pathID(c); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
	}

	category, err := h.uc.SaveCategory(c.Request().Context(), magazine.CategoryDraft{
		ID:   id,
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
// @Summary Delete a category
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminAuthors handles GET /api/v1/admin/authors
// @Summary List authors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.Author
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/authors [get]
func (h *Handler) AdminAuthors(c echo.Context) error {
	authors, err := h.uc.Authors(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(authors, NewAuthor))
}

// SaveAuthor handles POST /api/v1/admin/authors and PUT /api/v1/admin/authors/:id
// @Summary Create or update an author
// @Description Setting a password requires an email; the password is stored as a hash and never returned
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.AuthorRequest true "Author"
// @Success 200 {object} rest.Author
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/authors [post]
func (h *Handler) SaveAuthor(c echo.Context) error {
	var req AuthorRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	id := 0
	if c.Param("id") != "" {
		var err error
		if id, err = pathID(c); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
	}

	author, err := h.uc.SaveAuthor(c.Request().Context(), magazine.AuthorDraft{
		ID:       id,
		Name:     req.Name,
		Bio:      req.Bio,
		Verified: req.Verified,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewAuthor(*author))
}

// DeleteAuthor handles DELETE /api/v1/admin/authors/:id
// @Summary Delete an author
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/authors/{id} [delete]
func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// InviteAuthor handles POST /api/v1/admin/authors/:id/invite
// @Summary Issue a one-time login invite for an author
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Author ID"
// @Success 200 {object} rest.InviteResponse
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/authors/{id}/invite [post]
func (h *Handler) InviteAuthor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	invite, err := h.uc.InviteAuthor(c.Request().Context(), sessionFromContext(c), id)
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, InviteResponse{Invite: invite})
}

// SaveEditor handles POST /api/v1/admin/editors and PUT /api/v1/admin/editors/:id
// @Summary Create or update an editor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.EditorRequest true "Editor"
// @Success 200 {object} rest.Editor
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/editors [post]
func (h *Handler) SaveEditor(c echo.Context) error {
	var req EditorRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	id := 0
	if c.Param("id") != "" {
		var err error
		if id, err = pathID(c); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
	}

	editor, err := h.uc.SaveEditor(c.Request().Context(), magazine.EditorDraft{
		ID:       id,
		Name:     req.Name,
		Role:     req.Role,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewEditor(*editor))
}

// DeleteEditor handles DELETE /api/v1/admin/editors/:id
// @Summary Delete an editor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Editor ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/editors/{id} [delete]
func (h *Handler) DeleteEditor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteEditor(c.Request().Context(), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SaveSponsor handles POST /api/v1/admin/sponsors and PUT /api/v1/admin/sponsors/:id
// @Summary Create or update a sponsor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.SponsorRequest true "Sponsor"
// @Success 200 {object} rest.Sponsor
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/sponsors [post]
func (h *Handler) SaveSponsor(c echo.Context) error {
	var req SponsorRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	id := 0
	if c.Param("id") != "" {
		var err error
		if id, err = pathID(c); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
	}

	sponsor, err := h.uc.SaveSponsor(c.Request().Context(), magazine.SponsorDraft{
		ID:      id,
		Name:    req.Name,
		LogoURL: req.LogoURL,
		URL:     req.URL,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewSponsor(*sponsor))
}

// DeleteSponsor handles DELETE /api/v1/admin/sponsors/:id
// @Summary Delete a sponsor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sponsor ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/sponsors/{id} [delete]
func (h *Handler) DeleteSponsor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteSponsor(c.Request().Context(), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SaveSpotlight handles POST /api/v1/admin/spotlight
// @Summary Replace the spotlight
// @Description There is at most one live spotlight; saving a new one atomically replaces the previous
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.SpotlightRequest true "Spotlight"
// @Success 200 {object} rest.Spotlight
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/spotlight [post]
func (h *Handler) SaveSpotlight(c echo.Context) error {
	var req SpotlightRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	spotlight, err := h.uc.SaveSpotlight(c.Request().Context(), sessionFromContext(c), magazine.SpotlightDraft{
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		Caption:  req.Caption,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewSpotlight(*spotlight))
}

// DeleteSpotlight handles DELETE /api/v1/admin/spotlight/:id
// @Summary Take down the spotlight
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Spotlight ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/spotlight/{id} [delete]
func (h *Handler) DeleteSpotlight(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteSpotlight(c.Request().Context(), sessionFromContext(c), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminFreeAds handles GET /api/v1/admin/free-ads
// @Summary List free ads
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.FreeAd
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/admin/free-ads [get]
func (h *Handler) AdminFreeAds(c echo.Context) error {
	ads, err := h.uc.FreeAds(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(ads, NewFreeAd))
}

// SaveFreeAd handles POST /api/v1/admin/free-ads and PUT /api/v1/admin/free-ads/:id
// @Summary Create or update a free ad
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body rest.FreeAdRequest true "Free ad"
// @Success 200 {object} rest.FreeAd
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/free-ads [post]
func (h *Handler) SaveFreeAd(c echo.Context) error {
	var req FreeAdRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	id := 0
	if c.Param("id") != "" {
		var err error
		if id, err = pathID(c); err != nil {
			return h.handleError(c, err, http.StatusBadRequest, "invalid id")
		}
	}

	ad, err := h.uc.SaveFreeAd(c.Request().Context(), sessionFromContext(c), magazine.FreeAdDraft{
		ID:       id,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		AltText:  req.AltText,
	})
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(http.StatusOK, NewFreeAd(*ad))
}

// DeleteFreeAd handles DELETE /api/v1/admin/free-ads/:id
// @Summary Delete a free ad
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Free ad ID"
// @Success 204 {string} string "deleted"
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/free-ads/{id} [delete]
func (h *Handler) DeleteFreeAd(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteFreeAd(c.Request().Context(), sessionFromContext(c), id); err != nil {
		return h.saveError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Subscribers handles GET /api/v1/admin/subscribers
// @Summary List newsletter subscribers
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} rest.Subscriber
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/subscribers [get]
func (h *Handler) Subscribers(c echo.Context) error {
	subscribers, err := h.uc.Subscribers(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(subscribers, NewSubscriber))
}
