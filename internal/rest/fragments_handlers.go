package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orbitpress/magazine/internal/magazine"
	"github.com/orbitpress/magazine/internal/view"
)

// Fragment endpoints return rendered, escaped HTML ready for direct
// insertion into the page. Sections that have nothing to show return an
// empty body so the client simply leaves them hidden.

// SpotlightFragment handles GET /fragments/spotlight
// @Summary Rendered spotlight banner
// @Tags fragments
// @Produce html
// @Success 200 {string} string "banner markup, empty when no spotlight"
// @Failure 500 {object} map[string]string
// @Router /fragments/spotlight [get]
func (h *Handler) SpotlightFragment(c echo.Context) error {
	spotlight, err := h.uc.ActiveSpotlight(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	html, err := view.SpotlightBanner(spotlight)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTML(http.StatusOK, html)
}

// FreeAdFragment handles GET /fragments/free-ad
// @Summary Rendered free ad slot
// @Tags fragments
// @Produce html
// @Success 200 {string} string "ad markup, empty when no free ads exist"
// @Failure 500 {object} map[string]string
// @Router /fragments/free-ad [get]
func (h *Handler) FreeAdFragment(c echo.Context) error {
	ad, err := h.uc.RandomFreeAd(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	html, err := view.FreeAdSlot(ad)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTML(http.StatusOK, html)
}

// EditorsFragment handles GET /fragments/editors
// @Summary Rendered editor cards
// @Tags fragments
// @Produce html
// @Success 200 {string} string "concatenated editor cards"
// @Failure 500 {object} map[string]string
// @Router /fragments/editors [get]
func (h *Handler) EditorsFragment(c echo.Context) error {
	editors, err := h.uc.Editors(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	var out string
	for _, editor := range editors {
		card, err := view.EditorCard(editor)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		out += card
	}

	return c.HTML(http.StatusOK, out)
}

// SponsorsFragment handles GET /fragments/sponsors
// @Summary Rendered sponsor strip
// @Tags fragments
// @Produce html
// @Success 200 {string} string "sponsor strip markup, empty when no sponsors exist"
// @Failure 500 {object} map[string]string
// @Router /fragments/sponsors [get]
func (h *Handler) SponsorsFragment(c echo.Context) error {
	sponsors, err := h.uc.Sponsors(c.Request().Context(), magazine.SponsorStripLimit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	html, err := view.SponsorStrip(sponsors)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.HTML(http.StatusOK, html)
}
