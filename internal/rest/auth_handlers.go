package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orbitpress/magazine/internal/magazine"
)

// Login handles POST /api/v1/auth/login
// @Summary Log in as administrator or author
// @Description Administrator credentials are checked first, then author accounts; failures are indistinguishable
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	sess, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, magazine.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	token, err := h.uc.IssueToken(sess)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, Session: NewSession(sess)})
}

// Redeem handles POST /api/v1/auth/redeem
// @Summary Redeem an author invite
// @Description Exchanges a one-time invite token for an author session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body rest.RedeemRequest true "Invite token"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/auth/redeem [post]
func (h *Handler) Redeem(c echo.Context) error {
	var req RedeemRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	sess, err := h.uc.RedeemInvite(c.Request().Context(), req.Token)
	if errors.Is(err, magazine.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid invite"})
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	token, err := h.uc.IssueToken(sess)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, Session: NewSession(sess)})
}

// CurrentSession handles GET /api/v1/auth/session
// @Summary Describe the current session
// @Description Resolves the bearer token to a role and capability set; anonymous callers get the logged-out shape
// @Tags auth
// @Produce json
// @Success 200 {object} rest.Session
// @Router /api/v1/auth/session [get]
func (h *Handler) CurrentSession(c echo.Context) error {
	return c.JSON(http.StatusOK, NewSession(sessionFromContext(c)))
}
