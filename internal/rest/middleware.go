package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orbitpress/magazine/internal/magazine"
)

const sessionContextKey = "magazine.session"

// withSession resolves the bearer token, if any, into a session value on the
// request context. A missing or bad token yields the unauthenticated session;
// rejection is left to requireLogin and the domain-level capability checks.
func (h *Handler) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := magazine.Session{Role: magazine.RoleNone}

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			parsed, err := h.uc.ParseToken(token)
			if err != nil {
				h.log.Debug("session token rejected", "error", err)
			} else {
				sess = parsed
			}
		}

		c.Set(sessionContextKey, sess)
		return next(c)
	}
}

func (h *Handler) requireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !sessionFromContext(c).LoggedIn() {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "login required"})
		}
		return next(c)
	}
}

// requireAdmin guards endpoints that only the administrator may reach, such
// as account management and the subscriber list.
func (h *Handler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if sessionFromContext(c).Role != magazine.RoleAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "administrator access required"})
		}
		return next(c)
	}
}

func sessionFromContext(c echo.Context) magazine.Session {
	if sess, ok := c.Get(sessionContextKey).(magazine.Session); ok {
		return sess
	}
	return magazine.Session{Role: magazine.RoleNone}
}

func (h *Handler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return err
	}
}
