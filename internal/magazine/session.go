package magazine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleNone   Role = "none"
	RoleAdmin  Role = "admin"
	RoleAuthor Role = "author"
)

// Session is the explicit session value handed to handlers and permission
// checks; there is no global session state. It is constructed by Login or
// ParseToken and travels with the request.
type Session struct {
	Role       Role
	AuthorID   int
	AuthorName string
	Verified   bool
}

func (s Session) LoggedIn() bool {
	return s.Role == RoleAdmin || s.Role == RoleAuthor
}

// CanEditArticles is the admin-only capability.
func (s Session) CanEditArticles() bool {
	return s.Role == RoleAdmin
}

// CanCreateSpotlightAndAds is granted to the admin and to verified authors.
func (s Session) CanCreateSpotlightAndAds() bool {
	return s.Role == RoleAdmin || (s.Role == RoleAuthor && s.Verified)
}

// adminConfig is the payload stored base64-encoded in the reserved
// admin-config category row.
type adminConfig struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

func (m *Manager) adminConfig(ctx context.Context) (*adminConfig, error) {
	record, err := m.store.AdminConfigRecord(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admin config record: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(record.Name)
	if err != nil {
		return nil, fmt.Errorf("decode admin config: %w", err)
	}

	cfg := &adminConfig{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal admin config: %w", err)
	}

	return cfg, nil
}

// Login resolves credentials to a session. The administrator check always
// runs first; only then is an author account tried. Every failure collapses
// into ErrInvalidCredentials so callers cannot distinguish an unknown email
// from a wrong password.
func (m *Manager) Login(ctx context.Context, email, password string) (Session, error) {
	admin, err := m.adminConfig(ctx)
	if err != nil {
		return Session{}, err
	}

	if admin != nil && admin.Email == email {
		err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password))
		if err == nil {
			return Session{Role: RoleAdmin, Verified: true}, nil
		}
	}

	author, err := m.store.AuthorByEmail(ctx, email)
	if err != nil {
		return Session{}, fmt.Errorf("load author for login: %w", err)
	}

	if author != nil && author.PasswordHash != nil {
		err := bcrypt.CompareHashAndPassword([]byte(*author.PasswordHash), []byte(password))
		if err == nil {
			return Session{
				Role:       RoleAuthor,
				AuthorID:   author.ID,
				AuthorName: author.Name,
				Verified:   author.Verified,
			}, nil
		}
	}

	return Session{}, ErrInvalidCredentials
}

type sessionClaims struct {
	Role       Role   `json:"role"`
	AuthorID   int    `json:"authorId,omitempty"`
	AuthorName string `json:"authorName,omitempty"`
	Verified   bool   `json:"verified"`
	jwt.RegisteredClaims
}

// IssueToken signs the session into a bearer token; this is the persistence
// the browser keeps across reloads. Logout is dropping the token.
func (m *Manager) IssueToken(s Session) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Role:       s.Role,
		AuthorID:   s.AuthorID,
		AuthorName: s.AuthorName,
		Verified:   s.Verified,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.SessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.cfg.TokenSecret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// ParseToken reconstructs the session from a bearer token. Any invalid,
// expired or foreign token yields the unauthenticated session and an error.
func (m *Manager) ParseToken(token string) (Session, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.cfg.TokenSecret), nil
	})
	if err != nil {
		return Session{Role: RoleNone}, fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return Session{Role: RoleNone}, fmt.Errorf("invalid session token")
	}

	return Session{
		Role:       claims.Role,
		AuthorID:   claims.AuthorID,
		AuthorName: claims.AuthorName,
		Verified:   claims.Verified,
	}, nil
}
