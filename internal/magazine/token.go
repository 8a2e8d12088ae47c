package magazine

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// InviteToken is the URL-safe payload of an invitation link. It carries a
// random one-time code instead of credentials; the code must still match the
// one stored on the author row when the link is visited.
type InviteToken struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func EncodeInviteToken(token InviteToken) (string, error) {
	raw, err := json.Marshal(token)
	if err != nil {
		return "", fmt.Errorf("marshal invite token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func DecodeInviteToken(encoded string) (InviteToken, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return InviteToken{}, fmt.Errorf("decode invite token: %w", err)
	}

	token := InviteToken{}
	if err := json.Unmarshal(raw, &token); err != nil {
		return InviteToken{}, fmt.Errorf("unmarshal invite token: %w", err)
	}

	return token, nil
}

// InviteAuthor issues a fresh invitation link for an author with a login
// email. The previous invite code, if any, stops working.
func (m *Manager) InviteAuthor(ctx context.Context, sess Session, authorID int) (string, error) {
	if sess.Role != RoleAdmin {
		return "", ErrPermissionDenied
	}

	author, err := m.store.AuthorByID(ctx, authorID)
	if err != nil {
		return "", fmt.Errorf("load author for invite: %w", err)
	}
	if author == nil {
		return "", fmt.Errorf("author %d not found", authorID)
	}
	if author.Email == nil {
		return "", fmt.Errorf("author %d has no login email", authorID)
	}

	code := uuid.NewString()
	author.InviteCode = &code
	if err := m.store.UpdateAuthor(ctx, author); err != nil {
		return "", fmt.Errorf("store invite code: %w", err)
	}

	encoded, err := EncodeInviteToken(InviteToken{Email: *author.Email, Code: code})
	if err != nil {
		return "", err
	}

	if m.cfg.InviteBaseURL == "" {
		return encoded, nil
	}

	return m.cfg.InviteBaseURL + "?invite=" + url.QueryEscape(encoded), nil
}

// RedeemInvite logs an author in through an invitation token, provided the
// embedded code still matches the stored one. Stale and malformed tokens are
// rejected with the same generic error as a bad login.
func (m *Manager) RedeemInvite(ctx context.Context, encoded string) (Session, error) {
	token, err := DecodeInviteToken(encoded)
	if err != nil {
		m.log.Debug("invite token decode failed", "error", err)
		return Session{}, ErrInvalidCredentials
	}

	author, err := m.store.AuthorByEmail(ctx, token.Email)
	if err != nil {
		return Session{}, fmt.Errorf("load author for invite redeem: %w", err)
	}

	if author == nil || author.InviteCode == nil || *author.InviteCode != token.Code {
		return Session{}, ErrInvalidCredentials
	}

	return Session{
		Role:       RoleAuthor,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Verified:   author.Verified,
	}, nil
}
