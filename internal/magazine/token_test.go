package magazine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitpress/magazine/internal/db"
)

func TestInviteTokenRoundTrip(t *testing.T) {
	original := InviteToken{Email: "vera@example.org", Code: "one-time-code"}

	encoded, err := EncodeInviteToken(original)
	require.NoError(t, err)
	assert.NotContains(t, encoded, "=", "token must be URL-safe without padding")

	decoded, err := DecodeInviteToken(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeInviteToken_Garbage(t *testing.T) {
	_, err := DecodeInviteToken("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestInviteAuthor(t *testing.T) {
	ctx := context.Background()

	email := "vera@example.org"
	var storedCode *string
	store := &mockStore{
		authorByIDFunc: func(ctx context.Context, id int) (*db.Author, error) {
			assert.Equal(t, 7, id)
			return &db.Author{ID: 7, Name: "Vera Olsen", Email: &email}, nil
		},
		updateAuthorFunc: func(ctx context.Context, author *db.Author) error {
			storedCode = author.InviteCode
			return nil
		},
	}
	m := newTestManager(store)

	encoded, err := m.InviteAuthor(ctx, Session{Role: RoleAdmin}, 7)
	require.NoError(t, err)
	require.NotNil(t, storedCode, "invite code must be persisted on the author")

	token, err := DecodeInviteToken(encoded)
	require.NoError(t, err)
	assert.Equal(t, email, token.Email)
	assert.Equal(t, *storedCode, token.Code)
}

func TestInviteAuthor_BaseURL(t *testing.T) {
	ctx := context.Background()

	email := "vera@example.org"
	store := &mockStore{
		authorByIDFunc: func(ctx context.Context, id int) (*db.Author, error) {
			return &db.Author{ID: 7, Name: "Vera Olsen", Email: &email}, nil
		},
	}
	cfg := Config{TokenSecret: "test-secret", InviteBaseURL: "https://magazine.example.org/admin"}
	m := NewManager(store, cfg, nil, noOpLogger())

	link, err := m.InviteAuthor(ctx, Session{Role: RoleAdmin}, 7)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://magazine.example.org/admin?invite="))
}

func TestInviteAuthor_PermissionDenied(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(&mockStore{})

	_, err := m.InviteAuthor(ctx, Session{Role: RoleAuthor, Verified: true}, 7)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestInviteAuthor_NoEmail(t *testing.T) {
	ctx := context.Background()

	store := &mockStore{
		authorByIDFunc: func(ctx context.Context, id int) (*db.Author, error) {
			return &db.Author{ID: 7, Name: "Vera Olsen"}, nil
		},
	}
	m := newTestManager(store)

	_, err := m.InviteAuthor(ctx, Session{Role: RoleAdmin}, 7)
	assert.Error(t, err)
}

func TestRedeemInvite(t *testing.T) {
	ctx := context.Background()

	email := "vera@example.org"
	code := "one-time-code"
	store := &mockStore{
		authorByEmailFunc: func(ctx context.Context, got string) (*db.Author, error) {
			assert.Equal(t, email, got)
			return &db.Author{ID: 7, Name: "Vera Olsen", Verified: true, Email: &email, InviteCode: &code}, nil
		},
	}
	m := newTestManager(store)

	encoded, err := EncodeInviteToken(InviteToken{Email: email, Code: code})
	require.NoError(t, err)

	sess, err := m.RedeemInvite(ctx, encoded)
	require.NoError(t, err)
	assert.Equal(t, RoleAuthor, sess.Role)
	assert.Equal(t, 7, sess.AuthorID)
	assert.True(t, sess.Verified)
}

func TestRedeemInvite_StaleCode(t *testing.T) {
	ctx := context.Background()

	email := "vera@example.org"
	current := "fresh-code"
	store := &mockStore{
		authorByEmailFunc: func(ctx context.Context, got string) (*db.Author, error) {
			return &db.Author{ID: 7, Name: "Vera Olsen", Email: &email, InviteCode: &current}, nil
		},
	}
	m := newTestManager(store)

	encoded, err := EncodeInviteToken(InviteToken{Email: email, Code: "old-code"})
	require.NoError(t, err)

	_, err = m.RedeemInvite(ctx, encoded)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRedeemInvite_Malformed(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(&mockStore{})

	_, err := m.RedeemInvite(ctx, "definitely not a token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
