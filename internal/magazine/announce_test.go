package magazine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncer_Announce(t *testing.T) {
	var loginSeen, postSeen bool

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			loginSeen = true

			var creds map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "bot@example.org", creds["email"])
			assert.Equal(t, "botpass", creds["password"])

			json.NewEncoder(w).Encode(map[string]string{"token": "session-token"})

		case "/api/posts":
			postSeen = true
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

			var post map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
			assert.Equal(t, "Hello World", post["title"])
			assert.Equal(t, "short excerpt", post["text"])
			assert.Equal(t, "/p/hello-world-abc", post["link"])

			w.WriteHeader(http.StatusCreated)

		default:
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	a := NewAnnouncer(server.URL, "bot@example.org", "botpass", time.Second, noOpLogger())

	err := a.Announce(context.Background(), Article{
		Title:   "Hello World",
		Slug:    "hello-world-abc",
		Excerpt: "short excerpt",
	})
	require.NoError(t, err)
	assert.True(t, loginSeen)
	assert.True(t, postSeen)
}

func TestAnnouncer_LoginFailureStopsPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
		default:
			t.Errorf("no post must follow a failed login, got %s", r.URL.Path)
		}
	}))
	defer server.Close()

	a := NewAnnouncer(server.URL, "bot@example.org", "wrong", time.Second, noOpLogger())

	err := a.Announce(context.Background(), Article{Title: "Hello"})
	assert.Error(t, err)
}

func TestAnnouncer_EmptyTokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	a := NewAnnouncer(server.URL, "bot@example.org", "botpass", time.Second, noOpLogger())

	err := a.Announce(context.Background(), Article{Title: "Hello"})
	assert.Error(t, err)
}
