package magazine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultAnnounceTimeout = 10 * time.Second

// Announcer publishes a short note about a new article to an external social
// posting endpoint: a session login followed by a record creation, both over
// HTTPS. Everything here is best effort; a failure is logged and never gets
// in the way of the article save.
type Announcer struct {
	client   *http.Client
	baseURL  string
	email    string
	password string
	log      *slog.Logger
}

func NewAnnouncer(baseURL, email, password string, timeout time.Duration, logger *slog.Logger) *Announcer {
	if timeout <= 0 {
		timeout = defaultAnnounceTimeout
	}

	return &Announcer{
		client:   &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		email:    email,
		password: password,
		log:      logger,
	}
}

func (a *Announcer) Announce(ctx context.Context, article Article) error {
	token, err := a.login(ctx)
	if err != nil {
		return fmt.Errorf("announce login: %w", err)
	}

	if err := a.createPost(ctx, token, article); err != nil {
		return fmt.Errorf("announce post: %w", err)
	}

	return nil
}

func (a *Announcer) login(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    a.email,
		"password": a.password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	return result.Token, nil
}

func (a *Announcer) createPost(ctx context.Context, token string, article Article) error {
	body, err := json.Marshal(map[string]string{
		"title": article.Title,
		"text":  article.Excerpt,
		"link":  "/p/" + article.Slug,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/posts", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("post failed with status %d", resp.StatusCode)
	}

	return nil
}

// announceArticle fires the external announcement in the background. The
// article save has already succeeded at this point and never waits on it.
func (m *Manager) announceArticle(article Article) {
	if m.announcer == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), defaultAnnounceTimeout)
		defer cancel()

		if err := m.announcer.Announce(ctx, article); err != nil {
			m.log.Error("article announcement failed", "articleId", article.ID, "error", err)
		}
	}()
}
