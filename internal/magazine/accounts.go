package magazine

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/orbitpress/magazine/internal/db"
)

// AuthorDraft carries the author form. A non-empty Password sets up (or
// replaces) the author's login; the stored value is always a bcrypt hash.
type AuthorDraft struct {
	ID       int
	Name     string
	Bio      string
	Verified bool
	Email    string
	Password string
}

type SubscribeRequest struct {
	Email   string
	Country string
}

func (m *Manager) Authors(ctx context.Context) ([]Author, error) {
	dbAuthors, err := m.store.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get authors: %w", err)
	}

	return Map(dbAuthors, NewAuthor), nil
}

func (m *Manager) AuthorByID(ctx context.Context, id int) (*Author, error) {
	dbAuthor, err := m.store.AuthorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get author by id: %w", err)
	} else if dbAuthor == nil {
		return nil, nil
	}

	author := NewAuthor(dbAuthor)
	return &author, nil
}

func (m *Manager) SaveAuthor(ctx context.Context, draft AuthorDraft) (*Author, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if draft.Password != "" && draft.Email == "" {
		return nil, fmt.Errorf("a login password requires an email")
	}

	record := &db.Author{}
	if draft.ID != 0 {
		existing, err := m.store.AuthorByID(ctx, draft.ID)
		if err != nil {
			return nil, fmt.Errorf("db get author for update: %w", err)
		}
		if existing == nil {
			return nil, fmt.Errorf("author %d not found", draft.ID)
		}
		record = existing
	}

	record.Name = draft.Name
	record.Bio = draft.Bio
	record.Verified = draft.Verified
	if draft.Email != "" {
		email := draft.Email
		record.Email = &email
	}
	if draft.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash author password: %w", err)
		}
		hashed := string(hash)
		record.PasswordHash = &hashed
	}

	if draft.ID == 0 {
		if err := m.store.InsertAuthor(ctx, record); err != nil {
			return nil, fmt.Errorf("db insert author: %w", err)
		}
	} else {
		if err := m.store.UpdateAuthor(ctx, record); err != nil {
			return nil, fmt.Errorf("db update author: %w", err)
		}
	}

	author := NewAuthor(record)
	return &author, nil
}

func (m *Manager) DeleteAuthor(ctx context.Context, id int) error {
	if err := m.store.DeleteAuthor(ctx, id); err != nil {
		return fmt.Errorf("db delete author: %w", err)
	}
	return nil
}

// Subscribe registers a newsletter subscriber. Re-subscribing an existing
// email reactivates the row instead of inserting a duplicate.
func (m *Manager) Subscribe(ctx context.Context, req SubscribeRequest) (*Subscriber, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}

	existing, err := m.store.SubscriberByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get subscriber: %w", err)
	}

	if existing != nil {
		existing.Active = true
		if req.Country != "" {
			existing.Country = req.Country
		}
		if err := m.store.UpdateSubscriber(ctx, existing); err != nil {
			return nil, fmt.Errorf("db reactivate subscriber: %w", err)
		}

		subscriber := NewSubscriber(existing)
		return &subscriber, nil
	}

	record := &db.Subscriber{
		Email:     email,
		Country:   req.Country,
		Active:    true,
		CreatedAt: m.now(),
	}
	if err := m.store.InsertSubscriber(ctx, record); err != nil {
		return nil, fmt.Errorf("db insert subscriber: %w", err)
	}

	subscriber := NewSubscriber(record)
	return &subscriber, nil
}

func (m *Manager) Subscribers(ctx context.Context) ([]Subscriber, error) {
	dbSubscribers, err := m.store.Subscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get subscribers: %w", err)
	}

	return Map(dbSubscribers, NewSubscriber), nil
}
