package magazine

import (
	"context"
	"fmt"
	"strings"

	"github.com/orbitpress/magazine/internal/db"
)

type SpotlightDraft struct {
	ImageURL string
	LinkURL  string
	Caption  string
}

type FreeAdDraft struct {
	ID       int
	Name     string
	ImageURL string
	LinkURL  string
	AltText  string
}

// ActiveSpotlight returns the single live spotlight, or nil when the section
// should stay hidden.
func (m *Manager) ActiveSpotlight(ctx context.Context) (*Spotlight, error) {
	dbSpotlight, err := m.store.ActiveSpotlight(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get spotlight: %w", err)
	} else if dbSpotlight == nil {
		return nil, nil
	}

	spotlight := NewSpotlight(dbSpotlight)
	return &spotlight, nil
}

// SaveSpotlight replaces whatever spotlight exists with the new one; after a
// successful save exactly one row remains.
func (m *Manager) SaveSpotlight(ctx context.Context, sess Session, draft SpotlightDraft) (*Spotlight, error) {
	if !sess.CanCreateSpotlightAndAds() {
		return nil, ErrPermissionDenied
	}

	if strings.TrimSpace(draft.ImageURL) == "" {
		return nil, fmt.Errorf("image is required")
	}

	record := &db.Spotlight{
		ImageURL:  draft.ImageURL,
		LinkURL:   draft.LinkURL,
		Caption:   draft.Caption,
		CreatedAt: m.now(),
	}

	if err := m.store.ReplaceSpotlight(ctx, record); err != nil {
		return nil, fmt.Errorf("db replace spotlight: %w", err)
	}

	spotlight := NewSpotlight(record)
	return &spotlight, nil
}

func (m *Manager) DeleteSpotlight(ctx context.Context, sess Session, id int) error {
	if !sess.CanCreateSpotlightAndAds() {
		return ErrPermissionDenied
	}

	if err := m.store.DeleteSpotlight(ctx, id); err != nil {
		return fmt.Errorf("db delete spotlight: %w", err)
	}

	return nil
}

func (m *Manager) FreeAds(ctx context.Context) ([]FreeAd, error) {
	dbAds, err := m.store.FreeAds(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get free ads: %w", err)
	}

	return Map(dbAds, NewFreeAd), nil
}

func (m *Manager) FreeAdByID(ctx context.Context, id int) (*FreeAd, error) {
	dbAd, err := m.store.FreeAdByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get free ad by id: %w", err)
	} else if dbAd == nil {
		return nil, nil
	}

	ad := NewFreeAd(dbAd)
	return &ad, nil
}

// RandomFreeAd picks a free ad uniformly at random for the current page
// view, or nil when the section should stay hidden.
func (m *Manager) RandomFreeAd(ctx context.Context) (*FreeAd, error) {
	dbAd, err := m.store.RandomFreeAd(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get random free ad: %w", err)
	} else if dbAd == nil {
		return nil, nil
	}

	ad := NewFreeAd(dbAd)
	return &ad, nil
}

func (m *Manager) SaveFreeAd(ctx context.Context, sess Session, draft FreeAdDraft) (*FreeAd, error) {
	if !sess.CanCreateSpotlightAndAds() {
		return nil, ErrPermissionDenied
	}

	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("nonprofit name is required")
	}

	record := &db.FreeAd{
		ID:       draft.ID,
		Name:     draft.Name,
		ImageURL: draft.ImageURL,
		LinkURL:  draft.LinkURL,
		AltText:  draft.AltText,
	}

	if draft.ID == 0 {
		if err := m.store.InsertFreeAd(ctx, record); err != nil {
			return nil, fmt.Errorf("db insert free ad: %w", err)
		}
	} else {
		if err := m.store.UpdateFreeAd(ctx, record); err != nil {
			return nil, fmt.Errorf("db update free ad: %w", err)
		}
	}

	ad := NewFreeAd(record)
	return &ad, nil
}

func (m *Manager) DeleteFreeAd(ctx context.Context, sess Session, id int) error {
	if !sess.CanCreateSpotlightAndAds() {
		return ErrPermissionDenied
	}

	if err := m.store.DeleteFreeAd(ctx, id); err != nil {
		return fmt.Errorf("db delete free ad: %w", err)
	}

	return nil
}
