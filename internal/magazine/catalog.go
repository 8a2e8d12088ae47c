package magazine

import (
	"context"
	"fmt"
	"strings"

	"github.com/orbitpress/magazine/internal/db"
)

type CategoryDraft struct {
	ID   int
	Name string
	Slug string
}

type EditorDraft struct {
	ID       int
	Name     string
	Role     string
	Bio      string
	PhotoURL string
}

type SponsorDraft struct {
	ID      int
	Name    string
	LogoURL string
	URL     string
}

// Categories lists the public categories; the reserved admin-config row is
// filtered out at the store level and never reaches callers.
func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	dbCategories, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return Map(dbCategories, NewCategory), nil
}

func (m *Manager) CategoryByID(ctx context.Context, id int) (*Category, error) {
	dbCategory, err := m.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get category by id: %w", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

// SaveCategory creates or updates a category. An empty slug is derived from
// the name; the reserved admin-config slug is never writable through here.
func (m *Manager) SaveCategory(ctx context.Context, draft CategoryDraft) (*Category, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	slug := strings.TrimSpace(draft.Slug)
	if slug == "" {
		slug = Slugify(draft.Name)
	}
	if slug == db.AdminConfigSlug {
		return nil, fmt.Errorf("slug %q is reserved", slug)
	}

	record := &db.Category{
		ID:   draft.ID,
		Name: draft.Name,
		Slug: slug,
	}

	if draft.ID == 0 {
		if err := m.store.InsertCategory(ctx, record); err != nil {
			return nil, fmt.Errorf("db insert category: %w", err)
		}
	} else {
		if err := m.store.UpdateCategory(ctx, record); err != nil {
			return nil, fmt.Errorf("db update category: %w", err)
		}
	}

	category := NewCategory(record)
	return &category, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, id int) error {
	category, err := m.store.CategoryByID(ctx, id)
	if err != nil {
		return fmt.Errorf("db get category for delete: %w", err)
	}
	if category == nil {
		return fmt.Errorf("category %d not found", id)
	}

	if err := m.store.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("db delete category: %w", err)
	}

	return nil
}

func (m *Manager) Editors(ctx context.Context) ([]Editor, error) {
	dbEditors, err := m.store.Editors(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get editors: %w", err)
	}

	return Map(dbEditors, NewEditor), nil
}

func (m *Manager) EditorByID(ctx context.Context, id int) (*Editor, error) {
	dbEditor, err := m.store.EditorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get editor by id: %w", err)
	} else if dbEditor == nil {
		return nil, nil
	}

	editor := NewEditor(dbEditor)
	return &editor, nil
}

func (m *Manager) SaveEditor(ctx context.Context, draft EditorDraft) (*Editor, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Role) == "" {
		return nil, fmt.Errorf("name and role are required")
	}

	record := &db.Editor{
		ID:       draft.ID,
		Name:     draft.Name,
		Role:     draft.Role,
		Bio:      draft.Bio,
		PhotoURL: draft.PhotoURL,
	}

	if draft.ID == 0 {
		if err := m.store.InsertEditor(ctx, record); err != nil {
			return nil, fmt.Errorf("db insert editor: %w", err)
		}
	} else {
		if err := m.store.UpdateEditor(ctx, record); err != nil {
			return nil, fmt.Errorf("db update editor: %w", err)
		}
	}

	editor := NewEditor(record)
	return &editor, nil
}

func (m *Manager) DeleteEditor(ctx context.Context, id int) error {
	if err := m.store.DeleteEditor(ctx, id); err != nil {
		return fmt.Errorf("db delete editor: %w", err)
	}
	return nil
}

// Sponsors lists sponsors; limit <= 0 means all of them.
func (m *Manager) Sponsors(ctx context.Context, limit int) ([]Sponsor, error) {
	dbSponsors, err := m.store.Sponsors(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get sponsors: %w", err)
	}

	return Map(dbSponsors, NewSponsor), nil
}

func (m *Manager) SponsorByID(ctx context.Context, id int) (*Sponsor, error) {
	dbSponsor, err := m.store.SponsorByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get sponsor by id: %w", err)
	} else if dbSponsor == nil {
		return nil, nil
	}

	sponsor := NewSponsor(dbSponsor)
	return &sponsor, nil
}

func (m *Manager) SaveSponsor(ctx context.Context, draft SponsorDraft) (*Sponsor, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, fmt.Errorf("name is required")
	}

	record := &db.Sponsor{
		ID:      draft.ID,
		Name:    draft.Name,
		LogoURL: draft.LogoURL,
		URL:     draft.URL,
	}

	if draft.ID == 0 {
		if err := m.store.InsertSponsor(ctx, record); err != nil {
			return nil, fmt.Errorf("db insert sponsor: %w", err)
		}
	} else {
		if err := m.store.UpdateSponsor(ctx, record); err != nil {
			return nil, fmt.Errorf("db update sponsor: %w", err)
		}
	}

	sponsor := NewSponsor(record)
	return &sponsor, nil
}

func (m *Manager) DeleteSponsor(ctx context.Context, id int) error {
	if err := m.store.DeleteSponsor(ctx, id); err != nil {
		return fmt.Errorf("db delete sponsor: %w", err)
	}
	return nil
}
