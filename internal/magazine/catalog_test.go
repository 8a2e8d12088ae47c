package magazine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitpress/magazine/internal/db"
)

func TestSaveCategory_DerivesSlug(t *testing.T) {
	ctx := context.Background()

	var inserted *db.Category
	store := &mockStore{
		insertCategoryFunc: func(ctx context.Context, category *db.Category) error {
			category.ID = 3
			inserted = category
			return nil
		},
	}
	m := newTestManager(store)

	category, err := m.SaveCategory(ctx, CategoryDraft{Name: "Arts & Culture"})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, "arts-culture", category.Slug)
}

func TestSaveCategory_KeepsExplicitSlug(t *testing.T) {
	ctx := context.Background()

	store := &mockStore{
		insertCategoryFunc: func(ctx context.Context, category *db.Category) error {
			category.ID = 3
			return nil
		},
	}
	m := newTestManager(store)

	category, err := m.SaveCategory(ctx, CategoryDraft{Name: "Arts & Culture", Slug: "culture"})
	require.NoError(t, err)
	assert.Equal(t, "culture", category.Slug)
}

func TestSaveCategory_ReservedSlugRejected(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(&mockStore{
		insertCategoryFunc: func(ctx context.Context, category *db.Category) error {
			t.Fatal("reserved slug must never reach the store")
			return nil
		},
	})

	_, err := m.SaveCategory(ctx, CategoryDraft{Name: "Sneaky", Slug: db.AdminConfigSlug})
	assert.Error(t, err)

	// Also when the name itself slugifies to the reserved value.
	_, err = m.SaveCategory(ctx, CategoryDraft{Name: "Admin Config"})
	assert.Error(t, err)
}

func TestSaveCategory_NameRequired(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(&mockStore{})

	_, err := m.SaveCategory(ctx, CategoryDraft{Slug: "no-name"})
	assert.Error(t, err)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(&mockStore{})

	err := m.DeleteCategory(ctx, 12345)
	assert.Error(t, err)
}

func TestSaveEditor(t *testing.T) {
	ctx := context.Background()

	var inserted *db.Editor
	store := &mockStore{
		insertEditorFunc: func(ctx context.Context, editor *db.Editor) error {
			editor.ID = 2
			inserted = editor
			return nil
		},
	}
	m := newTestManager(store)

	editor, err := m.SaveEditor(ctx, EditorDraft{Name: "Maya Chen", Role: "Editor-in-Chief"})
	require.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, 2, editor.ID)
	assert.Equal(t, "Editor-in-Chief", editor.Role)
}

func TestSaveSponsor_Update(t *testing.T) {
	ctx := context.Background()

	var updated *db.Sponsor
	store := &mockStore{
		updateSponsorFunc: func(ctx context.Context, sponsor *db.Sponsor) error {
			updated = sponsor
			return nil
		},
	}
	m := newTestManager(store)

	sponsor, err := m.SaveSponsor(ctx, SponsorDraft{ID: 4, Name: "New Name", URL: "https://example.org"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New Name", sponsor.Name)
}

func TestCategories_PassThrough(t *testing.T) {
	ctx := context.Background()

	store := &mockStore{
		categoriesFunc: func(ctx context.Context) ([]db.Category, error) {
			return []db.Category{
				{ID: 1, Name: "Culture", Slug: "culture"},
				{ID: 2, Name: "Tech", Slug: "tech"},
			}, nil
		},
	}
	m := newTestManager(store)

	categories, err := m.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Culture", categories[0].Name)
}
