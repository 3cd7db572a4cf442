package catalog_test

import (
	"testing"

	"gallery-app/internal/api/catalog"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repo"
	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	db := testutil.NewDB(t)

	desc := "Wall pieces"
	cat, err := catalog.CreateCategory(db, "Painting", &desc)
	require.NoError(t, err)
	require.True(t, cat.Active)

	newDesc := "Framed wall pieces"
	got, err := catalog.UpdateCategory(db, cat.ID, works.CategoryPatch{Description: &newDesc})
	require.NoError(t, err)
	assert.Equal(t, "Painting", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Framed wall pieces", *got.Description)

	ok, err := catalog.SoftDeleteCategory(db, cat.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// the row is invisible to default reads but still there
	_, err = catalog.GetCategory(db, cat.ID, false)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	raw, err := catalog.GetCategory(db, cat.ID, true)
	require.NoError(t, err)
	assert.False(t, raw.Active)

	list, err := catalog.ListCategories(db)
	require.NoError(t, err)
	assert.Empty(t, list)

	// deleting again reports nothing changed
	ok, err = catalog.SoftDeleteCategory(db, cat.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListCategoriesSortedByName(t *testing.T) {
	db := testutil.NewDB(t)

	for _, name := range []string{"Sculpture", "Drawing", "Painting"} {
		_, err := catalog.CreateCategory(db, name, nil)
		require.NoError(t, err)
	}

	list, err := catalog.ListCategories(db)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Drawing", list[0].Name)
	assert.Equal(t, "Painting", list[1].Name)
	assert.Equal(t, "Sculpture", list[2].Name)
}

func TestTechniqueLifecycle(t *testing.T) {
	db := testutil.NewDB(t)

	tech, err := catalog.CreateTechnique(db, "Oil", nil)
	require.NoError(t, err)

	name := "Oil on canvas"
	got, err := catalog.UpdateTechnique(db, tech.ID, works.TechniquePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Oil on canvas", got.Name)

	ok, err := catalog.SoftDeleteTechnique(db, tech.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = catalog.GetTechnique(db, tech.ID, false)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	list, err := catalog.ListTechniques(db)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateMissingCategory(t *testing.T) {
	db := testutil.NewDB(t)

	name := "Nope"
	_, err := catalog.UpdateCategory(db, 42, works.CategoryPatch{Name: &name})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
