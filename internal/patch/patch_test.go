package patch_test

import (
	"testing"
	"time"

	"gallery-app/internal/domain/works"
	"gallery-app/internal/patch"
	"gallery-app/internal/repo"
	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		changes map[string]any
		want    []string
	}{
		{
			name:    "protected columns are dropped",
			table:   "artists",
			changes: map[string]any{"name": "Ana", "id": 999, "active": false, "created_at": time.Now()},
			want:    []string{"name"},
		},
		{
			name:    "unknown columns are dropped",
			table:   "categories",
			changes: map[string]any{"name": "Oil", "no_such_column": 1},
			want:    []string{"name"},
		},
		{
			name:    "artwork qr columns stay protected",
			table:   "artworks",
			changes: map[string]any{"title": "x", "qr_code": "forged", "qr_image_url": "y"},
			want:    []string{"title"},
		},
		{
			name:    "user password stays protected",
			table:   "users",
			changes: map[string]any{"name": "x", "password": "sneaky"},
			want:    []string{"name"},
		},
		{
			name:    "sale status stays protected",
			table:   "sales",
			changes: map[string]any{"buyer_name": "x", "status": "paid"},
			want:    []string{"buyer_name"},
		},
		{
			name:    "empty input stays empty",
			table:   "artists",
			changes: map[string]any{},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := patch.Filter(tt.table, tt.changes)
			assert.Len(t, got, len(tt.want))
			for _, col := range tt.want {
				assert.Contains(t, got, col)
			}
		})
	}
}

func TestApplyProtectedFieldImmutability(t *testing.T) {
	db := testutil.NewDB(t)

	artist := works.Artist{Name: "Frida", Lastname: "Kahlo", Active: true}
	require.NoError(t, db.Create(&artist).Error)
	created := artist.CreatedAt

	got, err := patch.Apply[works.Artist](db, "artists", artist.ID, map[string]any{
		"name":       "Ana",
		"id":         999,
		"active":     false,
		"created_at": time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, artist.ID, got.ID)
	assert.Equal(t, "Ana", got.Name)
	assert.True(t, got.Active)
	assert.Equal(t, created.Unix(), got.CreatedAt.Unix())
}

func TestApplyEmptyPatchTouchesUpdatedAt(t *testing.T) {
	db := testutil.NewDB(t)

	artist := works.Artist{Name: "Frida", Active: true}
	require.NoError(t, db.Create(&artist).Error)
	before := artist.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	got, err := patch.Apply[works.Artist](db, "artists", artist.ID, map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "Frida", got.Name)
	assert.True(t, got.UpdatedAt.After(before), "updated_at must advance on an empty patch")
}

func TestApplyNotFound(t *testing.T) {
	db := testutil.NewDB(t)

	_, err := patch.Apply[works.Artist](db, "artists", 42, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestApplyCannotResurrectSoftDeletedRow(t *testing.T) {
	db := testutil.NewDB(t)

	artist := works.Artist{Name: "Frida", Active: true}
	require.NoError(t, db.Create(&artist).Error)

	deleted, err := patch.Deactivate(db, "artists", artist.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = patch.Apply[works.Artist](db, "artists", artist.ID, map[string]any{"name": "Back"})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	// the row itself persists
	var raw works.Artist
	require.NoError(t, db.First(&raw, "id = ?", artist.ID).Error)
	assert.False(t, raw.Active)
	assert.Equal(t, "Frida", raw.Name)
}

func TestDeactivate(t *testing.T) {
	db := testutil.NewDB(t)

	artist := works.Artist{Name: "Frida", Active: true}
	require.NoError(t, db.Create(&artist).Error)
	before := artist.UpdatedAt

	time.Sleep(20 * time.Millisecond)

	deleted, err := patch.Deactivate(db, "artists", artist.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	var raw works.Artist
	require.NoError(t, db.First(&raw, "id = ?", artist.ID).Error)
	assert.False(t, raw.Active)
	assert.True(t, raw.UpdatedAt.After(before), "soft delete must advance updated_at")

	// second delete affects nothing
	deleted, err = patch.Deactivate(db, "artists", artist.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSetHelpers(t *testing.T) {
	ch := map[string]any{}

	name := "Ana"
	patch.Set(ch, "name", &name)
	patch.Set[string](ch, "skipped", nil)

	empty := ""
	bio := "painter"
	patch.SetNullable(ch, "bio", &bio)
	patch.SetNullable(ch, "cleared", &empty)
	patch.SetNullable(ch, "untouched", nil)

	assert.Equal(t, "Ana", ch["name"])
	assert.NotContains(t, ch, "skipped")
	assert.Equal(t, "painter", ch["bio"])
	assert.Nil(t, ch["cleared"])
	assert.Contains(t, ch, "cleared")
	assert.NotContains(t, ch, "untouched")
}
