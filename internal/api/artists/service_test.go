package artists_test

import (
	"testing"

	artistsapi "gallery-app/internal/api/artists"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repo"
	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtistLifecycle(t *testing.T) {
	db := testutil.NewDB(t)

	nat := "Mexican"
	year := 1907
	a, err := artistsapi.Create(db, artistsapi.CreateInput{
		Name:        "Frida",
		Lastname:    "Kahlo",
		Nationality: &nat,
		BirthYear:   &year,
	})
	require.NoError(t, err)
	require.True(t, a.Active)

	bio := "Painter known for self-portraits."
	got, err := artistsapi.Update(db, a.ID, works.ArtistPatch{Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, got.Bio)
	assert.Equal(t, bio, *got.Bio)
	assert.Equal(t, "Frida", got.Name)

	// empty string clears an optional text field
	empty := ""
	got, err = artistsapi.Update(db, a.ID, works.ArtistPatch{Nationality: &empty})
	require.NoError(t, err)
	assert.Nil(t, got.Nationality)

	ok, err := artistsapi.SoftDelete(db, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = artistsapi.GetByID(db, a.ID, false)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	raw, err := artistsapi.GetByID(db, a.ID, true)
	require.NoError(t, err)
	assert.False(t, raw.Active)
}

func TestListSortedByName(t *testing.T) {
	db := testutil.NewDB(t)

	for _, in := range []artistsapi.CreateInput{
		{Name: "Remedios", Lastname: "Varo"},
		{Name: "Diego", Lastname: "Rivera"},
		{Name: "Frida", Lastname: "Kahlo"},
	} {
		_, err := artistsapi.Create(db, in)
		require.NoError(t, err)
	}

	list, err := artistsapi.List(db)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Diego", list[0].Name)
	assert.Equal(t, "Frida", list[1].Name)
	assert.Equal(t, "Remedios", list[2].Name)
}
