package inquiries_test

import (
	"testing"

	"gallery-app/internal/api/artworks"
	inquiriesapi "gallery-app/internal/api/inquiries"
	"gallery-app/internal/domain/inquiries"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repo"
	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedArtwork(t *testing.T, db *gorm.DB) *works.Artwork {
	t.Helper()

	artist := works.Artist{Name: "Frida", Active: true}
	category := works.Category{Name: "Painting", Active: true}
	technique := works.Technique{Name: "Oil", Active: true}
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&technique).Error)

	a, err := artworks.Create(db, artworks.CreateInput{
		Title:       "Asked about",
		ArtistID:    artist.ID,
		CategoryID:  category.ID,
		TechniqueID: technique.ID,
		Price:       500,
	})
	require.NoError(t, err)
	return a
}

func TestCreateInquiry(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db)

	// anonymous visitors can ask about an artwork
	inq, err := inquiriesapi.Create(db, inquiriesapi.CreateInput{
		ArtworkID: a.ID,
		Name:      "Ana",
		Email:     "ana@example.com",
		Message:   "Is this still for sale?",
	})
	require.NoError(t, err)
	assert.Equal(t, inquiries.StatusPending, inq.Status)
	assert.Nil(t, inq.UserID)

	uid := uint(7)
	inq, err = inquiriesapi.Create(db, inquiriesapi.CreateInput{
		ArtworkID: a.ID,
		UserID:    &uid,
		Name:      "Bo",
		Email:     "bo@example.com",
		Message:   "Shipping to Berlin?",
	})
	require.NoError(t, err)
	require.NotNil(t, inq.UserID)
	assert.Equal(t, uid, *inq.UserID)

	_, err = inquiriesapi.Create(db, inquiriesapi.CreateInput{ArtworkID: 9999, Name: "x", Email: "x@x"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestSetStatus(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db)

	inq, err := inquiriesapi.Create(db, inquiriesapi.CreateInput{
		ArtworkID: a.ID, Name: "Ana", Email: "ana@example.com", Message: "hi",
	})
	require.NoError(t, err)

	got, err := inquiriesapi.SetStatus(db, inq.ID, inquiries.StatusAnswered)
	require.NoError(t, err)
	assert.Equal(t, inquiries.StatusAnswered, got.Status)

	_, err = inquiriesapi.SetStatus(db, inq.ID, "archived")
	assert.ErrorIs(t, err, repo.ErrConflict)

	_, err = inquiriesapi.SetStatus(db, 9999, inquiries.StatusAnswered)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestListFilteredByStatus(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db)

	for i := 0; i < 3; i++ {
		_, err := inquiriesapi.Create(db, inquiriesapi.CreateInput{
			ArtworkID: a.ID, Name: "Ana", Email: "ana@example.com", Message: "hi",
		})
		require.NoError(t, err)
	}
	answered, err := inquiriesapi.Create(db, inquiriesapi.CreateInput{
		ArtworkID: a.ID, Name: "Bo", Email: "bo@example.com", Message: "hey",
	})
	require.NoError(t, err)
	_, err = inquiriesapi.SetStatus(db, answered.ID, inquiries.StatusAnswered)
	require.NoError(t, err)

	pending, err := inquiriesapi.List(db, inquiries.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	all, err := inquiriesapi.List(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
