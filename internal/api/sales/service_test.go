package sales_test

import (
	"testing"

	"gallery-app/internal/api/artworks"
	salesapi "gallery-app/internal/api/sales"
	"gallery-app/internal/domain/sales"
	"gallery-app/internal/domain/works"
	"gallery-app/internal/repo"
	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedArtwork(t *testing.T, db *gorm.DB, featured bool) *works.Artwork {
	t.Helper()

	artist := works.Artist{Name: "Frida", Active: true}
	category := works.Category{Name: "Painting", Active: true}
	technique := works.Technique{Name: "Oil", Active: true}
	require.NoError(t, db.Create(&artist).Error)
	require.NoError(t, db.Create(&category).Error)
	require.NoError(t, db.Create(&technique).Error)

	a, err := artworks.Create(db, artworks.CreateInput{
		Title:       "For sale",
		ArtistID:    artist.ID,
		CategoryID:  category.ID,
		TechniqueID: technique.ID,
		Price:       900,
		Featured:    featured,
	})
	require.NoError(t, err)
	return a
}

func TestCreateSale(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db, false)

	s, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID:  a.ID,
		BuyerName:  "Ana",
		BuyerEmail: "ana@example.com",
		Price:      900,
	})
	require.NoError(t, err)
	assert.Equal(t, sales.StatusPending, s.Status)

	// creating the sale does not touch the artwork yet
	fresh, err := artworks.GetByID(db, a.ID, false)
	require.NoError(t, err)
	assert.True(t, fresh.Available)

	_, err = salesapi.Create(db, salesapi.CreateInput{ArtworkID: 9999, BuyerName: "x", BuyerEmail: "x@x"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMarkPaidFlipsArtworkAvailability(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db, true)
	require.True(t, a.Available)

	s, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID: a.ID, BuyerName: "Ana", BuyerEmail: "ana@example.com", Price: 900,
	})
	require.NoError(t, err)

	paid, err := salesapi.MarkPaid(db, s.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.StatusPaid, paid.Status)

	fresh, err := artworks.GetByID(db, a.ID, false)
	require.NoError(t, err)
	assert.False(t, fresh.Available, "paid sale must make the artwork unavailable")
	assert.True(t, fresh.Featured, "featured must stay unchanged")
}

func TestMarkPaidIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db, false)

	s, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID: a.ID, BuyerName: "Ana", BuyerEmail: "ana@example.com",
	})
	require.NoError(t, err)

	_, err = salesapi.MarkPaid(db, s.ID)
	require.NoError(t, err)

	again, err := salesapi.MarkPaid(db, s.ID)
	require.NoError(t, err, "webhook retries must be harmless")
	assert.Equal(t, sales.StatusPaid, again.Status)
}

func TestCancelTransitions(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db, false)

	s, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID: a.ID, BuyerName: "Ana", BuyerEmail: "ana@example.com",
	})
	require.NoError(t, err)

	cancelled, err := salesapi.Cancel(db, s.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.StatusCancelled, cancelled.Status)

	// a cancelled sale can no longer be paid
	_, err = salesapi.MarkPaid(db, s.ID)
	assert.ErrorIs(t, err, repo.ErrConflict)

	// and a paid sale can no longer be cancelled
	s2, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID: a.ID, BuyerName: "Bo", BuyerEmail: "bo@example.com",
	})
	require.NoError(t, err)
	_, err = salesapi.MarkPaid(db, s2.ID)
	require.NoError(t, err)
	_, err = salesapi.Cancel(db, s2.ID)
	assert.ErrorIs(t, err, repo.ErrConflict)
}

func TestStripeSessionRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db, false)

	s, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID: a.ID, BuyerName: "Ana", BuyerEmail: "ana@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, salesapi.SetStripeSession(db, s.ID, "cs_test_123"))

	got, err := salesapi.FindBySession(db, "cs_test_123")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = salesapi.FindBySession(db, "cs_missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUpdateBuyerFieldsLeavesStatusAlone(t *testing.T) {
	db := testutil.NewDB(t)
	a := seedArtwork(t, db, false)

	s, err := salesapi.Create(db, salesapi.CreateInput{
		ArtworkID: a.ID, BuyerName: "Ana", BuyerEmail: "ana@example.com", Price: 900,
	})
	require.NoError(t, err)

	name := "Renamed"
	price := 800.0
	got, err := salesapi.Update(db, s.ID, sales.SalePatch{BuyerName: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.BuyerName)
	assert.Equal(t, 800.0, got.Price)
	assert.Equal(t, sales.StatusPending, got.Status)
}
