package arc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// externalFixture is a full wire record using every known column.
func externalFixture() Record {
	return Record{
		"id":                   int64(7),
		"title":                "The Glass Orchard",
		"author":               "L. Warden",
		"publisher":            "Fernhill Press",
		"genre":                "Literary Fiction",
		"publish_date":         "2024-12-01",
		"received_date":        "2024-11-01",
		"cover_image":          "https://example.com/glass-orchard.jpg",
		"description":          "A family unravels over one winter.",
		"review_completed":     true,
		"review_platform":      "Goodreads",
		"review_link":          "https://goodreads.com/review/1",
		"promo_post_completed": false,
		"promo_post_platform":  "",
		"promo_post_link":      "",
		"rating":               4,
		"notes":                "quotes due to publicist",
		"date_added":           "2024-10-28",
	}
}

func TestToInternal(t *testing.T) {
	got := ToInternal(externalFixture())

	assert.Equal(t, "2024-12-01", got["publishDate"])
	assert.Equal(t, "2024-11-01", got["receivedDate"])
	assert.Equal(t, "https://example.com/glass-orchard.jpg", got["coverImageUrl"])
	assert.Equal(t, true, got["reviewCompleted"])
	assert.Equal(t, false, got["promoPostCompleted"])
	assert.Equal(t, "2024-10-28", got["dateAdded"])

	// Same-named columns pass through untouched.
	assert.Equal(t, "The Glass Orchard", got["title"])
	assert.Equal(t, 4, got["rating"])

	// Translated names must not linger.
	assert.NotContains(t, got, "publish_date")
	assert.NotContains(t, got, "cover_image")
}

func TestRoundTrip(t *testing.T) {
	t.Run("External Record Survives Both Directions", func(t *testing.T) {
		rec := externalFixture()
		assert.Equal(t, rec, ToExternal(ToInternal(rec)))
	})

	t.Run("Internal Record Survives Both Directions", func(t *testing.T) {
		rec := ToInternal(externalFixture())
		assert.Equal(t, rec, ToInternal(ToExternal(rec)))
	})

	t.Run("Unknown Keys Pass Through Unchanged", func(t *testing.T) {
		rec := Record{"publish_date": "2025-01-01", "shelf_position": 3, "isbn": "978-1"}
		internal := ToInternal(rec)
		assert.Equal(t, 3, internal["shelf_position"])
		assert.Equal(t, "978-1", internal["isbn"])
		assert.Equal(t, rec, ToExternal(internal))
	})
}

func TestMapperDoesNotMutateInput(t *testing.T) {
	rec := externalFixture()
	_ = ToInternal(rec)
	assert.Equal(t, externalFixture(), rec)
}

func TestFromRecord(t *testing.T) {
	t.Run("Full Record", func(t *testing.T) {
		item, err := FromRecord(ToInternal(externalFixture()))
		require.NoError(t, err)

		assert.Equal(t, int64(7), item.ID)
		assert.Equal(t, "The Glass Orchard", item.Title)
		assert.Equal(t, "L. Warden", item.Author)
		assert.Equal(t, "2024-12-01", item.PublishDate)
		assert.Equal(t, "https://example.com/glass-orchard.jpg", item.CoverImageURL)
		assert.True(t, item.ReviewCompleted)
		assert.False(t, item.PromoPostCompleted)
		assert.Equal(t, 4, item.Rating)
		assert.Equal(t, "2024-10-28", item.DateAdded)
	})

	t.Run("JSON Numbers Decode As Int", func(t *testing.T) {
		// encoding/json hands numeric values over as float64.
		item, err := FromRecord(Record{"id": float64(42), "title": "T", "author": "A", "rating": float64(5)})
		require.NoError(t, err)
		assert.Equal(t, int64(42), item.ID)
		assert.Equal(t, 5, item.Rating)
	})

	t.Run("Malformed Record Returns MappingError", func(t *testing.T) {
		_, err := FromRecord(Record{"reviewCompleted": []string{"not", "a", "bool"}})
		require.Error(t, err)
		var mapErr *MappingError
		assert.ErrorAs(t, err, &mapErr)
	})
}

func TestToRecord(t *testing.T) {
	item, err := FromRecord(ToInternal(externalFixture()))
	require.NoError(t, err)

	rec, err := ToRecord(item)
	require.NoError(t, err)

	assert.Equal(t, int64(7), rec["id"])
	assert.Equal(t, "The Glass Orchard", rec["title"])
	assert.Equal(t, "2024-12-01", rec["publishDate"])
	assert.Equal(t, true, rec["reviewCompleted"])
	assert.Equal(t, "2024-10-28", rec["dateAdded"])
}

func TestDraftRecord(t *testing.T) {
	rec, err := DraftRecord(Draft{Title: "T", Author: "A", PublishDate: "2025-03-01"})
	require.NoError(t, err)

	assert.Equal(t, "T", rec["title"])
	assert.Equal(t, "2025-03-01", rec["publishDate"])
	// Identity fields are the store's to assign; a draft never carries them.
	assert.NotContains(t, rec, "id")
	assert.NotContains(t, rec, "dateAdded")
}
