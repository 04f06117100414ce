package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mangelajo/musicevents/core/database"
	"github.com/mangelajo/musicevents/feature/events/models"
	"github.com/mangelajo/musicevents/feature/events/store"
	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const discoveryPayload = `{
	"_embedded": {
		"events": [
			{
				"id": "tm-abc-1",
				"name": "Test Artist Live",
				"url": "https://tickets.example.com/tm-abc-1",
				"info": "One night only",
				"images": [
					{"url": "https://img.example.com/small.jpg", "ratio": "16_9", "width": 640},
					{"url": "https://img.example.com/big.jpg", "ratio": "16_9", "width": 1024}
				],
				"dates": {"start": {"dateTime": "2025-09-20T20:00:00Z"}},
				"priceRanges": [{"min": 35.5}],
				"_embedded": {
					"venues": [{
						"name": "Test Venue",
						"postalCode": "28001",
						"address": {"line1": "Calle Mayor 1"},
						"city": {"name": "Madrid"}
					}],
					"attractions": [{"name": "Test Artist"}]
				}
			}
		]
	}
}`

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func TestSync(t *testing.T) {
	logger := zap.NewNop()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "music", r.URL.Query().Get("classificationName"))
		assert.Equal(t, "Madrid", r.URL.Query().Get("city"))
		assert.Equal(t, "date,asc", r.URL.Query().Get("sort"))
		w.Write([]byte(discoveryPayload))
	}))
	defer srv.Close()

	db := testDB(t)
	rec := sync.NewReconciler(store.New(db), nil, logger)

	client := NewClient(Config{APIKey: "test-key"})
	client.baseURL = srv.URL
	syncer := NewSyncer(client, rec, logger, "Madrid", "", 20)

	res, err := syncer.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sync.Result{Created: 1, Updated: 0, Errors: 0}, res)

	// Exactly one venue, one artist, one event, with the artist attached.
	var venues []models.Venue
	db.Find(&venues)
	require.Len(t, venues, 1)
	assert.Equal(t, "Test Venue", venues[0].Name)

	var artists []models.Artist
	db.Find(&artists)
	require.Len(t, artists, 1)
	assert.Equal(t, "Test Artist", artists[0].Name)

	var events []models.Event
	db.Preload("Artists").Find(&events)
	require.Len(t, events, 1)
	assert.Equal(t, "tm-abc-1", events[0].ExternalID)
	assert.Equal(t, "https://img.example.com/big.jpg", events[0].ImageURL)
	require.Len(t, events[0].Artists, 1)
	assert.Equal(t, "Test Artist", events[0].Artists[0].Name)
	if assert.NotNil(t, events[0].TicketPrice) {
		assert.Equal(t, 35.5, *events[0].TicketPrice)
	}

	// A second run with unchanged source data updates in place.
	res, err = syncer.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sync.Result{Created: 0, Updated: 1, Errors: 0}, res)

	var count int64
	db.Model(&models.Event{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSyncMissingAPIKey(t *testing.T) {
	db := testDB(t)
	rec := sync.NewReconciler(store.New(db), nil, zap.NewNop())

	syncer := NewSyncer(NewClient(Config{}), rec, zap.NewNop(), "Madrid", "", 20)
	_, err := syncer.Sync(context.Background())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSyncNoEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": {"totalElements": 0}}`))
	}))
	defer srv.Close()

	db := testDB(t)
	rec := sync.NewReconciler(store.New(db), nil, zap.NewNop())

	client := NewClient(Config{APIKey: "test-key"})
	client.baseURL = srv.URL
	syncer := NewSyncer(client, rec, zap.NewNop(), "Madrid", "", 20)

	res, err := syncer.Sync(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, sync.Result{}, res)
}
