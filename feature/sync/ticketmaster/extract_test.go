package ticketmaster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBestImageURL(t *testing.T) {
	t.Run("PrefersWidest16x9", func(t *testing.T) {
		images := []Image{
			{URL: "small-wide.jpg", Ratio: "16_9", Width: 640},
			{URL: "portrait.jpg", Ratio: "3_2", Width: 2000},
			{URL: "big-wide.jpg", Ratio: "16_9", Width: 1024},
		}
		assert.Equal(t, "big-wide.jpg", bestImageURL(images))
	})

	t.Run("FallsBackToFirstImage", func(t *testing.T) {
		images := []Image{
			{URL: "first.jpg", Ratio: "3_2", Width: 500},
			{URL: "second.jpg", Ratio: "4_3", Width: 800},
		}
		assert.Equal(t, "first.jpg", bestImageURL(images))
	})

	t.Run("NoImages", func(t *testing.T) {
		assert.Equal(t, "", bestImageURL(nil))
	})
}

func TestStartDate(t *testing.T) {
	t.Run("FullDateTime", func(t *testing.T) {
		var ev Event
		ev.Dates.Start.DateTime = "2025-06-15T21:30:00Z"

		got, err := startDate(ev)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 21, 30, 0, 0, time.UTC), got)
	})

	t.Run("LocalDateDefaultsTo7PM", func(t *testing.T) {
		var ev Event
		ev.Dates.Start.LocalDate = "2025-06-15"

		got, err := startDate(ev)
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC), got)
	})

	t.Run("NoDateIsAnError", func(t *testing.T) {
		var ev Event
		ev.Name = "Undated Show"

		_, err := startDate(ev)
		assert.Error(t, err)
	})
}

func TestVenueData(t *testing.T) {
	t.Run("EmbeddedVenue", func(t *testing.T) {
		ev := Event{Embedded: &EventEmbedded{Venues: []Venue{{
			Name:       "The Fillmore",
			URL:        "https://fillmore.example.com",
			PostalCode: "94115",
		}}}}
		ev.Embedded.Venues[0].Address.Line1 = "1805 Geary Blvd"
		ev.Embedded.Venues[0].City.Name = "San Francisco"
		ev.Embedded.Venues[0].State.StateCode = "CA"

		data := venueData(ev, "Madrid", "")
		assert.Equal(t, "The Fillmore", data.Name)
		assert.Equal(t, "1805 Geary Blvd", data.Address)
		assert.Equal(t, "San Francisco", data.City)
		assert.Equal(t, "CA", data.State)
		assert.Equal(t, "94115", data.ZipCode)
	})

	t.Run("MissingVenueFallsBack", func(t *testing.T) {
		data := venueData(Event{}, "Madrid", "M")
		assert.Equal(t, "Unknown Venue", data.Name)
		assert.Equal(t, "Madrid", data.City)
		assert.Equal(t, "M", data.State)
	})
}

func TestEventData(t *testing.T) {
	min := 45.0
	ev := Event{
		ID:          "tm-123",
		Name:        "Test Show",
		URL:         "https://tickets.example.com/tm-123",
		Info:        "An evening of music",
		PriceRanges: []PriceRange{{Min: &min}},
	}
	ev.Dates.Start.DateTime = "2025-03-01T20:00:00Z"

	data, err := eventData(ev)
	assert.NoError(t, err)
	assert.Equal(t, "Test Show", data.Title)
	assert.Equal(t, "tm-123", data.ExternalID)
	assert.Equal(t, "An evening of music", data.Description)
	if assert.NotNil(t, data.TicketPrice) {
		assert.Equal(t, 45.0, *data.TicketPrice)
	}
}

func TestArtistNames(t *testing.T) {
	ev := Event{Embedded: &EventEmbedded{Attractions: []Attraction{
		{Name: "Headliner"},
		{Name: ""},
		{Name: "Support Act"},
	}}}
	assert.Equal(t, []string{"Headliner", "Support Act"}, artistNames(ev))
	assert.Nil(t, artistNames(Event{}))
}
