package cafeberlin

import (
	"strings"
	"testing"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("AbbreviatedSpanishDate", func(t *testing.T) {
		got, fallback := parseDate("25 abr", now)
		assert.False(t, fallback)
		assert.Equal(t, time.Date(2025, 4, 25, 20, 0, 0, 0, sync.Madrid()), got)
	})

	t.Run("PastDateRollsYearForward", func(t *testing.T) {
		later := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		got, fallback := parseDate("25 abr", later)
		assert.False(t, fallback)
		assert.Equal(t, time.Date(2026, 4, 25, 20, 0, 0, 0, sync.Madrid()), got)
	})

	t.Run("VariasFechasMapsThirtyDaysOut", func(t *testing.T) {
		got, fallback := parseDate("Varias fechas", now)
		assert.False(t, fallback)
		assert.Equal(t, now.AddDate(0, 0, 30), got)
	})

	t.Run("UnparseableFallsForwardThirtyDays", func(t *testing.T) {
		got, fallback := parseDate("mañana", now)
		assert.True(t, fallback)
		assert.Equal(t, now.AddDate(0, 0, 30), got)
	})

	t.Run("UnknownMonthFallsForward", func(t *testing.T) {
		_, fallback := parseDate("25 xyz", now)
		assert.True(t, fallback)
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("CommaDecimal", func(t *testing.T) {
		got := parsePrice("15,50€")
		if assert.NotNil(t, got) {
			assert.Equal(t, 15.50, *got)
		}
	})

	t.Run("PlainNumber", func(t *testing.T) {
		got := parsePrice("20€")
		if assert.NotNil(t, got) {
			assert.Equal(t, 20.0, *got)
		}
	})

	t.Run("InvalidYieldsNoPrice", func(t *testing.T) {
		assert.Nil(t, parsePrice("Invalid"))
	})
}

const cardHTML = `<html><body>
<a class="event-card" href="/es/evento/main-artist">
	<picture>
		<source media="(min-width: 992px)" srcset="//cdn.example.com/main-artist.jpg">
		<img src="//cdn.example.com/main-artist-small.jpg">
	</picture>
	<div class="event-title">Main Artist y Guest</div>
	<div class="date"><span class="text-raro-700">25 abr</span></div>
	<div class="price"><span class="text-raro-700">15,50€</span></div>
</a>
<a class="event-card" href="/es/evento/varias">
	<div class="event-title">Resident Show</div>
	<div class="date"><span class="text-raro-700">Varias fechas</span></div>
	<div class="price"><span class="text-raro-700">Agotado</span></div>
</a>
<a class="event-card" href="/es/evento/untitled"><div class="date"><span class="text-raro-700">1 may</span></div></a>
</body></html>`

func TestExtract(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(cardHTML))
	require.NoError(t, err)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	candidates := Extract(doc, URL, now)
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "Main Artist y Guest", first.Title)
	assert.Equal(t, time.Date(2025, 4, 25, 20, 0, 0, 0, sync.Madrid()), first.Date)
	assert.Equal(t, "https://cafeberlinentradas.com/es/evento/main-artist", first.TicketURL)
	assert.Equal(t, "https://cdn.example.com/main-artist.jpg", first.ImageURL)
	assert.Equal(t, "cafeberlin-main-artist-y-guest-2025-04-25", first.ExternalID)
	if assert.NotNil(t, first.TicketPrice) {
		assert.Equal(t, 15.50, *first.TicketPrice)
	}

	second := candidates[1]
	assert.Equal(t, "Resident Show", second.Title)
	assert.Nil(t, second.TicketPrice)
	assert.False(t, second.FallbackDate)
	assert.Equal(t, now.AddDate(0, 0, 30), second.Date)
}
