package riviera

import (
	"testing"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/stretchr/testify/assert"
)

func TestMonthYearContext(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("FromPageTitle", func(t *testing.T) {
		year, month := monthYearContext(URL, "Conciertos abril 2025 - La Riviera", now)
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.April, month)
	})

	t.Run("FromURL", func(t *testing.T) {
		year, month := monthYearContext("https://salariviera.com/conciertos-junio-2026/", "", now)
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.June, month)
	})

	t.Run("NoMatchUsesNow", func(t *testing.T) {
		year, month := monthYearContext(URL, "La Riviera", now)
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.January, month)
	})
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("DayOnlyUsesContext", func(t *testing.T) {
		got, fallback := parseDate("25", 2025, time.April, now)
		assert.False(t, fallback)
		assert.Equal(t, time.Date(2025, 4, 25, 20, 0, 0, 0, sync.Madrid()), got)
	})

	t.Run("SpanishLongDate", func(t *testing.T) {
		got, fallback := parseDate("abril 20, 2025", 2025, time.January, now)
		assert.False(t, fallback)
		assert.Equal(t, time.Date(2025, 4, 20, 20, 0, 0, 0, sync.Madrid()), got)
	})

	t.Run("DayMonthYear", func(t *testing.T) {
		got, fallback := parseDate("20 abril 2025", 2025, time.January, now)
		assert.False(t, fallback)
		assert.Equal(t, time.Date(2025, 4, 20, 20, 0, 0, 0, sync.Madrid()), got)
	})

	t.Run("NumericDate", func(t *testing.T) {
		got, fallback := parseDate("20/04/2025", 2025, time.January, now)
		assert.False(t, fallback)
		assert.Equal(t, time.Date(2025, 4, 20, 20, 0, 0, 0, sync.Madrid()), got)
	})

	t.Run("UnparseableFallsForwardThirtyDays", func(t *testing.T) {
		got, fallback := parseDate("próximamente", 2025, time.January, now)
		assert.True(t, fallback)
		assert.Equal(t, now.AddDate(0, 0, 30), got)
	})

	t.Run("EmptyTextFallsForward", func(t *testing.T) {
		_, fallback := parseDate("", 2025, time.January, now)
		assert.True(t, fallback)
	})
}
