package sync_test

import (
	"testing"

	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Main Artist Live", "main-artist-live"},
		{"Café Berlín", "cafe-berlin"},
		{"Años 80 — La Fiesta", "anos-80-la-fiesta"},
		{"  Trimmed  ", "trimmed"},
		{"¡Hola!", "hola"},
		{"UPPER case", "upper-case"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sync.Slugify(c.in), "input %q", c.in)
	}
}

func TestScrapedExternalID(t *testing.T) {
	date := timeDate(2025, 4, 25)
	assert.Equal(t, "riviera-main-artist-2025-04-25", sync.ScrapedExternalID("riviera", "Main Artist", date))
}
