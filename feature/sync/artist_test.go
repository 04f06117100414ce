package sync_test

import (
	"testing"

	"github.com/mangelajo/musicevents/feature/sync"

	"github.com/stretchr/testify/assert"
)

func TestArtistNameFromTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Main Artist con Guest Artist", "Main Artist"},
		{"Artist One + Artist Two", "Artist One"},
		{"Solo Artist", "Solo Artist"},
		{"Headliner - Farewell Tour", "Headliner"},
		{"Dúo y Trío", "Dúo"},
		{"Band & Friends", "Band"},
		{"Name | Showcase", "Name"},
		{"Artist CON Guest", "Artist"},
		{"Concierto", "Concierto"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sync.ArtistNameFromTitle(c.title), "title %q", c.title)
	}
}
