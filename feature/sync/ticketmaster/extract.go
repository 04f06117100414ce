package ticketmaster

import (
	"fmt"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"
)

// venueData maps an event's embedded venue onto a candidate venue. When the
// API embeds no venue the candidate falls back to "Unknown Venue" scoped to
// the queried city.
func venueData(ev Event, city, state string) sync.VenueData {
	data := sync.VenueData{
		Name:  "Unknown Venue",
		City:  city,
		State: state,
	}

	if ev.Embedded == nil || len(ev.Embedded.Venues) == 0 {
		return data
	}

	v := ev.Embedded.Venues[0]
	if v.Name != "" {
		data.Name = v.Name
	}
	data.Address = v.Address.Line1
	if v.City.Name != "" {
		data.City = v.City.Name
	}
	if v.State.StateCode != "" {
		data.State = v.State.StateCode
	}
	data.ZipCode = v.PostalCode
	data.Website = v.URL
	return data
}

// eventData maps an API event onto a candidate record. An event without any
// start date cannot be reconciled and is reported as an error.
func eventData(ev Event) (sync.EventData, error) {
	date, err := startDate(ev)
	if err != nil {
		return sync.EventData{}, err
	}

	description := ev.Info
	if description == "" {
		description = ev.Description
	}

	data := sync.EventData{
		Title:       ev.Name,
		Date:        date,
		Description: description,
		TicketURL:   ev.URL,
		ImageURL:    bestImageURL(ev.Images),
		ExternalID:  ev.ID,
	}
	if len(ev.PriceRanges) > 0 {
		data.TicketPrice = ev.PriceRanges[0].Min
	}
	return data, nil
}

// startDate resolves the event start. Events carrying only a local date get a
// default start time of 19:00 UTC.
func startDate(ev Event) (time.Time, error) {
	raw := ev.Dates.Start.DateTime
	if raw == "" {
		if ev.Dates.Start.LocalDate == "" {
			return time.Time{}, fmt.Errorf("event %q has no start date", ev.Name)
		}
		raw = ev.Dates.Start.LocalDate + "T19:00:00Z"
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start date %q: %w", raw, err)
	}
	return t, nil
}

// bestImageURL prefers the widest 16:9 image; when no 16:9 image exists it
// falls back to the first listed one.
func bestImageURL(images []Image) string {
	var best *Image
	bestWidth := 0
	for i := range images {
		if images[i].Ratio == "16_9" && images[i].Width > bestWidth {
			best = &images[i]
			bestWidth = images[i].Width
		}
	}
	if best == nil && len(images) > 0 {
		best = &images[0]
	}
	if best == nil {
		return ""
	}
	return best.URL
}

// artistNames lists the embedded attractions, skipping unnamed ones.
func artistNames(ev Event) []string {
	if ev.Embedded == nil {
		return nil
	}
	var names []string
	for _, a := range ev.Embedded.Attractions {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}
	return names
}
