package sync

import (
	"fmt"
	"time"
)

// EventData is a candidate record: the in-memory, unpersisted representation
// of one external event as produced by a source extractor.
type EventData struct {
	Title       string
	Date        time.Time
	Description string
	TicketURL   string
	// TicketPrice is nil when the source did not expose a parseable price.
	TicketPrice *float64
	ImageURL    string
	ExternalID  string
	// FallbackDate marks candidates whose date could not be extracted and was
	// defaulted to thirty days from now.
	FallbackDate bool
}

// VenueData carries the venue fields a source knows about.
type VenueData struct {
	Name     string
	Address  string
	City     string
	State    string
	ZipCode  string
	Website  string
	Capacity *int
}

// ArtistData carries the artist fields a source knows about.
type ArtistData struct {
	Name    string
	Bio     string
	Website string
}

// Result accumulates the outcome of one sync run. It is owned by the run and
// threaded explicitly through every reconciliation call, so concurrent runs
// never share counters.
type Result struct {
	Created int
	Updated int
	Errors  int
}

// String renders the result the way the sync commands report it.
func (r Result) String() string {
	return fmt.Sprintf("created=%d updated=%d errors=%d", r.Created, r.Updated, r.Errors)
}

// ScrapedExternalID builds the stable reconciliation key for events scraped
// from HTML sources: {source}-{slug(title)}-{date}.
func ScrapedExternalID(source, title string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%s", source, Slugify(title), date.Format("2006-01-02"))
}
