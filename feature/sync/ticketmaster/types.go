package ticketmaster

// Response mirrors the slice of the Discovery API payload the sync consumes.
// A nil Embedded means the query matched nothing; the API omits the key
// instead of sending an empty array.
type Response struct {
	Embedded *EmbeddedEvents `json:"_embedded"`
}

// EmbeddedEvents wraps the events array under the embedded-resources key.
type EmbeddedEvents struct {
	Events []Event `json:"events"`
}

// Event is one Discovery API event.
type Event struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Info        string         `json:"info"`
	Description string         `json:"description"`
	Images      []Image        `json:"images"`
	Dates       Dates          `json:"dates"`
	PriceRanges []PriceRange   `json:"priceRanges"`
	Embedded    *EventEmbedded `json:"_embedded"`
}

// EventEmbedded holds the sub-objects nested under an event.
type EventEmbedded struct {
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

// Venue is the embedded venue sub-object.
type Venue struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	PostalCode string `json:"postalCode"`
	Address    struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
}

// Attraction is an embedded performer.
type Attraction struct {
	Name string `json:"name"`
}

// Image is one entry of an event's image list.
type Image struct {
	URL   string `json:"url"`
	Ratio string `json:"ratio"`
	Width int    `json:"width"`
}

// Dates carries the event start information.
type Dates struct {
	Start struct {
		DateTime  string `json:"dateTime"`
		LocalDate string `json:"localDate"`
	} `json:"start"`
}

// PriceRange is one entry of an event's price range list. Min is a pointer so
// a range without a minimum yields no price instead of zero.
type PriceRange struct {
	Min *float64 `json:"min"`
}
