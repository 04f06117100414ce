package ticketmaster

// Config holds Discovery API credentials and paging defaults.
type Config struct {
	// APIKey authenticates against the Discovery API. A sync run without it
	// fails before any network call.
	APIKey string `mapstructure:"api_key"`
	// Size is the number of events requested per run.
	Size int `mapstructure:"size" default:"20"`
}
