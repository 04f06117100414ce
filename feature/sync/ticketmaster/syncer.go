package ticketmaster

import (
	"context"

	"github.com/mangelajo/musicevents/feature/sync"

	"go.uber.org/zap"
)

// Syncer composes the Discovery API client with the shared reconciler. Unlike
// the scraped sources each event carries its own embedded venue, so there is
// no single venue bootstrap.
type Syncer struct {
	client     *Client
	reconciler *sync.Reconciler
	logger     *zap.Logger
	city       string
	state      string
	size       int
}

// NewSyncer creates a syncer for one city. state may be empty.
func NewSyncer(client *Client, rec *sync.Reconciler, logger *zap.Logger, city, state string, size int) *Syncer {
	return &Syncer{
		client:     client,
		reconciler: rec,
		logger:     logger,
		city:       city,
		state:      state,
		size:       size,
	}
}

// Sync fetches one page of listings and reconciles every candidate. The
// returned error covers the fatal paths only (missing credentials, listing
// fetch); everything past that point degrades to counted candidate errors. A
// response without the embedded events key means zero matches, not a failure.
func (s *Syncer) Sync(ctx context.Context) (sync.Result, error) {
	var res sync.Result

	resp, err := s.client.FetchEvents(ctx, s.city, s.state, s.size)
	if err != nil {
		return res, err
	}

	if resp.Embedded == nil || len(resp.Embedded.Events) == 0 {
		s.logger.Info("no events found", zap.String("city", s.city))
		return res, nil
	}

	for _, ev := range resp.Embedded.Events {
		venue, _ := s.reconciler.VenueFor(venueData(ev, s.city, s.state), &res)
		if venue == nil {
			continue
		}

		data, err := eventData(ev)
		if err != nil {
			s.logger.Warn("skipping event", zap.String("event", ev.Name), zap.Error(err))
			continue
		}

		event, _ := s.reconciler.EventFor(ctx, data, venue, &res)
		if event == nil {
			continue
		}

		for _, name := range artistNames(ev) {
			artist, _ := s.reconciler.ArtistFor(sync.ArtistData{
				Name: name,
				Bio:  "Artist/performer appearing at " + data.Title,
			}, &res)
			if artist == nil {
				continue
			}
			s.reconciler.Attach(event, artist, &res)
		}
	}

	s.logger.Info("ticketmaster sync finished",
		zap.String("city", s.city),
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("errors", res.Errors))
	return res, nil
}
