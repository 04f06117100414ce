package riviera

import (
	"context"
	"errors"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"

	"go.uber.org/zap"
)

// venueInfo holds the fixed venue details for La Riviera.
func venueInfo() sync.VenueData {
	capacity := 2500
	return sync.VenueData{
		Name:     "La Riviera",
		Address:  "Paseo Bajo de la Virgen del Puerto, s/n",
		City:     "Madrid",
		State:    "Madrid",
		ZipCode:  "28005",
		Website:  "https://salariviera.com/",
		Capacity: &capacity,
	}
}

// Syncer composes the scraper with the shared reconciler. All events land on
// the single La Riviera venue.
type Syncer struct {
	scraper    *Scraper
	reconciler *sync.Reconciler
	logger     *zap.Logger
	now        func() time.Time
}

// NewSyncer creates a syncer for the La Riviera listing.
func NewSyncer(scraper *Scraper, rec *sync.Reconciler, logger *zap.Logger) *Syncer {
	return &Syncer{
		scraper:    scraper,
		reconciler: rec,
		logger:     logger,
		now:        time.Now,
	}
}

// Sync scrapes the listing and reconciles every candidate. Failing to
// bootstrap the venue or to fetch the listing page is fatal; everything past
// that degrades to counted candidate errors.
func (s *Syncer) Sync(ctx context.Context) (sync.Result, error) {
	var res sync.Result

	venue, created := s.reconciler.VenueFor(venueInfo(), &res)
	if venue == nil {
		return res, errors.New("failed to create or get venue")
	}
	if created {
		s.logger.Info("created venue", zap.String("venue", venue.Name))
	}

	doc, err := s.scraper.Fetch(ctx)
	if err != nil {
		return res, err
	}

	candidates := Extract(doc, s.scraper.baseURL, s.now())
	s.logger.Info("fetched candidates",
		zap.String("source", "riviera"),
		zap.Int("count", len(candidates)))

	for _, data := range candidates {
		event, _ := s.reconciler.EventFor(ctx, data, venue, &res)
		if event == nil {
			continue
		}

		artist, _ := s.reconciler.ArtistFor(sync.ArtistData{
			Name: sync.ArtistNameFromTitle(event.Title),
			Bio:  "Artist performing at " + venue.Name,
		}, &res)
		if artist != nil {
			s.reconciler.Attach(event, artist, &res)
		}
	}

	s.logger.Info("riviera sync finished",
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("errors", res.Errors))
	return res, nil
}
