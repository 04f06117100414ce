package cafeberlin

import (
	"context"
	"errors"
	"time"

	"github.com/mangelajo/musicevents/feature/sync"

	"go.uber.org/zap"
)

// venueInfo holds the fixed venue details for Café Berlín.
func venueInfo() sync.VenueData {
	capacity := 200
	return sync.VenueData{
		Name:     "Café Berlín",
		Address:  "Costanilla de los Ángeles, 20",
		City:     "Madrid",
		State:    "Madrid",
		ZipCode:  "28013",
		Website:  "https://cafeberlinentradas.com/",
		Capacity: &capacity,
	}
}

// Syncer composes the scraper with the shared reconciler. All events land on
// the single Café Berlín venue.
type Syncer struct {
	scraper    *Scraper
	reconciler *sync.Reconciler
	logger     *zap.Logger
	now        func() time.Time
}

// NewSyncer creates a syncer for the Café Berlín listing.
func NewSyncer(scraper *Scraper, rec *sync.Reconciler, logger *zap.Logger) *Syncer {
	return &Syncer{
		scraper:    scraper,
		reconciler: rec,
		logger:     logger,
		now:        time.Now,
	}
}

// Sync scrapes the listing, enriches each candidate with its detail-page
// description and reconciles the lot. Venue bootstrap and listing fetch
// failures are fatal; a failed detail fetch only costs that candidate its
// description.
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
		zap.String("source", "cafeberlin"),
		zap.Int("count", len(candidates)))

	for _, data := range candidates {
		if data.TicketURL != "" {
			desc, err := s.scraper.Description(ctx, data.TicketURL)
			if err != nil {
				s.logger.Warn("fetching event details failed",
					zap.String("url", data.TicketURL),
					zap.Error(err))
			} else {
				data.Description = desc
			}
		}

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

	s.logger.Info("cafeberlin sync finished",
		zap.Int("created", res.Created),
		zap.Int("updated", res.Updated),
		zap.Int("errors", res.Errors))
	return res, nil
}
