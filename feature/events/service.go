package events

import (
	"fmt"

	"github.com/mangelajo/musicevents/feature/events/models"
	"github.com/mangelajo/musicevents/feature/events/store"

	"go.uber.org/zap"
)

// Service reads the synced catalog.
type Service struct {
	store  store.Store
	logger *zap.Logger
}

// NewService creates the catalog read service.
func NewService(st store.Store, logger *zap.Logger) *Service {
	return &Service{store: st, logger: logger}
}

// ListEvents returns all events ordered by date, venue and artists included.
func (s *Service) ListEvents() ([]models.Event, error) {
	events, err := s.store.ListEvents()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// GetEvent returns one event by primary key, or nil when it does not exist.
func (s *Service) GetEvent(id uint) (*models.Event, error) {
	event, err := s.store.EventByID(id)
	if err != nil {
		return nil, fmt.Errorf("fetching event %d: %w", id, err)
	}
	return event, nil
}

// ListVenues returns all venues ordered by name.
func (s *Service) ListVenues() ([]models.Venue, error) {
	venues, err := s.store.ListVenues()
	if err != nil {
		return nil, fmt.Errorf("listing venues: %w", err)
	}
	return venues, nil
}

// ListArtists returns all artists ordered by name.
func (s *Service) ListArtists() ([]models.Artist, error) {
	artists, err := s.store.ListArtists()
	if err != nil {
		return nil, fmt.Errorf("listing artists: %w", err)
	}
	return artists, nil
}
