package store

import (
	"errors"

	"github.com/mangelajo/musicevents/feature/events/models"

	"gorm.io/gorm"
)

// Store is the typed persistence contract for event entities. Lookups return
// (nil, nil) when no row matches, so callers can distinguish "absent" from a
// storage failure.
type Store interface {
	VenueByName(name string) (*models.Venue, error)
	CreateVenue(v *models.Venue) error
	SaveVenue(v *models.Venue) error

	ArtistByName(name string) (*models.Artist, error)
	CreateArtist(a *models.Artist) error
	SaveArtist(a *models.Artist) error

	EventByExternalID(externalID string) (*models.Event, error)
	CreateEvent(e *models.Event) error
	SaveEvent(e *models.Event) error

	// AttachArtist adds an artist to the event's artist set. Adding the same
	// pair twice is a no-op.
	AttachArtist(e *models.Event, a *models.Artist) error

	ListEvents() ([]models.Event, error)
	EventByID(id uint) (*models.Event, error)
	ListVenues() ([]models.Venue, error)
	ListArtists() ([]models.Artist, error)
}

// New creates a GORM-backed Store.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) VenueByName(name string) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.Where("name = ?", name).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (s *gormStore) CreateVenue(v *models.Venue) error {
	return s.db.Create(v).Error
}

func (s *gormStore) SaveVenue(v *models.Venue) error {
	return s.db.Save(v).Error
}

func (s *gormStore) ArtistByName(name string) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.Where("name = ?", name).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (s *gormStore) CreateArtist(a *models.Artist) error {
	return s.db.Create(a).Error
}

func (s *gormStore) SaveArtist(a *models.Artist) error {
	return s.db.Save(a).Error
}

func (s *gormStore) EventByExternalID(externalID string) (*models.Event, error) {
	var event models.Event
	err := s.db.Where("external_id = ?", externalID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *gormStore) CreateEvent(e *models.Event) error {
	return s.db.Create(e).Error
}

func (s *gormStore) SaveEvent(e *models.Event) error {
	return s.db.Save(e).Error
}

func (s *gormStore) AttachArtist(e *models.Event, a *models.Artist) error {
	return s.db.Model(e).Association("Artists").Append(a)
}

func (s *gormStore) ListEvents() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Venue").Preload("Artists").Order("date asc").Find(&events).Error
	return events, err
}

func (s *gormStore) EventByID(id uint) (*models.Event, error) {
	var event models.Event
	err := s.db.Preload("Venue").Preload("Artists").First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *gormStore) ListVenues() ([]models.Venue, error) {
	var venues []models.Venue
	err := s.db.Order("name asc").Find(&venues).Error
	return venues, err
}

func (s *gormStore) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	err := s.db.Order("name asc").Find(&artists).Error
	return artists, err
}
