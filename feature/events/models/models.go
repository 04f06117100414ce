package models

import (
	"time"

	"gorm.io/gorm"
)

// Venue is a physical location hosting events. Venues are identified by name;
// repeated syncs overwrite the descriptive fields in place.
type Venue struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Address   string `gorm:"size:300" json:"address"`
	City      string `gorm:"size:100" json:"city"`
	State     string `gorm:"size:100" json:"state"`
	ZipCode   string `gorm:"size:20" json:"zip_code"`
	Website   string `gorm:"size:1000" json:"website"`
	Capacity  *int   `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Artist is a performer. Artists are identified by name and created lazily the
// first time an event references them.
type Artist struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Bio       string `gorm:"type:text" json:"bio"`
	Website   string `gorm:"size:1000" json:"website"`
	ImagePath string `gorm:"size:500" json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Event is a single concert listing. ExternalID is the sole reconciliation
// key: two candidates carrying the same ExternalID always resolve to the same
// row, whatever else drifted between syncs.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:200" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`

	VenueID uint   `gorm:"not null" json:"venue_id"`
	Venue   Venue  `gorm:"foreignKey:VenueID" json:"venue"`
	Artists []Artist `gorm:"many2many:event_artists" json:"artists,omitempty"`

	TicketPrice *float64 `gorm:"type:decimal(8,2)" json:"ticket_price,omitempty"`
	TicketURL   string   `gorm:"size:1000" json:"ticket_url"`

	// ImageURL is the original image URL reported by the external source.
	// ImagePath and ThumbnailPath are object keys in the media bucket;
	// ThumbnailPath is derived from ImagePath and never outlives it.
	ImageURL      string `gorm:"size:1000" json:"image_url"`
	ImagePath     string `gorm:"size:500" json:"image_path"`
	ThumbnailPath string `gorm:"size:500" json:"thumbnail_path"`

	ExternalID string `gorm:"size:200;uniqueIndex;not null" json:"external_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPast reports whether the event date has already passed.
func (e *Event) IsPast() bool {
	return e.Date.Before(time.Now())
}

// Migrate creates or updates the schema for all event entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Venue{},
		&Artist{},
		&Event{},
	)
}
