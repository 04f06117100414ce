package sync

import (
	"context"

	"github.com/mangelajo/musicevents/feature/events/images"
	"github.com/mangelajo/musicevents/feature/events/models"
	"github.com/mangelajo/musicevents/feature/events/store"

	"go.uber.org/zap"
)

// Reconciler maps candidate records onto persisted entities. All operations
// trap persistence failures internally: they log, bump res.Errors and return
// a nil entity, so one bad candidate never aborts a batch.
type Reconciler struct {
	store  store.Store
	media  images.Store
	logger *zap.Logger
}

// NewReconciler creates a reconciler over the given store and media service.
func NewReconciler(st store.Store, media images.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: st, media: media, logger: logger}
}

// VenueFor gets or creates a venue by name. On the get path every provided
// field is overwritten and persisted. The second return reports creation.
func (r *Reconciler) VenueFor(data VenueData, res *Result) (*models.Venue, bool) {
	venue, err := r.store.VenueByName(data.Name)
	if err != nil {
		r.logger.Error("venue lookup failed", zap.String("venue", data.Name), zap.Error(err))
		res.Errors++
		return nil, false
	}

	if venue == nil {
		venue = &models.Venue{
			Name:     data.Name,
			Address:  data.Address,
			City:     data.City,
			State:    data.State,
			ZipCode:  data.ZipCode,
			Website:  data.Website,
			Capacity: data.Capacity,
		}
		if err := r.store.CreateVenue(venue); err != nil {
			r.logger.Error("venue create failed", zap.String("venue", data.Name), zap.Error(err))
			res.Errors++
			return nil, false
		}
		return venue, true
	}

	venue.Address = data.Address
	venue.City = data.City
	venue.State = data.State
	venue.ZipCode = data.ZipCode
	venue.Website = data.Website
	if data.Capacity != nil {
		venue.Capacity = data.Capacity
	}
	if err := r.store.SaveVenue(venue); err != nil {
		r.logger.Error("venue update failed", zap.String("venue", data.Name), zap.Error(err))
		res.Errors++
		return nil, false
	}
	return venue, false
}

// ArtistFor gets or creates an artist by name, overwriting the bio on repeat
// sightings. The second return reports creation.
func (r *Reconciler) ArtistFor(data ArtistData, res *Result) (*models.Artist, bool) {
	artist, err := r.store.ArtistByName(data.Name)
	if err != nil {
		r.logger.Error("artist lookup failed", zap.String("artist", data.Name), zap.Error(err))
		res.Errors++
		return nil, false
	}

	if artist == nil {
		artist = &models.Artist{
			Name:    data.Name,
			Bio:     data.Bio,
			Website: data.Website,
		}
		if err := r.store.CreateArtist(artist); err != nil {
			r.logger.Error("artist create failed", zap.String("artist", data.Name), zap.Error(err))
			res.Errors++
			return nil, false
		}
		return artist, true
	}

	artist.Bio = data.Bio
	if data.Website != "" {
		artist.Website = data.Website
	}
	if err := r.store.SaveArtist(artist); err != nil {
		r.logger.Error("artist update failed", zap.String("artist", data.Name), zap.Error(err))
		res.Errors++
		return nil, false
	}
	return artist, false
}

// EventFor gets or creates an event by external ID. Candidates missing a
// title, date or external ID are rejected before touching the store; the
// counters stay untouched for them.
func (r *Reconciler) EventFor(ctx context.Context, data EventData, venue *models.Venue, res *Result) (*models.Event, bool) {
	if data.Title == "" || data.Date.IsZero() || data.ExternalID == "" {
		r.logger.Warn("skipping event with missing required data", zap.String("title", data.Title))
		return nil, false
	}

	event, err := r.store.EventByExternalID(data.ExternalID)
	if err != nil {
		r.logger.Error("event lookup failed", zap.String("external_id", data.ExternalID), zap.Error(err))
		res.Errors++
		return nil, false
	}

	if event == nil {
		event = &models.Event{
			Title:       data.Title,
			Slug:        Slugify(data.Title),
			Date:        data.Date,
			VenueID:     venue.ID,
			Description: data.Description,
			TicketURL:   data.TicketURL,
			TicketPrice: data.TicketPrice,
			ImageURL:    data.ImageURL,
			ExternalID:  data.ExternalID,
		}
		if err := r.store.CreateEvent(event); err != nil {
			r.logger.Error("event create failed", zap.String("title", data.Title), zap.Error(err))
			res.Errors++
			return nil, false
		}
		res.Created++

		if data.ImageURL != "" {
			r.acquireImage(ctx, event, data.ImageURL)
			if err := r.store.SaveEvent(event); err != nil {
				r.logger.Error("saving media paths failed", zap.String("title", data.Title), zap.Error(err))
			}
		}
		return event, true
	}

	event.Title = data.Title
	event.Date = data.Date
	event.Description = data.Description
	event.TicketURL = data.TicketURL
	// Sticky field: a candidate without a price keeps the last known one
	if data.TicketPrice != nil {
		event.TicketPrice = data.TicketPrice
	}

	if data.ImageURL != "" && event.ImageURL != data.ImageURL {
		event.ImageURL = data.ImageURL
		r.acquireImage(ctx, event, data.ImageURL)
	} else if event.ImagePath == "" && event.ImageURL != "" {
		// Self-healing: a URL is on file but an earlier download failed
		r.acquireImage(ctx, event, event.ImageURL)
	}

	if err := r.store.SaveEvent(event); err != nil {
		r.logger.Error("event update failed", zap.String("title", data.Title), zap.Error(err))
		res.Errors++
		return nil, false
	}
	res.Updated++
	return event, false
}

// Attach associates an artist with an event. Association failures are counted
// like any other persistence error.
func (r *Reconciler) Attach(event *models.Event, artist *models.Artist, res *Result) {
	if err := r.store.AttachArtist(event, artist); err != nil {
		r.logger.Error("attaching artist failed",
			zap.String("event", event.Title),
			zap.String("artist", artist.Name),
			zap.Error(err))
		res.Errors++
	}
}

// acquireImage downloads and stores the event image, then regenerates the
// thumbnail. Failures degrade the event's media fields, never the candidate.
func (r *Reconciler) acquireImage(ctx context.Context, event *models.Event, imageURL string) {
	if r.media == nil {
		return
	}
	if err := r.media.StoreEventImage(ctx, event, imageURL); err != nil {
		r.logger.Warn("image download failed",
			zap.String("title", event.Title),
			zap.String("url", imageURL),
			zap.Error(err))
		return
	}
	if err := r.media.GenerateThumbnail(ctx, event); err != nil {
		r.logger.Warn("thumbnail generation failed",
			zap.String("title", event.Title),
			zap.Error(err))
	}
}
