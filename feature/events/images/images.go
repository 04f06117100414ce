package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/mangelajo/musicevents/core/storage"
	"github.com/mangelajo/musicevents/feature/events/models"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	// DownloadTimeout bounds a single image download.
	DownloadTimeout = 10 * time.Second

	thumbnailWidth  = 300
	thumbnailHeight = 200
	jpegQuality     = 85

	imagePrefix     = "events/"
	thumbnailPrefix = "events/thumbnails/"
)

// Store acquires and derives media for events.
type Store interface {
	// StoreEventImage downloads the image at the given URL, converts it to
	// JPEG and uploads it to the media bucket, setting ev.ImagePath.
	StoreEventImage(ctx context.Context, ev *models.Event, imageURL string) error
	// GenerateThumbnail derives a thumbnail from the event's stored image,
	// setting ev.ThumbnailPath. On failure the thumbnail path is cleared so a
	// stale thumbnail never survives an image change.
	GenerateThumbnail(ctx context.Context, ev *models.Event) error
}

// Service is the object-storage backed implementation of Store.
type Service struct {
	client storage.Client
	bucket string
	http   *http.Client
	logger *zap.Logger
}

// NewService creates a media service writing to the given bucket.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		http:   &http.Client{Timeout: DownloadTimeout},
		logger: logger,
	}
}

// StoreEventImage implements Store.
func (s *Service) StoreEventImage(ctx context.Context, ev *models.Event, imageURL string) error {
	if imageURL == "" {
		return fmt.Errorf("no image URL provided")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("creating image request: %w", err)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("downloading image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("downloading image: unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading image body: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	// Re-encode as JPEG regardless of the source format; imaging flattens
	// alpha for us on encode.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	objectName := imagePrefix + objectBaseName(imageURL) + ".jpg"
	_, err = s.client.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return fmt.Errorf("uploading image: %w", err)
	}

	ev.ImagePath = objectName
	s.logger.Debug("stored event image",
		zap.String("event", ev.Title),
		zap.String("object", objectName))
	return nil
}

// GenerateThumbnail implements Store.
func (s *Service) GenerateThumbnail(ctx context.Context, ev *models.Event) error {
	if ev.ImagePath == "" {
		ev.ThumbnailPath = ""
		return fmt.Errorf("event has no stored image")
	}

	reader, err := s.client.GetObject(ctx, s.bucket, ev.ImagePath, minio.GetObjectOptions{})
	if err != nil {
		ev.ThumbnailPath = ""
		return fmt.Errorf("fetching stored image: %w", err)
	}
	defer reader.Close()

	img, err := imaging.Decode(reader)
	if err != nil {
		ev.ThumbnailPath = ""
		return fmt.Errorf("decoding stored image: %w", err)
	}

	thumb := imaging.Fit(img, thumbnailWidth, thumbnailHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		ev.ThumbnailPath = ""
		return fmt.Errorf("encoding thumbnail: %w", err)
	}

	name := strings.TrimSuffix(path.Base(ev.ImagePath), path.Ext(ev.ImagePath))
	objectName := thumbnailPrefix + "thumb_" + name + ".jpg"
	_, err = s.client.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		ev.ThumbnailPath = ""
		return fmt.Errorf("uploading thumbnail: %w", err)
	}

	ev.ThumbnailPath = objectName
	return nil
}

// objectBaseName derives a storage-friendly base name from an image URL.
func objectBaseName(imageURL string) string {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return "image"
	}
	name := strings.TrimSuffix(path.Base(parsed.Path), path.Ext(parsed.Path))
	if name == "" || name == "." || name == "/" {
		return "image"
	}
	return name
}
