package images_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	_ "image/jpeg"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mangelajo/musicevents/core/storage/mocks"
	"github.com/mangelajo/musicevents/feature/events/images"
	"github.com/mangelajo/musicevents/feature/events/models"

	"github.com/disintegration/imaging"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func TestStoreEventImage(t *testing.T) {
	payload := jpegBytes(t, 800, 600)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(payload)
	}))
	defer srv.Close()

	mockClient := new(mocks.Client)
	mockClient.On("PutObject", mock.Anything, "media", "events/poster.jpg",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	svc := images.NewService(mockClient, "media", zap.NewNop())
	ev := &models.Event{Title: "Pictured Show"}

	err := svc.StoreEventImage(context.Background(), ev, srv.URL+"/uploads/poster.jpg")
	require.NoError(t, err)
	assert.Equal(t, "events/poster.jpg", ev.ImagePath)
	mockClient.AssertExpectations(t)
}

func TestStoreEventImageDownloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := images.NewService(new(mocks.Client), "media", zap.NewNop())
	ev := &models.Event{Title: "Missing Poster"}

	err := svc.StoreEventImage(context.Background(), ev, srv.URL+"/gone.jpg")
	assert.Error(t, err)
	assert.Equal(t, "", ev.ImagePath)
}

func TestGenerateThumbnail(t *testing.T) {
	stored := jpegBytes(t, 800, 600)

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "media", "events/poster.jpg", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(stored)), nil)

	var thumbData []byte
	mockClient.On("PutObject", mock.Anything, "media", "events/thumbnails/thumb_poster.jpg",
		mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			thumbData = data
		}).
		Return(minio.UploadInfo{}, nil)

	svc := images.NewService(mockClient, "media", zap.NewNop())
	ev := &models.Event{Title: "Pictured Show", ImagePath: "events/poster.jpg"}

	err := svc.GenerateThumbnail(context.Background(), ev)
	require.NoError(t, err)
	assert.Equal(t, "events/thumbnails/thumb_poster.jpg", ev.ThumbnailPath)

	// The thumbnail fits inside the 300x200 box with the aspect preserved.
	thumb, _, err := image.Decode(bytes.NewReader(thumbData))
	require.NoError(t, err)
	bounds := thumb.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 300)
	assert.LessOrEqual(t, bounds.Dy(), 200)
	mockClient.AssertExpectations(t)
}

func TestGenerateThumbnailClearsStalePath(t *testing.T) {
	t.Run("NoStoredImage", func(t *testing.T) {
		svc := images.NewService(new(mocks.Client), "media", zap.NewNop())
		ev := &models.Event{ThumbnailPath: "events/thumbnails/thumb_old.jpg"}

		err := svc.GenerateThumbnail(context.Background(), ev)
		assert.Error(t, err)
		assert.Equal(t, "", ev.ThumbnailPath)
	})

	t.Run("FetchFailure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "media", "events/poster.jpg", mock.Anything).
			Return(nil, assert.AnError)

		svc := images.NewService(mockClient, "media", zap.NewNop())
		ev := &models.Event{
			ImagePath:     "events/poster.jpg",
			ThumbnailPath: "events/thumbnails/thumb_old.jpg",
		}

		err := svc.GenerateThumbnail(context.Background(), ev)
		assert.Error(t, err)
		assert.Equal(t, "", ev.ThumbnailPath)
	})
}
