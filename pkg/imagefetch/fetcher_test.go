package imagefetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/pkg/httpclient"

	"github.com/stretchr/testify/assert"
)

func TestAttach_DownloadsIntoMediaRoot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("jpeg-bytes"))
	}))
	defer srv.Close()

	mediaRoot := t.TempDir()
	fetcher := NewFetcher(httpclient.New(logger.NewNoopLogger()), mediaRoot, logger.NewNoopLogger())

	image := &entity.ExternalImage{URL: srv.URL + "/photos/42.jpeg"}
	fetcher.Attach(context.Background(), image)

	assert.Equal(t, filepath.Join("images", "42.jpeg"), image.ImagePath)

	data, err := os.ReadFile(filepath.Join(mediaRoot, image.ImagePath))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestAttach_DownloadFailureLeavesPathEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	fetcher := NewFetcher(httpclient.New(logger.NewNoopLogger()), t.TempDir(), logger.NewNoopLogger())

	image := &entity.ExternalImage{URL: srv.URL + "/missing.jpeg"}
	fetcher.Attach(context.Background(), image)

	assert.Empty(t, image.ImagePath)
}

func TestAttach_SkipsWithoutURL(t *testing.T) {
	fetcher := NewFetcher(httpclient.New(logger.NewNoopLogger()), t.TempDir(), logger.NewNoopLogger())

	image := &entity.ExternalImage{}
	fetcher.Attach(context.Background(), image)

	assert.Empty(t, image.ImagePath)
}

func TestAttach_SkipsWhenAlreadyAttached(t *testing.T) {
	// No server: a download attempt would fail loudly.
	fetcher := NewFetcher(httpclient.New(logger.NewNoopLogger()), t.TempDir(), logger.NewNoopLogger())

	image := &entity.ExternalImage{
		URL:       "http://127.0.0.1:1/photo.jpeg",
		ImagePath: "images/photo.jpeg",
	}
	fetcher.Attach(context.Background(), image)

	assert.Equal(t, "images/photo.jpeg", image.ImagePath)
}
