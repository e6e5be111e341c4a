package imagefetch

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"banner-chat-be/internal/entity"
	"banner-chat-be/internal/pkg/logger"
	"banner-chat-be/pkg/httpclient"
)

// Fetcher eagerly downloads an image's source URL into the media root
// before the row is first saved. Download failure is logged and leaves
// ImagePath unset; it never aborts the save.
type Fetcher struct {
	client    *httpclient.Client
	mediaRoot string
	logger    logger.ILogger
}

func NewFetcher(client *httpclient.Client, mediaRoot string, log logger.ILogger) *Fetcher {
	return &Fetcher{
		client:    client,
		mediaRoot: mediaRoot,
		logger:    log,
	}
}

func (f *Fetcher) Attach(ctx context.Context, image *entity.ExternalImage) {
	if image.URL == "" || image.ImagePath != "" {
		return
	}

	data, err := f.client.GetBytes(ctx, image.URL)
	if err != nil {
		f.logger.Error("imagefetch", "Failed to download image", map[string]interface{}{
			"url":   image.URL,
			"error": err.Error(),
		})
		return
	}

	parsed, err := url.Parse(image.URL)
	if err != nil {
		f.logger.Error("imagefetch", "Failed to parse image URL", map[string]interface{}{
			"url":   image.URL,
			"error": err.Error(),
		})
		return
	}

	fileName := path.Base(parsed.Path)
	relPath := filepath.Join("images", fileName)
	absPath := filepath.Join(f.mediaRoot, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		f.logger.Error("imagefetch", "Failed to create media directory", map[string]interface{}{
			"path":  absPath,
			"error": err.Error(),
		})
		return
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		f.logger.Error("imagefetch", "Failed to write image file", map[string]interface{}{
			"path":  absPath,
			"error": err.Error(),
		})
		return
	}

	image.ImagePath = relPath
}
