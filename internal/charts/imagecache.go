package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bobmcallan/folio/internal/common"
)

// ImageCache stores rendered chart PNGs on disk. Each chart key keeps
// one file; writing a newer image for the same key removes the older
// ones.
type ImageCache struct {
	dir    string
	logger *common.Logger
}

// NewImageCache creates an ImageCache that stores images under dir.
func NewImageCache(dir string, logger *common.Logger) *ImageCache {
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("Failed to create image cache directory")
	}
	return &ImageCache{dir: dir, logger: logger}
}

// ImageName generates a cache filename for a chart key. The uuid
// suffix keeps image viewers from serving a stale cached file after a
// rewrite.
func ImageName(key string) string {
	ts := time.Now().Format("20060102-1504")
	return fmt.Sprintf("%s-%s-%s.png", strings.ToLower(key), ts, uuid.NewString()[:8])
}

// Put writes image data to disk under a fresh name for key and returns
// the absolute file path. Older images for the same key are removed.
func (c *ImageCache) Put(key string, data []byte) (string, error) {
	c.cleanOld(key)

	name := ImageName(key)
	path := filepath.Join(c.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write image %s: %w", name, err)
	}

	c.logger.Debug().Str("name", name).Int("bytes", len(data)).Msg("Cached chart image")
	return path, nil
}

// Remove deletes every image stored for key.
func (c *ImageCache) Remove(key string) {
	c.cleanOld(key)
}

// cleanOld removes all images with the key's prefix.
func (c *ImageCache) cleanOld(key string) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	prefix := strings.ToLower(key) + "-"
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
				c.logger.Warn().Err(err).Str("name", e.Name()).Msg("Failed to remove stale chart image")
			}
		}
	}
}
