package media

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

type Config struct {
	UploadURL    string        `env:"MEDIA_UPLOAD_URL"`
	UploadPreset string        `env:"MEDIA_UPLOAD_PRESET"`
	Dir          string        `env:"MEDIA_DIR" envDefault:"./media"`
	BaseURL      string        `env:"MEDIA_BASE_URL" envDefault:"http://localhost:8080/media"`
	Timeout      time.Duration `env:"MEDIA_TIMEOUT" envDefault:"60s"`
	Cooldown     time.Duration `env:"MEDIA_COOLDOWN" envDefault:"30s"`
}

// New picks the remote media host when an upload url is configured and the
// local directory otherwise.
func New(cfg *Config, log *zap.Logger) (marketplace.Media, error) {
	if cfg.UploadURL != "" {
		log.Info("media uploads go to remote host", zap.String("url", cfg.UploadURL))
		return NewHTTPStore(cfg, Logger(log)), nil
	}

	s, err := NewDiskStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed initialize media store: %w", err)
	}
	log.Info("media uploads kept on disk", zap.String("dir", cfg.Dir))

	return s, nil
}

// thumbnailURL derives the poster frame url the media host serves for a video.
func thumbnailURL(mediaURL string) string {
	ext := path.Ext(mediaURL)
	if ext == "" {
		return mediaURL + ".jpg"
	}
	return strings.TrimSuffix(mediaURL, ext) + ".jpg"
}
