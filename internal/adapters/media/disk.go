package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore saves videos under a local directory served by the api.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(cfg *Config) (*DiskStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed create media dir: %w", err)
	}
	return &DiskStore{
		dir:     cfg.Dir,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Upload stores the payload under a generated name. Local files get no
// thumbnail.
func (s *DiskStore) Upload(_ context.Context, name, _ string, payload io.Reader) (string, string, error) {
	fileName := uuid.NewString() + strings.ToLower(filepath.Ext(filepath.Base(name)))

	f, err := os.Create(filepath.Join(s.dir, fileName))
	if err != nil {
		return "", "", fmt.Errorf("failed create media file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, payload); err != nil {
		return "", "", fmt.Errorf("failed write media file: %w", err)
	}

	return s.baseURL + "/" + fileName, "", nil
}
