package store

import (
	"context"
	"fmt"

	"github.com/playmixer/unicredit/internal/adapters/store/database"
	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

type Config struct {
	Database *database.Config
}

type Store interface {
	marketplace.Store
	CloseDB() error
}

func New(ctx context.Context, cfg *Config, log *zap.Logger) (Store, error) {
	s, err := database.New(ctx, cfg.Database, database.Logger(log))
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return s, nil
}
