package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/playmixer/unicredit/internal/adapters/api/rest"
	"github.com/playmixer/unicredit/internal/adapters/media"
	"github.com/playmixer/unicredit/internal/adapters/otp"
	"github.com/playmixer/unicredit/internal/adapters/store"
	"github.com/playmixer/unicredit/internal/adapters/store/database"
	"github.com/playmixer/unicredit/internal/core/marketplace"
)

type Config struct {
	Rest        *rest.Config
	Store       *store.Config
	Marketplace *marketplace.Config
	OTP         *otp.Config
	Media       *media.Config
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath     string `env:"LOG_PATH"`
}

func Init() (*Config, error) {
	cfg := &Config{
		Rest: &rest.Config{},
		Store: &store.Config{
			Database: &database.Config{},
		},
		Marketplace: &marketplace.Config{},
		OTP:         &otp.Config{},
		Media:       &media.Config{},
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed load enviorements from file: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return cfg, fmt.Errorf("failed parse env: %w", err)
	}

	return cfg, nil
}

// ParseFlags overrides env values with command line flags.
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("unicredit", flag.ContinueOnError)
	fs.StringVar(&cfg.Rest.Address, "a", cfg.Rest.Address, "address listen")
	fs.StringVar(&cfg.Store.Database.DSN, "d", cfg.Store.Database.DSN, "database dsn")
	fs.StringVar(&cfg.OTP.RedisAddress, "r", cfg.OTP.RedisAddress, "redis address for otp codes")
	fs.StringVar(&cfg.Media.UploadURL, "m", cfg.Media.UploadURL, "media upload url")
	fs.BoolVar(&cfg.Marketplace.DemoMode, "demo", cfg.Marketplace.DemoMode, "accept the fixed demo otp")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("failed parse flags: %w", err)
	}
	return nil
}
