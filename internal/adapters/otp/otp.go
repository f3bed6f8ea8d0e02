package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/playmixer/unicredit/internal/core/marketplace"
	"go.uber.org/zap"
)

type Config struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SendLimit     int64         `env:"OTP_SEND_LIMIT" envDefault:"5"`
	SendWindow    time.Duration `env:"OTP_SEND_WINDOW" envDefault:"10m"`
	Workers       int           `env:"OTP_WORKERS" envDefault:"2"`
	QueueSize     int           `env:"OTP_QUEUE_SIZE" envDefault:"100"`
}

const keyNamespace = "unicredit:otp"

func codeKey(phone string) string {
	return keyNamespace + ":code:" + phone
}

func rateKey(phone string) string {
	return keyNamespace + ":rate:" + phone
}

// New returns a redis backed code store when an address is configured and
// an in-process store otherwise.
func New(ctx context.Context, cfg *Config, log *zap.Logger) (marketplace.CodeStore, error) {
	if cfg.RedisAddress == "" {
		log.Info("otp codes kept in memory")
		return NewMemoryStore(cfg), nil
	}

	s, err := NewRedisStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed initialize otp store: %w", err)
	}
	log.Info("otp codes kept in redis", zap.String("address", cfg.RedisAddress))

	return s, nil
}
