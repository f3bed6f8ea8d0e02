package rest

import "time"

type Config struct {
	Address         string        `env:"RUN_ADDRESS" envDefault:":8080"`
	Secret          string        `env:"SECRET_KEY" envDefault:"secret_key"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxUploadSize   int64         `env:"MAX_UPLOAD_SIZE" envDefault:"209715200"`
	CookieSecure    bool          `env:"COOKIE_SECURE" envDefault:"false"`
}
