package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	PublicDir string `env:"PUBLIC_DIR, default=public"`

	Mongo MongoConfig
	Redis RedisConfig
	Auth  AuthConfig
}

type MongoConfig struct {
	URI            string        `env:"MONGO_URI,             default=mongodb://localhost:27017"`
	Database       string        `env:"MONGO_DB,              default=webshop"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr        string        `env:"REDIS_ADDR,         default=localhost:6379"`
	DB          int           `env:"REDIS_DB,           default=0"`
	DialTimeout time.Duration `env:"REDIS_DIAL_TIMEOUT, default=5s"`
}

type AuthConfig struct {
	// Realm is advertised in the WWW-Authenticate challenge.
	Realm string `env:"AUTH_REALM, default=webshop"`
	// MaxLoginFailures is the number of failed Basic auth attempts per email
	// tolerated within FailureWindow before further attempts are refused.
	MaxLoginFailures int64         `env:"LOGIN_MAX_FAILURES,   default=10"`
	FailureWindow    time.Duration `env:"LOGIN_FAILURE_WINDOW, default=15m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
