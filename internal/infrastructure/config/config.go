package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"` // no default: startup fails when unset
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type StoreConfig struct {
	// Driver selects the persistence backend: "jsonfile" or "mongo".
	Driver  string `env:"STORE_DRIVER, default=jsonfile"`
	DataDir string `env:"DATA_DIR,     default=./data"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=movie_catalog"`
}

type RedisConfig struct {
	// Addr empty = Redis disabled (no login throttling, no redis readiness check).
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
