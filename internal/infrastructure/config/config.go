package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`
	SignUpCode string        `env:"SIGNUP_CODE, default=agency2025"`

	Mongo         MongoConfig
	Redis         RedisConfig
	Hotelbeds     HotelbedsConfig
	Aviationstack AviationstackConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=travel_api"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type HotelbedsConfig struct {
	APIKey    string `env:"HOTELBEDS_API_KEY"`
	APISecret string `env:"HOTELBEDS_API_SECRET"`
	BaseURL   string `env:"HOTELBEDS_BASE_URL, default=https://api.test.hotelbeds.com/hotel-api/1.0"`
}

type AviationstackConfig struct {
	AccessKey string `env:"AVIATIONSTACK_ACCESS_KEY"`
	BaseURL   string `env:"AVIATIONSTACK_BASE_URL, default=http://api.aviationstack.com/v1"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	return &cfg
}
