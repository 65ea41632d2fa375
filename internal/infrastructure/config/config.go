package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port        string        `env:"PORT,         default=8080"`
	Env         string        `env:"ENV,          default=development"`
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=168h"`
	LogLevel    string        `env:"LOG_LEVEL,    default=info"`
	CORSOrigins []string      `env:"CORS_ORIGINS, default=http://localhost:3000"`
	RateLimit   float64       `env:"RATE_LIMIT_RPS, default=10"`

	Mongo  MongoConfig
	Redis  RedisConfig
	OpenAI OpenAIConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=contentforge"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	DB       int           `env:"REDIS_DB,        default=0"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL, default=15m"`
}

type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	// BaseURL points at an OpenAI-compatible chat completions API.
	BaseURL string `env:"OPENAI_BASE_URL, default=https://api.openai.com/v1"`
	// Models is the ordered fallback roster; each model is tried once per
	// request until one returns parseable output.
	Models    []string      `env:"OPENAI_MODELS,     default=gpt-4o"`
	MaxTokens int           `env:"OPENAI_MAX_TOKENS, default=1024"`
	Timeout   time.Duration `env:"OPENAI_TIMEOUT,    default=60s"`
}

// Load reads configuration from environment variables using go-envconfig.
// A missing required variable is a startup programmer error, hence panic.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
