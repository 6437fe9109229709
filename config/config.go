package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// PathEnv overrides the config file location.
const PathEnv = "TECHIMPACT_CONFIG"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Cache     CacheConfig     `koanf:"cache"`
	Partials  PartialsConfig  `koanf:"partials"`
	Leads     LeadsConfig     `koanf:"leads"`
	Notify    NotifyConfig    `koanf:"notify"`
	Tiers     TiersConfig     `koanf:"tiers"`
}

type ServerConfig struct {
	Address      string        `koanf:"address"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "console" or "json"
}

type RateLimitConfig struct {
	Capacity int           `koanf:"capacity"`
	Refill   time.Duration `koanf:"refill"`
}

// CacheConfig selects Redis when RedisAddr is set, memory otherwise.
type CacheConfig struct {
	RedisAddr string        `koanf:"redis_addr"`
	TTL       time.Duration `koanf:"ttl"`
}

// PartialsConfig reads partials from BaseURL when it is set, otherwise from Dir.
type PartialsConfig struct {
	Dir     string `koanf:"dir"`
	BaseURL string `koanf:"base_url"`
}

type LeadsConfig struct {
	PostgresDSN string `koanf:"postgres_dsn"`
}

type NotifyConfig struct {
	SendGridAPIKey string `koanf:"sendgrid_api_key"`
	From           string `koanf:"from"`
	To             string `koanf:"to"`
}

type TiersConfig struct {
	File string `koanf:"file"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "console"},
		RateLimit: RateLimitConfig{
			Capacity: 30,
			Refill:   time.Minute,
		},
		Cache:    CacheConfig{TTL: 10 * time.Minute},
		Partials: PartialsConfig{Dir: "partials"},
	}
}

// Path returns the config file named by TECHIMPACT_CONFIG, or configs/config.json.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return filepath.Join("configs", "config.json")
}

// Load reads the JSON file at path over the defaults. A missing file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	return &cfg, nil
}
