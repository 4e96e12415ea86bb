// Package config loads service settings from defaults, an optional YAML
// file, an optional .env file and PERFUMES_* environment variables, in
// increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

const EnvPrefix = "PERFUMES_"

type Config struct {
	HTTP      HTTPConfig      `koanf:"http"`
	Log       LogConfig       `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Seed      SeedConfig      `koanf:"seed"`
}

type HTTPConfig struct {
	Port    int `koanf:"port"`
	Timeout struct {
		Read     time.Duration `koanf:"read"`
		Write    time.Duration `koanf:"write"`
		Idle     time.Duration `koanf:"idle"`
		Header   time.Duration `koanf:"header"`
		Shutdown time.Duration `koanf:"shutdown"`
	} `koanf:"timeout"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Token   string `koanf:"token"`
}

// RateLimitConfig bounds mutating requests per client IP. Zero writes
// disables the limiter.
type RateLimitConfig struct {
	Writes     int           `koanf:"writes"`
	Window     time.Duration `koanf:"window"`
	TrustProxy bool          `koanf:"trustproxy"`
}

type SeedConfig struct {
	Enabled bool `koanf:"enabled"`
}

func defaults() map[string]any {
	return map[string]any{
		"http.port":             8080,
		"http.timeout.read":     5 * time.Second,
		"http.timeout.write":    10 * time.Second,
		"http.timeout.idle":     60 * time.Second,
		"http.timeout.header":   5 * time.Second,
		"http.timeout.shutdown": 10 * time.Second,
		"log.level":             "info",
		"metrics.enabled":       false,
		"metrics.token":         "",
		"ratelimit.writes":      0,
		"ratelimit.window":      time.Minute,
		"ratelimit.trustproxy":  false,
		"seed.enabled":          true,
	}
}

// Load reads configFile and envFile when they exist; missing files are not
// an error.
func Load(configFile, envFile string) (Config, error) {
	var cfg Config
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return cfg, fmt.Errorf("load defaults: %w", err)
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", configFile, err)
		}
	}

	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			m := make(map[string]any, len(vars))
			for key, v := range vars {
				if strings.HasPrefix(key, EnvPrefix) {
					m[envKey(key)] = v
				}
			}
			if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
				return cfg, fmt.Errorf("load %s: %w", envFile, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// envKey maps PERFUMES_HTTP_TIMEOUT_READ to http.timeout.read.
func envKey(key string) string {
	key = strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "_", ".")
}

func (c Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP server port: %d", c.HTTP.Port)
	}
	t := c.HTTP.Timeout
	for name, d := range map[string]time.Duration{
		"read":     t.Read,
		"write":    t.Write,
		"idle":     t.Idle,
		"header":   t.Header,
		"shutdown": t.Shutdown,
	} {
		if d <= 0 {
			return fmt.Errorf("invalid HTTP %s timeout: %v", name, d)
		}
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.RateLimit.Writes < 0 {
		return fmt.Errorf("invalid rate limit: %d", c.RateLimit.Writes)
	}
	if c.RateLimit.Writes > 0 && c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate limit window: %v", c.RateLimit.Window)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "http.port=%d ", c.HTTP.Port)
	fmt.Fprintf(&b, "http.timeout.read=%s http.timeout.write=%s ", c.HTTP.Timeout.Read, c.HTTP.Timeout.Write)
	fmt.Fprintf(&b, "log.level=%s metrics.enabled=%t ", c.Log.Level, c.Metrics.Enabled)
	fmt.Fprintf(&b, "ratelimit.writes=%d seed.enabled=%t", c.RateLimit.Writes, c.Seed.Enabled)
	return b.String()
}
