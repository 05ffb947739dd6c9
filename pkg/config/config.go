package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Catalog CatalogConfig
	Redis   RedisConfig
	CORS    CORSConfig
	Log     LogConfig
}

// CatalogConfig governs the holiday resolution window and snapshot lifecycle.
type CatalogConfig struct {
	// WindowYears is the number of civil years, starting at the current
	// year, for which holidays are resolved.
	WindowYears int
	// DefaultLocale is used when a request carries no locale parameter.
	DefaultLocale string
	// RefreshSpec is the cron expression for the nightly snapshot rebuild.
	RefreshSpec string
	// CacheTTL bounds the life of redis-cached snapshots.
	CacheTTL time.Duration
	// UpcomingLimit is the default size of the upcoming-holiday projection.
	UpcomingLimit int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Catalog = CatalogConfig{
		WindowYears:   v.GetInt("CATALOG_WINDOW_YEARS"),
		DefaultLocale: v.GetString("CATALOG_DEFAULT_LOCALE"),
		RefreshSpec:   v.GetString("CATALOG_REFRESH_SPEC"),
		CacheTTL:      parseDuration(v.GetString("CATALOG_CACHE_TTL"), 26*time.Hour),
		UpcomingLimit: v.GetInt("CATALOG_UPCOMING_LIMIT"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("REDIS_ENABLED"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("CATALOG_WINDOW_YEARS", 6)
	v.SetDefault("CATALOG_DEFAULT_LOCALE", "diaspora")
	v.SetDefault("CATALOG_REFRESH_SPEC", "@midnight")
	v.SetDefault("CATALOG_CACHE_TTL", "26h")
	v.SetDefault("CATALOG_UPCOMING_LIMIT", 5)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
