package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSqlite   = "sqlite"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	Storage        string `toml:"storage"`
	SeedSampleData bool   `toml:"seed_sample_data"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	SqlitePath     string `toml:"sqlite_path"`
	// redis, used for the theme store and command rate limiting
	RedisEnabled bool   `toml:"redis_enabled"`
	RedisHost    string `toml:"redis_host"`
	RedisPort    string `toml:"redis_port"`

	CommandRateLimitPerMin int      `toml:"command_rate_limit_per_min"`
	DashboardCacheTTLSec   int      `toml:"dashboard_cache_ttl_sec"`
	WeightTrendDays        int      `toml:"weight_trend_days"`
	Timezone               string   `toml:"timezone"`
	AllowedOrigins         []string `toml:"allowed_origins"`

	User      User      `toml:"user"`
	DietGoals DietGoals `toml:"diet_goals"`
}

type User struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

type DietGoals struct {
	Calories int `toml:"calories"`
	CarbsG   int `toml:"carbs_g"`
	ProteinG int `toml:"protein_g"`
	FatG     int `toml:"fat_g"`
}

// Secrets are never kept in the TOML file.
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	RedisPassword    string `env:"BEFIT_REDIS_PASS"`
	PostgresPassword string `env:"BEFIT_POSTGRES_PASS"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=befit-backend"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return loadSecrets(ctx, envconfig.OsLookuper())
}

func loadSecrets(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.Storage == "" {
		c.Storage = StorageMemory
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.CommandRateLimitPerMin == 0 {
		c.CommandRateLimitPerMin = 60
	}
	if c.WeightTrendDays == 0 {
		c.WeightTrendDays = 7
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.User.Name == "" {
		c.User.Name = "Alan Nhan"
	}
	if c.User.Email == "" {
		c.User.Email = "alan@example.com"
	}
	if c.DietGoals == (DietGoals{}) {
		c.DietGoals = DietGoals{Calories: 2000, CarbsG: 250, ProteinG: 150, FatG: 70}
	}
}

func (c *Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
			return errors.New("postgres storage needs postgres_host, postgres_port and postgres_db_name")
		}
	case StorageSqlite:
		if c.SqlitePath == "" {
			return errors.New("sqlite storage needs sqlite_path")
		}
	default:
		return fmt.Errorf("unknown storage: %s", c.Storage)
	}

	if c.RedisEnabled && (c.RedisHost == "" || c.RedisPort == "") {
		return errors.New("redis enabled without redis_host / redis_port")
	}
	if c.DietGoals.Calories < 0 || c.DietGoals.CarbsG < 0 || c.DietGoals.ProteinG < 0 || c.DietGoals.FatG < 0 {
		return errors.New("diet goals cannot be negative")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) DashboardCacheTTL() time.Duration {
	return time.Duration(c.DashboardCacheTTLSec) * time.Second
}

// FirstName is used for the "Hi, <name>" greeting.
func (u User) FirstName() string {
	name, _, _ := strings.Cut(strings.TrimSpace(u.Name), " ")
	return name
}
