package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Settlement SettlementConfig `mapstructure:"settlement"`
	Processor  ProcessorConfig  `mapstructure:"processor"`
	Seed       SeedConfig       `mapstructure:"seed"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
)

// StoreConfig selects the key-value backend that persists the merchant
// directory and session.
type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	KeyPrefix  string `mapstructure:"key_prefix"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SettlementConfig controls the platform fee and charge presentation.
type SettlementConfig struct {
	FeeRateBasisPoints  int    `mapstructure:"fee_rate_bps"`
	Currency            string `mapstructure:"currency"`
	Country             string `mapstructure:"country"`
	MerchantDisplayName string `mapstructure:"merchant_display_name"`
	// RequireOnboarding routes charges directly until the merchant's
	// sub-account has finished onboarding.
	RequireOnboarding bool `mapstructure:"require_onboarding"`
}

// Processor modes.
const (
	ProcessorModeSimulated = "simulated"
	ProcessorModeDisabled  = "disabled"
)

type ProcessorConfig struct {
	Mode    string `mapstructure:"mode"`
	Outcome string `mapstructure:"outcome"` // succeeded, canceled, failed
}

// SeedMerchant is a merchant inserted into the directory on startup when
// no merchant with the same username is persisted yet.
type SeedMerchant struct {
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	MerchantName string `mapstructure:"merchant_name"`
}

type SeedConfig struct {
	Merchants []SeedMerchant `mapstructure:"merchants"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: STF_ (storefront).
// Nested keys use underscore: STF_STORE_DRIVER, STF_SETTLEMENT_FEE_RATE_BPS, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("store.driver", StoreDriverSQLite)
	v.SetDefault("store.sqlite_path", "storefront.db")
	v.SetDefault("store.key_prefix", "storefront:")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "storefront")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("settlement.fee_rate_bps", 100)
	v.SetDefault("settlement.currency", "usd")
	v.SetDefault("settlement.country", "US")
	v.SetDefault("settlement.merchant_display_name", "Storefront")
	v.SetDefault("settlement.require_onboarding", false)
	v.SetDefault("processor.mode", ProcessorModeSimulated)
	v.SetDefault("processor.outcome", "succeeded")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: STF_STORE_DRIVER -> store.driver
	v.SetEnvPrefix("STF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverSQLite, StoreDriverRedis, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Settlement.FeeRateBasisPoints < 0 || c.Settlement.FeeRateBasisPoints > 10000 {
		return fmt.Errorf("settlement.fee_rate_bps must be within [0, 10000], got %d", c.Settlement.FeeRateBasisPoints)
	}
	if c.Settlement.Currency == "" {
		return fmt.Errorf("settlement.currency is required")
	}
	switch c.Processor.Mode {
	case ProcessorModeSimulated, ProcessorModeDisabled:
	default:
		return fmt.Errorf("unknown processor mode %q", c.Processor.Mode)
	}
	return nil
}
