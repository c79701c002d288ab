package config

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Redis          RedisConfig          `mapstructure:"redis"`
	JWT            JWTConfig            `mapstructure:"jwt"`
	Log            LogConfig            `mapstructure:"log"`
	Webhook        WebhookConfig        `mapstructure:"webhook"`
	Custodian      CustodianConfig      `mapstructure:"custodian"`
	Notifier       NotifierConfig       `mapstructure:"notifier"`
	Certificates   CertificateConfig    `mapstructure:"certificates"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Pricing        PricingConfig        `mapstructure:"pricing"`
	Conversion     ConversionConfig     `mapstructure:"conversion"`
	Trail          TrailConfig          `mapstructure:"trail"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the peer address is the client address.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
}

// IsProduction reports whether the process runs in release mode.
func (s ServerConfig) IsProduction() bool {
	return s.Mode == "release"
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

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// WebhookConfig drives the inbound security gateway.
type WebhookConfig struct {
	Secret             string        `mapstructure:"secret"`
	AllowedIPs         []string      `mapstructure:"allowed_ips"`
	EnforceIPAllowlist bool          `mapstructure:"enforce_ip_allowlist"`
	RateLimit          int64         `mapstructure:"rate_limit"`
	RateWindow         time.Duration `mapstructure:"rate_window"`
	MaxTimestampDrift  time.Duration `mapstructure:"max_timestamp_drift"`
	IdempotencyTTL     time.Duration `mapstructure:"idempotency_ttl"`
	MaxGrams           float64       `mapstructure:"max_grams"`
	MaxUSD             float64       `mapstructure:"max_usd"`
	AuditBuffer        int           `mapstructure:"audit_buffer"`
	LocalCacheSize     int           `mapstructure:"local_cache_size"`
	SharedStore        string        `mapstructure:"shared_store"` // redis, local
}

// CustodianConfig configures the outbound order submission client.
type CustodianConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CallbackURL string        `mapstructure:"callback_url"`
}

type NotifierConfig struct {
	Secret          string        `mapstructure:"secret"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxResponseBody int           `mapstructure:"max_response_body"`
}

type CertificateConfig struct {
	Secret string `mapstructure:"secret"`
}

// ReconciliationConfig holds the schedule and severity policy. The percentage
// thresholds are policy values owned by the product side.
type ReconciliationConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Interval    time.Duration `mapstructure:"interval"`
	WarningPct  float64       `mapstructure:"warning_pct"`
	CriticalPct float64       `mapstructure:"critical_pct"`
	LockTTL     time.Duration `mapstructure:"lock_ttl"`
}

type PricingConfig struct {
	USDPerGram float64 `mapstructure:"usd_per_gram"`
}

type ConversionConfig struct {
	FeePct float64 `mapstructure:"fee_pct"`
}

type TrailConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GSC_ (Gold Settlement Core).
// Nested keys use underscore: GSC_DATABASE_HOST, GSC_WEBHOOK_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "gold_settlement")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "8h")
	v.SetDefault("jwt.issuer", "gold-settlement")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("webhook.secret", "")
	v.SetDefault("webhook.allowed_ips", []string{})
	v.SetDefault("webhook.enforce_ip_allowlist", false)
	v.SetDefault("webhook.rate_limit", 100)
	v.SetDefault("webhook.rate_window", "60s")
	v.SetDefault("webhook.max_timestamp_drift", "5m")
	v.SetDefault("webhook.idempotency_ttl", "24h")
	v.SetDefault("webhook.max_grams", 10000)
	v.SetDefault("webhook.max_usd", 1500000)
	v.SetDefault("webhook.audit_buffer", 1000)
	v.SetDefault("webhook.local_cache_size", 10000)
	v.SetDefault("webhook.shared_store", "redis")

	v.SetDefault("custodian.base_url", "http://localhost:9000")
	v.SetDefault("custodian.api_key", "")
	v.SetDefault("custodian.timeout", "15s")
	v.SetDefault("custodian.callback_url", "")

	v.SetDefault("notifier.secret", "")
	v.SetDefault("notifier.timeout", "10s")
	v.SetDefault("notifier.max_response_body", 1024)

	v.SetDefault("certificates.secret", "")

	v.SetDefault("reconciliation.enabled", true)
	v.SetDefault("reconciliation.interval", "1h")
	v.SetDefault("reconciliation.warning_pct", 5.0)
	v.SetDefault("reconciliation.critical_pct", 10.0)
	v.SetDefault("reconciliation.lock_ttl", "5m")

	v.SetDefault("pricing.usd_per_gram", 85.0)
	v.SetDefault("conversion.fee_pct", 0.0)
	v.SetDefault("trail.enabled", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: GSC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("GSC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Notifications share the custodian secret unless a dedicated one is set.
	if cfg.Notifier.Secret == "" {
		cfg.Notifier.Secret = cfg.Webhook.Secret
	}

	return &cfg, nil
}

// Validate rejects configurations that would run production permissively.
func (c *Config) Validate() error {
	var errs []error
	if c.Reconciliation.WarningPct > c.Reconciliation.CriticalPct {
		errs = append(errs, errors.New("reconciliation.warning_pct must not exceed critical_pct"))
	}
	if c.Webhook.RateLimit <= 0 || c.Webhook.RateWindow <= 0 {
		errs = append(errs, errors.New("webhook rate limit and window must be positive"))
	}
	for _, raw := range c.Server.TrustedProxies {
		if !validIPOrPrefix(raw) {
			errs = append(errs, fmt.Errorf("server.trusted_proxies: invalid address %q", raw))
		}
	}
	for _, raw := range c.Webhook.AllowedIPs {
		if !validIPOrPrefix(raw) {
			errs = append(errs, fmt.Errorf("webhook.allowed_ips: invalid address %q", raw))
		}
	}
	if c.Server.IsProduction() {
		if c.Webhook.Secret == "" {
			errs = append(errs, errors.New("webhook.secret is required in release mode"))
		}
		if len(c.Webhook.AllowedIPs) == 0 {
			errs = append(errs, errors.New("webhook.allowed_ips is required in release mode"))
		}
		if c.JWT.Secret == "" {
			errs = append(errs, errors.New("jwt.secret is required in release mode"))
		}
		if c.Certificates.Secret == "" {
			errs = append(errs, errors.New("certificates.secret is required in release mode"))
		}
	}
	return errors.Join(errs...)
}

func validIPOrPrefix(raw string) bool {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "/") {
		_, err := netip.ParsePrefix(raw)
		return err == nil
	}
	_, err := netip.ParseAddr(raw)
	return err == nil
}
