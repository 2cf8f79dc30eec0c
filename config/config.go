// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// Connection pool limits, mirroring the knobs the hosted database
	// plan is sized for.
	PoolSize        int
	MaxOverflow     int
	PoolRecycleSecs int

	// Ranking
	PoolPolicy   string // "cooccurrence" or "demographic"
	AgeTolerance int    // birth-year window for the demographic policy

	// Server
	Debug        bool
	Port         string
	TLSDomains   []string
	AllowOrigins []string

	// MySQL – used only by cmd/ingest.
	MySQLDSN string
}

// Pool policy names accepted in POOL_POLICY.
const (
	PolicyCoOccurrence = "cooccurrence"
	PolicyDemographic  = "demographic"
)

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DB_USER", "swim")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "swimdata")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("POOL_SIZE", 5)
	v.SetDefault("MAX_OVERFLOW", 5)
	v.SetDefault("POOL_RECYCLE", 300)
	v.SetDefault("POOL_POLICY", PolicyCoOccurrence)
	v.SetDefault("AGE_TOLERANCE", 1)
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("API_ALLOW_ORIGINS", "*")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DatabaseURL:     v.GetString("DATABASE_URL"),
		DBUser:          v.GetString("DB_USER"),
		DBPass:          v.GetString("DB_PASS"),
		DBHost:          v.GetString("DB_HOST"),
		DBPort:          v.GetString("DB_PORT"),
		DBName:          v.GetString("DB_NAME"),
		DBSSLMode:       v.GetString("DB_SSLMODE"),
		PoolSize:        v.GetInt("POOL_SIZE"),
		MaxOverflow:     v.GetInt("MAX_OVERFLOW"),
		PoolRecycleSecs: v.GetInt("POOL_RECYCLE"),
		PoolPolicy:      v.GetString("POOL_POLICY"),
		AgeTolerance:    v.GetInt("AGE_TOLERANCE"),
		Debug:           v.GetBool("DEBUG"),
		Port:            v.GetString("PORT"),
		TLSDomains:      splitTrimmed(v.GetString("TLS_DOMAINS")),
		AllowOrigins:    splitTrimmed(v.GetString("API_ALLOW_ORIGINS")),
		MySQLDSN:        v.GetString("MYSQL_DSN"),
	}

	cfg.validate()
	return cfg
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func (c *Config) validate() {
	if c.DatabaseURL == "" && c.DBPass == "" {
		log.Fatal("config: DATABASE_URL or DB_PASS must be set")
	}
	if c.PoolPolicy != PolicyCoOccurrence && c.PoolPolicy != PolicyDemographic {
		log.Fatalf("config: unknown POOL_POLICY %q", c.PoolPolicy)
	}
	if c.PoolSize < 1 {
		log.Fatal("config: POOL_SIZE must be at least 1")
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		log.Fatal("config: TLS_DOMAINS must be set unless DEBUG=true")
	}
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
