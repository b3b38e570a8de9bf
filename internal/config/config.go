// Package config handles configuration for the auth-service, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means in-memory directory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the
//     test default in prod.
//   - TokenValidityDuration: access token lifetime.
//   - BcryptCost: work factor for password hashing; 0 uses the library default.
type Config struct {
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure and must be overridden outside tests.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
