package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ecommerce/auth-service/internal/flagx"
	"github.com/ecommerce/auth-service/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. It uses timex.Duration
// for the token lifetime, which accepts both string values such as "24h"
// and integer nanoseconds. After unmarshalling, its fields are copied into
// the runtime Config.
type JsonConfig struct {
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c/-config command-line flags; when
// neither is set, no file is loaded. Unreadable or invalid files panic, as
// a misconfigured process must not start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.BcryptCost = c.BcryptCost
}
