package config

import (
	"time"

	"github.com/ivycraft/navigator/internal/common"
)

// Store drivers understood by storage.Open.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

// Config holds runtime settings for the IvyCraft client.
//
// Fields:
//   - StoreDriver: credential store backend (sqlite, bolt or memory).
//   - StorePath: file holding the credential store (ignored by memory).
//   - StoreKey: slot name of the session record.
//   - AuthDelay: simulated latency of login and signup.
//   - UpgradeDelay: simulated latency of the premium subscribe flow.
//   - GenerateDelay: simulated latency of tips, essay feedback and course plans.
//   - LogLevel / LogFormat: slog handler settings.
type Config struct {
	StoreDriver   string        `env:"IVYCRAFT_STORE_DRIVER"`
	StorePath     string        `env:"IVYCRAFT_STORE_PATH"`
	StoreKey      string        `env:"IVYCRAFT_STORE_KEY"`
	AuthDelay     time.Duration `env:"IVYCRAFT_AUTH_DELAY"`
	UpgradeDelay  time.Duration `env:"IVYCRAFT_UPGRADE_DELAY"`
	GenerateDelay time.Duration `env:"IVYCRAFT_GENERATE_DELAY"`
	LogLevel      string        `env:"IVYCRAFT_LOG_LEVEL"`
	LogFormat     string        `env:"IVYCRAFT_LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreDriver = DriverSQLite
	c.StorePath = "ivycraft.db"
	c.StoreKey = common.DefaultCredentialKey
	c.AuthDelay = time.Second
	c.UpgradeDelay = 2 * time.Second
	c.GenerateDelay = 2 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, a JSON file (if given) and command-line flags. Later
// sources take precedence over earlier ones. Environment errors are returned;
// JSON and flag errors panic, like the entrypoint expects.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseJson(cfg)
	parseFlags(cfg)
	return cfg, nil
}
