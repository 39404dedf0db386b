package config

import (
	"encoding/json"
	"os"

	"github.com/ivycraft/navigator/internal/flagx"
	"github.com/ivycraft/navigator/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so the file may say "1s" or an integer of nanoseconds.
type JsonConfig struct {
	StoreDriver   string          `json:"store_driver"`
	StorePath     string          `json:"store_path"`
	StoreKey      string          `json:"store_key"`
	AuthDelay     *timex.Duration `json:"auth_delay"`
	UpgradeDelay  *timex.Duration `json:"upgrade_delay"`
	GenerateDelay *timex.Duration `json:"generate_delay"`
	LogLevel      string          `json:"log_level"`
	LogFormat     string          `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c / -config.
// Only keys present in the file change cfg. Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StoreDriver != "" {
		cfg.StoreDriver = jc.StoreDriver
	}
	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.StoreKey != "" {
		cfg.StoreKey = jc.StoreKey
	}
	if jc.AuthDelay != nil {
		cfg.AuthDelay = jc.AuthDelay.Duration
	}
	if jc.UpgradeDelay != nil {
		cfg.UpgradeDelay = jc.UpgradeDelay.Duration
	}
	if jc.GenerateDelay != nil {
		cfg.GenerateDelay = jc.GenerateDelay.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
