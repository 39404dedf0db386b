// Package config loads runtime configuration for the IvyCraft client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. IVYCRAFT_* environment variables (see parseEnv).
//  3. Optional JSON file selected with -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override everything else.
//
// Supported flags
//
//	-s string     credential store driver: sqlite, bolt or memory
//	-p string     credential store file
//	-d duration   simulated login/signup latency
//	-l string     log level
//
// # JSON schema
//
//	{
//	  "store_driver": "bolt",
//	  "store_path": "state/ivycraft.bolt",
//	  "store_key": "ivycraft_user",
//	  "auth_delay": "1s",
//	  "upgrade_delay": "2s",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
package config
