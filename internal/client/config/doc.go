// Package config loads runtime configuration for the SchoolGuard admin
// console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   hostname of the backend to target (loopback hosts route to
//	            the local backend)
//	-i int      dashboard poll interval (seconds)
//	-d string   path to the sqlite session database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "30s" or integer nanoseconds:
//
//	{
//	  "server_host": "localhost",
//	  "remote_origin": "https://school-backend-wzms.onrender.com",
//	  "poll_interval": "30s",
//	  "session_db_path": "session.db"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the console
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
