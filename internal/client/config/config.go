package config

import "time"

// Config holds runtime settings for the SchoolGuard admin console.
//
// Fields:
//   - ServerHost: hostname the console targets; loopback hosts resolve to
//     the local backend, anything else to RemoteOrigin.
//   - RemoteOrigin: HTTPS origin of the deployed backend.
//   - PollInterval: how often the dashboard aggregator refreshes.
//   - SessionDBPath: location of the sqlite session database.
type Config struct {
	ServerHost    string
	RemoteOrigin  string
	PollInterval  time.Duration
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerHost = "localhost"
	c.RemoteOrigin = "https://school-backend-wzms.onrender.com"
	c.PollInterval = 30 * time.Second
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
