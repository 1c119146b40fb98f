package config

import "time"

// Config holds runtime settings for the bank client.
type Config struct {
	// ServerURL is the base URL of the bank API, without trailing slash.
	ServerURL string `env:"BANK_SERVER_URL"`
	// RequestTimeout bounds every single API call.
	RequestTimeout time.Duration `env:"BANK_REQUEST_TIMEOUT"`
	// SessionDBPath is the SQLite file that keeps the logged-in identity
	// across restarts.
	SessionDBPath string `env:"BANK_SESSION_DB"`
	LogLevel      string `env:"BANK_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 5 * time.Second
	c.SessionDBPath = "session.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, JSON, environment and flags,
// in that order of precedence (last wins).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
