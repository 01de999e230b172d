// Package config handles node-level runtime configuration.
//
// There are no protocol/consensus parameters to configure here: block
// size, coinbase count, and the crypto contract are fixed constants of
// the ledger, not per-node knobs. Only operational settings — currently
// just logging — vary between nodes.
package config

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Config holds node-specific runtime configuration.
type Config struct {
	Log LogConfig
}

// Default returns the default node configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
