// Package config defines service configuration and its loading chain.
//
// Conventions follow the rest of the repo: defaults come from New,
// Load layers an optional YAML file and GOLAZO_* environment variables
// on top, and external errors are wrapped via this package's sentinels.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// DataDir is the directory holding matches.csv and tournaments.csv.
	DataDir string `koanf:"data_dir"`

	// DefaultTeam1 and DefaultTeam2 seed the team comparison when the
	// caller omits the query parameters.
	DefaultTeam1 string `koanf:"default_team1"`
	DefaultTeam2 string `koanf:"default_team2"`

	// DefaultTopLimit is used when a top-teams request omits limit or
	// sends one that does not parse.
	DefaultTopLimit int `koanf:"default_top_limit"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":8090",
		DataDir:         "data",
		DefaultTeam1:    "Brazil",
		DefaultTeam2:    "Germany",
		DefaultTopLimit: 10,
	}
}
