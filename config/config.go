package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Prefix of the environment variables read by Load
const Prefix = "RESIZER"

// Version is set by -ldflags at build time
var Version = "dev"

// Settings ...
type Settings struct {
	Develop      bool   `envconfig:"DEVELOP"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"warn"`
	TargetSize   int    `envconfig:"TARGET_SIZE" default:"1920"`
	JPEGQuality  int    `envconfig:"JPEG_QUALITY" default:"80"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	WindowWidth  int    `envconfig:"WINDOW_WIDTH" default:"620"`
	WindowHeight int    `envconfig:"WINDOW_HEIGHT" default:"750"`
}

// Load reads RESIZER_* variables into a fresh Settings
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process(Prefix, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
