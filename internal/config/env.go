package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. YTPRO_QUALITY
const EnvPrefix = "YTPRO"

// Env holds settings read from the environment. The CLI uses them as flag
// defaults; the GUI reads Debug and PlaylistTimeout.
type Env struct {
	Debug     bool   `envconfig:"DEBUG"`
	Quality   string `envconfig:"QUALITY"`
	Format    string `envconfig:"FORMAT"`
	Output    string `envconfig:"OUTPUT"`
	Transcode bool   `envconfig:"TRANSCODE"`

	// zero keeps the parser's default
	PlaylistTimeout time.Duration `envconfig:"PLAYLIST_TIMEOUT"`
}

// LoadEnv reads the YTPRO_* environment variables
func LoadEnv() (*Env, error) {
	var e Env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}
	return &e, nil
}
