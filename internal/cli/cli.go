// Package cli holds the flag and logging setup shared by the asteroids
// commands.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/phanxgames/asteroids"
)

// Flags are the options every command accepts.
type Flags struct {
	ConfigPath string
	Seed       uint64
	LogLevel   string
}

// Register adds the common flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "JSON config file overlaying the defaults")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed, 0 for time based")
	fs.StringVar(&f.LogLevel, "log-level", "info", "debug, info, warn or error")
}

// Config loads the config file, if any, and applies the seed flag.
func (f *Flags) Config() (asteroids.Config, error) {
	cfg := asteroids.DefaultConfig()
	if f.ConfigPath != "" {
		var err error
		if cfg, err = asteroids.LoadConfigFile(f.ConfigPath); err != nil {
			return asteroids.Config{}, err
		}
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	return cfg, nil
}

// Logger installs a text logger writing to w at the requested level.
func (f *Flags) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(f.LogLevel)
	if err != nil {
		return nil, err
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	asteroids.SetLogger(l)
	return l, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
