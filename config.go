package asteroids

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the tunables of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	CellSize float64 `json:"cellSize"`

	// TickMillis converts elapsed wall time into simulation ticks.
	TickMillis float64 `json:"tickMillis"`
	// MaxDelta caps the ticks simulated in one frame so a stalled host does
	// not tunnel actors through each other.
	MaxDelta float64 `json:"maxDelta"`

	BootAsteroids  int `json:"bootAsteroids"`
	StartLives     int `json:"startLives"`
	StartAsteroids int `json:"startAsteroids"`
	MaxAsteroids   int `json:"maxAsteroids"`
	// SpawnAttempts bounds the search for a clear spot per asteroid.
	SpawnAttempts int `json:"spawnAttempts"`

	// Seed seeds the random source. Zero picks a time-based seed.
	Seed       uint64 `json:"seed"`
	StartMuted bool   `json:"startMuted"`
	DebugStats bool   `json:"debugStats"`
}

// DefaultConfig returns the arcade defaults: an 800x600 field with 60 pixel
// buckets and 30ms ticks.
func DefaultConfig() Config {
	return Config{
		Width:          800,
		Height:         600,
		CellSize:       60,
		TickMillis:     30,
		MaxDelta:       4,
		BootAsteroids:  5,
		StartLives:     2,
		StartAsteroids: 2,
		MaxAsteroids:   12,
		SpawnAttempts:  200,
		StartMuted:     true,
	}
}

// LoadConfig overlays JSON data on DefaultConfig and validates the result.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a JSON config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return LoadConfig(data)
}

// Validate checks that every field is in range.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v", ErrInvalidConfig, c.CellSize)
	case c.TickMillis <= 0:
		return fmt.Errorf("%w: tick length %v", ErrInvalidConfig, c.TickMillis)
	case c.MaxDelta <= 0:
		return fmt.Errorf("%w: max delta %v", ErrInvalidConfig, c.MaxDelta)
	case c.BootAsteroids < 0 || c.StartAsteroids < 0:
		return fmt.Errorf("%w: negative asteroid count", ErrInvalidConfig)
	case c.MaxAsteroids < c.StartAsteroids:
		return fmt.Errorf("%w: max asteroids %d below start count %d", ErrInvalidConfig, c.MaxAsteroids, c.StartAsteroids)
	case c.StartLives < 0:
		return fmt.Errorf("%w: start lives %d", ErrInvalidConfig, c.StartLives)
	case c.SpawnAttempts < 1:
		return fmt.Errorf("%w: spawn attempts %d", ErrInvalidConfig, c.SpawnAttempts)
	}
	return nil
}
