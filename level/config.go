// Package level owns level lifecycle: sizing, maze generation, and the
// spawn/teardown of per-level entities.
package level

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neon-maze/parameter"
)

// Config tunes level progression and population density. Divisors express
// population as open-cell count divided by the divisor, so bigger levels
// hold proportionally more of everything.
type Config struct {
	InitialSize    int `yaml:"initial_size"`
	GrowthPerLevel int `yaml:"growth_per_level"`
	MaxSize        int `yaml:"max_size"`

	EnemyDivisor       int `yaml:"enemy_divisor"`
	CollectibleDivisor int `yaml:"collectible_divisor"`
	PowerUpDivisor     int `yaml:"power_up_divisor"`

	// Seed fixes the RNG stream; zero seeds from the clock
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the tuning used when no config file is given.
func DefaultConfig() Config {
	return Config{
		InitialSize:        parameter.InitialMazeSize,
		GrowthPerLevel:     parameter.MazeGrowthPerLevel,
		MaxSize:            parameter.MazeMaxSize,
		EnemyDivisor:       40,
		CollectibleDivisor: 12,
		PowerUpDivisor:     60,
	}
}

// LoadConfig reads a YAML config file over the defaults, so partial files
// only override what they name.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configs the generator or spawner cannot honor.
func (c Config) Validate() error {
	if c.InitialSize < parameter.MazeMinSize || c.InitialSize%2 == 0 {
		return fmt.Errorf("initial_size must be odd and >= %d, got %d", parameter.MazeMinSize, c.InitialSize)
	}
	if c.MaxSize < c.InitialSize {
		return fmt.Errorf("max_size %d below initial_size %d", c.MaxSize, c.InitialSize)
	}
	if c.GrowthPerLevel < 0 {
		return fmt.Errorf("growth_per_level must not be negative, got %d", c.GrowthPerLevel)
	}
	if c.EnemyDivisor <= 0 || c.CollectibleDivisor <= 0 || c.PowerUpDivisor <= 0 {
		return fmt.Errorf("population divisors must be positive")
	}
	return nil
}

// SizeForLevel returns the odd, clamped maze size for a level.
func (c Config) SizeForLevel(level int) int {
	size := c.InitialSize + (level-1)*c.GrowthPerLevel
	if size > c.MaxSize {
		size = c.MaxSize
	}
	if size%2 == 0 {
		size--
	}
	return size
}
