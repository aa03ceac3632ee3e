package level

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"even initial size", func(c *Config) { c.InitialSize = 16 }},
		{"initial size too small", func(c *Config) { c.InitialSize = 3 }},
		{"max below initial", func(c *Config) { c.MaxSize = c.InitialSize - 2 }},
		{"negative growth", func(c *Config) { c.GrowthPerLevel = -1 }},
		{"zero enemy divisor", func(c *Config) { c.EnemyDivisor = 0 }},
		{"zero collectible divisor", func(c *Config) { c.CollectibleDivisor = 0 }},
		{"zero powerup divisor", func(c *Config) { c.PowerUpDivisor = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSizeForLevel(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.SizeForLevel(1); got != cfg.InitialSize {
		t.Errorf("level 1 size = %d, want %d", got, cfg.InitialSize)
	}
	if got := cfg.SizeForLevel(2); got != cfg.InitialSize+cfg.GrowthPerLevel {
		t.Errorf("level 2 size = %d, want %d", got, cfg.InitialSize+cfg.GrowthPerLevel)
	}

	// Growth clamps to the maximum and stays odd
	if got := cfg.SizeForLevel(1000); got > cfg.MaxSize {
		t.Errorf("size %d exceeds max %d", got, cfg.MaxSize)
	}
	for lvl := 1; lvl <= 50; lvl++ {
		if cfg.SizeForLevel(lvl)%2 == 0 {
			t.Fatalf("level %d size is even", lvl)
		}
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	data := "initial_size: 21\nseed: 42\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.InitialSize != 21 {
		t.Errorf("initial_size = %d, want 21", cfg.InitialSize)
	}
	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want 42", cfg.Seed)
	}
	// Unnamed keys keep their defaults
	if cfg.EnemyDivisor != DefaultConfig().EnemyDivisor {
		t.Errorf("enemy_divisor = %d, want default %d", cfg.EnemyDivisor, DefaultConfig().EnemyDivisor)
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte("initial_size: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for an even maze size")
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
