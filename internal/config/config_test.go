package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	for _, variant := range []string{VariantRunner, VariantPlatformer} {
		t.Run(variant, func(t *testing.T) {
			embedded := LoadDefault(variant)
			hard := DefaultConfig(variant)

			if err := embedded.Validate(); err != nil {
				t.Fatalf("embedded default invalid: %v", err)
			}
			if embedded.Variant != hard.Variant {
				t.Errorf("variant = %q, expected %q", embedded.Variant, hard.Variant)
			}
			if embedded.Player != hard.Player {
				t.Errorf("player config differs:\n yaml %+v\n go   %+v", embedded.Player, hard.Player)
			}
			if embedded.Enemy != hard.Enemy {
				t.Errorf("enemy config differs:\n yaml %+v\n go   %+v", embedded.Enemy, hard.Enemy)
			}
			if len(embedded.Level.Platforms) != len(hard.Level.Platforms) {
				t.Errorf("platform count = %d, expected %d", len(embedded.Level.Platforms), len(hard.Level.Platforms))
			}
			if len(embedded.Level.Coins) != len(hard.Level.Coins) {
				t.Errorf("coin count = %d, expected %d", len(embedded.Level.Coins), len(hard.Level.Coins))
			}
		})
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	data := []byte("player:\n  speed: 9\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(VariantRunner, path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Player.Speed != 9 || cfg.Player.Lives != 7 {
		t.Errorf("override not applied: speed=%v lives=%d", cfg.Player.Speed, cfg.Player.Lives)
	}
	// Untouched keys keep defaults
	if cfg.Player.JumpPower != 16 {
		t.Errorf("jump power = %v, expected default 16", cfg.Player.JumpPower)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(VariantRunner, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should return an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("collision:\n  shrink: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(VariantRunner, path); err == nil {
		t.Error("invalid shrink should fail validation")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Player.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
		})
	}

	if ParsePreset("bogus") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestDifficultyProgression(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.SpeedMultiplier(0, 0); got != 1.0 {
		t.Errorf("speed at score 0 = %v, expected 1.0", got)
	}
	if got := dm.SpeedMultiplier(250, 0); got != 1.5 {
		t.Errorf("speed at score 250 = %v, expected 1.5", got)
	}
	if got := dm.SpeedMultiplier(100000, 0); got != 2.0 {
		t.Errorf("speed should cap at 2.0, got %v", got)
	}

	if got := dm.SpawnInterval(150, 60, 0, 0); got != 150 {
		t.Errorf("spawn interval at score 0 = %d, expected 150", got)
	}
	if got := dm.SpawnInterval(150, 60, 75, 0); got != 105 {
		t.Errorf("spawn interval at score 75 = %d, expected 105", got)
	}
	if got := dm.SpawnInterval(150, 60, 100000, 0); got != 60 {
		t.Errorf("spawn interval should floor at 60, got %d", got)
	}
}

func TestDifficultyDisabledStaysAtInitialLevel(t *testing.T) {
	cfg := DefaultRunnerConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := dm.Level(1000, 1000); got != 0.5 {
		t.Errorf("level = %v, expected initial 0.5", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultPlatformerConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(99999, 9000); got != 0.5 {
		t.Errorf("time level at half horizon = %v, expected 0.5", got)
	}
}
