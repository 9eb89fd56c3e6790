package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultRunnerConfig returns the side-scroller configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() GameConfig {
	return GameConfig{
		Variant: VariantRunner,
		World: WorldConfig{
			ViewWidth:  1200,
			ViewHeight: 600,
			Width:      1200,
			GroundY:    480,
		},
		Player: PlayerConfig{
			Width:           100,
			Height:          140,
			SpawnX:          150,
			Speed:           6,
			RunMultiplier:   1,
			JumpPower:       16,
			Gravity:         0.7,
			MaxFallSpeed:    18,
			Lives:           3,
			InvincibleTicks: 45,
			KnockbackX:      40,
			KnockbackY:      10,
			StompBounce:     10,
		},
		Enemy: EnemyConfig{
			Width:       100,
			Height:      140,
			BaseSpeed:   3,
			Behavior:    BehaviorMover,
			TrailChance: 0.15,
		},
		Spawn: SpawnConfig{
			MaxInterval: 150, // 2.5s at 60fps
			MinInterval: 60,
		},
		Scoring:   defaultScoring(),
		Collision: CollisionConfig{Shrink: 0.6, StompBand: 0.5},
		Particles: ParticleConfig{Gravity: 0.3, Decay: 0.02},
		Effects: EffectsConfig{
			HitShake:    20,
			StompShake:  8,
			ShakeDecay:  0.85,
			ShakeCutoff: 0.5,
			FlashDecay:  0.05,
		},
		Camera: CameraConfig{Smoothing: 0.1, Parallax: []float64{0.2, 0.5}},
		Level:  LevelConfig{Clouds: 6},
		Sprites: SpriteConfig{
			Dir:    ".",
			Player: "player",
			Enemy:  "enemy",
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:       "score",
				MaxAt:      500,
				SpawnMaxAt: 150,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultPlatformerConfig returns the platformer configuration.
// It mirrors defaults/platformer.yaml and is used if the embedded file fails to parse.
func DefaultPlatformerConfig() GameConfig {
	return GameConfig{
		Variant: VariantPlatformer,
		World: WorldConfig{
			ViewWidth:  1200,
			ViewHeight: 600,
			Width:      3600,
			GroundY:    480,
		},
		Player: PlayerConfig{
			Width:           70,
			Height:          100,
			SpawnX:          150,
			Speed:           6,
			Accel:           0.8,
			Friction:        0.8,
			RunMultiplier:   1.6,
			JumpPower:       15,
			DoubleJump:      true,
			DoubleJumpPower: 12,
			Gravity:         0.7,
			MaxFallSpeed:    18,
			Lives:           3,
			InvincibleTicks: 90,
			KnockbackX:      40,
			KnockbackY:      10,
			StompBounce:     11,
		},
		Enemy: EnemyConfig{
			Width:       70,
			Height:      90,
			BaseSpeed:   2,
			Behavior:    BehaviorPatrol,
			PatrolRange: 180,
			MaxAlive:    6,
			TrailChance: 0.1,
		},
		Spawn: SpawnConfig{
			MaxInterval: 240,
			MinInterval: 120,
		},
		Scoring:   defaultScoring(),
		Collision: CollisionConfig{Shrink: 0.7, StompBand: 0.5},
		Particles: ParticleConfig{Gravity: 0.3, Decay: 0.02},
		Effects: EffectsConfig{
			HitShake:    16,
			StompShake:  6,
			ShakeDecay:  0.85,
			ShakeCutoff: 0.5,
			FlashDecay:  0.05,
		},
		Camera: CameraConfig{Smoothing: 0.1, Parallax: []float64{0.15, 0.35, 0.6}},
		Level: LevelConfig{
			Clouds: 10,
			Platforms: []PlatformDef{
				{X: 400, Y: 350, W: 220, H: 24},
				{X: 750, Y: 280, W: 180, H: 24},
				{X: 1100, Y: 350, W: 240, H: 24},
				{X: 1500, Y: 260, W: 200, H: 24},
				{X: 1850, Y: 330, W: 260, H: 24},
				{X: 2250, Y: 250, W: 180, H: 24},
				{X: 2600, Y: 340, W: 220, H: 24},
				{X: 3000, Y: 270, W: 240, H: 24},
			},
			Coins: []PointDef{
				{X: 495, Y: 290}, {X: 825, Y: 220}, {X: 1205, Y: 290}, {X: 1585, Y: 200},
				{X: 1965, Y: 270}, {X: 2325, Y: 190}, {X: 2695, Y: 280}, {X: 3105, Y: 210},
				{X: 1000, Y: 440}, {X: 2150, Y: 440}, {X: 3400, Y: 440},
			},
		},
		Sprites: SpriteConfig{
			Dir:           ".",
			Player:        "player",
			Enemy:         "enemy",
			LoadTimeoutMS: 3000,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:       "time",
				MaxAt:      18000, // 5 minutes at 60fps
				SpawnMaxAt: 10800,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

func defaultScoring() ScoringConfig {
	return ScoringConfig{
		EnemyPassed: 10,
		Stomp:       25,
		Coin:        50,
	}
}

// DefaultConfig returns the hard-coded config for a variant.
func DefaultConfig(variant string) GameConfig {
	if variant == VariantPlatformer {
		return DefaultPlatformerConfig()
	}
	return DefaultRunnerConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantRunner:
		return defaultRunnerYAML
	case VariantPlatformer:
		return defaultPlatformerYAML
	default:
		return nil
	}
}
