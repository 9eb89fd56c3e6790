// Package config provides YAML-based game configuration loading and
// difficulty management for the Clipper vs Lighter variants.
package config

import (
	"errors"
	"fmt"
)

// Variant names select the ruleset a GameConfig describes.
const (
	VariantRunner     = "runner"
	VariantPlatformer = "platformer"
)

// Enemy behaviors.
const (
	BehaviorMover  = "mover"  // Walks off the left edge of the world
	BehaviorPatrol = "patrol" // Walks back and forth around its spawn point
)

// GameConfig contains all tuning for one variant of the game.
type GameConfig struct {
	Variant    string           `yaml:"variant"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Collision  CollisionConfig  `yaml:"collision"`
	Particles  ParticleConfig   `yaml:"particles"`
	Effects    EffectsConfig    `yaml:"effects"`
	Camera     CameraConfig     `yaml:"camera"`
	Level      LevelConfig      `yaml:"level"`
	Sprites    SpriteConfig     `yaml:"sprites"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the visible canvas and the scrollable world.
type WorldConfig struct {
	ViewWidth  float64 `yaml:"view_width"`
	ViewHeight float64 `yaml:"view_height"`
	Width      float64 `yaml:"width"`    // Equal to view_width for the runner
	GroundY    float64 `yaml:"ground_y"` // Top of the ground strip
}

// PlayerConfig defines player movement and survival parameters.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnX          float64 `yaml:"spawn_x"`
	Speed           float64 `yaml:"speed"`          // Direct speed, or max speed when accel > 0
	Accel           float64 `yaml:"accel"`          // 0 = direct movement
	Friction        float64 `yaml:"friction"`       // Velocity multiplier per tick without input
	RunMultiplier   float64 `yaml:"run_multiplier"` // Max speed multiplier while run is held
	JumpPower       float64 `yaml:"jump_power"`
	DoubleJump      bool    `yaml:"double_jump"`
	DoubleJumpPower float64 `yaml:"double_jump_power"`
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	Lives           int     `yaml:"lives"`
	InvincibleTicks int     `yaml:"invincible_ticks"`
	KnockbackX      float64 `yaml:"knockback_x"`
	KnockbackY      float64 `yaml:"knockback_y"`
	StompBounce     float64 `yaml:"stomp_bounce"`
}

// EnemyConfig defines enemy size and motion.
type EnemyConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BaseSpeed   float64 `yaml:"base_speed"`
	Behavior    string  `yaml:"behavior"`
	PatrolRange float64 `yaml:"patrol_range"`
	MaxAlive    int     `yaml:"max_alive"` // 0 = unlimited
	TrailChance float64 `yaml:"trail_chance"`
}

// SpawnConfig bounds the enemy spawn interval in ticks.
type SpawnConfig struct {
	MaxInterval int `yaml:"max_interval"`
	MinInterval int `yaml:"min_interval"`
}

// ScoringConfig defines points per event.
type ScoringConfig struct {
	EnemyPassed int `yaml:"enemy_passed"`
	Stomp       int `yaml:"stomp"`
	Coin        int `yaml:"coin"`
}

// CollisionConfig tunes the hit test.
type CollisionConfig struct {
	Shrink    float64 `yaml:"shrink"`     // Box scale for overlap tests
	StompBand float64 `yaml:"stomp_band"` // Fraction of enemy height counted as "top"
}

// ParticleConfig defines particle kinematics.
type ParticleConfig struct {
	Gravity float64 `yaml:"gravity"`
	Decay   float64 `yaml:"decay"`
}

// EffectsConfig defines screen shake and flash.
type EffectsConfig struct {
	HitShake    float64 `yaml:"hit_shake"`
	StompShake  float64 `yaml:"stomp_shake"`
	ShakeDecay  float64 `yaml:"shake_decay"`
	ShakeCutoff float64 `yaml:"shake_cutoff"`
	FlashDecay  float64 `yaml:"flash_decay"`
}

// CameraConfig defines camera follow and parallax layers.
type CameraConfig struct {
	Smoothing float64   `yaml:"smoothing"`
	Parallax  []float64 `yaml:"parallax"` // Scroll factor per background layer, far to near
}

// LevelConfig lists static level content.
type LevelConfig struct {
	Platforms []PlatformDef `yaml:"platforms"`
	Coins     []PointDef    `yaml:"coins"`
	Clouds    int           `yaml:"clouds"`
}

// PlatformDef is one floating platform. The ground is implicit.
type PlatformDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PointDef is a position in world units.
type PointDef struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpriteConfig locates sprite assets. Frontends append their own extension.
type SpriteConfig struct {
	Dir           string `yaml:"dir"`
	Player        string `yaml:"player"`
	Enemy         string `yaml:"enemy"`
	LoadTimeoutMS int    `yaml:"load_timeout_ms"` // 0 = wait for the loader
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type       string `yaml:"type"`         // "score", "time", or "none"
	MaxAt      int    `yaml:"max_at"`       // Score/ticks at which max speed is reached
	SpawnMaxAt int    `yaml:"spawn_max_at"` // Score/ticks at which min spawn interval is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the 1.0 base at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}

// Validate checks invariants the simulation relies on.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Variant != VariantRunner && c.Variant != VariantPlatformer {
		errs = append(errs, fmt.Errorf("unknown variant %q", c.Variant))
	}
	if c.World.ViewWidth <= 0 || c.World.ViewHeight <= 0 {
		errs = append(errs, errors.New("world view size must be positive"))
	}
	if c.World.Width < c.World.ViewWidth {
		errs = append(errs, errors.New("world width must be at least the view width"))
	}
	if c.Player.Width < 0 || c.Player.Height < 0 || c.Enemy.Width < 0 || c.Enemy.Height < 0 {
		errs = append(errs, errors.New("entity sizes must be non-negative"))
	}
	if c.Player.Width > c.World.Width {
		errs = append(errs, errors.New("player is wider than the world"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player lives must be positive"))
	}
	if c.Player.MaxFallSpeed <= 0 {
		errs = append(errs, errors.New("max fall speed must be positive"))
	}
	if c.Enemy.Behavior != BehaviorMover && c.Enemy.Behavior != BehaviorPatrol {
		errs = append(errs, fmt.Errorf("unknown enemy behavior %q", c.Enemy.Behavior))
	}
	if c.Spawn.MinInterval <= 0 || c.Spawn.MaxInterval < c.Spawn.MinInterval {
		errs = append(errs, errors.New("spawn intervals must satisfy 0 < min <= max"))
	}
	if c.Collision.Shrink <= 0 || c.Collision.Shrink > 1 {
		errs = append(errs, errors.New("collision shrink must be in (0, 1]"))
	}
	if c.Particles.Decay <= 0 {
		errs = append(errs, errors.New("particle decay must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid %s config: %w", c.Variant, errors.Join(errs...))
	}
	return nil
}
