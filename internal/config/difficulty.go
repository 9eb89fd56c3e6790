package config

import "math"

// DifficultyManager calculates dynamic game parameters from score or time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the speed difficulty level (initial..1.0).
func (d *DifficultyManager) Level(score, ticks int) float64 {
	return d.levelAt(score, ticks, d.cfg.Progression.MaxAt)
}

// SpawnLevel returns the spawn-rate difficulty level (initial..1.0).
// It progresses on its own horizon so spawn pressure can peak before speed does.
func (d *DifficultyManager) SpawnLevel(score, ticks int) float64 {
	maxAt := d.cfg.Progression.SpawnMaxAt
	if maxAt <= 0 {
		maxAt = d.cfg.Progression.MaxAt
	}
	return d.levelAt(score, ticks, maxAt)
}

func (d *DifficultyManager) levelAt(score, ticks, maxAtInt int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(maxAtInt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpeedMultiplier returns the enemy speed multiplier, 1.0 at level 0 and
// capped at 1 + speed_multiplier.
func (d *DifficultyManager) SpeedMultiplier(score, ticks int) float64 {
	level := d.Level(score, ticks)
	return 1.0 + level*d.cfg.Scaling.SpeedMultiplier
}

// SpawnInterval returns the ticks between spawns, shrinking from maxTicks
// toward minTicks as difficulty rises. Never below minTicks.
func (d *DifficultyManager) SpawnInterval(maxTicks, minTicks, score, ticks int) int {
	level := d.SpawnLevel(score, ticks)
	interval := maxTicks - int(math.Round(level*float64(maxTicks-minTicks)))
	if interval < minTicks {
		interval = minTicks
	}
	return interval
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
