// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "fmt"

// Config contains all tuning for the game.
type Config struct {
	Ship       ShipConfig       `yaml:"ship"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Asteroids  AsteroidsConfig  `yaml:"asteroids"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShipConfig defines player ship parameters.
type ShipConfig struct {
	LinearAccel  float64 `yaml:"linear_accel"`  // units/s² along the heading
	AngularAccel float64 `yaml:"angular_accel"` // radians/s² while turning
	LinearDrag   float64 `yaml:"linear_drag"`   // per-axis drag coefficient
	AngularDrag  float64 `yaml:"angular_drag"`
	Radius       float64 `yaml:"radius"`
}

// WeaponConfig defines projectile parameters.
type WeaponConfig struct {
	MuzzleSpeed float64 `yaml:"muzzle_speed"` // units/s along the ship heading
	Radius      float64 `yaml:"radius"`
}

// AsteroidsConfig defines asteroid spawning parameters.
type AsteroidsConfig struct {
	Radius        float64 `yaml:"radius"`
	SpawnPeriod   float64 `yaml:"spawn_period"` // seconds between spawn rolls
	SpawnChance   int     `yaml:"spawn_chance"` // percent chance per roll, [0,100]
	SpawnBox      Box     `yaml:"spawn_box"`    // uniform position range
	MaxSpeed      float64 `yaml:"max_speed"`    // speed drawn from [-max, max)
	GlyphVariants int     `yaml:"glyph_variants"`
}

// Box is an axis-aligned position range; values are drawn from [Min, Max).
type Box struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// RenderConfig maps world units to screen cells.
type RenderConfig struct {
	CellsPerUnit float64 `yaml:"cells_per_unit"` // horizontal scale
	// Terminal cells are roughly twice as tall as wide; vertical
	// coordinates are compressed by this factor.
	Aspect float64 `yaml:"aspect"`
}

// DifficultyConfig defines how spawn pressure progresses during a run.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	// ChanceBoost is added to the asteroid spawn chance at max difficulty.
	ChanceBoost int `yaml:"chance_boost"`
}

// Validate rejects configurations that violate the simulation's contracts.
func (c Config) Validate() error {
	if c.Ship.LinearDrag < 0 || c.Ship.AngularDrag < 0 {
		return fmt.Errorf("config: drag coefficients must be non-negative")
	}
	if c.Ship.Radius <= 0 || c.Weapon.Radius <= 0 || c.Asteroids.Radius <= 0 {
		return fmt.Errorf("config: collider radii must be positive")
	}
	if c.Asteroids.SpawnPeriod <= 0 {
		return fmt.Errorf("config: spawn_period must be positive")
	}
	if c.Asteroids.SpawnChance < 0 || c.Asteroids.SpawnChance > 100 {
		return fmt.Errorf("config: spawn_chance must be in [0,100]")
	}
	if c.Asteroids.GlyphVariants < 1 {
		return fmt.Errorf("config: glyph_variants must be at least 1")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
