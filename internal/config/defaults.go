package config

import (
	"math"

	_ "embed"
)

//go:embed defaults/roidfield.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Ship: ShipConfig{
			LinearAccel:  50.0,
			AngularAccel: 2 * math.Pi,
			LinearDrag:   0.5,
			AngularDrag:  0.5,
			Radius:       50.0,
		},
		Weapon: WeaponConfig{
			MuzzleSpeed: 400.0,
			Radius:      15.0,
		},
		Asteroids: AsteroidsConfig{
			Radius:      50.0,
			SpawnPeriod: 0.5,
			SpawnChance: 10,
			// Positions roll in [-550, 55) on both axes, so new rocks
			// lean toward the lower-left of the field.
			SpawnBox: Box{
				MinX: -550, MaxX: 55,
				MinY: -550, MaxY: 55,
			},
			MaxSpeed:      200.0,
			GlyphVariants: 3,
		},
		Render: RenderConfig{
			CellsPerUnit: 0.08,
			Aspect:       0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				ChanceBoost: 40,
			},
		},
	}
}
