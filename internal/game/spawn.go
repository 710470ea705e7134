package game

import (
	"math"
	"math/rand"

	"github.com/ormakov/roidfield/internal/core"
	"github.com/ormakov/roidfield/internal/physics"
)

// Stats is the per-run mutable game state: score, timers, and spawn
// pressure. One Stats value is created per run and torn down with it;
// there is no ambient global state.
type Stats struct {
	Score      int
	Stopwatch  core.Stopwatch
	RoidTimer  *core.Timer
	RoidChance int // percent chance per timer firing, [0,100]
}

// NewStats creates run state with the given spawn period and chance.
func NewStats(spawnPeriod float64, spawnChance int) *Stats {
	return &Stats{
		RoidTimer:  core.NewTimer(spawnPeriod),
		RoidChance: spawnChance,
	}
}

// tickSpawns advances the run timers and rolls for an asteroid spawn.
// On each timer firing a uniform integer in [0,100) is drawn; a roll
// below the current chance spawns one asteroid with randomized position,
// heading, signed speed, and spin.
func (g *Game) tickSpawns(dt float64) {
	g.stats.RoidTimer.Tick(dt)
	g.stats.Stopwatch.Tick(dt)

	if !g.stats.RoidTimer.JustFinished() {
		return
	}

	chance := g.stats.RoidChance
	if g.difficulty != nil {
		chance = g.difficulty.SpawnChance(chance, g.stats.Score, g.tickCount)
	}

	if g.rng.Intn(100) < chance {
		box := g.cfg.Asteroids.SpawnBox
		pos := core.Vec2{
			X: randRange(g.rng, box.MinX, box.MaxX),
			Y: randRange(g.rng, box.MinY, box.MaxY),
		}
		heading := randRange(g.rng, -math.Pi, math.Pi)
		speed := randRange(g.rng, -g.cfg.Asteroids.MaxSpeed, g.cfg.Asteroids.MaxSpeed)
		angvel := randRange(g.rng, -math.Pi, math.Pi)
		g.spawnAsteroid(pos, heading, speed, angvel)
	}
}

// spawnAsteroid creates one asteroid. The speed is signed, so an
// asteroid may drift backward along its heading. Asteroids fly without
// drag and spin freely.
func (g *Game) spawnAsteroid(pos core.Vec2, heading, speed, angvel float64) physics.EntityID {
	variant := g.rng.Intn(g.cfg.Asteroids.GlyphVariants)

	return g.world.Spawn(Entity{
		Body: physics.Body{
			Pos:    pos,
			Rot:    heading,
			Vel:    core.HeadingVec(heading).Scale(speed),
			AngVel: angvel,
		},
		Radius:  g.cfg.Asteroids.Radius,
		Role:    RoleAsteroid,
		Cleanup: true,
		Variant: variant,
	})
}

// spawnProjectile creates one shot at the ship's position and heading.
// The muzzle velocity points along the heading and the ship's own
// velocity is added on top (inherited momentum). Projectiles fly
// drag-free.
func (g *Game) spawnProjectile(pos core.Vec2, rot float64, inheritVel core.Vec2) physics.EntityID {
	vel := core.HeadingVec(rot).Scale(g.cfg.Weapon.MuzzleSpeed).Add(inheritVel)

	return g.world.Spawn(Entity{
		Body: physics.Body{
			Pos: pos,
			Rot: rot,
			Vel: vel,
		},
		Radius:  g.cfg.Weapon.Radius,
		Role:    RoleProjectile,
		Cleanup: true,
	})
}

// setupScene spawns the player ship at the origin. Called at run start
// and again after every scene reset.
func (g *Game) setupScene() {
	g.shipID = g.world.Spawn(Entity{
		Body: physics.Body{
			LinearDrag:  core.Splat(g.cfg.Ship.LinearDrag),
			AngularDrag: g.cfg.Ship.AngularDrag,
		},
		Radius:  g.cfg.Ship.Radius,
		Role:    RoleShip,
		Cleanup: true,
	})
}

// randRange draws a uniform float in [min, max).
func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
