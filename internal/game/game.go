package game

import (
	"fmt"
	"math/rand"

	"github.com/ormakov/roidfield/internal/config"
	"github.com/ormakov/roidfield/internal/core"
	"github.com/ormakov/roidfield/internal/physics"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the space-shooter logic behind the platform's
// Reset/Step/Render contract. Each tick runs in a fixed order: input and
// spawn timers, then integration for every body, then collision
// detection over post-integration positions, then the rule engine over
// the full pair batch.
type Game struct {
	world *World
	stats *Stats

	cfg        config.Config
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	rng        *rand.Rand

	shipID        physics.EntityID
	paused        bool
	gameOver      bool
	tickCount     int
	shipsLost     int
	asteroidsShot int
}

// New creates a new game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "roidfield"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Roidfield"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	g.ResetWith(rc, cfg)
}

// ResetWith initializes the game with explicit tuning, bypassing config
// file discovery. Tests use this to pin behavior.
func (g *Game) ResetWith(rc core.RuntimeConfig, cfg config.Config) {
	config.ApplyDifficultyPreset(&cfg, difficultyPreset)

	g.cfg = cfg
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.world = NewWorld()
	g.stats = NewStats(cfg.Asteroids.SpawnPeriod, cfg.Asteroids.SpawnChance)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.paused = false
	g.gameOver = false
	g.tickCount = 0
	g.shipsLost = 0
	g.asteroidsShot = 0

	g.setupScene()
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Pressed(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.Dt()

	g.tickSpawns(dt)
	g.controlShip(in, dt)

	physics.Integrate(g.world.Bodies(), dt)

	pairs := physics.DetectCollisions(g.world.Collidables())
	g.applyCollisions(pairs)

	return core.StepResult{State: g.State()}
}

// controlShip applies held thrust and turn input to the ship and fires
// on the rising edge of the fire action. Thrust accumulates velocity
// along the current heading; there is no speed cap.
func (g *Game) controlShip(in core.InputFrame, dt float64) {
	ship, ok := g.world.Get(g.shipID)
	if !ok || ship.Role != RoleShip {
		return
	}

	if in.Held(core.ActionThrust) {
		delta := core.HeadingVec(ship.Body.Rot).Scale(g.cfg.Ship.LinearAccel * dt)
		ship.Body.Vel = ship.Body.Vel.Add(delta)
	}
	if in.Held(core.ActionTurnRight) {
		ship.Body.AngVel -= g.cfg.Ship.AngularAccel * dt
	}
	if in.Held(core.ActionTurnLeft) {
		ship.Body.AngVel += g.cfg.Ship.AngularAccel * dt
	}

	if in.Pressed(core.ActionFire) {
		g.spawnProjectile(ship.Body.Pos, ship.Body.Rot, ship.Body.Vel)
	}
}

// End marks the run finished. The game itself is endless (losing the
// ship resets the scene and keeps the score), so the platform calls End
// when the player leaves, which is the point where the score is final.
func (g *Game) End() {
	g.gameOver = true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.stats != nil {
		score = g.stats.Score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Stats exposes the run state for the platform HUD and persistence.
func (g *Game) Stats() *Stats {
	return g.stats
}

// AsteroidsShot returns the number of asteroids destroyed this run.
func (g *Game) AsteroidsShot() int {
	return g.asteroidsShot
}

// Duration returns the elapsed run time in seconds.
func (g *Game) Duration() float64 {
	if g.stats == nil {
		return 0
	}
	return g.stats.Stopwatch.Elapsed()
}

// hud returns the single-line status shown above the playfield.
func (g *Game) hud() string {
	return fmt.Sprintf(" SCORE %d   ROIDS %d   TIME %.0fs ",
		g.stats.Score, g.world.CountRole(RoleAsteroid), g.stats.Stopwatch.Elapsed())
}
