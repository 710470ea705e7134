package game

import (
	"math"
	"strings"
	"testing"

	"github.com/ormakov/roidfield/internal/config"
	"github.com/ormakov/roidfield/internal/core"
	"github.com/ormakov/roidfield/internal/physics"
)

// testConfig returns tuning with difficulty progression disabled so spawn
// chance stays exactly where a test puts it.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Difficulty.Enabled = false
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(seed int64, cfg config.Config) *Game {
	g := New()
	g.ResetWith(testRuntime(seed), cfg)
	return g
}

func TestResetSpawnsShipOnly(t *testing.T) {
	g := newTestGame(1, testConfig())

	if g.world.Count() != 1 {
		t.Fatalf("fresh scene should hold only the ship, got %d entities", g.world.Count())
	}
	ship, ok := g.world.Ship()
	if !ok {
		t.Fatal("fresh scene must contain the ship")
	}
	if ship.Body.LinearDrag != core.Splat(0.5) || ship.Body.AngularDrag != 0.5 {
		t.Errorf("ship drag should match config: %+v", ship.Body)
	}
	if !ship.Cleanup {
		t.Error("ship must be cleanup-tagged so scene resets remove it")
	}
	if g.State().Score != 0 || g.State().GameOver {
		t.Errorf("fresh state: %+v", g.State())
	}
}

func TestProjectileAsteroidCollision(t *testing.T) {
	g := newTestGame(1, testConfig())

	proj := g.spawnProjectile(core.Vec2{X: 1000}, 0, core.Vec2{})
	roid := g.spawnAsteroid(core.Vec2{X: 1000}, 0, 0, 0)

	g.applyCollisions([]physics.CollisionPair{{A: proj, B: roid}})

	if _, ok := g.world.Get(proj); ok {
		t.Error("projectile should be despawned")
	}
	if _, ok := g.world.Get(roid); ok {
		t.Error("asteroid should be despawned")
	}
	if g.stats.Score != ScorePerAsteroid {
		t.Errorf("score: got %d, want %d", g.stats.Score, ScorePerAsteroid)
	}
	if g.asteroidsShot != 1 {
		t.Errorf("asteroidsShot: got %d, want 1", g.asteroidsShot)
	}
}

func TestProjectileAsteroidCollisionReversedPair(t *testing.T) {
	g := newTestGame(1, testConfig())

	proj := g.spawnProjectile(core.Vec2{X: 1000}, 0, core.Vec2{})
	roid := g.spawnAsteroid(core.Vec2{X: 1000}, 0, 0, 0)

	// Pair order is unspecified; the rule matches either side.
	g.applyCollisions([]physics.CollisionPair{{A: roid, B: proj}})

	if g.world.CountRole(RoleProjectile) != 0 || g.world.CountRole(RoleAsteroid) != 0 {
		t.Error("both entities should be despawned regardless of pair order")
	}
	if g.stats.Score != ScorePerAsteroid {
		t.Errorf("score: got %d, want %d", g.stats.Score, ScorePerAsteroid)
	}
}

func TestShipAsteroidCollisionResetsScene(t *testing.T) {
	g := newTestGame(1, testConfig())
	g.stats.Score = 70

	oldShip := g.shipID
	g.spawnAsteroid(core.Vec2{X: 500}, 0, 0, 0)
	roid := g.spawnAsteroid(core.Vec2{}, 0, 0, 0)
	proj := g.spawnProjectile(core.Vec2{X: -500}, 0, core.Vec2{})

	g.applyCollisions([]physics.CollisionPair{{A: oldShip, B: roid}})

	// Every cleanup-tagged entity is gone, not just the collided two
	if g.world.CountRole(RoleAsteroid) != 0 {
		t.Error("scene reset should sweep all asteroids")
	}
	if _, ok := g.world.Get(proj); ok {
		t.Error("scene reset should sweep projectiles")
	}
	if _, ok := g.world.Get(oldShip); ok {
		t.Error("the old ship should be despawned")
	}

	// A new ship exists
	ship, ok := g.world.Ship()
	if !ok {
		t.Fatal("scene reset must respawn the ship")
	}
	if ship.ID == oldShip {
		t.Error("respawned ship must get a fresh handle")
	}
	if g.shipID != ship.ID {
		t.Error("game should track the new ship")
	}

	// The score survives a scene reset
	if g.stats.Score != 70 {
		t.Errorf("score should persist through scene reset, got %d", g.stats.Score)
	}
	if g.shipsLost != 1 {
		t.Errorf("shipsLost: got %d, want 1", g.shipsLost)
	}
}

func TestProjectileRuleTakesPrecedence(t *testing.T) {
	g := newTestGame(1, testConfig())

	proj := g.spawnProjectile(core.Vec2{X: 1000}, 0, core.Vec2{})
	roid := g.spawnAsteroid(core.Vec2{X: 1000}, 0, 0, 0)
	other := g.spawnAsteroid(core.Vec2{X: 2000}, 0, 0, 0)

	// The projectile pair must not fall through to the reset rule.
	g.applyCollisions([]physics.CollisionPair{{A: proj, B: roid}})

	if _, ok := g.world.Get(other); !ok {
		t.Error("an unrelated asteroid must survive a projectile hit")
	}
	if g.shipsLost != 0 {
		t.Error("projectile hits must not reset the scene")
	}
}

func TestUnmatchedPairsAreIgnored(t *testing.T) {
	g := newTestGame(1, testConfig())

	a := g.spawnAsteroid(core.Vec2{}, 0, 0, 0)
	b := g.spawnAsteroid(core.Vec2{X: 10}, 0, 0, 0)

	g.applyCollisions([]physics.CollisionPair{{A: a, B: b}})

	if g.world.CountRole(RoleAsteroid) != 2 {
		t.Error("asteroid-asteroid pairs are ignored")
	}
	if g.stats.Score != 0 {
		t.Error("ignored pairs must not score")
	}
}

func TestStalePairsAreTolerated(t *testing.T) {
	g := newTestGame(1, testConfig())

	proj := g.spawnProjectile(core.Vec2{}, 0, core.Vec2{})
	roid := g.spawnAsteroid(core.Vec2{}, 0, 0, 0)
	g.world.Despawn(roid)

	// A pair referencing a dead entity is skipped, not an error.
	g.applyCollisions([]physics.CollisionPair{{A: proj, B: roid}})

	if g.stats.Score != 0 {
		t.Error("stale pairs must not score")
	}
	if _, ok := g.world.Get(proj); !ok {
		t.Error("the live half of a stale pair is untouched")
	}
}

func TestAsteroidSpawnChanceHundred(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 100
	g := newTestGame(42, cfg)

	period := cfg.Asteroids.SpawnPeriod
	for i := 0; i < 1000; i++ {
		g.tickSpawns(period)
	}

	if got := g.world.CountRole(RoleAsteroid); got != 1000 {
		t.Errorf("chance 100: every firing spawns exactly one asteroid, got %d", got)
	}
}

func TestAsteroidSpawnChanceZero(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 0
	g := newTestGame(42, cfg)

	period := cfg.Asteroids.SpawnPeriod
	for i := 0; i < 1000; i++ {
		g.tickSpawns(period)
	}

	if got := g.world.CountRole(RoleAsteroid); got != 0 {
		t.Errorf("chance 0: no asteroid may ever spawn, got %d", got)
	}
}

func TestAsteroidSpawnNoTimerNoSpawn(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 100
	g := newTestGame(42, cfg)

	// Never crossing the period never rolls
	for i := 0; i < 100; i++ {
		g.tickSpawns(cfg.Asteroids.SpawnPeriod / 200)
	}
	if got := g.world.CountRole(RoleAsteroid); got != 0 {
		t.Errorf("no timer firing, no spawn, got %d", got)
	}
}

func TestSpawnedAsteroidProperties(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(7, cfg)

	heading := 1.2
	speed := -150.0
	id := g.spawnAsteroid(core.Vec2{X: 10, Y: 20}, heading, speed, 0.5)

	e, ok := g.world.Get(id)
	if !ok {
		t.Fatal("asteroid should be alive")
	}
	if e.Role != RoleAsteroid || !e.Cleanup {
		t.Errorf("asteroid tagging: %+v", e)
	}
	if e.Radius != cfg.Asteroids.Radius {
		t.Errorf("radius: got %f, want %f", e.Radius, cfg.Asteroids.Radius)
	}

	// Signed speed may point backward along the heading
	wantVel := core.HeadingVec(heading).Scale(speed)
	if math.Abs(e.Body.Vel.X-wantVel.X) > 1e-9 || math.Abs(e.Body.Vel.Y-wantVel.Y) > 1e-9 {
		t.Errorf("velocity: got %+v, want %+v", e.Body.Vel, wantVel)
	}
	if e.Body.LinearDrag != (core.Vec2{}) {
		t.Error("asteroids fly drag-free")
	}
	if e.Variant < 0 || e.Variant >= cfg.Asteroids.GlyphVariants {
		t.Errorf("variant out of range: %d", e.Variant)
	}
}

func TestFireRisingEdgeSpawnsOneProjectile(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 0
	g := newTestGame(1, cfg)

	// Press on tick 1, hold for the rest
	press := core.NewInputFrame()
	press.SetPressed(core.ActionFire)
	g.Step(press)

	hold := core.NewInputFrame()
	hold.SetHeld(core.ActionFire)
	for i := 0; i < 10; i++ {
		g.Step(hold)
	}

	if got := g.world.CountRole(RoleProjectile); got != 1 {
		t.Errorf("one press, one projectile: got %d", got)
	}

	// A second press fires again
	g.Step(press.Clone())
	if got := g.world.CountRole(RoleProjectile); got != 2 {
		t.Errorf("second press should fire again: got %d", got)
	}
}

func TestProjectileInheritsShipMomentum(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(1, cfg)

	shipVel := core.Vec2{X: 30, Y: -40}
	id := g.spawnProjectile(core.Vec2{X: 5, Y: 6}, 0, shipVel)

	e, _ := g.world.Get(id)
	want := core.HeadingVec(0).Scale(cfg.Weapon.MuzzleSpeed).Add(shipVel)
	if math.Abs(e.Body.Vel.X-want.X) > 1e-9 || math.Abs(e.Body.Vel.Y-want.Y) > 1e-9 {
		t.Errorf("projectile velocity: got %+v, want %+v", e.Body.Vel, want)
	}
	if e.Role != RoleProjectile || !e.Cleanup {
		t.Errorf("projectile tagging: %+v", e)
	}
}

func TestThrustAccumulatesAlongHeading(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 0
	g := newTestGame(1, cfg)

	thrust := core.NewInputFrame()
	thrust.SetHeld(core.ActionThrust)

	g.Step(thrust)
	ship, _ := g.world.Ship()
	v1 := ship.Body.Vel.Length()
	if v1 == 0 {
		t.Fatal("thrust should accelerate the ship")
	}

	g.Step(thrust)
	ship, _ = g.world.Ship()
	if ship.Body.Vel.Length() <= v1 {
		t.Error("held thrust keeps accelerating (no speed cap)")
	}

	// Heading 0 faces +Y
	if ship.Body.Vel.Y <= 0 || math.Abs(ship.Body.Vel.X) > 1e-9 {
		t.Errorf("thrust should point along +Y at rotation 0: %+v", ship.Body.Vel)
	}
}

func TestTurnInputsAdjustAngularVelocity(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 0
	g := newTestGame(1, cfg)

	left := core.NewInputFrame()
	left.SetHeld(core.ActionTurnLeft)
	g.Step(left)

	ship, _ := g.world.Ship()
	if ship.Body.AngVel <= 0 {
		t.Errorf("turn left increases angular velocity: %f", ship.Body.AngVel)
	}

	g.ResetWith(testRuntime(1), cfg)
	right := core.NewInputFrame()
	right.SetHeld(core.ActionTurnRight)
	g.Step(right)

	ship, _ = g.world.Ship()
	if ship.Body.AngVel >= 0 {
		t.Errorf("turn right decreases angular velocity: %f", ship.Body.AngVel)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 100
	g := newTestGame(3, cfg)

	pause := core.NewInputFrame()
	pause.SetPressed(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("pause press should pause")
	}

	before := g.Snapshot()
	empty := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		g.Step(empty)
	}
	if g.Snapshot() != before {
		t.Error("paused game must not advance")
	}

	res = g.Step(pause.Clone())
	if res.State.Paused {
		t.Error("second pause press should unpause")
	}
}

func TestStepTickOrderDetectsPostIntegration(t *testing.T) {
	// Two bodies that only overlap after integration moves them:
	// detection must see post-integration positions.
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 0
	g := newTestGame(1, cfg)

	// Projectile closing fast on an asteroid 40 units away; asteroid
	// radius 50 means the pre-integration distance already matters.
	// Place them so only the post-move distance is under the radius.
	roid := g.spawnAsteroid(core.Vec2{X: 2000}, 0, 0, 0)
	g.spawnProjectile(core.Vec2{X: 2000, Y: -160}, 0, core.Vec2{})
	// Projectile speed 400 toward +Y: after one tick at 1/60s it moves
	// ~6.7 units, from distance 160 to ~153.3 — still outside. Step
	// until it closes within the asteroid's radius.
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
		if _, ok := g.world.Get(roid); !ok {
			break
		}
	}

	if _, ok := g.world.Get(roid); ok {
		t.Error("projectile should eventually hit the asteroid")
	}
	if g.stats.Score != ScorePerAsteroid {
		t.Errorf("score after hit: got %d, want %d", g.stats.Score, ScorePerAsteroid)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 50

	script := func(i int) core.InputFrame {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.SetHeld(core.ActionThrust)
		}
		if i%13 == 0 {
			in.SetPressed(core.ActionFire)
		}
		if i%29 == 0 {
			in.SetHeld(core.ActionTurnLeft)
		}
		return in
	}

	run := func() Snapshot {
		g := New()
		g.ResetWith(testRuntime(12345), cfg)
		for i := 0; i < 600; i++ {
			g.Step(script(i))
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1 != snap2 {
		t.Errorf("same seed and inputs must replay identically:\n%+v\n%+v", snap1, snap2)
	}
}

func TestGameReset(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 100
	g := newTestGame(9, cfg)

	fire := core.NewInputFrame()
	fire.SetPressed(core.ActionFire)
	for i := 0; i < 120; i++ {
		g.Step(fire.Clone())
	}

	g.ResetWith(testRuntime(9), cfg)

	if g.stats.Score != 0 {
		t.Errorf("Reset should clear score, got %d", g.stats.Score)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
	if g.world.Count() != 1 {
		t.Errorf("Reset should rebuild the scene, got %d entities", g.world.Count())
	}
	if g.paused || g.gameOver {
		t.Error("Reset should clear paused and gameOver")
	}
}

func TestEndStopsStepping(t *testing.T) {
	g := newTestGame(1, testConfig())
	g.End()

	if !g.State().GameOver {
		t.Fatal("End marks the run over")
	}
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	if g.Snapshot() != before {
		t.Error("a finished run must not advance")
	}
}

func TestRenderDrawsShipAndHUD(t *testing.T) {
	cfg := testConfig()
	cfg.Asteroids.SpawnChance = 0
	g := newTestGame(1, cfg)

	s := core.NewScreen(80, 24)
	g.Render(s)

	// Ship at the origin maps to the screen center
	if s.Get(40, 12) != '▲' {
		t.Errorf("ship glyph at center: got %q", s.Get(40, 12))
	}
	if !strings.Contains(s.Row(0), "SCORE") {
		t.Errorf("HUD should be drawn on the top row: %q", s.Row(0))
	}
}
