package game

import "github.com/ormakov/roidfield/internal/core"

// Snapshot is a compact copy of the observable simulation state, used by
// tests and debugging tools to compare runs.
type Snapshot struct {
	Tick        int
	Score       int
	ShipPos     core.Vec2
	ShipRot     float64
	ShipVel     core.Vec2
	Asteroids   int
	Projectiles int
	Entities    int
	ShipsLost   int
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tickCount,
		Score:       g.stats.Score,
		Asteroids:   g.world.CountRole(RoleAsteroid),
		Projectiles: g.world.CountRole(RoleProjectile),
		Entities:    g.world.Count(),
		ShipsLost:   g.shipsLost,
	}
	if ship, ok := g.world.Ship(); ok {
		snap.ShipPos = ship.Body.Pos
		snap.ShipRot = ship.Body.Rot
		snap.ShipVel = ship.Body.Vel
	}
	return snap
}
