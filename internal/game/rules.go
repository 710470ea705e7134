package game

import "github.com/ormakov/roidfield/internal/physics"

// ScorePerAsteroid is the score awarded for shooting down an asteroid.
const ScorePerAsteroid = 10

// applyCollisions interprets this tick's collision pairs into game state
// transitions. Evaluation is two-phase: every pair is inspected against
// the live entity set first, then the buffered mutations are applied.
//
// Per pair, in precedence order:
//  1. Projectile + Asteroid (either side): despawn both, score +10.
//  2. Ship + Asteroid (either side): full scene reset.
//  3. Anything else is ignored.
func (g *Game) applyCollisions(pairs []physics.CollisionPair) {
	var buf commandBuffer

	for _, pair := range pairs {
		a, okA := g.world.Get(pair.A)
		b, okB := g.world.Get(pair.B)
		if !okA || !okB {
			continue
		}

		if isPair(a, b, RoleProjectile, RoleAsteroid) {
			buf.despawn(a.ID, b.ID)
			buf.scoreDelta += ScorePerAsteroid
			buf.kills++
			continue
		}

		if isPair(a, b, RoleShip, RoleAsteroid) {
			buf.sceneReset = true
		}
	}

	g.stats.Score += buf.scoreDelta
	g.asteroidsShot += buf.kills
	for _, id := range buf.despawns {
		g.world.Despawn(id)
	}

	if buf.sceneReset {
		g.resetScene()
	}
}

// isPair reports whether the two entities carry the two roles, in either
// order.
func isPair(a, b *Entity, r1, r2 Role) bool {
	return (a.Role == r1 && b.Role == r2) || (a.Role == r2 && b.Role == r1)
}

// resetScene despawns every cleanup-tagged entity and re-runs scene
// setup. This is a full reset, not a ship-only respawn; the score
// survives it.
func (g *Game) resetScene() {
	var doomed []physics.EntityID
	g.world.Each(func(e *Entity) {
		if e.Cleanup {
			doomed = append(doomed, e.ID)
		}
	})
	for _, id := range doomed {
		g.world.Despawn(id)
	}

	g.setupScene()
	g.shipsLost++
}
