// Package game implements the space-shooter: the entity world, collision
// rules, spawning, ship control, and the tick loop the platform drives.
package game

import (
	"github.com/ormakov/roidfield/internal/physics"
)

// Role classifies an entity for rule dispatch. Roles are a closed set and
// each entity carries exactly one.
type Role int

const (
	RoleNone Role = iota
	RoleShip
	RoleAsteroid
	RoleProjectile
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleShip:
		return "Ship"
	case RoleAsteroid:
		return "Asteroid"
	case RoleProjectile:
		return "Projectile"
	default:
		return "None"
	}
}

// Entity is one simulated object: kinematic body, optional circular
// collider, role tag, and scene-reset membership.
type Entity struct {
	ID      physics.EntityID
	Body    physics.Body
	Radius  float64 // collision radius; 0 means no collider
	Role    Role
	Cleanup bool // despawned by a full scene reset
	Variant int  // asteroid glyph variant, physics-irrelevant
}

// World owns all per-entity state. It is the only place entities are
// created or removed; rule evaluation requests mutations through a
// command buffer and never touches positions directly.
type World struct {
	nextID   physics.EntityID
	order    []physics.EntityID
	entities map[physics.EntityID]*Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:   1,
		entities: make(map[physics.EntityID]*Entity),
	}
}

// Spawn adds an entity to the world and returns its freshly allocated
// handle. The caller's ID field is ignored; handles are never reused.
func (w *World) Spawn(e Entity) physics.EntityID {
	id := w.nextID
	w.nextID++

	e.ID = id
	e.Body.ID = id
	w.order = append(w.order, id)
	w.entities[id] = &e
	return id
}

// Despawn removes an entity. Despawning an unknown or already removed
// handle is a no-op, which tolerates double-destruction from overlapping
// rules.
func (w *World) Despawn(id physics.EntityID) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.entities, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Get returns the entity for a handle, if it is still alive.
func (w *World) Get(id physics.EntityID) (*Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.order)
}

// Each visits every live entity in spawn order.
func (w *World) Each(visit func(*Entity)) {
	for _, id := range w.order {
		visit(w.entities[id])
	}
}

// Bodies returns the bodies of all live entities in spawn order,
// for the integration pass.
func (w *World) Bodies() []*physics.Body {
	bodies := make([]*physics.Body, 0, len(w.order))
	for _, id := range w.order {
		bodies = append(bodies, &w.entities[id].Body)
	}
	return bodies
}

// Collidables snapshots every entity that has a collider, in spawn order.
// Entities without a collider are never considered for collision.
func (w *World) Collidables() []physics.Collidable {
	items := make([]physics.Collidable, 0, len(w.order))
	for _, id := range w.order {
		e := w.entities[id]
		if e.Radius <= 0 {
			continue
		}
		items = append(items, physics.Collidable{
			ID:     e.ID,
			Pos:    e.Body.Pos,
			Radius: e.Radius,
		})
	}
	return items
}

// Ship returns the singular player ship, if alive.
func (w *World) Ship() (*Entity, bool) {
	for _, id := range w.order {
		if e := w.entities[id]; e.Role == RoleShip {
			return e, true
		}
	}
	return nil, false
}

// CountRole returns the number of live entities with the given role.
func (w *World) CountRole(role Role) int {
	n := 0
	for _, id := range w.order {
		if w.entities[id].Role == role {
			n++
		}
	}
	return n
}

// commandBuffer collects the mutations decided during rule evaluation.
// They are applied after the whole pair batch so removal cannot
// invalidate iteration mid-tick.
type commandBuffer struct {
	despawns   []physics.EntityID
	scoreDelta int
	kills      int
	sceneReset bool
}

func (cb *commandBuffer) despawn(ids ...physics.EntityID) {
	cb.despawns = append(cb.despawns, ids...)
}
