// Package physics implements the simulation core: kinematic bodies with
// drag, velocity integration, and pairwise circle collision detection.
// It is pure computation over per-tick snapshots and has no dependencies
// beyond internal/core.
package physics

import (
	"fmt"

	"github.com/ormakov/roidfield/internal/core"
)

// EntityID is an opaque handle for a simulated entity. IDs are unique and
// stable for the entity's lifetime and are never reused within a run.
type EntityID uint32

// Body holds the kinematic state of one entity: transform plus velocity.
// Drag coefficients are multiplicative per-tick attenuation; a drag of 1.0
// cancels the velocity in one second at that tick's dt scaling.
type Body struct {
	ID  EntityID
	Pos core.Vec2
	Rot float64 // radians; unbounded, callers normalize when reading via trig

	Vel        core.Vec2
	LinearDrag core.Vec2 // per-axis, non-negative

	AngVel      float64 // radians/sec
	AngularDrag float64 // non-negative
}

// DefaultDrag is the drag applied to player-controlled bodies.
const DefaultDrag = 0.5

// NewBody creates a body at the given position with default drag.
func NewBody(id EntityID, pos core.Vec2) Body {
	return Body{
		ID:          id,
		Pos:         pos,
		LinearDrag:  core.Splat(DefaultDrag),
		AngularDrag: DefaultDrag,
	}
}

// Validate reports a contract violation in the body's configuration.
// Negative drag is a programming error, not a runtime condition.
func (b *Body) Validate() error {
	if b.LinearDrag.X < 0 || b.LinearDrag.Y < 0 {
		return fmt.Errorf("physics: body %d has negative linear drag %v", b.ID, b.LinearDrag)
	}
	if b.AngularDrag < 0 {
		return fmt.Errorf("physics: body %d has negative angular drag %f", b.ID, b.AngularDrag)
	}
	return nil
}
