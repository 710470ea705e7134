package physics

import "github.com/ormakov/roidfield/internal/core"

// Integrate advances a single body by dt seconds. Drag is applied
// multiplicatively per tick, not as closed-form exponential decay, so the
// result is frame-rate dependent. No clamping: drag > 1/dt inverts the
// velocity sign.
func (b *Body) Integrate(dt float64) {
	b.Vel = b.Vel.Mul(core.Vec2{
		X: 1 - b.LinearDrag.X*dt,
		Y: 1 - b.LinearDrag.Y*dt,
	})
	b.AngVel *= 1 - b.AngularDrag*dt

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Rot += b.AngVel * dt
}

// Integrate advances every body in place by dt seconds. Bodies do not
// interact; the pass is a pure per-entity transform.
// A negative dt is a contract violation and panics.
func Integrate(bodies []*Body, dt float64) {
	if dt < 0 {
		panic("physics: negative dt")
	}
	for _, b := range bodies {
		b.Integrate(dt)
	}
}
