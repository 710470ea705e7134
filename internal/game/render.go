package game

import (
	"math"

	"github.com/ormakov/roidfield/internal/core"
)

// Glyphs for the playfield.
var (
	asteroidGlyphs = []rune{'@', 'O', '0'}
	// Ship glyph by heading octant, starting at +Y and going
	// counterclockwise.
	shipGlyphs = []rune{'▲', '◤', '◀', '◣', '▼', '◢', '▶', '◥'}
)

const projectileGlyph = '•'

// Render draws the current game state into the screen buffer.
// The camera is fixed at the world origin, which maps to the screen
// center; world +Y points up.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		return
	}

	g.world.Each(func(e *Entity) {
		switch e.Role {
		case RoleAsteroid:
			g.drawAsteroid(dst, e)
		case RoleProjectile:
			x, y := g.worldToScreen(dst, e.Body.Pos)
			dst.SetColored(x, y, projectileGlyph, core.ColorBrightRed)
		case RoleShip:
			x, y := g.worldToScreen(dst, e.Body.Pos)
			dst.SetColored(x, y, shipGlyph(e.Body.Rot), core.ColorBrightYellow)
		}
	})

	dst.DrawTextColored(1, 0, g.hud(), core.ColorBrightWhite)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "== PAUSED ==")
	}
	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2, "== GAME OVER ==")
	}
}

// drawAsteroid plots the asteroid's circular outline so its collision
// extent is visible, with the variant glyph in the center.
func (g *Game) drawAsteroid(dst *core.Screen, e *Entity) {
	glyph := asteroidGlyphs[e.Variant%len(asteroidGlyphs)]
	cx, cy := g.worldToScreen(dst, e.Body.Pos)
	dst.SetColored(cx, cy, glyph, core.ColorGray)

	steps := 12
	for i := 0; i < steps; i++ {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		rim := e.Body.Pos.Add(core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(e.Radius))
		x, y := g.worldToScreen(dst, rim)
		if x == cx && y == cy {
			continue
		}
		dst.SetColored(x, y, '·', core.ColorGray)
	}
}

// worldToScreen maps a world position to screen cell coordinates.
// Vertical distances are compressed because terminal cells are taller
// than they are wide.
func (g *Game) worldToScreen(dst *core.Screen, pos core.Vec2) (int, int) {
	scale := g.cfg.Render.CellsPerUnit
	aspect := g.cfg.Render.Aspect
	x := float64(dst.Width())/2 + pos.X*scale
	y := float64(dst.Height())/2 - pos.Y*scale*aspect
	return int(math.Round(x)), int(math.Round(y))
}

// shipGlyph picks the directional glyph for a heading. The rotation is
// normalized here only for display; the body's orientation itself grows
// unbounded.
func shipGlyph(rot float64) rune {
	norm := math.Mod(rot, 2*math.Pi)
	if norm < 0 {
		norm += 2 * math.Pi
	}
	octant := int(math.Round(norm/(math.Pi/4))) % len(shipGlyphs)
	return shipGlyphs[octant]
}
