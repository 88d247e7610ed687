package roids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/roids-arcade/internal/core"
)

// Visual characters for rendering
const (
	AsteroidEdgeChar = '#'
	AsteroidCoreChar = '·'
	BulletChar       = '•'
	EnemyBulletChar  = '∘'
	EnemyChar        = '◆'
	FlameChar        = '*'
	LifeChar         = '♥'
)

// shipGlyphs indexes headings in 45° steps, starting east and turning
// clockwise (the field's y axis points down).
var shipGlyphs = [8]rune{'▶', '◢', '▼', '◣', '◀', '◤', '▲', '◥'}

const hudRows = 1

// projector maps field coordinates onto the screen area below the HUD.
type projector struct {
	sx, sy float64
	top    int
}

func newProjector(f core.Field, dst *core.Screen) projector {
	rows := max(dst.Height()-hudRows, 1)
	return projector{
		sx:  float64(dst.Width()) / f.W,
		sy:  float64(rows) / f.H,
		top: hudRows,
	}
}

func (p projector) cell(v core.Vec2) (int, int) {
	return int(math.Floor(v.X * p.sx)), p.top + int(math.Floor(v.Y*p.sy))
}

// Render draws the world, HUD and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.frame++
	if g.world == nil {
		return
	}
	w := g.world
	p := newProjector(w.field, dst)

	g.renderAsteroids(dst, p)
	g.renderParticles(dst, p)
	g.renderEnemies(dst, p)
	g.renderBullets(dst, p)
	g.renderShip(dst, p)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := g.world
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", w.Score), core.ColorBrightGreen)

	lives := strings.Repeat(string(LifeChar), max(w.Ship.Lives, 0))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %s", lives), core.ColorBrightRed)

	level := fmt.Sprintf("Level: %d", w.Level)
	dst.DrawTextColor(dst.Width()-len(level)-1, 0, level, core.ColorBrightGreen)
}

func (g *Game) renderAsteroids(dst *core.Screen, p projector) {
	for _, a := range g.world.Asteroids {
		pts := a.Points()
		color := core.ColorGreen
		if a.Tier == TierSmall {
			color = core.ColorBrightGreen
		}
		cx, cy := p.cell(a.Pos)
		dst.SetColor(cx, cy, AsteroidCoreChar, color)
		for i := range pts {
			x0, y0 := p.cell(pts[i])
			x1, y1 := p.cell(pts[(i+1)%len(pts)])
			dst.DrawLine(x0, y0, x1, y1, AsteroidEdgeChar, color)
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen, p projector) {
	for _, pt := range g.world.Particles {
		x, y := p.cell(pt.Pos)
		ch, color := '.', core.ColorRed
		switch h := pt.Heat(); {
		case h > 0.75:
			ch, color = '*', core.ColorBrightYellow
		case h > 0.5:
			ch, color = '+', core.ColorYellow
		case h > 0.3:
			ch, color = '+', core.ColorOrange
		}
		dst.SetColor(x, y, ch, color)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, p projector) {
	for _, e := range g.world.Enemies {
		x, y := p.cell(e.Pos)
		color := core.ColorMagenta
		if e.HitFlash > 0 {
			color = core.ColorWhite
		}
		dst.SetColor(x, y, EnemyChar, color)
		dst.SetColor(x-1, y, '<', color)
		dst.SetColor(x+1, y, '>', color)
	}
}

func (g *Game) renderBullets(dst *core.Screen, p projector) {
	for _, b := range g.world.Bullets {
		x, y := p.cell(b.Pos)
		dst.SetColor(x, y, BulletChar, core.ColorBrightYellow)
	}
	for _, e := range g.world.Enemies {
		for _, b := range e.Bullets {
			x, y := p.cell(b.Pos)
			dst.SetColor(x, y, EnemyBulletChar, core.ColorBrightRed)
		}
	}
}

func (g *Game) renderShip(dst *core.Screen, p projector) {
	s := g.world.Ship
	if !s.Alive() {
		return
	}
	// Blink while invulnerable.
	if s.Invulnerable && (g.frame/6)%2 == 0 {
		return
	}

	x, y := p.cell(s.Pos)
	dst.SetColor(x, y, shipGlyph(s.Rotation), core.ColorCyan)

	if s.Thrusting {
		fx, fy := p.cell(s.Pos.Sub(core.FromAngle(s.Rotation).Scale(s.Size())))
		if fx != x || fy != y {
			dst.SetColor(fx, fy, FlameChar, core.ColorOrange)
		}
	}
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(rotation float64) rune {
	a := core.NormalizeAngle(rotation)
	idx := int(math.Round(a/(math.Pi/4))) % len(shipGlyphs)
	return shipGlyphs[idx]
}

func (g *Game) renderOverlay(dst *core.Screen) {
	midY := dst.Height() / 2
	w := g.world

	switch {
	case w.Phase == core.PhaseNotStarted:
		g.renderBanner(dst, midY, g.cfg.Title, core.ColorBrightGreen,
			"Press SPACE to start",
			"←/→ rotate  ↑ thrust  SPACE fire  P pause")
	case w.Phase == core.PhaseGameOver:
		g.renderBanner(dst, midY, "GAME OVER", core.ColorBrightRed,
			fmt.Sprintf("Final Score: %d", w.Score),
			"Press R to restart or Q to quit")
	case g.paused:
		g.renderBanner(dst, midY, "PAUSED", core.ColorYellow, "Press P to resume")
	}
}

// renderBanner draws a boxed title with lines of text under it.
func (g *Game) renderBanner(dst *core.Screen, midY int, title string, color core.Color, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 4
	box := core.NewRect((dst.Width()-width)/2, midY-height/2, width, height)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, color)
	dst.DrawTextCentered(box.Y+1, title, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
