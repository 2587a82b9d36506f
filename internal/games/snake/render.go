package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/batsnake/internal/core"
)

const (
	foodGlyph     = '●'
	floorGlyph    = '·'
	lifetimeSlots = 6
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	snap := g.session.Snapshot()
	g.renderHUD(dst, snap)

	if g.tooSmall {
		w, h := g.boardSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h+hudHeight))
		return
	}

	g.renderBoard(dst)
	g.renderFood(dst, snap)
	g.renderPowerUp(dst, snap)
	g.renderSnake(dst, snap)

	switch {
	case snap.GameOver:
		g.renderOverlay(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  High: %d", snap.Score, snap.HighScore),
			"Enter: restart  M: menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the two status lines.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d    High: %d    Mode: %s", snap.Score, snap.HighScore, g.difficulty.Name)
	if g.edition == EditionGotham {
		hud += fmt.Sprintf("    Hero: %s", g.skin.Name)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	switch {
	case snap.Message != "":
		dst.DrawTextColored(0, 1, " "+snap.Message, core.ColorBrightYellow)
	case snap.PowerUp != nil:
		def := snap.PowerUp.Kind.Def()
		dst.DrawTextColored(0, 1, " "+def.Label+" "+lifetimeBar(snap.PowerUp.Ratio), def.Color)
	default:
		dst.DrawTextColored(0, 1, " Arrows/WASD: steer  P/Esc: pause  Q: quit", core.ColorGray)
	}
}

// lifetimeBar renders the remaining lifetime as filled and empty slots.
func lifetimeBar(ratio float64) string {
	filled := core.Clamp(int(ratio*lifetimeSlots+0.5), 0, lifetimeSlots)
	return strings.Repeat("▮", filled) + strings.Repeat("▯", lifetimeSlots-filled)
}

// renderBoard draws the frame and floor.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := g.boardSize()
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, w, h), core.ColorGray)

	grid := g.session.Config().Grid
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			sx, sy := g.cellOrigin(Point{X: x, Y: y})
			dst.SetColored(sx, sy, floorGlyph, core.ColorGray)
		}
	}
}

// cellOrigin maps a grid cell to the screen position of its first column.
func (g *Game) cellOrigin(p Point) (x, y int) {
	return g.boardX + 1 + p.X*cellWidth, g.boardY + 1 + p.Y
}

func (g *Game) renderFood(dst *core.Screen, snap Snapshot) {
	x, y := g.cellOrigin(snap.Food)
	dst.SetColored(x, y, foodGlyph, core.ColorBrightRed)
	dst.SetColored(x+1, y, ' ', core.ColorDefault)
}

func (g *Game) renderPowerUp(dst *core.Screen, snap Snapshot) {
	if snap.PowerUp == nil {
		return
	}
	def := snap.PowerUp.Kind.Def()
	x, y := g.cellOrigin(snap.PowerUp.Pos)
	dst.SetColored(x, y, def.Glyph, def.Color)

	// Second column fades as the power-up nears expiry
	tail := ' '
	switch {
	case snap.PowerUp.Ratio > 0.66:
		tail = '█'
	case snap.PowerUp.Ratio > 0.33:
		tail = '▓'
	case snap.PowerUp.Ratio > 0:
		tail = '░'
	}
	dst.SetColored(x+1, y, tail, def.Color)
}

func (g *Game) renderSnake(dst *core.Screen, snap Snapshot) {
	// Tail first so the head wins when cells overlap after a collision
	for i := len(snap.Body) - 1; i >= 0; i-- {
		x, y := g.cellOrigin(snap.Body[i])
		if i == 0 {
			dst.SetColored(x, y, g.headGlyph(snap.Heading), g.skin.Color)
			dst.SetColored(x+1, y, ' ', core.ColorDefault)
			continue
		}
		dst.SetColored(x, y, g.skin.Body, g.skin.Color)
		dst.SetColored(x+1, y, g.skin.Body, g.skin.Color)
	}
}

func (g *Game) headGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return g.skin.HeadUp
	case DirDown:
		return g.skin.HeadDown
	case DirLeft:
		return g.skin.HeadLeft
	default:
		return g.skin.HeadRight
	}
}

// renderOverlay draws a centered box with one or more lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := dst.Bounds().Centered(boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)
	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i*2, l, c)
	}
}
