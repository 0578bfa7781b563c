package f1race

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/f1race/internal/core"
)

// Visual characters for rendering
const (
	CarChar       = '█'
	CrashChar     = '▓'
	GrassChar     = '▒'
	RoadChar      = '░'
	SeparatorChar = '┃'
	ChargeOnChar  = '▮'
	ChargeOffChar = '▯'
)

var opponentColors = [opponentSpriteCount]core.Color{
	core.ColorBlue,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorYellow,
	core.ColorWhite,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
}

// viewport maps track pixels to terminal cells. Cells are about twice as
// tall as they are wide, so a column covers half the pixels of a row.
type viewport struct {
	pxPerCol int
	pxPerRow int
}

func newViewport(rows int) viewport {
	rows = core.Max(rows, 1)
	pxRow := core.Max(core.CeilDiv(DisplayEndY-DisplayStartY+1, rows), 1)
	return viewport{
		pxPerCol: core.Max(pxRow/2, 1),
		pxPerRow: pxRow,
	}
}

// cells returns the smallest cell rectangle covering r.
func (v viewport) cells(r core.Rect) core.Rect {
	x0 := core.FloorDiv(r.X-DisplayStartX, v.pxPerCol)
	y0 := core.FloorDiv(r.Y-DisplayStartY, v.pxPerRow)
	x1 := core.CeilDiv(r.Right()-DisplayStartX, v.pxPerCol)
	y1 := core.CeilDiv(r.Bottom()-DisplayStartY, v.pxPerRow)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (v viewport) col(x int) int {
	return core.FloorDiv(x-DisplayStartX, v.pxPerCol)
}

// screenCanvas draws the pixel description onto a cell buffer.
type screenCanvas struct {
	dst  *core.Screen
	view viewport
	clip core.Rect
	size func(SpriteID) (int, int)
}

func (c *screenCanvas) SetClip(r core.Rect) {
	c.clip = r
}

func (c *screenCanvas) FillRect(r core.Rect, color core.Color) {
	r = r.Clip(c.clip)
	if r.Empty() {
		return
	}
	c.dst.DrawRect(c.view.cells(r), fillChar(color), color)
}

func (c *screenCanvas) DrawSprite(id SpriteID, x, y int) {
	w, h := c.size(id)
	r := core.NewRect(x, y, w, h).Clip(c.clip)
	if r.Empty() {
		return
	}
	ch := CarChar
	if id == SpritePlayerCrash {
		ch = CrashChar
	}
	c.dst.DrawRect(c.view.cells(r), ch, spriteColor(id))
}

func fillChar(c core.Color) rune {
	switch c {
	case GrassColor:
		return GrassChar
	case RoadColor:
		return RoadChar
	case SeparatorColor:
		return SeparatorChar
	default:
		return CarChar
	}
}

func spriteColor(id SpriteID) core.Color {
	switch {
	case id == SpritePlayer:
		return core.ColorBrightRed
	case id == SpritePlayerCrash:
		return core.ColorOrange
	case id.IsOpponent():
		return opponentColors[id-SpriteOpponent0]
	default:
		return core.ColorBrightYellow
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	view := newViewport(dst.Height())
	g.Draw(&screenCanvas{dst: dst, view: view, size: g.world.SpriteSize})
	g.renderStatus(dst, view.col(StatusStartX)+1)

	if g.world.Paused() {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.world.Phase() == PhaseGameOver {
		p := g.world.Progress()
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d  |  Next race in %d", p.Score, p.Level, g.world.Countdown()))
	}
}

// renderStatus draws the panel right of the track.
func (g *Game) renderStatus(dst *core.Screen, x int) {
	p := g.world.Progress()
	maxCharge := g.world.rules.ChargePasses() - 1

	y := 0
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line("F1 RACE", core.ColorBrightRed)
	y++
	line("SCORE", core.ColorGray)
	line(fmt.Sprintf("%6d", p.Score), core.ColorBrightWhite)
	y++
	line("LEVEL", core.ColorGray)
	line(fmt.Sprintf("%6d", p.Level), core.ColorBrightWhite)
	y++
	line("FLY", core.ColorGray)
	line(fmt.Sprintf("%6d", p.FlyCount), core.ColorBrightYellow)

	bar := strings.Repeat(string(ChargeOnChar), p.FlyCharger) +
		strings.Repeat(string(ChargeOffChar), core.Max(maxCharge-p.FlyCharger, 0))
	dst.DrawTextColored(x, y, bar, core.ColorRed)
	y += 2

	switch g.world.Phase() {
	case PhaseCrashing, PhaseGameOver:
		line("CRASH!", core.ColorOrange)
	default:
		if g.world.Player().Flying {
			line("FLYING", core.ColorBrightYellow)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
