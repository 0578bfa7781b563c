package f1race

import "github.com/vovakirdan/f1race/internal/core"

// Colors of the track surfaces.
const (
	GrassColor     = core.ColorGreen
	RoadColor      = core.ColorGray
	SeparatorColor = core.ColorBrightWhite
)

// SpriteSize returns the pixel size of a sprite for this world's cars.
func (w *World) SpriteSize(id SpriteID) (width, height int) {
	pc := w.cfg.Player
	switch id {
	case SpritePlayer:
		return pc.Width, pc.Height
	case SpritePlayerFlyUp, SpritePlayerFly, SpritePlayerFlyDown:
		return pc.Width + flyExtraW, pc.Height + flyExtraH
	case SpritePlayerCrash:
		return pc.Width, pc.Height + crashExtraH
	}
	for _, t := range w.fleet.types {
		if t.Sprite == id {
			return t.Width, t.Height
		}
	}
	return 0, 0
}

// Draw describes the track on c: grass, road, scrolling separators, traffic
// and the player car. Nothing here changes simulation state.
func (w *World) Draw(c Canvas) {
	display := DisplayRect()
	c.SetClip(display)
	c.FillRect(core.NewRect(DisplayStartX, DisplayStartY, GrassWidth, display.H), GrassColor)
	c.FillRect(core.NewRect(RoadEndX+1, DisplayStartY, GrassWidth, display.H), GrassColor)

	road := RoadRect()
	c.SetClip(road)
	c.FillRect(road, RoadColor)
	for i := 0; i < LaneCount-1; i++ {
		x := SeparatorStart(i)
		c.FillRect(core.NewRect(x, road.Y, SeparatorWidth, road.H), SeparatorColor)
		for y := road.Y + w.scroll; y <= DisplayEndY; y += SeparatorPeriod {
			h := core.Min(SeparatorStep, DisplayEndY-y)
			if h > 0 {
				c.FillRect(core.NewRect(x, y, SeparatorWidth, h), RoadColor)
			}
		}
	}

	for _, s := range w.fleet.Slots() {
		if s.Occupied {
			c.DrawSprite(s.Sprite, s.X, s.Y)
		}
	}

	p := w.player
	switch {
	case w.phase == PhaseCrashing || w.phase == PhaseGameOver:
		c.DrawSprite(SpritePlayerCrash, p.X, p.Y-crashExtraH)
	case p.Flying:
		c.DrawSprite(flySprite(p.FlyFrame, w.cfg.Player.FlyFrames), p.X-flyExtraW/2, p.Y-flyExtraH/2)
	default:
		c.DrawSprite(SpritePlayer, p.X, p.Y)
	}
}
