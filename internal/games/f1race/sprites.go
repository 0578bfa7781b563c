package f1race

import (
	"fmt"

	"github.com/vovakirdan/f1race/internal/core"
)

// SpriteID names an image the renderer knows how to draw.
type SpriteID int

const (
	SpritePlayer SpriteID = iota
	SpritePlayerFlyUp
	SpritePlayerFly
	SpritePlayerFlyDown
	SpritePlayerCrash
	SpriteOpponent0
	SpriteOpponent1
	SpriteOpponent2
	SpriteOpponent3
	SpriteOpponent4
	SpriteOpponent5
	SpriteOpponent6
)

const opponentSpriteCount = 7

// Extra size of the flying and crash sprites relative to the car.
const (
	flyExtraW   = 8
	flyExtraH   = 7
	crashExtraH = 5
)

// OpponentSprite returns the sprite for an opponent type index.
// Types beyond the built-in art reuse it cyclically.
func OpponentSprite(typ int) SpriteID {
	return SpriteOpponent0 + SpriteID(typ%opponentSpriteCount)
}

// IsOpponent reports whether the sprite is an oncoming car.
func (s SpriteID) IsOpponent() bool {
	return s >= SpriteOpponent0 && s <= SpriteOpponent6
}

// String returns the sprite name used in logs and tests.
func (s SpriteID) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpritePlayerFlyUp:
		return "player_fly_up"
	case SpritePlayerFly:
		return "player_fly"
	case SpritePlayerFlyDown:
		return "player_fly_down"
	case SpritePlayerCrash:
		return "player_crash"
	}
	if s.IsOpponent() {
		return fmt.Sprintf("opponent_%d", int(s-SpriteOpponent0))
	}
	return "unknown"
}

// Canvas is the drawing surface the game describes itself on.
// Coordinates are track pixels.
type Canvas interface {
	// SetClip restricts subsequent drawing to r.
	SetClip(r core.Rect)
	FillRect(r core.Rect, c core.Color)
	DrawSprite(id SpriteID, x, y int)
}

// flySprite picks the flight image for a frame: climbing for the first two
// frames, landing for the last two.
func flySprite(frame, frames int) SpriteID {
	switch {
	case frame < 2:
		return SpritePlayerFlyUp
	case frame >= frames-2:
		return SpritePlayerFlyDown
	default:
		return SpritePlayerFly
	}
}
