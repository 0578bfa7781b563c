// Package f1race implements the F1 Race arcade game: the player car dodges
// oncoming traffic on a three lane road, scores for every car passed and
// can fly over traffic a limited number of times.
//
// All positions are in track pixels with a top-left origin. The platform
// projects them onto terminal cells when rendering.
package f1race

import "github.com/vovakirdan/f1race/internal/core"

// Track geometry in pixels.
const (
	DisplayStartX = 3
	DisplayStartY = 3
	DisplayEndX   = 124
	DisplayEndY   = 124

	GrassWidth     = 7
	LaneWidth      = 23
	SeparatorWidth = 3
	StatusWidth    = 32

	RoadStartX   = DisplayStartX + GrassWidth                              // 10
	RoadEndX     = RoadStartX + LaneCount*LaneWidth + 2*SeparatorWidth - 1 // 84, inclusive
	StatusStartX = RoadEndX + 1 + GrassWidth                               // 92

	LaneCount = 3
	SlotCount = 8

	SeparatorStep   = 3                 // Scroll per tick and height of one gap
	SeparatorPeriod = SeparatorStep * 6 // Distance between gaps
)

// LaneStart returns the left edge of a lane.
func LaneStart(lane int) int {
	return RoadStartX + lane*(LaneWidth+SeparatorWidth)
}

// LaneEnd returns the right edge of a lane, inclusive.
func LaneEnd(lane int) int {
	return LaneStart(lane) + LaneWidth - 1
}

// SeparatorStart returns the left edge of the separator after the given lane.
func SeparatorStart(i int) int {
	return LaneStart(i) + LaneWidth
}

// DisplayRect is the whole visible area, status panel included.
func DisplayRect() core.Rect {
	return core.NewRect(DisplayStartX, DisplayStartY, DisplayEndX-DisplayStartX+1, DisplayEndY-DisplayStartY+1)
}

// RoadRect is the drivable area spanning all three lanes.
func RoadRect() core.Rect {
	return core.NewRect(RoadStartX, DisplayStartY, RoadEndX-RoadStartX+1, DisplayEndY-DisplayStartY)
}

// StatusRect is the panel right of the track.
func StatusRect() core.Rect {
	return core.NewRect(StatusStartX, DisplayStartY, DisplayEndX-StatusStartX+1, DisplayEndY-DisplayStartY)
}
