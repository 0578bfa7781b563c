package f1race

import (
	"strings"
	"testing"

	"github.com/vovakirdan/f1race/internal/config"
	"github.com/vovakirdan/f1race/internal/core"
)

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 12345}

	inputs := make([]core.InputFrame, 500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 40 {
		case 0:
			inputs[i].Set(core.ActionLeft)
		case 10:
			inputs[i].Set(core.ActionRight)
		case 25:
			inputs[i].Set(core.ActionFly)
		}
	}

	run := func() (core.GameState, Progress) {
		g := New(config.DefaultRaceConfig(), nil)
		g.Reset(cfg)
		var st core.GameState
		for _, in := range inputs {
			st = g.Step(in).State
		}
		return st, g.World().Progress()
	}

	s1, p1 := run()
	s2, p2 := run()
	if s1 != s2 || p1 != p2 {
		t.Errorf("runs differ: %+v %+v vs %+v %+v", s1, p1, s2, p2)
	}
}

func TestGameStateReportsGameOver(t *testing.T) {
	g := New(config.DefaultRaceConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: 1})
	w := g.World()
	w.rng = constRNG(1)
	p := w.Player()
	w.fleet.slots[0] = Slot{Occupied: true, X: p.X, Y: p.Y, Width: 15, Height: 20}

	for i := 0; i < 11; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Errorf("State().GameOver = false in phase %v", w.Phase())
	}
	if g.Ticks() != 11 {
		t.Errorf("Ticks() = %d, want 11", g.Ticks())
	}
}

func TestGameIdentity(t *testing.T) {
	g := New(config.DefaultRaceConfig(), nil)
	if g.ID() != "f1race" || g.Title() != "F1 Race" {
		t.Errorf("identity = %q %q", g.ID(), g.Title())
	}
}

func TestRenderStatusPanel(t *testing.T) {
	g := New(config.DefaultRaceConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.World().progress.Score = 17

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"F1 RACE", "SCORE", "17", "LEVEL", "FLY"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
	if !strings.ContainsRune(out, CarChar) || !strings.ContainsRune(out, GrassChar) {
		t.Errorf("render missing track art:\n%s", out)
	}
}

func TestRenderGameOverMessage(t *testing.T) {
	g := New(config.DefaultRaceConfig(), nil)
	g.Reset(core.RuntimeConfig{Seed: 1})
	w := g.World()
	w.phase = PhaseGameOver
	w.countdown = 5

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Errorf("render missing GAME OVER:\n%s", screen.String())
	}
}

func TestViewportCoversSmallSprites(t *testing.T) {
	v := newViewport(24)
	if v.pxPerRow != 6 || v.pxPerCol != 3 {
		t.Fatalf("viewport = %+v, want 6 px rows and 3 px columns", v)
	}
	c := v.cells(core.NewRect(DisplayStartX+1, DisplayStartY+1, 1, 1))
	if c.Empty() {
		t.Error("one pixel sprite produced no cells")
	}
	if got := v.cells(core.NewRect(DisplayStartX, DisplayStartY, 6, 12)); got != core.NewRect(0, 0, 2, 2) {
		t.Errorf("cells = %+v, want 2x2 at origin", got)
	}
}
