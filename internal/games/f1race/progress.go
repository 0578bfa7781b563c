package f1race

import "github.com/vovakirdan/f1race/internal/config"

// Progress is the scoring state of one game.
type Progress struct {
	Score      int
	Level      int
	Pass       int // Cars passed, drives leveling
	FlyCount   int
	FlyCharger int // Passes toward the next fly
}

func newProgress(level, flyCount int) Progress {
	return Progress{Level: level, FlyCount: flyCount}
}

// passOutcome reports what a single pass changed.
type passOutcome struct {
	LevelUp bool
	Charged bool // A fly was granted
}

// recordPass counts one passed car.
func (p *Progress) recordPass(rules *config.Progression, maxFly int) passOutcome {
	var out passOutcome
	p.Score++
	p.Pass++
	if rules.IsLevelUp(p.Pass) {
		p.Level++
		out.LevelUp = true
	}
	p.FlyCharger, p.FlyCount, out.Charged = rules.Charge(p.FlyCharger, p.FlyCount, maxFly)
	return out
}
