package config

// Progression applies the leveling and fly charging rules.
type Progression struct {
	cfg        ProgressionConfig
	thresholds map[int]struct{}
}

// NewProgression creates a progression for the given rules.
func NewProgression(cfg ProgressionConfig) *Progression {
	th := make(map[int]struct{}, len(cfg.LevelThresholds))
	for _, v := range cfg.LevelThresholds {
		th[v] = struct{}{}
	}
	return &Progression{cfg: cfg, thresholds: th}
}

// InitialLevel returns the level a new game starts at.
func (p *Progression) InitialLevel() int {
	return p.cfg.InitialLevel
}

// IsLevelUp reports whether reaching this pass count raises the level.
// Only exact threshold values count; passing beyond the last one never levels.
func (p *Progression) IsLevelUp(pass int) bool {
	_, ok := p.thresholds[pass]
	return ok
}

// SpeedBonus returns the extra pixels per tick opponents get at the level.
func (p *Progression) SpeedBonus(level int) int {
	if level <= p.cfg.InitialLevel {
		return 0
	}
	return (level - p.cfg.InitialLevel) * p.cfg.SpeedPerLevel
}

// ChargePasses returns how many passes earn one fly.
func (p *Progression) ChargePasses() int {
	return p.cfg.ChargePasses
}

// Charge advances the fly charger after a pass and returns the new charger
// and fly count. When the charger fills and flyCount is below maxFly, one
// fly is granted and the charger empties; at the cap the charger is held
// one step below full.
func (p *Progression) Charge(charger, flyCount, maxFly int) (int, int, bool) {
	charger++
	if charger < p.cfg.ChargePasses {
		return charger, flyCount, false
	}
	if flyCount < maxFly {
		return 0, flyCount + 1, true
	}
	return charger - 1, flyCount, false
}
