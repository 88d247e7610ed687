package core

// Cue is a fire-and-forget audio event raised by the simulation.
// Consumers may drop cues freely; nothing waits on them.
type Cue int

const (
	CueNone Cue = iota
	CueFire
	CueEnemyFire
	CueAsteroidHit   // large or medium asteroid split
	CueAsteroidSmall // small asteroid destroyed
	CueExplosion     // enemy ship destroyed
	CueShipHit
	CueLevelUp
	CueGameOver
	CueThrustStart
	CueThrustStop
)

var cueNames = [...]string{
	CueNone:          "none",
	CueFire:          "fire",
	CueEnemyFire:     "enemy-fire",
	CueAsteroidHit:   "asteroid-hit",
	CueAsteroidSmall: "asteroid-small",
	CueExplosion:     "explosion",
	CueShipHit:       "ship-hit",
	CueLevelUp:       "level-up",
	CueGameOver:      "game-over",
	CueThrustStart:   "thrust-start",
	CueThrustStop:    "thrust-stop",
}

func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}
