package config

// DifficultyManager derives level-scaled parameters from a RoidsConfig.
type DifficultyManager struct {
	cfg RoidsConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg RoidsConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether per-level escalation is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Difficulty.Escalate
}

// effective pins the level to 1 when escalation is off.
func (d *DifficultyManager) effective(level int) int {
	if !d.cfg.Difficulty.Escalate || level < 1 {
		return 1
	}
	return level
}

// EnemyHealth returns base + floor(level / divisor).
func (d *DifficultyManager) EnemyHealth(level int) int {
	e := d.cfg.Enemies
	return e.BaseHealth + d.effective(level)/max(e.HealthLevelDivisor, 1)
}

// EnemyShootInterval returns max(interval - level*step, floor).
func (d *DifficultyManager) EnemyShootInterval(level int) int {
	e := d.cfg.Enemies
	return max(e.ShootInterval-d.effective(level)*e.ShootIntervalStep, e.ShootIntervalFloor)
}

// EnemySpawnInterval returns max(interval - level*step, floor).
func (d *DifficultyManager) EnemySpawnInterval(level int) int {
	e := d.cfg.Enemies
	return max(e.SpawnInterval-d.effective(level)*e.SpawnIntervalStep, e.SpawnIntervalFloor)
}

// EnemySpeed returns the cruise speed of enemies at a level.
func (d *DifficultyManager) EnemySpeed(level int) float64 {
	e := d.cfg.Enemies
	return e.BaseSpeed + float64(d.effective(level))*e.SpeedPerLevel
}

// EnemyRetargetSpeed returns the pursuit speed used when an enemy re-aims.
func (d *DifficultyManager) EnemyRetargetSpeed(level int) float64 {
	if d.cfg.Enemies.RetargetSpeed > 0 {
		return d.cfg.Enemies.RetargetSpeed
	}
	return d.EnemySpeed(level)
}

// EnemyCap returns the maximum simultaneous enemies: base + floor(level / divisor).
func (d *DifficultyManager) EnemyCap(level int) int {
	e := d.cfg.Enemies
	return e.CapBase + d.effective(level)/max(e.CapLevelDivisor, 1)
}

// WaveSize returns the asteroid count spawned on reaching a level.
func (d *DifficultyManager) WaveSize(level int) int {
	return d.cfg.Waves.BaseCount + d.effective(level)
}

// TopUpTarget returns the asteroid count below which the field is refilled.
func (d *DifficultyManager) TopUpTarget(level int) int {
	return d.cfg.Waves.TopUpBase + d.effective(level)
}
