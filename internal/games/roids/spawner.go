package roids

import (
	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
)

// levelComplete reports whether the field is cleared enough to advance.
func (w *World) levelComplete() bool {
	return len(w.Asteroids) <= w.cfg.Waves.LevelUpThreshold && len(w.Enemies) == 0
}

// spawn runs the enemy timer and the asteroid top-up. It stands down on a
// tick where the level is complete so the level check can fire.
func (w *World) spawn() {
	if w.levelComplete() {
		return
	}

	if w.cfg.Enemies.Enabled {
		if w.EnemySpawnCooldown > 0 {
			w.EnemySpawnCooldown--
		}
		if w.EnemySpawnCooldown <= 0 && len(w.Enemies) < w.diff.EnemyCap(w.Level) {
			w.spawnEnemy()
			w.EnemySpawnCooldown = w.diff.EnemySpawnInterval(w.Level)
		}
	}

	if len(w.Asteroids) < w.diff.TopUpTarget(w.Level) && w.rng.Float64() < w.cfg.Waves.TopUpChance {
		w.spawnAsteroid(config.PlacementEdge)
	}
}

// checkLevel advances to the next level when the field is cleared.
func (w *World) checkLevel() {
	if !w.levelComplete() {
		return
	}

	w.Level++
	wave := w.diff.WaveSize(w.Level)
	w.spawnWave(wave)
	if w.cfg.Enemies.Enabled && w.Level >= 2 {
		w.EnemySpawnCooldown = w.cfg.Enemies.LevelUpSpawnDelay
	}
	if w.cfg.Ship.LevelStartInvulnerable {
		w.Ship.grantInvulnerability(w.cfg.Ship.InvulnerableTicks)
	}
	w.emit(core.CueLevelUp)
	w.log.Info("level up", "level", w.Level, "wave", wave, "score", w.Score)
}
