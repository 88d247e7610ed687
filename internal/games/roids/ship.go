package roids

import (
	"github.com/vovakirdan/roids-arcade/internal/config"
	"github.com/vovakirdan/roids-arcade/internal/core"
)

// Ship is the player's ship.
type Ship struct {
	Pos               core.Vec2
	Vel               core.Vec2
	Rotation          float64
	Thrusting         bool
	Cooldown          int
	Lives             int
	Invulnerable      bool
	InvulnerableTicks int
	ActiveTurret      Turret
	Recoil            [2]float64 // indexed by Turret

	cfg config.ShipConfig
}

func newShip(cfg config.ShipConfig, center core.Vec2) *Ship {
	return &Ship{
		Pos:          center,
		Lives:        cfg.Lives,
		ActiveTurret: TurretLeft,
		cfg:          cfg,
	}
}

// update integrates one tick of motion and counts down the ship's timers.
// Firing is decided by the world after update so the cooldown seen there
// already includes this tick's decrement.
func (s *Ship) update(in Intents, f core.Field) {
	if in.RotateLeft {
		s.Rotation -= s.cfg.RotationSpeed
	}
	if in.RotateRight {
		s.Rotation += s.cfg.RotationSpeed
	}

	s.Thrusting = in.Thrust
	if s.Thrusting {
		s.Vel = s.Vel.Add(core.FromAngle(s.Rotation).Scale(s.cfg.Thrust))
	}
	if s.cfg.MaxSpeed > 0 && s.Vel.Len() > s.cfg.MaxSpeed {
		s.Vel = s.Vel.Normalize().Scale(s.cfg.MaxSpeed)
	}
	s.Vel = s.Vel.Scale(s.cfg.Drag)

	s.Pos = f.Wrap(s.Pos.Add(s.Vel), 0)

	if s.Cooldown > 0 {
		s.Cooldown--
	}
	if s.Invulnerable {
		s.InvulnerableTicks--
		if s.InvulnerableTicks <= 0 {
			s.InvulnerableTicks = 0
			s.Invulnerable = false
		}
	}
	for i := range s.Recoil {
		s.Recoil[i] = max(s.Recoil[i]-s.cfg.RecoilDecay, 0)
	}
}

// CanFire reports whether the gun has cooled down.
func (s *Ship) CanFire() bool {
	return s.Cooldown == 0
}

// turretOffset returns the mount position relative to the ship center.
func (s *Ship) turretOffset(t Turret) core.Vec2 {
	side := -s.cfg.Size / 3
	if t == TurretRight {
		side = -side
	}
	return core.V(s.cfg.Size/2, side).Rotate(s.Rotation)
}

// fire emits a bullet and resets the cooldown. The bullet inherits the
// ship's momentum. With alternation enabled the mounts take turns and the
// firing one recoils; the returned Turret is the mount that fired.
func (s *Ship) fire(bc config.BulletConfig) (*Bullet, Turret) {
	turret := s.ActiveTurret
	origin := s.Pos
	if s.cfg.TurretAlternation {
		origin = s.Pos.Add(s.turretOffset(turret))
		s.Recoil[turret] = s.cfg.RecoilKick
		s.ActiveTurret = turret.other()
	}
	s.Cooldown = s.cfg.ShootCooldown

	return &Bullet{
		Pos:    origin,
		Vel:    core.FromAngle(s.Rotation).Scale(bc.Speed).Add(s.Vel),
		Radius: bc.Radius,
		Life:   bc.Lifespan,
	}, turret
}

// grantInvulnerability starts (or restarts) the invulnerability window.
func (s *Ship) grantInvulnerability(ticks int) {
	s.Invulnerable = true
	s.InvulnerableTicks = ticks
}

// hit applies one collision to the ship.
// While invulnerable, or once out of lives, it changes nothing and reports
// applied=false. Otherwise a life is lost; if any remain the ship respawns
// at center with zero velocity and a fresh invulnerability window.
// fatal is true when the last life was just lost; the ship is left in place.
func (s *Ship) hit(center core.Vec2) (fatal, applied bool) {
	if s.Invulnerable || s.Lives <= 0 {
		return false, false
	}

	s.Lives--
	if s.Lives > 0 {
		s.Pos = center
		s.Vel = core.Vec2{}
		s.grantInvulnerability(s.cfg.InvulnerableTicks)
		return false, true
	}
	return true, true
}

// Alive reports whether the ship has lives left.
func (s *Ship) Alive() bool {
	return s.Lives > 0
}

// Size returns the ship's drawing size.
func (s *Ship) Size() float64 {
	return s.cfg.Size
}

// HitRadius returns the ship's collision radius against asteroids and bullets.
func (s *Ship) HitRadius() float64 {
	return s.cfg.HitRadius
}
