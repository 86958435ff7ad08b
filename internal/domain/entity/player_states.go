package entity

import (
	"math"

	"github.com/younwookim/shadowgrove/internal/domain/fsm"
	"github.com/younwookim/shadowgrove/internal/domain/geom"
)

type playerIdle struct {
	fsm.Base
	p *Player
}

func (s *playerIdle) Enter(any) {
	s.p.SetAnimation(AnimIdle)
}

// Action edges are checked before movement so a press made while a movement
// key is already held is not dropped.
func (s *playerIdle) Update(_ float64, in Input) {
	switch {
	case in.Pressed(KeyAttack):
		s.Change(PlayerAttacking, nil)
	case in.Pressed(KeyDodge):
		s.Change(PlayerDodging, nil)
	default:
		if _, ok := heldDirection(in); ok {
			s.Change(PlayerMoving, nil)
		}
	}
}

func (s *playerIdle) Exit() {}

type playerMoving struct {
	fsm.Base
	p *Player
}

func (s *playerMoving) Enter(any) {
	s.p.SetAnimation(AnimWalk)
}

func (s *playerMoving) Update(dt float64, in Input) {
	if in.Pressed(KeyAttack) {
		s.Change(PlayerAttacking, nil)
		return
	}
	if in.Pressed(KeyDodge) {
		s.Change(PlayerDodging, nil)
		return
	}

	dir, ok := heldDirection(in)
	if !ok {
		s.Change(PlayerIdle, nil)
		return
	}

	s.p.Direction = dir
	ux, uy := geom.UnitVector(dir)
	s.p.Translate(ux*s.p.Speed*dt, uy*s.p.Speed*dt)
}

func (s *playerMoving) Exit() {}

type playerAttacking struct {
	fsm.Base
	p *Player

	elapsed      float64
	sawLastFrame bool
}

func (s *playerAttacking) Enter(any) {
	s.p.SetAnimation(AnimAttack)
	s.p.Anim.Restart()
	s.p.HasDealtDamage = false
	s.elapsed = 0
	s.sawLastFrame = false
}

// The swing ends after one full cycle: the last frame has been shown and the
// cursor has wrapped back to the start. A clip that cannot play a cycle
// ends on AttackTimeout instead, and no swing outlives two cycles.
func (s *playerAttacking) Update(dt float64, _ Input) {
	s.elapsed += dt

	total := s.p.Anim.TotalFrames()
	cycle := s.p.Anim.Duration()
	switch {
	case cycle <= 0:
		if s.elapsed >= s.p.AttackTimeout {
			s.Change(PlayerIdle, nil)
		}
		return
	case total <= 1 || s.elapsed >= math.Max(s.p.AttackTimeout, 2*cycle):
		if s.elapsed >= cycle {
			s.Change(PlayerIdle, nil)
		}
		return
	}

	frame := s.p.Anim.Frame
	if frame >= total-1 {
		s.sawLastFrame = true
	}
	if s.sawLastFrame && frame < total-1 && frame <= 2 {
		s.Change(PlayerIdle, nil)
	}
}

func (s *playerAttacking) Exit() {
	s.p.SetAnimation(AnimIdle)
}

type playerDodging struct {
	fsm.Base
	p *Player

	timer float64
	dir   geom.Direction
}

func (s *playerDodging) Enter(any) {
	s.dir = s.p.Direction
	s.timer = s.p.DodgeDuration
	if s.p.InvincibilityTimer < s.p.DodgeDuration {
		s.p.InvincibilityTimer = s.p.DodgeDuration
	}
	s.p.SetAnimation(AnimDodge)
}

func (s *playerDodging) Update(dt float64, _ Input) {
	ux, uy := geom.UnitVector(s.dir)
	s.p.Translate(ux*s.p.DodgeSpeed*dt, uy*s.p.DodgeSpeed*dt)

	s.timer -= dt
	if s.timer <= 0 {
		s.Change(PlayerIdle, nil)
	}
}

func (s *playerDodging) Exit() {}

type playerHit struct {
	fsm.Base
	p *Player

	timer float64
}

func (s *playerHit) Enter(any) {
	s.timer = s.p.HitFlashDuration
	s.p.SetAnimation(AnimHit)
}

func (s *playerHit) Update(dt float64, _ Input) {
	s.timer -= dt
	if s.timer <= 0 || !s.p.IsInvincible() {
		s.Change(PlayerIdle, nil)
	}
}

func (s *playerHit) Exit() {}

type playerDying struct {
	fsm.Base
	p *Player

	timer float64
}

func (s *playerDying) Enter(any) {
	s.timer = 0
	s.p.SetAnimation(AnimDeath)
}

func (s *playerDying) Update(dt float64, _ Input) {
	s.timer += dt
	if s.timer >= s.p.DeathDuration {
		s.p.ReadyForGameOver = true
	}
}

func (s *playerDying) Exit() {}
