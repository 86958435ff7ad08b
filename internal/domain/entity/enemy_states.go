package entity

import "github.com/younwookim/shadowgrove/internal/domain/fsm"

type enemyIdle struct {
	fsm.Base
	e *Enemy

	timer float64
}

func (s *enemyIdle) Enter(any) {
	s.timer = 0
	s.e.SetAnimation(AnimIdle)
}

func (s *enemyIdle) Update(dt float64, _ struct{}) {
	if s.e.CanSeeTarget() {
		s.Change(EnemyChase, nil)
		return
	}

	s.timer += dt
	if s.timer >= s.e.Tuning.IdleDuration && len(s.e.PatrolPath) > 0 {
		s.Change(EnemyPatrol, nil)
	}
}

func (s *enemyIdle) Exit() {}

type enemyPatrol struct {
	fsm.Base
	e *Enemy
}

func (s *enemyPatrol) Enter(any) {
	s.e.SetAnimation(AnimWalk)
}

func (s *enemyPatrol) Update(dt float64, _ struct{}) {
	if s.e.CanSeeTarget() {
		s.Change(EnemyChase, nil)
		return
	}
	if len(s.e.PatrolPath) == 0 {
		s.Change(EnemyIdle, nil)
		return
	}
	s.e.Patrol(dt)
}

func (s *enemyPatrol) Exit() {}

type enemyChase struct {
	fsm.Base
	e *Enemy
}

func (s *enemyChase) Enter(any) {
	s.e.SetAnimation(AnimChase)
}

func (s *enemyChase) Update(dt float64, _ struct{}) {
	d, ok := s.e.DistanceToTarget()
	if !ok {
		s.Change(EnemyIdle, nil)
		return
	}
	if d <= s.e.AttackRange && s.e.CooldownReady() {
		s.Change(EnemyAttack, nil)
		return
	}
	if d > s.e.LoseTargetRange {
		s.e.fallback(&s.Base)
		return
	}
	s.e.Chase(dt)
}

func (s *enemyChase) Exit() {}

// enemyAttack plays one attack. Damage is applied by the combat resolver,
// which reads and sets landed.
type enemyAttack struct {
	fsm.Base
	e *Enemy

	timer    float64
	duration float64
	landed   bool
}

func (s *enemyAttack) Enter(any) {
	s.timer = 0
	s.landed = false

	s.e.Behavior.BeginAttack(s.e)
	s.e.SetAnimation(AnimAttack)
	s.e.Anim.Restart()
	s.e.FaceTarget()

	s.duration = s.e.Anim.Duration()
	if s.duration <= 0 {
		s.duration = s.e.Tuning.AttackDuration
	}
}

func (s *enemyAttack) Update(dt float64, _ struct{}) {
	s.timer += dt
	if s.timer < s.duration {
		return
	}

	s.e.LastAttackTime = s.e.Clock
	chain := s.e.Behavior.FinishAttack(s.e)

	switch {
	case chain && s.e.TargetInAttackRange():
		s.Change(EnemyAttack, nil)
	case s.e.CanSeeTarget():
		s.Change(EnemyChase, nil)
	default:
		s.e.fallback(&s.Base)
	}
}

func (s *enemyAttack) Exit() {}

type enemyHit struct {
	fsm.Base
	e *Enemy

	timer float64
}

func (s *enemyHit) Enter(any) {
	s.timer = 0
	s.e.SetAnimation(AnimHit)
	if !s.e.IsAlive() {
		s.Change(EnemyDying, nil)
	}
}

func (s *enemyHit) Update(dt float64, _ struct{}) {
	if !s.e.IsAlive() {
		s.Change(EnemyDying, nil)
		return
	}

	s.timer += dt
	if s.timer < s.e.Tuning.HitStun {
		return
	}
	if s.e.CanSeeTarget() {
		s.Change(EnemyChase, nil)
	} else {
		s.Change(EnemyIdle, nil)
	}
}

func (s *enemyHit) Exit() {}

type enemyDying struct {
	fsm.Base
	e *Enemy

	timer float64
}

func (s *enemyDying) Enter(any) {
	s.timer = 0
	s.e.IsDead = true
	s.e.SetAnimation(AnimDeath)
}

func (s *enemyDying) Update(dt float64, _ struct{}) {
	s.timer += dt
	if s.timer >= s.e.Tuning.DeathDuration {
		s.e.ReadyForRemoval = true
	}
}

func (s *enemyDying) Exit() {}
