package entity

import (
	"github.com/younwookim/shadowgrove/internal/domain/fsm"
	"github.com/younwookim/shadowgrove/internal/domain/geom"
)

// Enemy states
const (
	EnemyIdle   fsm.StateName = "idle"
	EnemyPatrol fsm.StateName = "patrol"
	EnemyChase  fsm.StateName = "chase"
	EnemyAttack fsm.StateName = "attack"
	EnemyHit    fsm.StateName = "hit"
	EnemyDying  fsm.StateName = "dying"
)

// Attack -> Attack is a combo chain.
var enemyTransitions = fsm.Table{
	EnemyIdle:   {EnemyPatrol, EnemyChase, EnemyAttack, EnemyHit, EnemyDying},
	EnemyPatrol: {EnemyIdle, EnemyChase, EnemyHit, EnemyDying},
	EnemyChase:  {EnemyIdle, EnemyPatrol, EnemyAttack, EnemyHit, EnemyDying},
	EnemyAttack: {EnemyIdle, EnemyPatrol, EnemyChase, EnemyAttack, EnemyHit, EnemyDying},
	EnemyHit:    {EnemyIdle, EnemyChase, EnemyDying},
}

// Target is the read-only handle enemies and the resolver hold on the player
type Target interface {
	Position() (x, y float64)
	Facing() geom.Direction
	Health() (hp, maxHP int)
	IsAlive() bool
	TakeDamage(amount int)
	StateName() fsm.StateName
	AnimationFrame() int
	AnimationFrames() int
}

// Point is a patrol waypoint
type Point struct {
	X, Y float64
}

// EnemyStats holds the per-archetype tuning
type EnemyStats struct {
	MaxHP           int
	AttackDamage    int
	AttackRange     float64
	DetectionRange  float64
	LoseTargetRange float64
	Speed           float64
	ChaseSpeed      float64
	MinDistance     float64
	AttackCooldown  float64
	Width, Height   float64
}

// AITuning holds the values shared by every archetype
type AITuning struct {
	IdleDuration     float64
	PatrolTolerance  float64
	PatrolWait       float64
	HitStun          float64
	DeathDuration    float64
	AttackDuration   float64
	StandoffDeadband float64
	BackoffFactor    float64
}

// DefaultAITuning returns the stock shared AI values
func DefaultAITuning() AITuning {
	return AITuning{
		IdleDuration:     2.0,
		PatrolTolerance:  5,
		PatrolWait:       1.0,
		HitStun:          0.5,
		DeathDuration:    1.0,
		AttackDuration:   0.8,
		StandoffDeadband: 10,
		BackoffFactor:    0.3,
	}
}

func (t AITuning) withDefaults() AITuning {
	d := DefaultAITuning()
	if t.IdleDuration <= 0 {
		t.IdleDuration = d.IdleDuration
	}
	if t.PatrolTolerance <= 0 {
		t.PatrolTolerance = d.PatrolTolerance
	}
	if t.PatrolWait < 0 {
		t.PatrolWait = 0
	}
	if t.HitStun <= 0 {
		t.HitStun = d.HitStun
	}
	if t.DeathDuration <= 0 {
		t.DeathDuration = d.DeathDuration
	}
	if t.AttackDuration <= 0 {
		t.AttackDuration = d.AttackDuration
	}
	if t.StandoffDeadband <= 0 {
		t.StandoffDeadband = d.StandoffDeadband
	}
	if t.BackoffFactor <= 0 {
		t.BackoffFactor = d.BackoffFactor
	}
	return t
}

// Enemy is an AI-driven opponent. Archetype specifics live in Behavior.
type Enemy struct {
	Entity

	Kind     Kind
	Behavior Behavior
	Tuning   AITuning

	AttackDamage    int
	AttackRange     float64
	DetectionRange  float64
	LoseTargetRange float64
	Speed           float64
	ChaseSpeed      float64
	MinDistance     float64

	AttackCooldown float64
	LastAttackTime float64
	// Clock accumulates simulated seconds; cooldowns and combos read it
	Clock float64

	Target     Target
	PatrolPath []Point

	IsDead          bool
	ReadyForRemoval bool

	patrolIndex int
	patrolWait  float64
	waiting     bool

	machine *fsm.Machine[struct{}]
	attack  *enemyAttack
}

// NewEnemy creates an enemy centered at (x, y) in the Idle state
func NewEnemy(id EntityID, x, y float64, stats EnemyStats, tuning AITuning, clips map[string]Clip, b Behavior) *Enemy {
	e := &Enemy{
		Entity: Entity{
			ID:        id,
			X:         x,
			Y:         y,
			Width:     stats.Width,
			Height:    stats.Height,
			Direction: geom.DirS,
			HP:        stats.MaxHP,
			MaxHP:     stats.MaxHP,
			Anim:      NewAnimator(clips),
		},
		Kind:            b.Kind(),
		Behavior:        b,
		Tuning:          tuning.withDefaults(),
		AttackDamage:    stats.AttackDamage,
		AttackRange:     stats.AttackRange,
		DetectionRange:  stats.DetectionRange,
		LoseTargetRange: stats.LoseTargetRange,
		Speed:           stats.Speed,
		ChaseSpeed:      stats.ChaseSpeed,
		MinDistance:     stats.MinDistance,
		AttackCooldown:  stats.AttackCooldown,
		LastAttackTime:  -stats.AttackCooldown,
	}
	if e.LoseTargetRange <= e.DetectionRange {
		e.LoseTargetRange = e.DetectionRange * 1.2
	}

	e.attack = &enemyAttack{e: e}
	m := fsm.New[struct{}](enemyTransitions)
	m.Add(EnemyIdle, &enemyIdle{e: e})
	m.Add(EnemyPatrol, &enemyPatrol{e: e})
	m.Add(EnemyChase, &enemyChase{e: e})
	m.Add(EnemyAttack, e.attack)
	m.Add(EnemyHit, &enemyHit{e: e})
	m.Add(EnemyDying, &enemyDying{e: e})
	e.machine = m
	m.Change(EnemyIdle, nil)

	return e
}

// Update runs one tick: clock, archetype timers, animation, then the state
func (e *Enemy) Update(dt float64) {
	e.Clock += dt
	e.Behavior.Tick(e, dt)
	e.Anim.Advance(dt)
	e.machine.Update(dt, struct{}{})
}

// TakeDamage subtracts hp. State changes are decided by the caller.
func (e *Enemy) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	e.applyDamage(amount)
}

// Damage returns the damage of the attack currently being performed
func (e *Enemy) Damage() int {
	return e.Behavior.Damage(e)
}

// SetAnimation plays the archetype clip for a logical animation
func (e *Enemy) SetAnimation(name string) {
	e.Anim.Play(name, e.Behavior.Clip(e, name))
}

// StateName returns the current state
func (e *Enemy) StateName() fsm.StateName {
	return e.machine.Current()
}

// PreviousStateName returns the state active before the last transition
func (e *Enemy) PreviousStateName() fsm.StateName {
	return e.machine.Previous()
}

// ChangeState requests a transition; false when the table rejects it
func (e *Enemy) ChangeState(name fsm.StateName) bool {
	return e.machine.Change(name, nil)
}

// AttackLanded reports whether the current attack has already hit
func (e *Enemy) AttackLanded() bool {
	return e.attack.landed
}

// MarkAttackLanded records that the current attack has been resolved
func (e *Enemy) MarkAttackLanded() {
	e.attack.landed = true
}

// Knockback pushes the enemy by (dx, dy)
func (e *Enemy) Knockback(dx, dy float64) {
	e.Translate(dx, dy)
}

// DistanceToTarget returns the distance to a live target. ok is false when
// there is no target or it is dead.
func (e *Enemy) DistanceToTarget() (d float64, ok bool) {
	if e.Target == nil || !e.Target.IsAlive() {
		return 0, false
	}
	tx, ty := e.Target.Position()
	return e.DistanceTo(tx, ty), true
}

// CanSeeTarget reports whether the target is within detection range
func (e *Enemy) CanSeeTarget() bool {
	d, ok := e.DistanceToTarget()
	return ok && d <= e.DetectionRange
}

// TargetInAttackRange reports whether the target is within attack range
func (e *Enemy) TargetInAttackRange() bool {
	d, ok := e.DistanceToTarget()
	return ok && d <= e.AttackRange
}

// CooldownReady reports whether enough time has passed since the last attack
func (e *Enemy) CooldownReady() bool {
	return e.Clock-e.LastAttackTime >= e.AttackCooldown
}

// FaceTarget turns toward the target
func (e *Enemy) FaceTarget() {
	if e.Target == nil {
		return
	}
	tx, ty := e.Target.Position()
	if tx == e.X && ty == e.Y {
		return
	}
	e.Direction = geom.DirectionTo(e.X, e.Y, tx, ty)
}

// Chase applies the stand-off rule for one tick: close in beyond
// MinDistance, back off slowly inside the dead-band, hold within it.
func (e *Enemy) Chase(dt float64) {
	if e.Target == nil || e.Behavior.MovementLocked(e) {
		return
	}

	tx, ty := e.Target.Position()
	dx, dy := tx-e.X, ty-e.Y
	ux, uy, d := geom.Normalize(dx, dy)

	switch {
	case d > e.MinDistance:
		ax, ay := e.Behavior.ApproachVector(e, dx, dy)
		step := e.ChaseSpeed * dt
		e.Translate(ax*step, ay*step)
		e.FaceTarget()
	case d > 0 && d < e.MinDistance-e.Tuning.StandoffDeadband:
		step := e.ChaseSpeed * e.Tuning.BackoffFactor * dt
		e.Translate(-ux*step, -uy*step)
	}
}

// Patrol walks the waypoint loop for one tick
func (e *Enemy) Patrol(dt float64) {
	if len(e.PatrolPath) == 0 {
		return
	}

	if e.waiting {
		e.patrolWait -= dt
		if e.patrolWait <= 0 {
			e.waiting = false
			e.patrolIndex = (e.patrolIndex + 1) % len(e.PatrolPath)
		}
		return
	}

	wp := e.PatrolPath[e.patrolIndex]
	ux, uy, d := geom.Normalize(wp.X-e.X, wp.Y-e.Y)
	if d < e.Tuning.PatrolTolerance {
		e.waiting = true
		e.patrolWait = e.Tuning.PatrolWait
		return
	}

	step := e.Speed * dt
	if step > d {
		step = d
	}
	e.Translate(ux*step, uy*step)
	e.Direction = geom.DirectionTo(0, 0, ux, uy)
}

// PatrolIndex returns the waypoint currently targeted
func (e *Enemy) PatrolIndex() int {
	return e.patrolIndex
}

// fallback leaves an engagement: Patrol when a path exists, else Idle
func (e *Enemy) fallback(b *fsm.Base) {
	if len(e.PatrolPath) > 0 {
		b.Change(EnemyPatrol, nil)
		return
	}
	b.Change(EnemyIdle, nil)
}
