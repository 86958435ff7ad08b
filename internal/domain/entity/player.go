package entity

import (
	"github.com/younwookim/shadowgrove/internal/domain/fsm"
	"github.com/younwookim/shadowgrove/internal/domain/geom"
)

// Player states
const (
	PlayerIdle      fsm.StateName = "idle"
	PlayerMoving    fsm.StateName = "moving"
	PlayerAttacking fsm.StateName = "attacking"
	PlayerDodging   fsm.StateName = "dodging"
	PlayerHit       fsm.StateName = "hit"
	PlayerDying     fsm.StateName = "dying"
)

var playerTransitions = fsm.Table{
	PlayerIdle:      {PlayerMoving, PlayerAttacking, PlayerDodging, PlayerHit, PlayerDying},
	PlayerMoving:    {PlayerIdle, PlayerAttacking, PlayerDodging, PlayerHit, PlayerDying},
	PlayerAttacking: {PlayerIdle, PlayerHit, PlayerDying},
	PlayerDodging:   {PlayerIdle, PlayerHit, PlayerDying},
	PlayerHit:       {PlayerIdle, PlayerDying},
}

// PlayerStats holds the tunable player values
type PlayerStats struct {
	MaxHP                 int
	AttackDamage          int
	AttackRange           float64
	Speed                 float64
	DodgeSpeed            float64
	DodgeDuration         float64
	InvincibilityDuration float64
	HitFlashDuration      float64
	DeathDuration         float64
	AttackTimeout         float64
	Width, Height         float64
}

// DefaultPlayerStats returns the stock player tuning
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		MaxHP:                 100,
		AttackDamage:          10,
		AttackRange:           50,
		Speed:                 100,
		DodgeSpeed:            200,
		DodgeDuration:         0.3,
		InvincibilityDuration: 1.0,
		HitFlashDuration:      0.12,
		DeathDuration:         1.0,
		AttackTimeout:         0.6,
		Width:                 24,
		Height:                32,
	}
}

// DefaultPlayerClips returns the stock player animation table
func DefaultPlayerClips() map[string]Clip {
	return map[string]Clip{
		AnimIdle:   {Frames: 12, Interval: 0.15},
		AnimWalk:   {Frames: 8, Interval: 0.1},
		AnimAttack: {Frames: 24, Interval: 0.05},
		AnimDodge:  {Frames: 6, Interval: 0.05},
		AnimHit:    {Frames: 2, Interval: 0.06},
		AnimDeath:  {Frames: 10, Interval: 0.1},
	}
}

// Player is the controllable character
type Player struct {
	Entity

	AttackDamage int
	AttackRange  float64
	Speed        float64

	DodgeSpeed    float64
	DodgeDuration float64

	InvincibilityTimer    float64
	InvincibilityDuration float64

	HitFlashDuration float64
	DeathDuration    float64
	AttackTimeout    float64

	// HasDealtDamage is reset on every Attacking entry
	HasDealtDamage bool
	// ReadyForGameOver is set once the death animation has played out
	ReadyForGameOver bool

	machine *fsm.Machine[Input]
}

// NewPlayer creates a player centered at (x, y) in the Idle state
func NewPlayer(x, y float64, stats PlayerStats, clips map[string]Clip) *Player {
	p := &Player{
		Entity: Entity{
			X:         x,
			Y:         y,
			Width:     stats.Width,
			Height:    stats.Height,
			Direction: geom.DirS,
			HP:        stats.MaxHP,
			MaxHP:     stats.MaxHP,
			Anim:      NewAnimator(clips),
		},
		AttackDamage:          stats.AttackDamage,
		AttackRange:           stats.AttackRange,
		Speed:                 stats.Speed,
		DodgeSpeed:            stats.DodgeSpeed,
		DodgeDuration:         stats.DodgeDuration,
		InvincibilityDuration: stats.InvincibilityDuration,
		HitFlashDuration:      stats.HitFlashDuration,
		DeathDuration:         stats.DeathDuration,
		AttackTimeout:         stats.AttackTimeout,
	}

	m := fsm.New[Input](playerTransitions)
	m.Add(PlayerIdle, &playerIdle{p: p})
	m.Add(PlayerMoving, &playerMoving{p: p})
	m.Add(PlayerAttacking, &playerAttacking{p: p})
	m.Add(PlayerDodging, &playerDodging{p: p})
	m.Add(PlayerHit, &playerHit{p: p})
	m.Add(PlayerDying, &playerDying{p: p})
	p.machine = m
	m.Change(PlayerIdle, nil)

	return p
}

// Update runs one tick: timers, animation, forced death check, then the
// current state. A nil input reads as no keys.
func (p *Player) Update(dt float64, in Input) {
	if in == nil {
		in = noInput{}
	}

	if p.InvincibilityTimer > 0 {
		p.InvincibilityTimer -= dt
		if p.InvincibilityTimer < 0 {
			p.InvincibilityTimer = 0
		}
	}

	p.Anim.Advance(dt)

	if p.HP <= 0 && !p.machine.Is(PlayerDying) {
		p.machine.Change(PlayerDying, nil)
		return
	}

	p.machine.Update(dt, in)
}

// TakeDamage applies incoming damage. Ignored while invincible or dying.
// A killing blow always transitions to Dying; otherwise Attacking keeps
// its super armor and every other state goes to Hit.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 || p.machine.Is(PlayerDying) || p.IsInvincible() {
		return
	}

	p.applyDamage(amount)
	p.InvincibilityTimer = p.InvincibilityDuration

	if p.HP <= 0 {
		p.machine.Change(PlayerDying, nil)
		return
	}
	if !p.machine.Is(PlayerAttacking) {
		p.machine.Change(PlayerHit, nil)
	}
}

// IsInvincible returns true while the invincibility timer runs
func (p *Player) IsInvincible() bool {
	return p.InvincibilityTimer > 0
}

// SetAnimation switches the animation; player clips share logical names
func (p *Player) SetAnimation(name string) {
	p.Anim.Play(name, name)
}

// StateName returns the current state
func (p *Player) StateName() fsm.StateName {
	return p.machine.Current()
}

// PreviousStateName returns the state active before the last transition
func (p *Player) PreviousStateName() fsm.StateName {
	return p.machine.Previous()
}

// ChangeState requests a transition; false when the table rejects it
func (p *Player) ChangeState(name fsm.StateName) bool {
	return p.machine.Change(name, nil)
}

// CanTransition reports whether the player table allows from -> to
func (p *Player) CanTransition(from, to fsm.StateName) bool {
	return p.machine.CanTransition(from, to)
}
