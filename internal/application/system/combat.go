package system

import (
	"math"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
	"github.com/younwookim/shadowgrove/internal/domain/geom"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

// CombatRules configures hit resolution
type CombatRules struct {
	PlayerWindowStart float64
	PlayerWindowEnd   float64
	EnemyWindowStart  float64
	EnemyWindowEnd    float64
	Knockback         float64
	// ArcDegrees is the total cone in front of the player that a swing
	// covers. 0 disables the check.
	ArcDegrees float64
}

// DefaultCombatRules returns the stock rules
func DefaultCombatRules() CombatRules {
	return CombatRules{
		PlayerWindowStart: 0.5,
		PlayerWindowEnd:   0.75,
		EnemyWindowStart:  0.5,
		EnemyWindowEnd:    0.9,
		Knockback:         20,
		ArcDegrees:        180,
	}
}

// RulesFromConfig builds rules from game.json. Values left at zero keep
// their defaults; a negative knockback or arc turns that rule off.
func RulesFromConfig(cfg config.CombatConfig) CombatRules {
	r := DefaultCombatRules()
	if cfg.PlayerWindow.End > 0 {
		r.PlayerWindowStart = cfg.PlayerWindow.Start
		r.PlayerWindowEnd = cfg.PlayerWindow.End
	}
	if cfg.EnemyWindow.End > 0 {
		r.EnemyWindowStart = cfg.EnemyWindow.Start
		r.EnemyWindowEnd = cfg.EnemyWindow.End
	}
	r.Knockback = overrideOrOff(r.Knockback, cfg.Knockback)
	r.ArcDegrees = overrideOrOff(r.ArcDegrees, cfg.ArcDegrees)
	return r
}

func overrideOrOff(def, v float64) float64 {
	switch {
	case v > 0:
		return v
	case v < 0:
		return 0
	}
	return def
}

// CombatSystem owns the live enemies and arbitrates hits between them and
// the player
type CombatSystem struct {
	rules    CombatRules
	enemies  []*entity.Enemy
	collider *TileCollider
	events   []Event
}

// NewCombatSystem creates a new combat system. collider may be nil.
func NewCombatSystem(rules CombatRules, collider *TileCollider) *CombatSystem {
	return &CombatSystem{
		rules:    rules,
		collider: collider,
		enemies:  make([]*entity.Enemy, 0, 16),
		events:   make([]Event, 0, 8),
	}
}

// AddEnemy registers a spawned enemy
func (s *CombatSystem) AddEnemy(e *entity.Enemy) {
	s.enemies = append(s.enemies, e)
}

// Update runs the enemy half of a frame: each enemy update, dead-enemy
// removal, then hit resolution
func (s *CombatSystem) Update(player *entity.Player, dt float64) {
	for _, e := range s.enemies {
		px, py := e.Position()
		e.Update(dt)
		if s.collider != nil {
			s.collider.Correct(&e.Entity, px, py)
		}
	}
	s.RemoveDead()
	s.CheckCollisions(player)
}

// RemoveDead drops enemies whose death animation has finished. Order of the
// survivors is kept.
func (s *CombatSystem) RemoveDead() int {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.ReadyForRemoval {
			kept = append(kept, e)
		}
	}
	removed := len(s.enemies) - len(kept)
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
	return removed
}

// CheckCollisions resolves the player's swing against enemies, then every
// enemy attack against the player. Each attack lands at most once.
func (s *CombatSystem) CheckCollisions(player *entity.Player) {
	if player == nil {
		return
	}

	snapshot := make([]*entity.Enemy, len(s.enemies))
	copy(snapshot, s.enemies)

	s.resolvePlayerAttack(player, snapshot)
	s.resolveEnemyAttacks(player, snapshot)
}

func (s *CombatSystem) resolvePlayerAttack(player *entity.Player, enemies []*entity.Enemy) {
	if player.StateName() != entity.PlayerAttacking || player.HasDealtDamage {
		return
	}
	if !inWindow(player.AnimationFrame(), player.AnimationFrames(), s.rules.PlayerWindowStart, s.rules.PlayerWindowEnd) {
		return
	}

	px, py := player.Position()
	for _, e := range enemies {
		if e.IsDead || !e.IsAlive() {
			continue
		}
		ex, ey := e.Position()
		d := geom.Distance(px, py, ex, ey)
		if d > player.AttackRange || !s.inArc(player.Facing(), px, py, ex, ey, d) {
			continue
		}

		e.TakeDamage(player.AttackDamage)
		ux, uy, _ := geom.Normalize(ex-px, ey-py)
		e.Knockback(ux*s.rules.Knockback, uy*s.rules.Knockback)
		if s.collider != nil {
			s.collider.Correct(&e.Entity, ex, ey)
		}
		player.HasDealtDamage = true

		s.events = append(s.events, EnemyHitEvent{EnemyID: e.ID, Damage: player.AttackDamage, X: e.X, Y: e.Y})

		if e.IsAlive() {
			if e.StateName() != entity.EnemyHit {
				e.ChangeState(entity.EnemyHit)
			}
			continue
		}
		if e.StateName() != entity.EnemyDying {
			e.ChangeState(entity.EnemyDying)
		}
		s.events = append(s.events, EnemyKilledEvent{EnemyID: e.ID, Kind: e.Kind})
	}
}

func (s *CombatSystem) resolveEnemyAttacks(player *entity.Player, enemies []*entity.Enemy) {
	px, py := player.Position()
	for _, e := range enemies {
		if e.IsDead || !e.IsAlive() {
			continue
		}
		if e.StateName() != entity.EnemyAttack || e.AttackLanded() {
			continue
		}
		if !inWindow(e.AnimationFrame(), e.AnimationFrames(), s.rules.EnemyWindowStart, s.rules.EnemyWindowEnd) {
			continue
		}
		if e.DistanceTo(px, py) > e.AttackRange {
			continue
		}

		if dmg := e.Damage(); dmg > 0 {
			before := player.HP
			player.TakeDamage(dmg)
			if player.HP < before {
				s.events = append(s.events, PlayerHitEvent{EnemyID: e.ID, Damage: before - player.HP})
			}
		}
		e.MarkAttackLanded()
	}
}

// inArc reports whether (tx, ty) lies within the swing cone around facing.
// A target on top of the attacker always passes.
func (s *CombatSystem) inArc(facing geom.Direction, px, py, tx, ty, d float64) bool {
	if s.rules.ArcDegrees <= 0 || d == 0 {
		return true
	}
	angle := math.Atan2(ty-py, tx-px)
	half := s.rules.ArcDegrees / 2 * math.Pi / 180
	return geom.AngleDiff(angle, geom.DirectionAngle(facing)) <= half+1e-9
}

// inWindow reports whether frame lies in [floor(total*start), floor(total*end)].
// A clip without frames never opens a window.
func inWindow(frame, total int, start, end float64) bool {
	if total <= 0 {
		return false
	}
	lo := int(math.Floor(float64(total) * start))
	hi := int(math.Floor(float64(total) * end))
	return frame >= lo && frame <= hi
}

// Enemies returns the live enemies
func (s *CombatSystem) Enemies() []*entity.Enemy {
	return s.enemies
}

// Cleared reports whether every enemy has been removed
func (s *CombatSystem) Cleared() bool {
	return len(s.enemies) == 0
}

// DrainEvents returns the events emitted since the last call
func (s *CombatSystem) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = make([]Event, 0, cap(out))
	return out
}

// Reset drops all enemies and pending events and swaps the collider
func (s *CombatSystem) Reset(collider *TileCollider) {
	s.enemies = s.enemies[:0]
	s.events = s.events[:0]
	s.collider = collider
}
