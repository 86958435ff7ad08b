package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/younwookim/shadowgrove/internal/domain/geom"
)

// Kind names an enemy archetype. Values match the spawn type strings.
type Kind string

const (
	KindShadowBat      Kind = "shadow-bat"
	KindSpiritBoxer    Kind = "spirit-boxer"
	KindTempleGuardian Kind = "temple-guardian"
)

// Behavior is the archetype capability enemy states call through
type Behavior interface {
	Kind() Kind
	// Clip maps a logical animation name to the archetype's clip
	Clip(e *Enemy, anim string) string
	// BeginAttack selects the attack variant on Attack entry
	BeginAttack(e *Enemy)
	// FinishAttack applies end-of-attack side effects and reports whether
	// the attack chains straight into another
	FinishAttack(e *Enemy) (chain bool)
	// Damage of the attack in progress
	Damage(e *Enemy) int
	// Tick advances archetype timers
	Tick(e *Enemy, dt float64)
	// ApproachVector returns the unit direction used to close in on (dx, dy)
	ApproachVector(e *Enemy, dx, dy float64) (ux, uy float64)
	// MovementLocked suppresses chase movement
	MovementLocked(e *Enemy) bool
}

// standard supplies the shared defaults archetypes embed
type standard struct{}

func (standard) BeginAttack(*Enemy) {}
func (standard) FinishAttack(*Enemy) bool { return false }
func (standard) Damage(e *Enemy) int { return e.AttackDamage }
func (standard) Tick(*Enemy, float64) {}
func (standard) MovementLocked(*Enemy) bool { return false }
func (standard) Clip(_ *Enemy, anim string) string { return anim }

func (standard) ApproachVector(_ *Enemy, dx, dy float64) (float64, float64) {
	ux, uy, _ := geom.Normalize(dx, dy)
	return ux, uy
}

// alignFirst weights the horizontal component down while the vertical gap
// exceeds tolerance, so ground melee lines up before closing in.
func alignFirst(dx, dy, tolerance, weight float64) (float64, float64) {
	if math.Abs(dy) > tolerance {
		dx *= weight
	}
	ux, uy, _ := geom.Normalize(dx, dy)
	return ux, uy
}

// Clip names used by ShadowBat
const (
	ClipBatIdle    = "idle"
	ClipBatTakeoff = "idle-to-fly"
	ClipBatFly     = "fly"
	ClipBatBite    = "bite"
)

// ShadowBat is the fast, weak flyer. It hovers at its stand-off distance
// and never patrols.
type ShadowBat struct {
	standard
}

// NewShadowBat creates the flyer behavior
func NewShadowBat() *ShadowBat {
	return &ShadowBat{}
}

func (b *ShadowBat) Kind() Kind { return KindShadowBat }

func (b *ShadowBat) Clip(e *Enemy, anim string) string {
	switch anim {
	case AnimWalk, AnimChase:
		if e.Anim.Clip == ClipBatIdle || e.Anim.Clip == ClipBatTakeoff {
			return ClipBatTakeoff
		}
		return ClipBatFly
	case AnimAttack:
		return ClipBatBite
	}
	return anim
}

// MovementLocked holds the bat in place until take-off finishes
func (b *ShadowBat) MovementLocked(e *Enemy) bool {
	return e.Anim.Clip == ClipBatTakeoff
}

// ComboSettings tunes SpiritBoxer
type ComboSettings struct {
	ResetTime   float64
	ChainChance float64
	StepBonus   [3]int
	AlignTol    float64
	AlignWeight float64
}

// DefaultComboSettings returns the stock combo tuning
func DefaultComboSettings() ComboSettings {
	return ComboSettings{
		ResetTime:   2.5,
		ChainChance: 0.5,
		StepBonus:   [3]int{0, 3, 2},
		AlignTol:    10,
		AlignWeight: 0.35,
	}
}

// SpiritBoxer is the combo melee fighter. Each attack advances a 1-2-3
// combo; a long gap since the last attack restarts it.
type SpiritBoxer struct {
	standard
	ComboSettings

	Step int

	rng *rand.Rand
}

// NewSpiritBoxer creates the combo behavior. A nil rng disables chaining.
func NewSpiritBoxer(rng *rand.Rand, cfg ComboSettings) *SpiritBoxer {
	return &SpiritBoxer{ComboSettings: cfg, rng: rng}
}

func (b *SpiritBoxer) Kind() Kind { return KindSpiritBoxer }

func (b *SpiritBoxer) Clip(_ *Enemy, anim string) string {
	switch anim {
	case AnimWalk, AnimChase:
		return "run"
	case AnimAttack:
		return fmt.Sprintf("attack%d", max(b.Step, 1))
	}
	return anim
}

func (b *SpiritBoxer) BeginAttack(e *Enemy) {
	if e.Clock-e.LastAttackTime > b.ResetTime {
		b.Step = 1
		return
	}
	b.Step = b.Step%3 + 1
}

func (b *SpiritBoxer) FinishAttack(*Enemy) bool {
	if b.rng == nil || b.Step >= 3 {
		return false
	}
	return b.rng.Float64() < b.ChainChance
}

func (b *SpiritBoxer) Damage(e *Enemy) int {
	step := min(max(b.Step, 1), 3)
	return e.AttackDamage + b.StepBonus[step-1]
}

func (b *SpiritBoxer) ApproachVector(_ *Enemy, dx, dy float64) (float64, float64) {
	return alignFirst(dx, dy, b.AlignTol, b.AlignWeight)
}

// GuardianAttack is a TempleGuardian attack variant; values are clip names
type GuardianAttack string

const (
	GuardianAttack1 GuardianAttack = "attack1"
	GuardianAttack2 GuardianAttack = "attack2"
	GuardianSpecial GuardianAttack = "special"
)

// SpecialSettings tunes TempleGuardian
type SpecialSettings struct {
	Chance           float64
	MinNormalBetween int
	Attack2Bonus     int
	BuffDuration     float64
	DamageMultiplier float64
	SpeedMultiplier  float64
	AlignTol         float64
	AlignWeight      float64
}

// DefaultSpecialSettings returns the stock boss tuning
func DefaultSpecialSettings() SpecialSettings {
	return SpecialSettings{
		Chance:           0.3,
		MinNormalBetween: 2,
		Attack2Bonus:     2,
		BuffDuration:     8.0,
		DamageMultiplier: 1.5,
		SpeedMultiplier:  1.3,
		AlignTol:         10,
		AlignWeight:      0.35,
	}
}

// TempleGuardian is the heavy boss. A non-damaging special attack grants a
// timed damage and speed buff; specials never repeat back to back and need
// MinNormalBetween normal attacks in between.
type TempleGuardian struct {
	standard
	SpecialSettings

	Current            GuardianAttack
	Last               GuardianAttack
	NormalSinceSpecial int

	Buffed    bool
	BuffTimer float64
	baseChase float64

	rng *rand.Rand
}

// NewTempleGuardian creates the boss behavior. A nil rng always picks attack1.
func NewTempleGuardian(rng *rand.Rand, cfg SpecialSettings) *TempleGuardian {
	return &TempleGuardian{SpecialSettings: cfg, rng: rng}
}

func (g *TempleGuardian) Kind() Kind { return KindTempleGuardian }

func (g *TempleGuardian) Clip(_ *Enemy, anim string) string {
	switch anim {
	case AnimIdle, AnimWalk, AnimChase:
		return "walk"
	case AnimAttack:
		if g.Current == "" {
			return string(GuardianAttack1)
		}
		return string(g.Current)
	}
	return anim
}

func (g *TempleGuardian) roll() float64 {
	if g.rng == nil {
		return 0.99
	}
	return g.rng.Float64()
}

// CanSpecial reports whether the next attack may be the special
func (g *TempleGuardian) CanSpecial() bool {
	return g.Current != GuardianSpecial && g.NormalSinceSpecial >= g.MinNormalBetween
}

func (g *TempleGuardian) BeginAttack(*Enemy) {
	g.Last = g.Current

	if g.CanSpecial() && g.roll() < g.Chance {
		g.Current = GuardianSpecial
		g.NormalSinceSpecial = 0
		return
	}

	if g.rng == nil || g.roll() < 0.5 {
		g.Current = GuardianAttack1
	} else {
		g.Current = GuardianAttack2
	}
	g.NormalSinceSpecial++
}

func (g *TempleGuardian) FinishAttack(e *Enemy) bool {
	if g.Current == GuardianSpecial {
		g.activateBuff(e)
	}
	return false
}

func (g *TempleGuardian) activateBuff(e *Enemy) {
	if !g.Buffed {
		g.baseChase = e.ChaseSpeed
		e.ChaseSpeed = g.baseChase * g.SpeedMultiplier
	}
	g.Buffed = true
	g.BuffTimer = g.BuffDuration
}

func (g *TempleGuardian) Tick(e *Enemy, dt float64) {
	if !g.Buffed {
		return
	}
	g.BuffTimer -= dt
	if g.BuffTimer <= 0 {
		g.Buffed = false
		g.BuffTimer = 0
		e.ChaseSpeed = g.baseChase
	}
}

func (g *TempleGuardian) Damage(e *Enemy) int {
	var dmg int
	switch g.Current {
	case GuardianSpecial:
		return 0
	case GuardianAttack2:
		dmg = e.AttackDamage + g.Attack2Bonus
	default:
		dmg = e.AttackDamage
	}
	if g.Buffed {
		dmg = int(math.Floor(float64(dmg) * g.DamageMultiplier))
	}
	return dmg
}

func (g *TempleGuardian) ApproachVector(_ *Enemy, dx, dy float64) (float64, float64) {
	return alignFirst(dx, dy, g.AlignTol, g.AlignWeight)
}
