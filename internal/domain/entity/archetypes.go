package entity

import (
	"fmt"
	"math/rand"
)

// DefaultEnemyStats returns the stock tuning of an archetype
func DefaultEnemyStats(kind Kind) (EnemyStats, bool) {
	switch kind {
	case KindShadowBat:
		return EnemyStats{
			MaxHP:           20,
			AttackDamage:    3,
			AttackRange:     55,
			DetectionRange:  250,
			LoseTargetRange: 300,
			Speed:           100,
			ChaseSpeed:      120,
			MinDistance:     50,
			AttackCooldown:  1.0,
			Width:           24,
			Height:          20,
		}, true
	case KindSpiritBoxer:
		return EnemyStats{
			MaxHP:           40,
			AttackDamage:    5,
			AttackRange:     65,
			DetectionRange:  200,
			LoseTargetRange: 300,
			Speed:           50,
			ChaseSpeed:      60,
			MinDistance:     65,
			AttackCooldown:  2.0,
			Width:           28,
			Height:          36,
		}, true
	case KindTempleGuardian:
		return EnemyStats{
			MaxHP:           120,
			AttackDamage:    8,
			AttackRange:     70,
			DetectionRange:  250,
			LoseTargetRange: 300,
			Speed:           40,
			ChaseSpeed:      50,
			MinDistance:     60,
			AttackCooldown:  2.5,
			Width:           40,
			Height:          48,
		}, true
	}
	return EnemyStats{}, false
}

// DefaultEnemyClips returns the stock animation table of an archetype
func DefaultEnemyClips(kind Kind) map[string]Clip {
	switch kind {
	case KindShadowBat:
		return map[string]Clip{
			ClipBatIdle:    {Frames: 7, Interval: 0.12},
			ClipBatTakeoff: {Frames: 6, Interval: 0.12, Next: ClipBatFly},
			ClipBatFly:     {Frames: 7, Interval: 0.12},
			ClipBatBite:    {Frames: 8, Interval: 0.12},
			AnimHit:        {Frames: 3, Interval: 0.12},
			AnimDeath:      {Frames: 4, Interval: 0.12},
		}
	case KindSpiritBoxer:
		return map[string]Clip{
			AnimIdle:  {Frames: 4, Interval: 0.12},
			"run":     {Frames: 6, Interval: 0.12},
			"attack1": {Frames: 6, Interval: 0.12},
			"attack2": {Frames: 13, Interval: 0.12},
			"attack3": {Frames: 10, Interval: 0.12},
			AnimHit:   {Frames: 4, Interval: 0.12},
			AnimDeath: {Frames: 6, Interval: 0.12},
		}
	case KindTempleGuardian:
		return map[string]Clip{
			"walk":                  {Frames: 8, Interval: 0.12},
			string(GuardianAttack1): {Frames: 11, Interval: 0.08},
			string(GuardianAttack2): {Frames: 11, Interval: 0.16},
			string(GuardianSpecial): {Frames: 14, Interval: 0.20},
			AnimHit:                 {Frames: 2, Interval: 0.12},
			AnimDeath:               {Frames: 10, Interval: 0.12},
		}
	}
	return map[string]Clip{}
}

// NewBehavior creates an archetype behavior with stock settings
func NewBehavior(kind Kind, rng *rand.Rand) (Behavior, error) {
	switch kind {
	case KindShadowBat:
		return NewShadowBat(), nil
	case KindSpiritBoxer:
		return NewSpiritBoxer(rng, DefaultComboSettings()), nil
	case KindTempleGuardian:
		return NewTempleGuardian(rng, DefaultSpecialSettings()), nil
	}
	return nil, fmt.Errorf("unknown enemy kind %q", kind)
}

// NewDefaultEnemy creates an archetype with stock stats, clips and behavior
func NewDefaultEnemy(id EntityID, kind Kind, x, y float64, rng *rand.Rand) (*Enemy, error) {
	stats, ok := DefaultEnemyStats(kind)
	if !ok {
		return nil, fmt.Errorf("unknown enemy kind %q", kind)
	}
	b, err := NewBehavior(kind, rng)
	if err != nil {
		return nil, err
	}
	return NewEnemy(id, x, y, stats, DefaultAITuning(), DefaultEnemyClips(kind), b), nil
}
