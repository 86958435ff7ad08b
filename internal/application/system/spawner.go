package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

// Spawner creates entities from entities.json. Enemies it creates share one
// seeded rng and target the player it was given.
type Spawner struct {
	entities *config.EntitiesConfig
	tuning   entity.AITuning
	rng      *rand.Rand
	target   entity.Target
	nextID   entity.EntityID
}

// NewSpawner creates a spawner. A nil entities config falls back to the
// built-in archetype defaults.
func NewSpawner(entities *config.EntitiesConfig, tuning entity.AITuning, rng *rand.Rand) *Spawner {
	return &Spawner{
		entities: entities,
		tuning:   tuning,
		rng:      rng,
		nextID:   1,
	}
}

// TuningFromConfig converts the shared AI timings
func TuningFromConfig(cfg config.AIConfig) entity.AITuning {
	return entity.AITuning{
		IdleDuration:     cfg.IdleDuration,
		PatrolTolerance:  cfg.PatrolTolerance,
		PatrolWait:       cfg.PatrolWait,
		HitStun:          cfg.HitStun,
		DeathDuration:    cfg.DeathDuration,
		AttackDuration:   cfg.AttackDuration,
		StandoffDeadband: cfg.StandoffDeadband,
		BackoffFactor:    cfg.BackoffFactor,
	}
}

// SetTarget sets the target handed to every enemy spawned afterwards
func (s *Spawner) SetTarget(t entity.Target) {
	s.target = t
}

// SpawnPlayer creates the player centered at (x, y)
func (s *Spawner) SpawnPlayer(x, y float64) *entity.Player {
	if s.entities == nil {
		return entity.NewPlayer(x, y, entity.DefaultPlayerStats(), entity.DefaultPlayerClips())
	}

	pc := s.entities.Player
	stats := entity.PlayerStats{
		MaxHP:                 pc.Stats.MaxHP,
		AttackDamage:          pc.Stats.AttackDamage,
		AttackRange:           pc.Stats.AttackRange,
		Speed:                 pc.Stats.Speed,
		DodgeSpeed:            pc.Stats.DodgeSpeed,
		DodgeDuration:         pc.Stats.DodgeDuration,
		InvincibilityDuration: pc.Stats.InvincibilityDuration,
		HitFlashDuration:      pc.Stats.HitFlashDuration,
		DeathDuration:         pc.Stats.DeathDuration,
		AttackTimeout:         pc.Stats.AttackTimeout,
		Width:                 pc.Size.Width,
		Height:                pc.Size.Height,
	}
	clips := clipsFromConfig(pc.Animations)
	if len(clips) == 0 {
		clips = entity.DefaultPlayerClips()
	}
	return entity.NewPlayer(x, y, stats, clips)
}

// Spawn creates an enemy of the given kind. Kinds missing from
// entities.json use the built-in archetype values; unknown kinds are an
// error.
func (s *Spawner) Spawn(kind entity.Kind, x, y float64, patrol []entity.Point) (*entity.Enemy, error) {
	stats, clips, behavior, err := s.archetype(kind)
	if err != nil {
		return nil, err
	}

	e := entity.NewEnemy(s.nextID, x, y, stats, s.tuning, clips, behavior)
	s.nextID++

	e.Target = s.target
	if kind != entity.KindShadowBat && len(patrol) > 0 {
		e.PatrolPath = append([]entity.Point(nil), patrol...)
	}
	return e, nil
}

func (s *Spawner) archetype(kind entity.Kind) (entity.EnemyStats, map[string]entity.Clip, entity.Behavior, error) {
	var ec config.EnemyConfig
	var ok bool
	if s.entities != nil {
		ec, ok = s.entities.Enemies[string(kind)]
	}
	if !ok {
		stats, known := entity.DefaultEnemyStats(kind)
		if !known {
			return entity.EnemyStats{}, nil, nil, fmt.Errorf("unknown enemy kind %q", kind)
		}
		b, err := entity.NewBehavior(kind, s.rng)
		if err != nil {
			return entity.EnemyStats{}, nil, nil, err
		}
		return stats, entity.DefaultEnemyClips(kind), b, nil
	}

	b, err := s.behavior(kind, ec)
	if err != nil {
		return entity.EnemyStats{}, nil, nil, err
	}

	stats := entity.EnemyStats{
		MaxHP:           ec.Stats.MaxHP,
		AttackDamage:    ec.Stats.AttackDamage,
		AttackRange:     ec.Stats.AttackRange,
		DetectionRange:  ec.Stats.DetectionRange,
		LoseTargetRange: ec.Stats.LoseTargetRange,
		Speed:           ec.Stats.Speed,
		ChaseSpeed:      ec.Stats.ChaseSpeed,
		MinDistance:     ec.Stats.MinDistance,
		AttackCooldown:  ec.Stats.AttackCooldown,
		Width:           ec.Size.Width,
		Height:          ec.Size.Height,
	}
	clips := clipsFromConfig(ec.Animations)
	if len(clips) == 0 {
		clips = entity.DefaultEnemyClips(kind)
	}
	return stats, clips, b, nil
}

func (s *Spawner) behavior(kind entity.Kind, ec config.EnemyConfig) (entity.Behavior, error) {
	switch kind {
	case entity.KindSpiritBoxer:
		combo := entity.DefaultComboSettings()
		if c := ec.Combo; c != nil {
			combo = entity.ComboSettings{
				ResetTime:   c.ResetTime,
				ChainChance: c.ChainChance,
				StepBonus:   c.StepBonus,
				AlignTol:    c.AlignTolerance,
				AlignWeight: c.AlignWeight,
			}
		}
		return entity.NewSpiritBoxer(s.rng, combo), nil
	case entity.KindTempleGuardian:
		special := entity.DefaultSpecialSettings()
		if c := ec.Special; c != nil {
			special = entity.SpecialSettings{
				Chance:           c.Chance,
				MinNormalBetween: c.MinNormalBetween,
				Attack2Bonus:     c.Attack2Bonus,
				BuffDuration:     c.BuffDuration,
				DamageMultiplier: c.DamageMultiplier,
				SpeedMultiplier:  c.SpeedMultiplier,
				AlignTol:         c.AlignTolerance,
				AlignWeight:      c.AlignWeight,
			}
		}
		return entity.NewTempleGuardian(s.rng, special), nil
	}
	return entity.NewBehavior(kind, s.rng)
}

func clipsFromConfig(anims map[string]config.AnimationConfig) map[string]entity.Clip {
	clips := make(map[string]entity.Clip, len(anims))
	for name, a := range anims {
		clips[name] = entity.Clip{Frames: a.Frames, Interval: a.Interval, Next: a.Next}
	}
	return clips
}
