package config

import "fmt"

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AnimationConfig is one clip. Next makes the clip play once and continue
// with the named clip.
type AnimationConfig struct {
	Frames   int     `json:"frames"`
	Interval float64 `json:"interval"`
	Next     string  `json:"next,omitempty"`
}

type PlayerConfig struct {
	Size       SizeConfig                 `json:"size"`
	Stats      PlayerStats                `json:"stats"`
	Animations map[string]AnimationConfig `json:"animations"`
}

type PlayerStats struct {
	MaxHP                 int     `json:"maxHp"`
	AttackDamage          int     `json:"attackDamage"`
	AttackRange           float64 `json:"attackRange"`
	Speed                 float64 `json:"speed"`
	DodgeSpeed            float64 `json:"dodgeSpeed"`
	DodgeDuration         float64 `json:"dodgeDuration"`
	InvincibilityDuration float64 `json:"invincibilityDuration"`
	HitFlashDuration      float64 `json:"hitFlashDuration"`
	DeathDuration         float64 `json:"deathDuration"`
	AttackTimeout         float64 `json:"attackTimeout"`
}

type EnemyConfig struct {
	Size       SizeConfig                 `json:"size"`
	Stats      EnemyStats                 `json:"stats"`
	Animations map[string]AnimationConfig `json:"animations"`
	Combo      *ComboConfig               `json:"combo,omitempty"`
	Special    *SpecialConfig             `json:"special,omitempty"`
}

type EnemyStats struct {
	MaxHP           int     `json:"maxHp"`
	AttackDamage    int     `json:"attackDamage"`
	AttackRange     float64 `json:"attackRange"`
	DetectionRange  float64 `json:"detectionRange"`
	LoseTargetRange float64 `json:"loseTargetRange"`
	Speed           float64 `json:"speed"`
	ChaseSpeed      float64 `json:"chaseSpeed"`
	MinDistance     float64 `json:"minDistance"`
	AttackCooldown  float64 `json:"attackCooldown"`
}

// ComboConfig tunes the spirit-boxer combo
type ComboConfig struct {
	ResetTime      float64 `json:"resetTime"`
	ChainChance    float64 `json:"chainChance"`
	StepBonus      [3]int  `json:"stepBonus"`
	AlignTolerance float64 `json:"alignTolerance"`
	AlignWeight    float64 `json:"alignWeight"`
}

// SpecialConfig tunes the temple-guardian special attack and buff
type SpecialConfig struct {
	Chance           float64 `json:"chance"`
	MinNormalBetween int     `json:"minNormalBetween"`
	Attack2Bonus     int     `json:"attack2Bonus"`
	BuffDuration     float64 `json:"buffDuration"`
	DamageMultiplier float64 `json:"damageMultiplier"`
	SpeedMultiplier  float64 `json:"speedMultiplier"`
	AlignTolerance   float64 `json:"alignTolerance"`
	AlignWeight      float64 `json:"alignWeight"`
}

// Validate checks the values every entity needs to be playable
func (c *EntitiesConfig) Validate() error {
	if c.Player.Stats.MaxHP <= 0 {
		return fmt.Errorf("player maxHp must be positive, got %d", c.Player.Stats.MaxHP)
	}
	if err := validateAnimations(c.Player.Animations); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	for kind, e := range c.Enemies {
		if e.Stats.MaxHP <= 0 {
			return fmt.Errorf("enemy %s: maxHp must be positive, got %d", kind, e.Stats.MaxHP)
		}
		if err := validateAnimations(e.Animations); err != nil {
			return fmt.Errorf("enemy %s: %w", kind, err)
		}
	}
	return nil
}

// validateAnimations rejects clips that have frames but could never advance
func validateAnimations(anims map[string]AnimationConfig) error {
	for name, a := range anims {
		if a.Frames < 0 {
			return fmt.Errorf("animation %s: negative frame count %d", name, a.Frames)
		}
		if a.Frames > 0 && a.Interval <= 0 {
			return fmt.Errorf("animation %s: interval must be positive, got %v", name, a.Interval)
		}
	}
	return nil
}
