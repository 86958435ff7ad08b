package system

import "github.com/younwookim/shadowgrove/internal/domain/entity"

// Event is something the combat resolver reports to the scene
type Event interface {
	isEvent()
}

// EnemyHitEvent is emitted when a player swing connects
type EnemyHitEvent struct {
	EnemyID entity.EntityID
	Damage  int
	X, Y    float64
}

func (EnemyHitEvent) isEvent() {}

// EnemyKilledEvent is emitted when a player swing takes the last hp
type EnemyKilledEvent struct {
	EnemyID entity.EntityID
	Kind    entity.Kind
}

func (EnemyKilledEvent) isEvent() {}

// PlayerHitEvent is emitted when an enemy attack damages the player
type PlayerHitEvent struct {
	EnemyID entity.EntityID
	Damage  int
}

func (PlayerHitEvent) isEvent() {}
