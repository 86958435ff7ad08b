package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/shadowgrove/internal/domain/entity"
)

// InputSystem polls the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one tick of player controls. It satisfies entity.Input.
type InputState struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Attack  bool
	Dodge   bool
	Pause   bool
	Confirm bool
}

// GetInput reads the current input state. Movement is held, actions are
// just-pressed edges.
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Attack:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyJ),
		Dodge:   inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsKeyJustPressed(ebiten.KeyShiftRight),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

// Held reports a level-triggered control
func (in InputState) Held(k entity.Key) bool {
	switch k {
	case entity.KeyUp:
		return in.Up
	case entity.KeyDown:
		return in.Down
	case entity.KeyLeft:
		return in.Left
	case entity.KeyRight:
		return in.Right
	case entity.KeyAttack:
		return in.Attack
	case entity.KeyDodge:
		return in.Dodge
	}
	return false
}

// Pressed reports an edge-triggered control. Directions are never edges.
func (in InputState) Pressed(k entity.Key) bool {
	switch k {
	case entity.KeyAttack:
		return in.Attack
	case entity.KeyDodge:
		return in.Dodge
	}
	return false
}

// Any reports whether any control is active
func (in InputState) Any() bool {
	return in.Left || in.Right || in.Up || in.Down || in.Attack || in.Dodge || in.Pause || in.Confirm
}
