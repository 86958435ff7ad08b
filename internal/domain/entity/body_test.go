package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntity_HitboxFollowsPosition(t *testing.T) {
	e := Entity{X: 100, Y: 50, Width: 20, Height: 10}

	assert.Equal(t, Rect{X: 90, Y: 45, W: 20, H: 10}, e.Hitbox())

	e.Translate(5, -5)
	assert.Equal(t, Rect{X: 95, Y: 40, W: 20, H: 10}, e.Hitbox())
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
		})
	}
}

func TestEntity_ApplyDamageClamps(t *testing.T) {
	e := Entity{HP: 10, MaxHP: 10}

	e.applyDamage(4)
	assert.Equal(t, 6, e.HP)
	assert.True(t, e.IsAlive())

	e.applyDamage(100)
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.IsAlive())

	e.applyDamage(-50)
	assert.Equal(t, 10, e.HP, "hp never exceeds max")
}

func TestAnimator_AdvanceOneFramePerInterval(t *testing.T) {
	a := NewAnimator(map[string]Clip{"run": {Frames: 3, Interval: 0.1}})
	a.Play("walk", "run")

	a.Advance(0.05)
	assert.Equal(t, 0, a.Frame)
	a.Advance(0.05)
	assert.Equal(t, 1, a.Frame)

	// A long tick still moves a single frame
	a.Advance(1.0)
	assert.Equal(t, 2, a.Frame)

	a.Advance(0.1)
	assert.Equal(t, 0, a.Frame, "wraps after the last frame")
}

func TestAnimator_PlayResetsOnlyOnClipChange(t *testing.T) {
	a := NewAnimator(map[string]Clip{
		"walk":   {Frames: 4, Interval: 0.1},
		"attack": {Frames: 4, Interval: 0.1},
	})
	a.Play("idle", "walk")
	a.Advance(0.1)
	a.Advance(0.1)
	assert.Equal(t, 2, a.Frame)

	a.Play("chase", "walk")
	assert.Equal(t, 2, a.Frame)
	assert.Equal(t, "chase", a.Name)

	a.Play("attack", "attack")
	assert.Equal(t, 0, a.Frame)
}

func TestAnimator_OneShotChainsIntoNext(t *testing.T) {
	a := NewAnimator(DefaultEnemyClips(KindShadowBat))
	a.Play(AnimChase, ClipBatTakeoff)
	assert.True(t, a.InTransition())

	for i := 0; i < 6; i++ {
		a.Advance(0.12)
	}

	assert.Equal(t, ClipBatFly, a.Clip)
	assert.Equal(t, 0, a.Frame)
	assert.False(t, a.InTransition())
}

func TestAnimator_UnknownClip(t *testing.T) {
	a := NewAnimator(nil)
	a.Play("ghost", "ghost")
	a.Advance(1)

	assert.Equal(t, 0, a.TotalFrames())
	assert.Equal(t, 0, a.Frame)
	assert.Zero(t, a.Duration())
}
