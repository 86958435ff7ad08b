package playing

import (
	"fmt"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/shadowgrove/internal/application/replay"
	"github.com/younwookim/shadowgrove/internal/application/state"
	"github.com/younwookim/shadowgrove/internal/application/system"
	"github.com/younwookim/shadowgrove/internal/domain/entity"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

const testSeed = 12345

const roomStage = `{
  "id": "%s",
  "size": { "width": 160, "height": 96, "tileSize": 16 },
  "playerSpawn": { "x": 40, "y": 48 },
  "layers": {
    "collision": [
      "##########",
      "#........#",
      "#........#",
      "#........#",
      "#........#",
      "##########"
    ]
  },
  "tileMapping": {
    "#": { "type": "wall", "solid": true },
    ".": { "type": "empty", "solid": false }
  },
  "enemies": [%s]
}`

func roomJSON(id, enemies string) []byte {
	return []byte(fmt.Sprintf(roomStage, id, enemies))
}

// createTestStages returns two one-room levels with one bat each
func createTestStages() StageSource {
	bat := `{ "type": "shadow-bat", "x": 120, "y": 48 }`
	fsys := fstest.MapFS{
		"stages/a.json":    {Data: roomJSON("a", bat)},
		"stages/b.json":    {Data: roomJSON("b", bat)},
		"stages/odd.json":  {Data: roomJSON("odd", `{ "type": "wraith", "x": 120, "y": 48 }, `+bat)},
		"stages/none.json": {Data: roomJSON("none", "")},
	}
	return config.NewFSLoader(fsys, "")
}

// createTestConfig creates a minimal config for testing
func createTestConfig(levels ...string) *config.GameConfig {
	if len(levels) == 0 {
		levels = []string{"a", "b"}
	}
	return &config.GameConfig{
		Game: &config.GameSettings{
			Display: config.DisplayConfig{
				ScreenWidth:  320,
				ScreenHeight: 240,
				Scale:        2,
				Framerate:    60,
			},
			Combat: config.CombatConfig{
				PlayerWindow: config.WindowConfig{Start: 0.5, End: 0.75},
				EnemyWindow:  config.WindowConfig{Start: 0.5, End: 0.9},
				Knockback:    20,
				ArcDegrees:   180,
			},
			AI: config.AIConfig{
				IdleDuration:     2,
				PatrolTolerance:  5,
				PatrolWait:       1,
				HitStun:          0.5,
				DeathDuration:    1,
				AttackDuration:   0.8,
				StandoffDeadband: 10,
				BackoffFactor:    0.3,
			},
			Feedback: config.FeedbackConfig{
				Hitstop:     config.HitstopConfig{Enabled: true, Frames: 3, KillFrames: 6},
				ScreenShake: config.ScreenShakeConfig{Enabled: true, Intensity: 3, Decay: 0.85},
			},
		},
		Campaign: &config.Campaign{Title: "Test", Levels: levels},
	}
}

func createTestWorld(t *testing.T, levels ...string) *World {
	t.Helper()
	w, err := NewWorld(createTestConfig(levels...), createTestStages(), testSeed)
	require.NoError(t, err)
	return w
}

// clearLevel marks every enemy as finished so the next step advances
func clearLevel(w *World) {
	for _, e := range w.Enemies() {
		e.ReadyForRemoval = true
	}
}

func TestNewWorld(t *testing.T) {
	w := createTestWorld(t)

	assert.Equal(t, state.StatePlay, w.State())
	assert.Equal(t, "a", w.Level())
	assert.Equal(t, int64(testSeed), w.Seed())
	require.NotNil(t, w.Stage())
	assert.Len(t, w.Enemies(), 1)

	p := w.Player()
	require.NotNil(t, p)
	assert.Equal(t, 40.0, p.X)
	assert.Equal(t, 48.0, p.Y)
	assert.Same(t, p, w.Enemies()[0].Target)
}

func TestNewWorld_Errors(t *testing.T) {
	t.Run("missing campaign", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Campaign = nil

		_, err := NewWorld(cfg, createTestStages(), testSeed)
		assert.Error(t, err)
	})

	t.Run("empty campaign", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Campaign.Levels = nil

		_, err := NewWorld(cfg, createTestStages(), testSeed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "campaign has no levels")
	})

	t.Run("missing stage", func(t *testing.T) {
		_, err := NewWorld(createTestConfig("nowhere"), createTestStages(), testSeed)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load level nowhere")
	})
}

func TestWorld_SkipsUnknownKinds(t *testing.T) {
	w := createTestWorld(t, "odd")

	require.Len(t, w.Enemies(), 1)
	assert.Equal(t, entity.KindShadowBat, w.Enemies()[0].Kind)
}

func TestWorld_Pause(t *testing.T) {
	w := createTestWorld(t)
	x := w.Player().X

	_, err := w.Step(system.InputState{Pause: true})
	require.NoError(t, err)
	assert.Equal(t, state.StatePause, w.State())

	for i := 0; i < 10; i++ {
		_, err = w.Step(system.InputState{Right: true})
		require.NoError(t, err)
	}
	assert.Equal(t, x, w.Player().X, "paused world does not move")

	_, err = w.Step(system.InputState{Pause: true})
	require.NoError(t, err)
	assert.Equal(t, state.StatePlay, w.State())

	_, err = w.Step(system.InputState{Right: true})
	require.NoError(t, err)
	_, err = w.Step(system.InputState{Right: true})
	require.NoError(t, err)
	assert.Greater(t, w.Player().X, x)
}

func TestWorld_LevelSequence(t *testing.T) {
	w := createTestWorld(t)
	w.Player().HP = 55

	clearLevel(w)
	_, err := w.Step(system.InputState{})
	require.NoError(t, err)

	assert.Equal(t, state.StatePlay, w.State())
	assert.Equal(t, "b", w.Level())
	assert.Equal(t, 1, w.LevelsCleared())
	assert.Equal(t, 55, w.Player().HP, "hp carries over")
	assert.Equal(t, 40.0, w.Player().X)
	require.Len(t, w.Enemies(), 1)
	assert.Same(t, w.Player(), w.Enemies()[0].Target)

	clearLevel(w)
	_, err = w.Step(system.InputState{})
	require.NoError(t, err)
	assert.Equal(t, state.StateVictory, w.State())
	assert.Equal(t, 2, w.LevelsCleared())

	_, err = w.Step(system.InputState{Attack: true})
	require.NoError(t, err)
	assert.Equal(t, state.StateVictory, w.State(), "only confirm restarts")

	_, err = w.Step(system.InputState{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, state.StatePlay, w.State())
	assert.Equal(t, "a", w.Level())
	assert.Equal(t, w.Player().MaxHP, w.Player().HP)
	assert.Equal(t, 0, w.LevelsCleared())
}

func TestWorld_EmptyLevelIsClearedAtOnce(t *testing.T) {
	w := createTestWorld(t, "none")

	_, err := w.Step(system.InputState{})
	require.NoError(t, err)

	assert.Equal(t, state.StateVictory, w.State())
}

func TestWorld_GameOver(t *testing.T) {
	w := createTestWorld(t)
	w.Player().ReadyForGameOver = true

	_, err := w.Step(system.InputState{})
	require.NoError(t, err)
	assert.Equal(t, state.StateGameOver, w.State())

	_, err = w.Step(system.InputState{Confirm: true})
	require.NoError(t, err)
	assert.Equal(t, state.StatePlay, w.State())
	assert.False(t, w.Player().ReadyForGameOver)
}

func TestWorld_Hitstop(t *testing.T) {
	w := createTestWorld(t)

	w.applyHitstop([]system.Event{system.EnemyHitEvent{}, system.EnemyKilledEvent{}})
	assert.Equal(t, 6, w.Hitstop())

	w.applyHitstop([]system.Event{system.PlayerHitEvent{}})
	assert.Equal(t, 6, w.Hitstop(), "a shorter freeze does not cut a longer one")

	x := w.Player().X
	_, err := w.Step(system.InputState{Right: true})
	require.NoError(t, err)
	assert.Equal(t, 5, w.Hitstop())
	assert.Equal(t, x, w.Player().X)
}

func TestWorld_HitstopDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Game.Feedback.Hitstop.Enabled = false
	w, err := NewWorld(cfg, createTestStages(), testSeed)
	require.NoError(t, err)

	w.applyHitstop([]system.Event{system.EnemyKilledEvent{}})
	assert.Equal(t, 0, w.Hitstop())
}

func TestWorld_PlayerStaysOutOfWalls(t *testing.T) {
	w := createTestWorld(t, "a")
	w.Enemies()[0].Target = nil
	collider := system.NewTileCollider(w.Stage())

	for _, in := range []system.InputState{{Left: true}, {Up: true}, {Down: true, Right: true}} {
		for i := 0; i < 120; i++ {
			_, err := w.Step(in)
			require.NoError(t, err)
			require.False(t, collider.Blocked(w.Player().Hitbox()))
		}
	}
}

// scriptedInput is a fixed pattern of movement and actions
func scriptedInput(frame int) system.InputState {
	in := system.InputState{}
	switch (frame / 40) % 4 {
	case 0:
		in.Right = true
	case 1:
		in.Down = true
	case 2:
		in.Left = true
	case 3:
		in.Up = true
	}
	in.Attack = frame%25 == 0
	in.Dodge = frame%97 == 0
	return in
}

func TestWorld_Determinism(t *testing.T) {
	run := func() (float64, float64, int, int) {
		w, err := NewWorld(createTestConfig(), createTestStages(), testSeed)
		require.NoError(t, err)
		for i := 0; i < 900; i++ {
			_, err := w.Step(scriptedInput(i))
			require.NoError(t, err)
		}
		return w.Player().X, w.Player().Y, w.Player().HP, len(w.Enemies())
	}

	x1, y1, hp1, n1 := run()
	x2, y2, hp2, n2 := run()

	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.Equal(t, hp1, hp2)
	assert.Equal(t, n1, n2)
}

func TestWorld_RestartMatchesFreshWorld(t *testing.T) {
	play := func(w *World) (float64, float64, int) {
		for i := 0; i < 600; i++ {
			_, err := w.Step(scriptedInput(i))
			require.NoError(t, err)
		}
		return w.Player().X, w.Player().Y, w.Player().HP
	}

	restarted := createTestWorld(t)
	play(restarted)
	restarted.Player().ReadyForGameOver = true
	_, err := restarted.Step(system.InputState{})
	require.NoError(t, err)
	_, err = restarted.Step(system.InputState{Confirm: true})
	require.NoError(t, err)

	x1, y1, hp1 := play(restarted)
	x2, y2, hp2 := play(createTestWorld(t))

	assert.Equal(t, x2, x1)
	assert.Equal(t, y2, y1)
	assert.Equal(t, hp2, hp1)
}

func TestWorld_ShippedCampaign(t *testing.T) {
	loader := config.NewLoader("../../../../cmd/game/configs")
	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	w, err := NewWorld(cfg, loader, testSeed)
	require.NoError(t, err)

	assert.Equal(t, cfg.Campaign.Levels[0], w.Level())
	assert.NotEmpty(t, w.Enemies())

	for i := 0; i < 300; i++ {
		_, err := w.Step(scriptedInput(i))
		require.NoError(t, err)
	}
}

func TestPlaying_RecordsUntilTheRunEnds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p, err := New(createTestConfig(), createTestStages(), testSeed, path)
	require.NoError(t, err)
	require.NotNil(t, p.recorder)

	for i := 0; i < 30; i++ {
		require.NoError(t, p.step(system.InputState{Right: true}, 1.0/60.0))
	}
	p.World().Player().ReadyForGameOver = true
	require.NoError(t, p.step(system.InputState{}, 1.0/60.0))
	require.Equal(t, state.StateGameOver, p.World().State())

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(testSeed), data.Seed)
	assert.Equal(t, "a", data.Level)
	assert.Equal(t, "GameOver", data.Outcome)
	assert.Len(t, data.Frames, 31)
	assert.True(t, data.Frames[0].R)
}

func TestPlaying_Feedback(t *testing.T) {
	p, err := New(createTestConfig(), createTestStages(), testSeed, "")
	require.NoError(t, err)
	assert.Nil(t, p.recorder)

	p.applyFeedback([]system.Event{system.PlayerHitEvent{Damage: 5}})
	assert.NotNil(t, p.flash)
	assert.Equal(t, 3.0, p.shake)

	p.World().Player().HP = 50
	for i := 0; i < 60; i++ {
		p.updateHUD(1.0 / 60.0)
	}

	assert.Nil(t, p.flash)
	assert.Zero(t, p.flashA)
	assert.InDelta(t, 0.5, p.hpShown, 1e-6)
	assert.Less(t, p.shake, 3.0)
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(7, "grove")
	assert.True(t, r.IsRecording())

	r.RecordFrame(system.InputState{Attack: true})
	r.RecordFrame(system.InputState{Left: true})
	r.Stop()
	r.RecordFrame(system.InputState{Right: true})

	assert.False(t, r.IsRecording())
	assert.Equal(t, 2, r.FrameCount())

	data := r.GetData()
	assert.Equal(t, int64(7), data.Seed)
	assert.Equal(t, "grove", data.Level)
	assert.Equal(t, 1, data.Frames[1].F)
	assert.True(t, data.Frames[0].A)

	t.Run("empty recording is not saved", func(t *testing.T) {
		err := NewRecorder(1, "grove").Save(filepath.Join(t.TempDir(), "x.json"))
		assert.Error(t, err)
	})
}
