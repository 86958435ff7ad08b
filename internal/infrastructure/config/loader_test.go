package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Display.ScreenWidth)
	assert.Equal(t, 320, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 0.5, cfg.Combat.PlayerWindow.Start)
	assert.Equal(t, 0.75, cfg.Combat.PlayerWindow.End)
	assert.Equal(t, 0.9, cfg.Combat.EnemyWindow.End)
	assert.Equal(t, 20.0, cfg.Combat.Knockback)
	assert.Equal(t, 2.0, cfg.AI.IdleDuration)
	assert.Equal(t, 0.3, cfg.AI.BackoffFactor)
	assert.True(t, cfg.Feedback.Hitstop.Enabled)
}

func TestLoader_LoadEntities(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Player.Stats.MaxHP)
	assert.Equal(t, 50.0, cfg.Player.Stats.AttackRange)
	assert.Equal(t, 24, cfg.Player.Animations["attack"].Frames)

	bat, ok := cfg.Enemies["shadow-bat"]
	require.True(t, ok)
	assert.Equal(t, 250.0, bat.Stats.DetectionRange)
	assert.Equal(t, "fly", bat.Animations["idle-to-fly"].Next)
	assert.Nil(t, bat.Combo)

	boxer, ok := cfg.Enemies["spirit-boxer"]
	require.True(t, ok)
	require.NotNil(t, boxer.Combo)
	assert.Equal(t, [3]int{0, 3, 2}, boxer.Combo.StepBonus)

	guardian, ok := cfg.Enemies["temple-guardian"]
	require.True(t, ok)
	require.NotNil(t, guardian.Special)
	assert.Equal(t, 2, guardian.Special.MinNormalBetween)
	assert.Equal(t, 14, guardian.Animations["special"].Frames)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("grove")
	require.NoError(t, err)

	assert.Equal(t, "grove", cfg.ID)
	assert.Equal(t, 640, cfg.Size.Width)
	assert.Equal(t, 480, cfg.Size.Height)
	assert.Equal(t, 16, cfg.Size.TileSize)
	assert.Equal(t, 64.0, cfg.PlayerSpawn.X)
	assert.Len(t, cfg.Layers.Collision, 30)
	require.Len(t, cfg.Enemies, 3)
	assert.Len(t, cfg.Enemies[2].Patrol, 4)

	wall, ok := cfg.TileMapping["#"]
	require.True(t, ok)
	assert.True(t, wall.Solid)
	assert.Equal(t, "wall", wall.Type)
}

func TestLoader_LoadStage_MapReference(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadStage("temple")
	require.NoError(t, err)

	assert.Equal(t, "maps/temple.tmx", cfg.Map)
	assert.Empty(t, cfg.Layers.Collision)
}

func TestLoader_LoadStage_Missing(t *testing.T) {
	loader := NewLoader(configDir)

	_, err := loader.LoadStage("nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestLoader_LoadCampaign(t *testing.T) {
	loader := NewLoader(configDir)

	c, err := loader.LoadCampaign()
	require.NoError(t, err)

	assert.Equal(t, "Shadow Grove", c.Title)
	assert.Equal(t, []string{"grove", "temple"}, c.Levels)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Game)
	assert.NotNil(t, cfg.Entities)
	assert.NotNil(t, cfg.Campaign)
}

func TestLoader_FSLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		load    func(*Loader) error
		wantErr string
	}{
		{
			name:    "malformed game.json",
			files:   fstest.MapFS{"game.json": {Data: []byte("{")}},
			load:    func(l *Loader) error { _, err := l.LoadGame(); return err },
			wantErr: "failed to parse game.json",
		},
		{
			name:    "player without hp",
			files:   fstest.MapFS{"entities.json": {Data: []byte(`{"player":{"stats":{"maxHp":0}}}`)}},
			load:    func(l *Loader) error { _, err := l.LoadEntities(); return err },
			wantErr: "player maxHp",
		},
		{
			name:    "player clip without interval",
			files:   fstest.MapFS{"entities.json": {Data: []byte(`{"player":{"stats":{"maxHp":10},"animations":{"attack":{"frames":24,"interval":0}}}}`)}},
			load:    func(l *Loader) error { _, err := l.LoadEntities(); return err },
			wantErr: "player: animation attack: interval must be positive",
		},
		{
			name: "enemy clip without interval",
			files: fstest.MapFS{"entities.json": {Data: []byte(
				`{"player":{"stats":{"maxHp":10}},"enemies":{"shadow-bat":{"stats":{"maxHp":5},"animations":{"fly":{"frames":4}}}}}`)}},
			load:    func(l *Loader) error { _, err := l.LoadEntities(); return err },
			wantErr: "enemy shadow-bat: animation fly",
		},
		{
			name:    "empty campaign",
			files:   fstest.MapFS{"campaign.yaml": {Data: []byte("title: x\nlevels: []\n")}},
			load:    func(l *Loader) error { _, err := l.LoadCampaign(); return err },
			wantErr: "no levels",
		},
		{
			name:    "malformed campaign",
			files:   fstest.MapFS{"campaign.yaml": {Data: []byte("levels: [")}},
			load:    func(l *Loader) error { _, err := l.LoadCampaign(); return err },
			wantErr: "failed to parse campaign.yaml",
		},
		{
			name:    "missing file",
			files:   fstest.MapFS{},
			load:    func(l *Loader) error { _, err := l.LoadAll(); return err },
			wantErr: "failed to read game.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.load(NewFSLoader(tt.files, "."))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCampaign_Next(t *testing.T) {
	c := &Campaign{Levels: []string{"a", "b", "c"}}

	next, ok := c.Next("a")
	assert.True(t, ok)
	assert.Equal(t, "b", next)

	_, ok = c.Next("c")
	assert.False(t, ok, "last level has no successor")

	_, ok = c.Next("zzz")
	assert.False(t, ok)
}

func TestCampaign_ValidateBlankLevel(t *testing.T) {
	c := &Campaign{Levels: []string{"a", ""}}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level 1")
}
