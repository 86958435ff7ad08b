package playing

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand"

	"github.com/younwookim/shadowgrove/internal/application/state"
	"github.com/younwookim/shadowgrove/internal/application/system"
	"github.com/younwookim/shadowgrove/internal/domain/entity"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

// StageSource resolves level ids to stage configs. *config.Loader
// implements it.
type StageSource interface {
	LoadStage(name string) (*config.StageConfig, error)
	FS() fs.FS
}

// World is the simulation behind the playing scene: the campaign, the
// current level and everything in it. It has no rendering, so replays can
// drive it headless.
type World struct {
	cfg    *config.GameConfig
	stages StageSource
	dt     float64

	rng  *rand.Rand
	seed int64

	state      state.GameState
	level      string
	stage      *entity.Stage
	player     *entity.Player
	spawner    *system.Spawner
	combat     *system.CombatSystem
	collider   *system.TileCollider
	frame      int
	hitstop    int
	levelsDone int
}

// NewWorld creates a world and loads the first campaign level
func NewWorld(cfg *config.GameConfig, stages StageSource, seed int64) (*World, error) {
	if cfg == nil || cfg.Game == nil || cfg.Campaign == nil {
		return nil, errors.New("failed to create world: incomplete config")
	}
	if err := cfg.Campaign.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	fps := cfg.Game.Display.Framerate
	if fps <= 0 {
		fps = 60
	}

	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:     cfg,
		stages:  stages,
		dt:      1.0 / float64(fps),
		rng:     rng,
		seed:    seed,
		spawner: system.NewSpawner(cfg.Entities, system.TuningFromConfig(cfg.Game.AI), rng),
		combat:  system.NewCombatSystem(system.RulesFromConfig(cfg.Game.Combat), nil),
	}

	if err := w.Restart(); err != nil {
		return nil, err
	}
	return w, nil
}

// Restart begins the campaign again with a fresh player. The rng is
// reseeded, so every run after a restart replays from the seed alone.
func (w *World) Restart() error {
	w.rng.Seed(w.seed)
	w.player = nil
	w.hitstop = 0
	w.levelsDone = 0
	w.state = state.StatePlay
	return w.loadLevel(w.cfg.Campaign.Levels[0])
}

func (w *World) loadLevel(id string) error {
	stageCfg, err := w.stages.LoadStage(id)
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", id, err)
	}
	stage, err := system.LoadStage(stageCfg, w.stages.FS())
	if err != nil {
		return fmt.Errorf("failed to load level %s: %w", id, err)
	}

	w.level = id
	w.stage = stage
	w.collider = system.NewTileCollider(stage)
	w.combat.Reset(w.collider)

	if w.player == nil {
		w.player = w.spawner.SpawnPlayer(stage.SpawnX, stage.SpawnY)
	} else {
		w.player.X, w.player.Y = stage.SpawnX, stage.SpawnY
	}
	w.spawner.SetTarget(w.player)

	for _, s := range stage.Spawns {
		e, err := w.spawner.Spawn(s.Kind, s.X, s.Y, s.Patrol)
		if err != nil {
			log.Printf("Skipping spawn in %s: %v", id, err)
			continue
		}
		w.combat.AddEnemy(e)
	}

	log.Printf("Level %s loaded: %d enemies, %dx%d tiles", id, len(w.combat.Enemies()), stage.Width, stage.Height)
	return nil
}

// Step advances the world by one tick of input and returns the combat
// events it produced
func (w *World) Step(in system.InputState) ([]system.Event, error) {
	w.frame++

	switch w.state {
	case state.StatePlay:
		if in.Pause {
			w.state = state.StatePause
			return nil, nil
		}
		if w.hitstop > 0 {
			w.hitstop--
			return nil, nil
		}
		return w.update(in)
	case state.StatePause:
		if in.Pause || in.Confirm {
			w.state = state.StatePlay
		}
	case state.StateGameOver, state.StateVictory:
		if in.Confirm {
			return nil, w.Restart()
		}
	}
	return nil, nil
}

// update runs one simulated frame: player, tile correction, enemies and
// combat, then the level checks
func (w *World) update(in system.InputState) ([]system.Event, error) {
	px, py := w.player.Position()
	w.player.Update(w.dt, in)
	w.collider.Correct(&w.player.Entity, px, py)

	w.combat.Update(w.player, w.dt)
	events := w.combat.DrainEvents()
	w.applyHitstop(events)

	switch {
	case w.player.ReadyForGameOver:
		w.state = state.StateGameOver
		log.Printf("Player died in %s", w.level)
	case w.combat.Cleared():
		w.levelsDone++
		log.Printf("Level %s cleared", w.level)
		next, ok := w.cfg.Campaign.Next(w.level)
		if !ok {
			w.state = state.StateVictory
			log.Printf("Victory after %d levels", w.levelsDone)
			break
		}
		if err := w.loadLevel(next); err != nil {
			return events, err
		}
	}
	return events, nil
}

func (w *World) applyHitstop(events []system.Event) {
	hs := w.cfg.Game.Feedback.Hitstop
	if !hs.Enabled {
		return
	}
	for _, ev := range events {
		frames := hs.Frames
		if _, ok := ev.(system.EnemyKilledEvent); ok {
			frames = hs.KillFrames
		}
		if frames > w.hitstop {
			w.hitstop = frames
		}
	}
}

// State returns the current game state
func (w *World) State() state.GameState {
	return w.state
}

// Level returns the id of the loaded level
func (w *World) Level() string {
	return w.level
}

// LevelsCleared returns how many levels this run has cleared
func (w *World) LevelsCleared() int {
	return w.levelsDone
}

// Stage returns the loaded stage
func (w *World) Stage() *entity.Stage {
	return w.stage
}

// Player returns the player
func (w *World) Player() *entity.Player {
	return w.player
}

// Enemies returns the live enemies of the current level
func (w *World) Enemies() []*entity.Enemy {
	return w.combat.Enemies()
}

// Seed returns the seed the rng was created with
func (w *World) Seed() int64 {
	return w.seed
}

// Frame returns the number of ticks stepped
func (w *World) Frame() int {
	return w.frame
}

// Hitstop returns the frames left in the current freeze
func (w *World) Hitstop() int {
	return w.hitstop
}
