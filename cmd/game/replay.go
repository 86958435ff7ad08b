package main

import (
	"fmt"
	"io"
	"log"

	"github.com/younwookim/shadowgrove/internal/application/replay"
	"github.com/younwookim/shadowgrove/internal/application/scene/playing"
	"github.com/younwookim/shadowgrove/internal/application/state"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

// ReplayResult is where a replayed session ended up
type ReplayResult struct {
	Frames        int
	State         state.GameState
	Level         string
	LevelsCleared int
	PlayerHP      int
	Enemies       int
}

func (r ReplayResult) String() string {
	return fmt.Sprintf("%s after %d frames: level %s, %d cleared, hp %d, %d enemies left",
		r.State, r.Frames, r.Level, r.LevelsCleared, r.PlayerHP, r.Enemies)
}

// runReplay feeds recorded inputs to a fresh world without opening a window
func runReplay(cfg *config.GameConfig, stages playing.StageSource, data replay.ReplayData) (ReplayResult, error) {
	world, err := playing.NewWorld(cfg, stages, data.Seed)
	if err != nil {
		return ReplayResult{}, err
	}
	if data.Level != "" && data.Level != world.Level() {
		log.Printf("Replay was recorded on %s, starting on %s", data.Level, world.Level())
	}

	replayer := replay.NewReplayer(data)
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		if _, err := world.Step(input); err != nil {
			return ReplayResult{}, fmt.Errorf("failed at frame %d: %w", replayer.CurrentFrame()-1, err)
		}
	}

	return ReplayResult{
		Frames:        replayer.TotalFrames(),
		State:         world.State(),
		Level:         world.Level(),
		LevelsCleared: world.LevelsCleared(),
		PlayerHP:      world.Player().HP,
		Enemies:       len(world.Enemies()),
	}, nil
}

// replayFile replays a recording and writes the result to out. A recording
// that saved an outcome must end in that same state.
func replayFile(out io.Writer, filename string, cfg *config.GameConfig, stages playing.StageSource) error {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return err
	}

	result, err := runReplay(cfg, stages, *data)
	if err != nil {
		return fmt.Errorf("failed to replay %s: %w", filename, err)
	}
	_, _ = fmt.Fprintln(out, result)

	if data.Outcome != "" && data.Outcome != result.State.String() {
		return fmt.Errorf("replay diverged: recorded %s, got %s", data.Outcome, result.State)
	}
	return nil
}
