// Package title provides the front screens shown before play: the title
// card, the controls page and the opening cutscene.
package title

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/shadowgrove/internal/application/scene"
	"github.com/younwookim/shadowgrove/internal/application/state"
	"github.com/younwookim/shadowgrove/internal/application/system"
)

const (
	fadeIn       = 1.2
	lineDelay    = 2.0
	cutsceneHold = 2.5
)

var (
	colorBG    = color.RGBA{10, 14, 12, 255}
	colorTitle = color.RGBA{240, 230, 200, 255}
	colorBody  = color.RGBA{200, 200, 190, 255}
	colorHint  = color.RGBA{140, 140, 140, 255}
)

var controls = []string{
	"Move      WASD / Arrows",
	"Attack    Space / J",
	"Dodge     Shift",
	"Pause     Esc / P",
}

var story = []string{
	"The grove fell silent the night the shadows woke.",
	"Bats swarm the old paths. Spirits guard the temple steps.",
	"Someone has to walk in there.",
}

// PlayFactory builds the scene that follows the cutscene
type PlayFactory func() (scene.Scene, error)

// Title walks through TitleScreen, Instructions and Cutscene, then hands
// over to the scene built by its factory
type Title struct {
	name    string
	phase   state.GameState
	input   *system.InputSystem
	newPlay PlayFactory
	screenW int
	screenH int

	fade    *gween.Tween
	alpha   float32
	elapsed float64

	titleFace *text.GoTextFace
	bodyFace  *text.GoTextFace
}

// New creates the title scene. name is the campaign title shown on the card.
func New(name string, screenW, screenH int, newPlay PlayFactory) (*Title, error) {
	titleFace, err := scene.Face(32)
	if err != nil {
		return nil, err
	}
	bodyFace, err := scene.Face(12)
	if err != nil {
		return nil, err
	}

	return &Title{
		name:      name,
		phase:     state.StateTitleScreen,
		input:     system.NewInputSystem(),
		newPlay:   newPlay,
		screenW:   screenW,
		screenH:   screenH,
		titleFace: titleFace,
		bodyFace:  bodyFace,
	}, nil
}

// Phase returns the screen being shown
func (t *Title) Phase() state.GameState {
	return t.phase
}

// Update implements scene.Scene
func (t *Title) Update(dt float64) (scene.Scene, error) {
	return t.step(t.input.GetInput(), dt)
}

func (t *Title) step(in system.InputState, dt float64) (scene.Scene, error) {
	advance := in.Confirm || in.Attack

	switch t.phase {
	case state.StateTitleScreen:
		if in.Pause {
			return nil, ebiten.Termination
		}
		if advance {
			t.phase = state.StateInstructions
		}
	case state.StateInstructions:
		if advance {
			t.startCutscene()
		}
	case state.StateCutscene:
		t.elapsed += dt
		if t.fade != nil {
			v, done := t.fade.Update(float32(dt))
			t.alpha = v
			if done {
				t.fade = nil
			}
		}
		if advance || t.elapsed >= t.cutsceneLength() {
			return t.newPlay()
		}
	}
	return nil, nil
}

func (t *Title) startCutscene() {
	t.phase = state.StateCutscene
	t.elapsed = 0
	t.alpha = 0
	t.fade = gween.New(0, 1, fadeIn, ease.InOutQuad)
}

func (t *Title) cutsceneLength() float64 {
	return float64(len(story))*lineDelay + cutsceneHold
}

// visibleLines returns how many story lines the cutscene has revealed
func (t *Title) visibleLines() int {
	n := int(t.elapsed/lineDelay) + 1
	if n > len(story) {
		n = len(story)
	}
	return n
}

// Draw implements scene.Scene
func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	cx := float64(t.screenW) / 2

	switch t.phase {
	case state.StateTitleScreen:
		scene.DrawText(screen, t.name, t.titleFace, cx, float64(t.screenH)/3, colorTitle, true)
		scene.DrawText(screen, "Press Enter to begin", t.bodyFace, cx, float64(t.screenH)*2/3, colorHint, true)
	case state.StateInstructions:
		scene.DrawText(screen, "Controls", t.titleFace, cx, 40, colorTitle, true)
		for i, line := range controls {
			scene.DrawText(screen, line, t.bodyFace, cx-90, 110+float64(i)*22, colorBody, false)
		}
		scene.DrawText(screen, "Press Enter", t.bodyFace, cx, float64(t.screenH)-40, colorHint, true)
	case state.StateCutscene:
		c := colorBody
		c.A = uint8(255 * t.alpha)
		for i := 0; i < t.visibleLines(); i++ {
			scene.DrawText(screen, story[i], t.bodyFace, cx, 100+float64(i)*28, c, true)
		}
		scene.DrawText(screen, "Enter to skip", t.bodyFace, cx, float64(t.screenH)-30, colorHint, true)
	}
}

// OnEnter implements scene.Scene
func (t *Title) OnEnter() {
	log.Printf("Title screen: %s", t.name)
}

// OnExit implements scene.Scene
func (t *Title) OnExit() {}
