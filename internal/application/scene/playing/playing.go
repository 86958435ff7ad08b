// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/shadowgrove/internal/application/scene"
	"github.com/younwookim/shadowgrove/internal/application/state"
	"github.com/younwookim/shadowgrove/internal/application/system"
	"github.com/younwookim/shadowgrove/internal/domain/entity"
	"github.com/younwookim/shadowgrove/internal/domain/geom"
	"github.com/younwookim/shadowgrove/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{18, 26, 22, 255}
	colorWall       = color.RGBA{60, 80, 64, 255}
	colorWater      = color.RGBA{40, 70, 120, 255}
	colorPlayer     = color.RGBA{120, 210, 140, 255}
	colorSwing      = color.RGBA{240, 240, 200, 160}
	colorBat        = color.RGBA{150, 90, 200, 255}
	colorBoxer      = color.RGBA{220, 140, 80, 255}
	colorGuardian   = color.RGBA{200, 70, 70, 255}
	colorHitFlash   = color.RGBA{255, 255, 255, 255}
	colorFacing     = color.RGBA{250, 250, 250, 200}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorHealthLow  = color.RGBA{220, 80, 60, 255}
	colorPause      = color.RGBA{0, 0, 0, 128}
	colorGameOver   = color.RGBA{100, 0, 0, 180}
	colorVictory    = color.RGBA{0, 60, 30, 180}
	colorTitleText  = color.RGBA{240, 230, 200, 255}
	colorHintText   = color.RGBA{180, 180, 180, 255}
	colorDamageMark = color.RGBA{255, 0, 0, 255}
)

// Playing is the main gameplay scene
type Playing struct {
	world   *World
	input   *system.InputSystem
	screenW int
	screenH int

	// Feedback
	shakeEnabled   bool
	shakeIntensity float64
	shakeDecay     float64
	shake          float64
	shakeRng       *rand.Rand

	// HUD
	hpShown float32
	hpTween *gween.Tween
	lastHP  int
	flash   *gween.Sequence
	flashA  float32

	titleFace *text.GoTextFace
	hintFace  *text.GoTextFace

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene on the first campaign level.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.GameConfig, stages StageSource, seed int64, recordPath string) (*Playing, error) {
	world, err := NewWorld(cfg, stages, seed)
	if err != nil {
		return nil, err
	}

	titleFace, err := scene.Face(28)
	if err != nil {
		return nil, err
	}
	hintFace, err := scene.Face(12)
	if err != nil {
		return nil, err
	}

	fb := cfg.Game.Feedback.ScreenShake
	p := &Playing{
		world:          world,
		input:          system.NewInputSystem(),
		screenW:        cfg.Game.Display.ScreenWidth,
		screenH:        cfg.Game.Display.ScreenHeight,
		shakeEnabled:   fb.Enabled,
		shakeIntensity: fb.Intensity,
		shakeDecay:     fb.Decay,
		shakeRng:       rand.New(rand.NewSource(seed)),
		hpShown:        1,
		lastHP:         world.Player().HP,
		titleFace:      titleFace,
		hintFace:       hintFace,
		recordFilename: recordPath,
	}

	// Initialize recorder if recording is enabled
	if recordPath != "" {
		p.recorder = NewRecorder(seed, world.Level())
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	return p, nil
}

// World returns the simulation behind the scene
func (p *Playing) World() *World {
	return p.world
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.input.GetInput()
	if err := p.step(input, dt); err != nil {
		return nil, err
	}
	return nil, nil // nil = stay on this scene
}

// step feeds one tick of input to the world and updates the presentation
func (p *Playing) step(input system.InputState, dt float64) error {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	before := p.world.State()
	events, err := p.world.Step(input)
	if err != nil {
		return err
	}
	after := p.world.State()

	if after.Terminal() && !before.Terminal() && p.recorder != nil {
		p.recorder.SetOutcome(after)
		p.saveRecording()
	}
	if before.Terminal() && after == state.StatePlay {
		p.resetHUD()
		if p.recordFilename != "" {
			p.recorder = NewRecorder(p.world.Seed(), p.world.Level())
			log.Printf("Recording restarted (seed: %d)", p.world.Seed())
		}
	}

	p.applyFeedback(events)
	p.updateHUD(dt)
	return nil
}

func (p *Playing) applyFeedback(events []system.Event) {
	for _, ev := range events {
		switch ev.(type) {
		case system.PlayerHitEvent:
			p.flash = gween.NewSequence(
				gween.New(0, 0.6, 0.05, ease.Linear),
				gween.New(0.6, 0, 0.2, ease.OutQuad),
			)
			p.startShake(1)
		case system.EnemyKilledEvent:
			p.startShake(1.5)
		case system.EnemyHitEvent:
			p.startShake(0.5)
		}
	}
}

func (p *Playing) startShake(scale float64) {
	if !p.shakeEnabled {
		return
	}
	p.shake = math.Max(p.shake, p.shakeIntensity*scale)
}

func (p *Playing) updateHUD(dt float64) {
	player := p.world.Player()
	if player.HP != p.lastHP {
		target := float32(0)
		if player.MaxHP > 0 {
			target = float32(player.HP) / float32(player.MaxHP)
		}
		p.hpTween = gween.New(p.hpShown, target, 0.4, ease.OutQuad)
		p.lastHP = player.HP
	}
	if p.hpTween != nil {
		v, done := p.hpTween.Update(float32(dt))
		p.hpShown = v
		if done {
			p.hpTween = nil
		}
	}

	if p.flash != nil {
		v, _, done := p.flash.Update(float32(dt))
		p.flashA = v
		if done {
			p.flash = nil
			p.flashA = 0
		}
	}

	p.shake *= p.shakeDecay
	if p.shake < 0.1 {
		p.shake = 0
	}
}

func (p *Playing) resetHUD() {
	p.hpShown = 1
	p.hpTween = nil
	p.lastHP = p.world.Player().HP
	p.flash = nil
	p.flashA = 0
	p.shake = 0
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// camera returns the top-left world position of the view, clamped to the
// stage
func (p *Playing) camera() (float64, float64) {
	player := p.world.Player()
	stageW, stageH := p.world.Stage().PixelSize()

	camX := clamp(player.X-float64(p.screenW)/2, 0, float64(stageW-p.screenW))
	camY := clamp(player.Y-float64(p.screenH)/2, 0, float64(stageH-p.screenH))

	if p.shake > 0 {
		camX += p.shake * (2*p.shakeRng.Float64() - 1)
		camY += p.shake * (2*p.shakeRng.Float64() - 1)
	}
	return math.Round(camX), math.Round(camY)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	p.drawTiles(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	if p.flashA > 0 {
		fillScreen(screen, p.screenW, p.screenH, color.RGBA{uint8(180 * p.flashA), 0, 0, uint8(180 * p.flashA)})
	}

	p.drawUI(screen)

	// Draw state overlays
	switch p.world.State() {
	case state.StatePause:
		p.drawOverlay(screen, colorPause, "PAUSED", "Press ESC to resume")
	case state.StateGameOver:
		p.drawOverlay(screen, colorGameOver, "GAME OVER",
			fmt.Sprintf("Fell in %s after %d levels\nPress Enter to restart", p.world.Level(), p.world.LevelsCleared()))
	case state.StateVictory:
		p.drawOverlay(screen, colorVictory, "VICTORY", "The grove is quiet again\nPress Enter to play again")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	stage := p.world.Stage()
	ts := stage.TileSize
	startX, startY := int(camX)/ts, int(camY)/ts
	endX, endY := (int(camX)+p.screenW)/ts+1, (int(camY)+p.screenH)/ts+1

	for ty := startY; ty <= endY && ty < stage.Height; ty++ {
		for tx := startX; tx <= endX && tx < stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}

			var c color.Color
			switch stage.GetTile(tx, ty).Type {
			case entity.TileWall:
				c = colorWall
			case entity.TileWater:
				c = colorWater
			default:
				continue
			}

			x := float32(float64(tx*ts) - camX)
			y := float32(float64(ty*ts) - camY)
			vector.DrawFilledRect(screen, x, y, float32(ts), float32(ts), c, false)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	player := p.world.Player()
	box := player.Hitbox()

	c := colorPlayer
	// Blink while invincible
	if player.IsInvincible() && int(player.InvincibilityTimer*12)%2 == 0 {
		c = color.RGBA{255, 255, 255, 200}
	}
	if player.StateName() == entity.PlayerDying {
		c.A = 120
	}
	drawBox(screen, box, camX, camY, c)
	drawFacing(screen, &player.Entity, camX, camY)

	if player.StateName() == entity.PlayerAttacking {
		ux, uy := geom.UnitVector(player.Facing())
		r := player.AttackRange
		sx := float32(player.X + ux*r*0.6 - camX)
		sy := float32(player.Y + uy*r*0.6 - camY)
		vector.DrawFilledCircle(screen, sx, sy, float32(r*0.4), colorSwing, true)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.world.Enemies() {
		var c color.RGBA
		switch e.Kind {
		case entity.KindShadowBat:
			c = colorBat
		case entity.KindSpiritBoxer:
			c = colorBoxer
		default:
			c = colorGuardian
		}

		switch e.StateName() {
		case entity.EnemyHit:
			c = colorHitFlash
		case entity.EnemyDying:
			c.A = 90
		case entity.EnemyAttack:
			if !e.AttackLanded() {
				// Wind-up tell
				vector.StrokeRect(screen, float32(e.X-e.Width/2-camX-2), float32(e.Y-e.Height/2-camY-2),
					float32(e.Width+4), float32(e.Height+4), 1, colorDamageMark, false)
			}
		}
		if g, ok := e.Behavior.(*entity.TempleGuardian); ok && g.Buffed {
			c.G = 200
		}

		drawBox(screen, e.Hitbox(), camX, camY, c)
		drawFacing(screen, &e.Entity, camX, camY)
		drawEnemyHealth(screen, e, camX, camY)
	}
}

func drawBox(screen *ebiten.Image, r entity.Rect, camX, camY float64, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), c, false)
}

func drawFacing(screen *ebiten.Image, e *entity.Entity, camX, camY float64) {
	ux, uy := geom.UnitVector(e.Facing())
	x := e.X + ux*e.Width/2 - camX
	y := e.Y + uy*e.Height/2 - camY
	vector.DrawFilledRect(screen, float32(x-2), float32(y-2), 4, 4, colorFacing, false)
}

func drawEnemyHealth(screen *ebiten.Image, e *entity.Enemy, camX, camY float64) {
	if e.HP >= e.MaxHP || e.IsDead {
		return
	}
	x := float32(e.X - e.Width/2 - camX)
	y := float32(e.Y - e.Height/2 - camY - 5)
	w := float32(e.Width)
	vector.DrawFilledRect(screen, x, y, w, 3, colorHealthBG, false)
	vector.DrawFilledRect(screen, x, y, w*float32(e.HP)/float32(e.MaxHP), 3, colorHealthLow, false)
}

func fillScreen(screen *ebiten.Image, w, h int, c color.Color) {
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), c, false)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX, barY := float32(10), float32(p.screenH-20)
	barW, barH := float32(120), float32(10)

	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	fg := colorHealthFG
	if p.hpShown < 0.3 {
		fg = colorHealthLow
	}
	vector.DrawFilledRect(screen, barX, barY, barW*max(p.hpShown, 0), barH, fg, false)

	player := p.world.Player()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", player.HP, player.MaxHP), int(barX+barW)+8, int(barY)-3)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  enemies: %d", p.world.Level(), len(p.world.Enemies())), 10, p.screenH-38)

	// Controls
	ebitenutil.DebugPrint(screen, "WASD: Move | Space: Attack | Shift: Dodge | ESC: Pause")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.Color, title, hint string) {
	fillScreen(screen, p.screenW, p.screenH, bg)

	cx := float64(p.screenW) / 2
	cy := float64(p.screenH) / 2
	scene.DrawText(screen, title, p.titleFace, cx, cy-40, colorTitleText, true)
	scene.DrawText(screen, hint, p.hintFace, cx, cy+4, colorHintText, true)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	log.Printf("Campaign started at %s (seed: %d)", p.world.Level(), p.world.Seed())
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
