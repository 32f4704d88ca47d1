// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jwhan/coinrush/internal/application/replay"
	"github.com/jwhan/coinrush/internal/application/scene"
	"github.com/jwhan/coinrush/internal/application/state"
	"github.com/jwhan/coinrush/internal/application/system"
	"github.com/jwhan/coinrush/internal/domain/entity"
	"github.com/jwhan/coinrush/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorBounce   = color.RGBA{230, 126, 34, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
	colorGoal     = color.RGBA{46, 204, 113, 255}
)

const coinBobAmplitude = 3.0

// Playing is the main gameplay scene. It owns the session, the frame
// clock and the input state; the simulation itself never touches ebiten.
type Playing struct {
	cfg     *config.PhysicsConfig
	session *state.Session

	inputSystem *system.InputSystem
	input       system.InputState
	clock       *Clock

	// Monotonic time for the coin bob animation, advanced with the same
	// dt the simulation consumes.
	elapsed float64

	screenW int
	screenH int

	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	replayDT       float64
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay is recorded to that file. If
// replayer is non-nil, inputs come from the recording at a fixed frame dt
// instead of the keyboard and wall clock.
func New(cfg *config.PhysicsConfig, sess *state.Session, recordPath string, replayer *replay.Replayer) *Playing {
	p := &Playing{
		cfg:            cfg,
		session:        sess,
		inputSystem:    system.NewInputSystem(),
		clock:          NewClock(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
		replayer:       replayer,
		replayDT:       1.0 / float64(cfg.Display.Framerate),
	}

	if recordPath != "" {
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// Update proceeds the game state (implements scene.Scene).
// The dt argument from the scene manager is ignored: the session consumes
// wall-clock time from the scene's own clock, or the fixed replay dt.
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	switch p.session.Status() {
	case state.StatusIdle:
		if p.replayer != nil || startPressed() {
			p.start()
		}
	case state.StatusRunning:
		p.updateRunning()
	case state.StatusWon, state.StatusLost:
		if p.replayer == nil && startPressed() {
			p.start()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updateRunning() {
	var dt float64
	if p.replayer != nil {
		fi, ok := p.replayer.Next()
		if !ok {
			// Recording exhausted; freeze until the window closes.
			return
		}
		p.input = system.InputState{Left: fi.L, Right: fi.R, Jump: fi.J, JumpBuffer: fi.JB}
		dt = p.replayDT
	} else {
		dt = p.clock.Tick()
		p.inputSystem.Poll(&p.input)
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(p.input)
	}

	p.session.Advance(&p.input, dt)
	p.elapsed += dt

	if p.session.Status().Terminal() {
		p.clock.Stop()
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

// start begins a fresh run. Restarting from a terminal state is the same
// full reset as the first start.
func (p *Playing) start() {
	p.session.Start()
	p.input = system.InputState{}
	p.elapsed = 0
	p.clock.Start()

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.session.Level().Name)
	}
	if p.replayer != nil {
		p.replayer.Reset()
	}
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

func startPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawGoal(screen)
	p.drawPlatforms(screen)
	p.drawCoins(screen)
	p.drawPlayer(screen)
	p.drawHUD(screen)

	switch p.session.Status() {
	case state.StatusIdle:
		p.drawIdleOverlay(screen)
	case state.StatusWon:
		p.drawWonOverlay(screen)
	case state.StatusLost:
		p.drawLostOverlay(screen)
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image) {
	for _, pl := range p.session.Level().Platforms {
		c := colorPlatform
		if pl.Kind == entity.PlatformBounce {
			c = colorBounce
		}
		ebitenutil.DrawRect(screen, pl.X, pl.Y, pl.Width, pl.Height, c)
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image) {
	for _, coin := range p.session.Coins() {
		if !coin.Active {
			continue
		}
		bob := math.Sin(p.elapsed*4+coin.PhaseOffset) * coinBobAmplitude
		ebitenutil.DrawRect(screen, coin.X, coin.Y+bob, coin.Width, coin.Height, colorCoin)
	}
}

func (p *Playing) drawGoal(screen *ebiten.Image) {
	g := p.session.Level().Goal
	ebitenutil.DrawRect(screen, g.X, g.Y, g.Width, g.Height, colorGoal)
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pl := p.session.Player()
	ebitenutil.DrawRect(screen, pl.X, pl.Y, pl.Width, pl.Height, colorPlayer)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Time: %.1f  Coins: %d/%d",
		p.session.TimeRemaining(), p.session.Collected(), p.session.Level().CoinTotal())
	ebitenutil.DebugPrint(screen, hud)
}

func (p *Playing) drawIdleOverlay(screen *ebiten.Image) {
	p.drawOverlay(screen, color.RGBA{0, 0, 0, 128})
	text := "COIN RUSH\n\nArrows/A/D: Move | Up/W/Space: Jump\n\nPress ENTER to start"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-110, p.screenH/2-30)
}

func (p *Playing) drawWonOverlay(screen *ebiten.Image) {
	p.drawOverlay(screen, color.RGBA{0, 80, 0, 160})
	text := fmt.Sprintf("YOU WIN!\n\nCoins: %d/%d  Time left: %.1f\n\nPress ENTER to play again",
		p.session.Collected(), p.session.Level().CoinTotal(), p.session.TimeRemaining())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-100, p.screenH/2-30)
}

func (p *Playing) drawLostOverlay(screen *ebiten.Image) {
	p.drawOverlay(screen, color.RGBA{100, 0, 0, 180})
	text := fmt.Sprintf("TIME'S UP\n\nCoins: %d/%d\n\nPress ENTER to try again",
		p.session.Collected(), p.session.Level().CoinTotal())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-80, p.screenH/2-30)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.RGBA) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New; the session starts on input.
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.clock.Stop()
	if p.recorder != nil {
		p.saveRecording()
	}
}
