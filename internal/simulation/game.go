package simulation

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
)

// Game is the ebiten front end: it feeds the flock actor with elapsed time,
// world size and reset requests, and draws the frames it publishes.
type Game struct {
	ctx       context.Context
	System    actor.ActorSystem
	flockPID  *actor.PID
	frames    chan *Frame
	lastFrame *Frame

	world    flock.Bounds
	lastTick time.Time
	paused   bool

	// UI Controls
	panel            *ui.Panel
	widgetShowRanges *ui.Checkbox
	widgetCircular   *ui.Checkbox
	widgetTimeScale  *ui.Slider
	circularSent     bool
	resetRequested   bool

	// Timing instrumentation
	lastUpdateDuration time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame spawns the flock actor in system and builds the UI around it.
func NewGame(ctx context.Context, cfg *Config, system actor.ActorSystem, rng flock.RandomSource) (*Game, error) {
	// Buffer to avoid blocking the actor
	frames := make(chan *Frame, 10)

	flockPID, err := system.Spawn(ctx, "flock", NewFlockActor(frames, cfg, rng))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock actor: %w", err)
	}

	g := &Game{
		ctx:          ctx,
		System:       system,
		flockPID:     flockPID,
		frames:       frames,
		lastFrame:    &Frame{},
		world:        cfg.World(),
		lastTick:     time.Now(),
		circularSent: cfg.CircularAlignment,
	}

	g.panel = ui.NewPanel(10, 10, 230, "Flock")
	g.panel.AddSection("Controls")
	g.panel.AddButton("Reset (R)", func() { g.resetRequested = true })
	g.widgetShowRanges = g.panel.AddCheckbox("Show ranges (V)", cfg.ShowRanges)
	g.widgetCircular = g.panel.AddCheckbox("Circular mean (C)", cfg.CircularAlignment)
	g.panel.AddSection("Time")
	g.widgetTimeScale = g.panel.AddSlider("Time scale", 0, 4, cfg.TimeScale)

	return g, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Keyboard and UI Panel
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resetRequested = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.widgetShowRanges.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.widgetCircular.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Hidden = !g.panel.Hidden
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	g.panel.Update()

	// 2. Commands for the flock actor
	if g.widgetCircular.Value != g.circularSent {
		g.tell(NewAlignmentMode(g.widgetCircular.Value))
		g.circularSent = g.widgetCircular.Value
	}
	if g.resetRequested {
		g.tell(NewReset(g.world))
		g.resetRequested = false
	}

	now := time.Now()
	elapsed := now.Sub(g.lastTick)
	g.lastTick = now
	if !g.paused {
		scaled := time.Duration(float64(elapsed) * g.widgetTimeScale.Value)
		g.tell(NewTick(scaled, g.world))
	}

	// 3. Retrieve Latest Frame (Non-blocking)
Drain:
	for {
		select {
		case frame := <-g.frames:
			g.lastFrame = frame
		default:
			break Drain
		}
	}

	return nil
}

func (g *Game) tell(msg *structpb.Struct) {
	if err := actor.Tell(g.ctx, g.flockPID, msg); err != nil {
		g.System.Logger().Warnf("cannot send %s command: %v", msg.GetFields()["kind"].GetStringValue(), err)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	screen.Fill(color.Black)

	for _, agent := range g.lastFrame.Agents {
		if g.widgetShowRanges.Value {
			drawRanges(screen, agent)
		}
		drawAgent(screen, agent)
	}

	g.panel.Draw(screen)

	state := "running"
	if g.paused {
		state = "paused"
	}
	s := g.lastFrame.Stats
	msg := fmt.Sprintf("FPS: %.2f  TPS: %.2f  %s\nGeneration %d  frame %d\nseparation %d  alignment %d  cohesion %d  idle %d\nUpdate: %.2fms  Draw: %.2fms",
		ebiten.ActualFPS(), ebiten.ActualTPS(), state,
		g.lastFrame.Generation, g.lastFrame.Number,
		s.Separation, s.Alignment, s.Cohesion, s.Idle,
		g.updateAvg, g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, 10, screen.Bounds().Dy()-70)

	g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
}

// Layout follows the window so a resize changes the world the flock wraps in.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.world = flock.Bounds{X: float64(outsideWidth), Y: float64(outsideHeight)}
	}
	return int(g.world.X), int(g.world.Y)
}
