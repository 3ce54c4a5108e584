package simulation

import (
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// FlockActor owns the flock. Commands are handled one at a time, so a frame
// is always computed from one complete snapshot and published whole.
type FlockActor struct {
	flock      flock.Flock
	params     behavior.Params
	world      flock.Bounds
	rng        flock.RandomSource
	generation int
	frame      uint64

	// Communication with UI
	frames chan<- *Frame

	// --- Telemetry ---
	framesSinceLog int
	branchCounts   flock.Stats
	lastLogTime    time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the flock logic unit. rng is only used from the
// actor's own goroutine.
func NewFlockActor(frames chan<- *Frame, cfg *Config, rng flock.RandomSource) *FlockActor {
	return &FlockActor{
		params:      cfg.Params(),
		world:       cfg.World(),
		rng:         rng,
		frames:      frames,
		lastLogTime: time.Now(),
	}
}

func (f *FlockActor) PreStart(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock actor starting, world %v", f.world)
	return nil
}

func (f *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Info("Flock actor started. Generating flock...")
		f.regenerate(ctx, f.world)

	case *structpb.Struct:
		cmd, err := decodeCommand(msg)
		if err != nil {
			ctx.Logger().Warnf("dropping command: %v", err)
			return
		}
		switch cmd.kind {
		case kindTick:
			f.advance(ctx, cmd.dt, cmd.world)
		case kindReset:
			f.regenerate(ctx, cmd.world)
		case kindAlignment:
			f.params.CircularAlignment = cmd.circular
			f.flock.SetCircularAlignment(cmd.circular)
			ctx.Logger().Infof("circular alignment set to %t", cmd.circular)
		}

	default:
		ctx.Unhandled()
	}
}

func (f *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("Flock actor stopped after %d generations", f.generation)
	return nil
}

// regenerate replaces the whole flock with a random one.
// On failure the previous flock is kept.
func (f *FlockActor) regenerate(ctx *actor.ReceiveContext, world flock.Bounds) {
	next, err := flock.Generate(f.rng, world, f.params)
	if err != nil {
		ctx.Logger().Errorf("cannot reset flock: %v", err)
		return
	}
	f.flock = next
	f.world = world
	f.generation++
	f.frame = 0
	ctx.Logger().Infof("generation %d: %d agents in %v", f.generation, flock.Size, world)
	f.publish(flock.Stats{})
}

// advance computes one frame. A rejected frame leaves the flock untouched.
func (f *FlockActor) advance(ctx *actor.ReceiveContext, dt float64, world flock.Bounds) {
	next, stats, err := flock.Advance(f.flock, dt, world)
	if err != nil {
		ctx.Logger().Warnf("skipping frame %d: %v", f.frame+1, err)
		return
	}
	f.flock = next
	f.world = world
	f.frame++
	ctx.Logger().Debugf("frame %d: %+v", f.frame, stats)

	f.framesSinceLog++
	f.branchCounts.Separation += stats.Separation
	f.branchCounts.Alignment += stats.Alignment
	f.branchCounts.Cohesion += stats.Cohesion
	f.branchCounts.Idle += stats.Idle
	f.logBenchmarks(ctx)

	f.publish(stats)
}

func (f *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(f.lastLogTime) >= time.Second {
		c := f.branchCounts
		ctx.Logger().Infof("📊 FRAMES: %d/sec | separation: %d, alignment: %d, cohesion: %d, idle: %d",
			f.framesSinceLog, c.Separation, c.Alignment, c.Cohesion, c.Idle)
		f.framesSinceLog = 0
		f.branchCounts = flock.Stats{}
		f.lastLogTime = time.Now()
	}
}

func (f *FlockActor) publish(stats flock.Stats) {
	frame := &Frame{
		Generation:        f.generation,
		Number:            f.frame,
		World:             f.world,
		Agents:            f.flock.Views(),
		Stats:             stats,
		CircularAlignment: f.params.CircularAlignment,
	}
	select {
	case f.frames <- frame:
	default:
		// UI busy, skip frame
	}
}
