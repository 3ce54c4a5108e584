package simulation

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// startFlock runs a flock actor in a fresh actor system and returns the frame
// channel once the first generation has been published.
func startFlock(t *testing.T) (context.Context, *actor.PID, <-chan *Frame) {
	t.Helper()
	ctx := context.Background()

	system, err := actor.NewActorSystem("FlockTest", actor.WithLogger(golog.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })

	frames := make(chan *Frame, 16)
	rng := rand.New(rand.NewPCG(1, 2))
	pid, err := system.Spawn(ctx, "flock", NewFlockActor(frames, DefaultConfig(), rng))
	require.NoError(t, err)

	first := nextFrame(t, frames)
	require.Equal(t, 1, first.Generation)
	require.Equal(t, uint64(0), first.Number)
	require.Len(t, first.Agents, flock.Size)

	return ctx, pid, frames
}

func nextFrame(t *testing.T, frames <-chan *Frame) *Frame {
	t.Helper()
	select {
	case f := <-frames:
		return f
	case <-time.After(5 * time.Second):
		t.Fatal("no frame published")
		return nil
	}
}

func TestFlockActor_TickAdvances(t *testing.T) {
	ctx, pid, frames := startFlock(t)
	world := DefaultConfig().World()

	require.NoError(t, actor.Tell(ctx, pid, NewTick(16*time.Millisecond, world)))
	f1 := nextFrame(t, frames)
	assert.Equal(t, uint64(1), f1.Number)
	assert.Equal(t, 1, f1.Generation)
	assert.Equal(t, flock.Size, f1.Stats.Separation+f1.Stats.Alignment+f1.Stats.Cohesion+f1.Stats.Idle)

	require.NoError(t, actor.Tell(ctx, pid, NewTick(16*time.Millisecond, world)))
	f2 := nextFrame(t, frames)
	assert.Equal(t, uint64(2), f2.Number)
}

func TestFlockActor_ResetStartsNewGeneration(t *testing.T) {
	ctx, pid, frames := startFlock(t)
	world := flock.Bounds{X: 1024, Y: 768}

	require.NoError(t, actor.Tell(ctx, pid, NewReset(world)))
	f := nextFrame(t, frames)
	assert.Equal(t, 2, f.Generation)
	assert.Equal(t, uint64(0), f.Number)
	assert.Equal(t, world, f.World)
	for _, a := range f.Agents {
		assert.True(t, world.Contains(a.Pos))
	}
}

func TestFlockActor_DropsBadCommands(t *testing.T) {
	ctx, pid, frames := startFlock(t)
	world := DefaultConfig().World()

	// none of these may publish a frame or change the flock
	require.NoError(t, actor.Tell(ctx, pid, &structpb.Struct{}))
	require.NoError(t, actor.Tell(ctx, pid, NewTick(-time.Second, world)))
	require.NoError(t, actor.Tell(ctx, pid, NewTick(time.Millisecond, flock.Bounds{X: 0, Y: 600})))
	require.NoError(t, actor.Tell(ctx, pid, NewReset(flock.Bounds{X: -1, Y: 600})))
	require.NoError(t, actor.Tell(ctx, pid, NewReset(flock.Bounds{X: 1e20, Y: 600})))

	require.NoError(t, actor.Tell(ctx, pid, NewTick(time.Millisecond, world)))
	f := nextFrame(t, frames)
	assert.Equal(t, 1, f.Generation)
	assert.Equal(t, uint64(1), f.Number)
}

func TestFlockActor_AlignmentMode(t *testing.T) {
	ctx, pid, frames := startFlock(t)

	require.NoError(t, actor.Tell(ctx, pid, NewAlignmentMode(true)))
	require.NoError(t, actor.Tell(ctx, pid, NewTick(time.Millisecond, DefaultConfig().World())))
	f := nextFrame(t, frames)
	assert.True(t, f.CircularAlignment)

	// a reset keeps the selected mode
	require.NoError(t, actor.Tell(ctx, pid, NewReset(DefaultConfig().World())))
	f = nextFrame(t, frames)
	assert.True(t, f.CircularAlignment)
}
