package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

func TestDecodeCommand(t *testing.T) {
	world := flock.Bounds{X: 640, Y: 480}

	t.Run("tick", func(t *testing.T) {
		cmd, err := decodeCommand(NewTick(250*time.Millisecond, world))
		require.NoError(t, err)
		assert.Equal(t, kindTick, cmd.kind)
		assert.Equal(t, 0.25, cmd.dt)
		assert.Equal(t, world, cmd.world)
	})

	t.Run("reset", func(t *testing.T) {
		cmd, err := decodeCommand(NewReset(world))
		require.NoError(t, err)
		assert.Equal(t, kindReset, cmd.kind)
		assert.Equal(t, world, cmd.world)
	})

	t.Run("alignment", func(t *testing.T) {
		cmd, err := decodeCommand(NewAlignmentMode(true))
		require.NoError(t, err)
		assert.Equal(t, kindAlignment, cmd.kind)
		assert.True(t, cmd.circular)
	})
}

func TestDecodeCommand_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]*structpb.Value
	}{
		{"empty", nil},
		{"unknown kind", map[string]*structpb.Value{"kind": structpb.NewStringValue("explode")}},
		{"tick without dt", map[string]*structpb.Value{
			"kind":   structpb.NewStringValue(kindTick),
			"width":  structpb.NewNumberValue(10),
			"height": structpb.NewNumberValue(10),
		}},
		{"reset with text width", map[string]*structpb.Value{
			"kind":   structpb.NewStringValue(kindReset),
			"width":  structpb.NewStringValue("wide"),
			"height": structpb.NewNumberValue(10),
		}},
		{"alignment without flag", map[string]*structpb.Value{"kind": structpb.NewStringValue(kindAlignment)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeCommand(&structpb.Struct{Fields: tt.fields})
			assert.ErrorIs(t, err, ErrBadCommand)
		})
	}
}
