package simulation

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

// Commands travel to the flock actor as protobuf Structs with a "kind" field.
const (
	kindTick      = "tick"
	kindReset     = "reset"
	kindAlignment = "alignment"
)

var ErrBadCommand = errors.New("bad flock command")

type command struct {
	kind     string
	dt       float64 // seconds
	world    flock.Bounds
	circular bool
}

// Frame is what the flock actor publishes after every tick or reset.
type Frame struct {
	Generation        int
	Number            uint64
	World             flock.Bounds
	Agents            []flock.View
	Stats             flock.Stats
	CircularAlignment bool
}

// NewTick asks the flock actor to advance by elapsed in a world of the given size.
func NewTick(elapsed time.Duration, world flock.Bounds) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"kind":   structpb.NewStringValue(kindTick),
		"dt":     structpb.NewNumberValue(elapsed.Seconds()),
		"width":  structpb.NewNumberValue(world.X),
		"height": structpb.NewNumberValue(world.Y),
	}}
}

// NewReset asks the flock actor to throw the flock away and generate a new one.
func NewReset(world flock.Bounds) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"kind":   structpb.NewStringValue(kindReset),
		"width":  structpb.NewNumberValue(world.X),
		"height": structpb.NewNumberValue(world.Y),
	}}
}

// NewAlignmentMode switches between the raw and the circular heading mean.
func NewAlignmentMode(circular bool) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"kind":     structpb.NewStringValue(kindAlignment),
		"circular": structpb.NewBoolValue(circular),
	}}
}

func decodeCommand(msg *structpb.Struct) (command, error) {
	fields := msg.GetFields()
	cmd := command{kind: fields["kind"].GetStringValue()}

	number := func(name string) (float64, error) {
		v, ok := fields[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s command without %q", ErrBadCommand, cmd.kind, name)
		}
		if _, isNumber := v.GetKind().(*structpb.Value_NumberValue); !isNumber {
			return 0, fmt.Errorf("%w: %q is not a number", ErrBadCommand, name)
		}
		return v.GetNumberValue(), nil
	}
	world := func() (err error) {
		if cmd.world.X, err = number("width"); err != nil {
			return err
		}
		cmd.world.Y, err = number("height")
		return err
	}

	var err error
	switch cmd.kind {
	case kindTick:
		if cmd.dt, err = number("dt"); err != nil {
			return cmd, err
		}
		err = world()
	case kindReset:
		err = world()
	case kindAlignment:
		v, ok := fields["circular"]
		if !ok {
			return cmd, fmt.Errorf("%w: alignment command without \"circular\"", ErrBadCommand)
		}
		cmd.circular = v.GetBoolValue()
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrBadCommand, cmd.kind)
	}
	return cmd, err
}
