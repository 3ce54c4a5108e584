package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
)

//go:embed schema/config.schema.json
var embeddedSchema string

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// World Dimensions, the starting window size
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Agent constants
	VisualRadius     float64 `json:"visualRadius"`
	MoveSpeed        float64 `json:"moveSpeed"`
	SeparationFactor float64 `json:"separationFactor"`
	AlignmentFactor  float64 `json:"alignmentFactor"`
	CohesionFactor   float64 `json:"cohesionFactor"`

	// Average headings on the unit circle instead of the raw degree mean
	CircularAlignment bool `json:"circularAlignment"`

	// Display
	ShowRanges bool    `json:"showRanges"`
	TimeScale  float64 `json:"timeScale"` // multiplies the wall-clock frame time

	// Random seed for flock generation, 0 seeds from the clock
	Seed uint64 `json:"seed"`
}

func DefaultConfig() *Config {
	p := behavior.DefaultParams()
	return &Config{
		WorldWidth:        800,
		WorldHeight:       600,
		VisualRadius:      p.Size,
		MoveSpeed:         p.MoveSpeed,
		SeparationFactor:  p.SeparationFactor,
		AlignmentFactor:   p.AlignmentFactor,
		CohesionFactor:    p.CohesionFactor,
		CircularAlignment: false,
		ShowRanges:        true,
		TimeScale:         1,
		Seed:              0,
	}
}

// Params returns the agent constants described by the config.
func (c *Config) Params() behavior.Params {
	return behavior.Params{
		Size:              c.VisualRadius,
		MoveSpeed:         c.MoveSpeed,
		SeparationFactor:  c.SeparationFactor,
		AlignmentFactor:   c.AlignmentFactor,
		CohesionFactor:    c.CohesionFactor,
		CircularAlignment: c.CircularAlignment,
	}
}

// World returns the configured world size.
func (c *Config) World() flock.Bounds {
	return flock.Bounds{X: c.WorldWidth, Y: c.WorldHeight}
}

// Validate checks what the JSON schema cannot express, like range nesting.
func (c *Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalidConfig, c.WorldWidth, c.WorldHeight)
	}
	if c.WorldWidth > flock.MaxWorldSize || c.WorldHeight > flock.MaxWorldSize {
		return fmt.Errorf("%w: world size must not exceed %d, got %vx%v", ErrInvalidConfig, flock.MaxWorldSize, c.WorldWidth, c.WorldHeight)
	}
	if c.TimeScale < 0 {
		return fmt.Errorf("%w: time scale must not be negative, got %v", ErrInvalidConfig, c.TimeScale)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or TOML file and validates it against the schema.
// TOML files (.toml extension) use the same keys as JSON.
// An empty schemaFile uses the schema built into the binary.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	var (
		sch *jsonschema.Schema
		err error
	)
	if schemaFile == "" {
		sch, err = jsonschema.CompileString("config.schema.json", embeddedSchema)
	} else {
		sch, err = jsonschema.Compile(schemaFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(configFile), ".toml") {
		if b, err = tomlToJSON(b); err != nil {
			return nil, err
		}
	}

	// 3. Validate
	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// tomlToJSON re-encodes a TOML document as JSON so both formats share
// one schema and one decoding path.
func tomlToJSON(b []byte) ([]byte, error) {
	var m map[string]interface{}
	if _, err := toml.Decode(string(b), &m); err != nil {
		return nil, fmt.Errorf("failed to decode config toml: %w", err)
	}
	out, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config toml: %w", err)
	}
	return out, nil
}
