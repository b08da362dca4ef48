package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Board defaults: a 640x480 window split into 20px cells
const (
	DefaultWidth    = 32
	DefaultHeight   = 24
	DefaultCellSize = 20
	MinGridSide     = 4
)

// Movement defaults
const (
	DefaultInitialLength = 1
	DefaultSpeed         = 15 // ticks per second
)

// Boundary modes
const (
	BoundaryWrap  = "wrap"
	BoundarySolid = "solid"
)

// Characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharWall  = "⬜"
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharFood  = "🍎"
)

// Environment variables read by ApplyEnv
const (
	EnvWidth    = "SNAKE_GRID_WIDTH"
	EnvHeight   = "SNAKE_GRID_HEIGHT"
	EnvLength   = "SNAKE_INITIAL_LENGTH"
	EnvSeed     = "SNAKE_SEED"
	EnvBoundary = "SNAKE_BOUNDARY"
	EnvSpeed    = "SNAKE_SPEED"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds the settings fixed when a simulation is created
type Config struct {
	GridWidth     int    `json:"grid_width"`
	GridHeight    int    `json:"grid_height"`
	InitialLength int    `json:"initial_length"`
	Seed          *int64 `json:"random_seed,omitempty"`
	Boundary      string `json:"boundary"`
	CellSize      int    `json:"cell_size"`
	Speed         int    `json:"speed"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		GridWidth:     DefaultWidth,
		GridHeight:    DefaultHeight,
		InitialLength: DefaultInitialLength,
		Boundary:      BoundaryWrap,
		CellSize:      DefaultCellSize,
		Speed:         DefaultSpeed,
	}
}

// Load reads a JSON config file on top of the defaults.
// Fields missing from the file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found through lookup
// (normally os.LookupEnv)
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &c.GridWidth},
		{EnvHeight, &c.GridHeight},
		{EnvLength, &c.InitialLength},
		{EnvSpeed, &c.Speed},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", e.key, v, ErrInvalid)
		}
		*e.dst = n
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalid)
		}
		c.Seed = &seed
	}
	if v, ok := lookup(EnvBoundary); ok {
		c.Boundary = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	if c.GridWidth < MinGridSide || c.GridHeight < MinGridSide {
		return fmt.Errorf("grid %dx%d smaller than %dx%d: %w",
			c.GridWidth, c.GridHeight, MinGridSide, MinGridSide, ErrInvalid)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("initial length %d: %w", c.InitialLength, ErrInvalid)
	}
	// At least one cell must stay free for food.
	if c.InitialLength >= c.GridWidth*c.GridHeight {
		return fmt.Errorf("initial length %d leaves no free cell on %dx%d grid: %w",
			c.InitialLength, c.GridWidth, c.GridHeight, ErrInvalid)
	}
	if c.Boundary != BoundaryWrap && c.Boundary != BoundarySolid {
		return fmt.Errorf("boundary %q: %w", c.Boundary, ErrInvalid)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size %d: %w", c.CellSize, ErrInvalid)
	}
	if c.Speed < 1 {
		return fmt.Errorf("speed %d: %w", c.Speed, ErrInvalid)
	}
	return nil
}

// TickInterval returns the time between simulation steps
func (c Config) TickInterval() time.Duration {
	if c.Speed < 1 {
		return time.Second / DefaultSpeed
	}
	return time.Second / time.Duration(c.Speed)
}
