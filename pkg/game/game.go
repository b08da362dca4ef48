package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/exp/rand"

	"github.com/xVismar/the-snake/pkg/config"
)

var (
	// ErrInvalidConfig is returned by New for settings the game cannot run with
	ErrInvalidConfig = errors.New("invalid simulation config")
	// ErrBoardFull means food could not be placed; the game cannot continue
	ErrBoardFull = errors.New("no free cell for food")
	// ErrInvalidState is returned by Restore for inconsistent states
	ErrInvalidState = errors.New("invalid simulation state")
)

// Simulation owns the snake, the food and the direction buffer and
// advances them one grid step per Tick. It is not safe for concurrent use.
type Simulation struct {
	cfg     config.Config
	grid    Grid
	rng     *rand.Rand
	logger  *log.Logger
	body    *Body
	dir     *DirectionController
	spawner *FoodSpawner
	food    Cell
	alive   bool
	tick    uint64
	resets  int
}

// Option customizes a Simulation
type Option func(*Simulation)

// WithLogger sets the logger used for reset and spawn diagnostics
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRand replaces the random source seeded from the config
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New validates cfg and creates a running simulation with the snake at the
// board center and food on a free cell
func New(cfg config.Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	boundary := BoundaryWrap
	if cfg.Boundary == config.BoundarySolid {
		boundary = BoundarySolid
	}

	seed := uint64(time.Now().UnixNano())
	if cfg.Seed != nil {
		seed = uint64(*cfg.Seed)
	}

	s := &Simulation{
		cfg:    cfg,
		grid:   NewGrid(cfg.GridWidth, cfg.GridHeight, cfg.CellSize, boundary),
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard, "", 0),
		dir:    NewDirectionController(Right),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.spawner = NewFoodSpawner(s.grid, s.rng)

	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset discards the current state and starts a fresh snake
func (s *Simulation) reset() error {
	s.body = NewBody(s.grid.Center(), s.cfg.InitialLength)
	s.dir.Reset(Directions[s.rng.Intn(len(Directions))])
	s.alive = true

	food, err := s.spawner.Place(s.body.Occupied())
	if err != nil {
		return err
	}
	s.food = food
	return nil
}

// Tick advances the game by one step. input may be None.
// On self-collision (or leaving a solid grid) the game restarts and the
// returned snapshot has Reset set. A non-nil error is unrecoverable.
func (s *Simulation) Tick(input Direction) (Snapshot, error) {
	s.tick++

	// A restored state may already be overlapping itself.
	if s.body.CollidedWithSelf() {
		return s.restart(false)
	}

	s.dir.Request(input)
	d := s.dir.Commit()

	// Eating is decided before the move: stepping onto the food consumes it.
	target, _ := s.grid.Advance(s.body.Head(), d)
	ate := target == s.food
	if ate {
		s.body.Grow()
	}

	_, inside := s.body.Move(s.grid, d)
	collided := !inside || s.body.CollidedWithSelf()

	if ate {
		food, err := s.spawner.Place(s.body.Occupied())
		switch {
		case err == nil:
			s.food = food
		case !collided:
			s.alive = false
			return s.Snapshot(), fmt.Errorf("tick %d: %w", s.tick, err)
		}
	}

	if collided {
		if !inside {
			s.logger.Printf("tick %d: head left the grid at %v", s.tick, s.body.Head())
		}
		return s.restart(ate)
	}

	snap := s.Snapshot()
	snap.Ate = ate
	if tail, ok := s.body.LastRemoved(); ok {
		snap.Vacated = &tail
	}
	return snap, nil
}

func (s *Simulation) restart(ate bool) (Snapshot, error) {
	s.logger.Printf("tick %d: collision at %v with length %d, resetting", s.tick, s.body.Head(), s.body.Length())
	s.resets++
	if err := s.reset(); err != nil {
		s.alive = false
		return s.Snapshot(), fmt.Errorf("tick %d reset: %w", s.tick, err)
	}

	snap := s.Snapshot()
	snap.Alive = false
	snap.Reset = true
	snap.Ate = ate
	return snap, nil
}

// Snapshot returns a copy of the current state for rendering
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Snake:     s.body.Cells(),
		Length:    s.body.Length(),
		Food:      s.food,
		Direction: s.dir.Current(),
		Alive:     s.alive,
		Tick:      s.tick,
		Resets:    s.resets,
	}
}

// State returns a copy of the full simulation state
func (s *Simulation) State() State {
	return State{
		Snake:     s.body.Cells(),
		Length:    s.body.Length(),
		Food:      s.food,
		Direction: s.dir.Current(),
		Pending:   s.dir.Pending(),
		Alive:     s.alive,
	}
}

// Restore replaces the simulation state. Cells must lie on the grid, the
// food must be off the body and the length must cover every cell. A body
// that overlaps itself is accepted and resets on the next Tick.
func (s *Simulation) Restore(st State) error {
	if len(st.Snake) == 0 {
		return fmt.Errorf("empty snake: %w", ErrInvalidState)
	}
	if st.Length < len(st.Snake) {
		return fmt.Errorf("length %d shorter than %d cells: %w", st.Length, len(st.Snake), ErrInvalidState)
	}
	for _, c := range st.Snake {
		if !s.grid.Contains(c) {
			return fmt.Errorf("snake cell %v off grid: %w", c, ErrInvalidState)
		}
		if c == st.Food {
			return fmt.Errorf("food %v on snake: %w", st.Food, ErrInvalidState)
		}
	}
	if !s.grid.Contains(st.Food) {
		return fmt.Errorf("food %v off grid: %w", st.Food, ErrInvalidState)
	}
	if !isDirection(st.Direction) {
		return fmt.Errorf("direction %v: %w", st.Direction, ErrInvalidState)
	}
	if !st.Pending.IsNone() && !isDirection(st.Pending) {
		return fmt.Errorf("pending direction %v: %w", st.Pending, ErrInvalidState)
	}

	body := NewBody(st.Snake[0], st.Length)
	body.cells = append(body.cells[:0], st.Snake...)
	s.body = body
	s.dir.Reset(st.Direction)
	s.dir.Request(st.Pending)
	s.food = st.Food
	s.alive = st.Alive
	return nil
}

// Grid returns the board geometry
func (s *Simulation) Grid() Grid {
	return s.grid
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() config.Config {
	return s.cfg
}

func isDirection(d Direction) bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}
