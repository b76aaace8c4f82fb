package game

import (
	"errors"
	"fmt"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Status of a session.
type Status int

const (
	Running Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Outcome is the player's answer to the game-over dialog.
type Outcome int

const (
	OutcomeRestart Outcome = iota
	OutcomeExit
)

// TickResult summarises one call to Tick.
type TickResult struct {
	Status    Status
	Score     int
	Grew      bool
	Collision manager.CollisionType
}

// Options are the named parameters of a session.
type Options struct {
	Grid             types.Grid
	InitialBody      []types.Point
	InitialDirection types.Direction
	// Seed for food placement; zero seeds from the clock.
	Seed uint64
}

// ErrInvalidOptions wraps every Options validation failure.
var ErrInvalidOptions = errors.New("invalid game options")

// Validate checks that a session can start: a grid with a playable
// interior, and a contiguous, duplicate-free initial body inside it that
// leaves room for food and does not face its own neck.
func (o Options) Validate() error {
	if o.Grid.InteriorCells() == 0 {
		return fmt.Errorf("%w: grid %dx%d has no interior", ErrInvalidOptions, o.Grid.Width, o.Grid.Height)
	}
	if len(o.InitialBody) == 0 {
		return fmt.Errorf("%w: empty initial body", ErrInvalidOptions)
	}
	if o.InitialDirection == types.NONE {
		return fmt.Errorf("%w: missing initial direction", ErrInvalidOptions)
	}
	if len(o.InitialBody) >= o.Grid.InteriorCells() {
		return fmt.Errorf("%w: initial body leaves no room for food", ErrInvalidOptions)
	}
	seen := make(map[types.Point]bool, len(o.InitialBody))
	for i, p := range o.InitialBody {
		if !o.Grid.IsInterior(p) {
			return fmt.Errorf("%w: body cell %v is outside the playfield", ErrInvalidOptions, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: body cell %v repeated", ErrInvalidOptions, p)
		}
		seen[p] = true
		if i > 0 && types.DirectionBetween(o.InitialBody[i-1], p) == types.NONE {
			return fmt.Errorf("%w: body cells %v and %v are not adjacent", ErrInvalidOptions, o.InitialBody[i-1], p)
		}
	}
	if len(o.InitialBody) > 1 {
		if types.DirectionBetween(o.InitialBody[0], o.InitialBody[1]) == o.InitialDirection {
			return fmt.Errorf("%w: initial direction %v points into the body", ErrInvalidOptions, o.InitialDirection)
		}
	}
	return nil
}

// DefaultOptions mirrors the classic 60x32 board with a three-cell snake.
func DefaultOptions() Options {
	return Options{
		Grid:             types.Grid{Width: 60, Height: 32},
		InitialBody:      []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}},
		InitialDirection: types.RIGHT,
	}
}

// Game owns the grid, the snake, the food and the score of one session.
// It is not safe for concurrent use; the frame loop drives it.
type Game struct {
	opts      Options
	id        string
	grid      types.Grid
	snake     *entity.Snake
	heading   types.Direction
	pending   types.Direction
	food      types.Point
	score     int
	status    Status
	collision manager.CollisionType
	startTime time.Time
	endTime   time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// New creates a session and places the first food.
func New(opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	body := make([]types.Point, len(opts.InitialBody))
	copy(body, opts.InitialBody)
	opts.InitialBody = body

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	collisionMgr := manager.NewCollisionManager(opts.Grid)
	g := &Game{
		opts:         opts,
		grid:         opts.Grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, rand.New(rand.NewSource(seed))),
	}
	g.Reset()
	return g, nil
}

// Reset restores the lifecycle defaults under a fresh session id.
func (g *Game) Reset() {
	g.id = uuid.New().String()
	g.snake = entity.NewSnake(g.opts.InitialBody)
	g.heading = g.opts.InitialDirection
	g.pending = types.NONE
	g.score = 0
	g.status = Running
	g.collision = manager.NoCollision
	g.startTime = time.Now()
	g.endTime = time.Time{}
	g.SpawnFood()
}

// SetDirection queues d for the next tick. Reversals of the current heading
// and requests after game over are ignored; the last valid request wins.
// Validity is judged against the direction of the last executed step, not
// the queued request: moving right, Up then Down before a tick moves down.
func (g *Game) SetDirection(d types.Direction) {
	if g.status == Over || d == types.NONE {
		return
	}
	if d.IsOpposite(g.heading) {
		return
	}
	g.pending = d
}

// Tick advances the game by one step. It does nothing once the game is over.
func (g *Game) Tick() TickResult {
	if g.status == Over {
		return g.result(false)
	}

	if g.pending != types.NONE {
		g.heading = g.pending
		g.pending = types.NONE
	}

	newHead := g.snake.Head().Add(g.heading.ToPoint())

	if c := g.collisionMgr.Check(newHead, g.snake); c != manager.NoCollision {
		g.end(c)
		return g.result(false)
	}

	g.snake.Move(newHead)

	if newHead == g.food {
		g.score++
		g.SpawnFood()
		return g.result(true)
	}
	g.snake.RemoveTail()
	return g.result(false)
}

// SpawnFood places food on a free interior cell. When none is left the
// game ends with BoardFull.
func (g *Game) SpawnFood() {
	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		g.end(manager.BoardFull)
		return
	}
	g.food = food
}

// Resolve applies the player's game-over decision. It reports whether the
// session continues. Calls while the game is running change nothing.
func (g *Game) Resolve(o Outcome) bool {
	if g.status != Over {
		return true
	}
	if o == OutcomeRestart {
		g.Reset()
		return true
	}
	return false
}

func (g *Game) end(c manager.CollisionType) {
	g.status = Over
	g.collision = c
	g.endTime = time.Now()
}

func (g *Game) result(grew bool) TickResult {
	return TickResult{
		Status:    g.status,
		Score:     g.score,
		Grew:      grew,
		Collision: g.collision,
	}
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Walls lists the cells of the wall ring.
func (g *Game) Walls() []types.Point {
	return g.grid.Walls()
}

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []types.Point {
	return g.snake.Cells()
}

func (g *Game) Food() types.Point {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Status() Status {
	return g.status
}

// Heading is the direction of the last executed step.
func (g *Game) Heading() types.Direction {
	return g.heading
}

func (g *Game) Collision() manager.CollisionType {
	return g.collision
}

func (g *Game) StartTime() time.Time {
	return g.startTime
}

// EndTime is zero while the game is running.
func (g *Game) EndTime() time.Time {
	return g.endTime
}
