// Package session implements one play session of Snake: the snake, the food,
// the score and the ready/playing/paused/gameOver state machine.
//
// A Session has no rendering, audio or storage dependencies. Side effects are
// reported through Hooks so the owning scene decides what to do with them.
package session

import (
	"log"
	"math/rand"
	"time"

	"github.com/younwookim/snake/internal/application/state"
	"github.com/younwookim/snake/internal/application/system"
	"github.com/younwookim/snake/internal/domain/entity"
)

// Rules holds the tunable constants of a session
type Rules struct {
	FoodPoints      int
	InitialInterval time.Duration
	SpeedupStep     time.Duration
	MinInterval     time.Duration
}

// DefaultRules returns the classic pacing: 10 points per food, 200ms steps
// shortened by 2ms per food down to 100ms.
func DefaultRules() Rules {
	return Rules{
		FoodPoints:      10,
		InitialInterval: 200 * time.Millisecond,
		SpeedupStep:     2 * time.Millisecond,
		MinInterval:     100 * time.Millisecond,
	}
}

// Result summarizes a finished session
type Result struct {
	Score     int
	FoodEaten int
	Length    int
	Cause     system.Collision
	Duration  time.Duration
}

// Hooks receive the session's side effects. Nil hooks are skipped.
type Hooks struct {
	OnStart    func()
	OnEat      func(score int)
	OnGameOver func(Result)
}

// Session is the game-state machine
type Session struct {
	grid  entity.Grid
	rules Rules
	rng   *rand.Rand
	hooks Hooks

	snake     *entity.Snake
	food      entity.Food
	hasFood   bool
	score     int
	foodEaten int
	state     state.GameState
	clock     *system.StepClock
	playTime  time.Duration
}

// New creates a session in the ready state
func New(grid entity.Grid, rules Rules, rng *rand.Rand, hooks Hooks) *Session {
	s := &Session{
		grid:  grid,
		rules: rules,
		rng:   rng,
		hooks: hooks,
		clock: system.NewStepClock(rules.InitialInterval, rules.SpeedupStep, rules.MinInterval),
	}
	s.Reset()
	return s
}

// Reset puts the session back to ready: score zero, fresh snake and food
func (s *Session) Reset() {
	s.score = 0
	s.foodEaten = 0
	s.playTime = 0
	s.state = state.StateReady
	s.clock.Reset()
	s.snake = entity.NewSnake(s.grid.Center())
	s.placeFood()
}

// Start moves ready -> playing
func (s *Session) Start() {
	s.state = state.StatePlaying
	s.clock.Restart()
	if s.hooks.OnStart != nil {
		s.hooks.OnStart()
	}
}

// Restart resets and starts in one operation, so no ready frame is shown
func (s *Session) Restart() {
	s.Reset()
	s.Start()
}

// Apply routes a recorded or live intent to its handler
func (s *Session) Apply(intent system.Intent) {
	switch in := intent.(type) {
	case system.TapIntent:
		s.HandleTap()
	case system.PauseIntent:
		s.TogglePause()
	case system.SwipeIntent:
		s.HandleSwipe(in.Direction)
	}
}

// HandleTap starts from ready and restarts from gameOver. Taps while
// playing or paused are inert; the pause control is hit-tested by the scene.
func (s *Session) HandleTap() {
	switch s.state {
	case state.StateReady:
		s.Start()
	case state.StateGameOver:
		s.Restart()
	}
}

// TogglePause switches between playing and paused
func (s *Session) TogglePause() {
	switch s.state {
	case state.StatePlaying:
		s.state = state.StatePaused
	case state.StatePaused:
		s.state = state.StatePlaying
	}
}

// HandleSwipe buffers a turn while playing. In ready it starts the game;
// in paused and gameOver it is ignored. Returns whether the turn was staged.
func (s *Session) HandleSwipe(dir entity.Direction) bool {
	if s.state != state.StatePlaying {
		if s.state == state.StateReady {
			s.Start()
		}
		return false
	}
	return s.snake.SetNextDirection(dir)
}

// Update advances the simulation by dt of wall-clock time
func (s *Session) Update(dt time.Duration) {
	if s.state != state.StatePlaying {
		return
	}

	s.playTime += dt
	if s.clock.Advance(dt) {
		s.step()
	}
}

// step moves the snake one cell and resolves the resulting collision
func (s *Session) step() {
	if !s.snake.Alive {
		return
	}

	s.snake.Step()

	switch system.CheckCollision(s.grid, s.snake, s.food) {
	case system.CollisionWall:
		s.gameOver(system.CollisionWall)
	case system.CollisionSelf:
		s.gameOver(system.CollisionSelf)
	case system.CollisionFood:
		s.eat()
	}
}

func (s *Session) eat() {
	s.score += s.rules.FoodPoints
	s.foodEaten++
	s.snake.Grow()
	s.placeFood()
	s.clock.Speedup()

	if s.hooks.OnEat != nil {
		s.hooks.OnEat(s.score)
	}
}

func (s *Session) gameOver(cause system.Collision) {
	s.state = state.StateGameOver
	s.snake.Kill()

	if s.hooks.OnGameOver != nil {
		s.hooks.OnGameOver(Result{
			Score:     s.score,
			FoodEaten: s.foodEaten,
			Length:    s.snake.Len(),
			Cause:     cause,
			Duration:  s.playTime,
		})
	}
}

func (s *Session) placeFood() {
	p, ok := entity.PlaceFood(s.grid, s.snake, s.rng)
	if !ok {
		// The snake fills the board; nothing left to eat
		log.Printf("No free cell for food (snake length %d)", s.snake.Len())
		s.hasFood = false
		s.food = entity.Food{Position: entity.Point{X: -1, Y: -1}}
		return
	}
	s.hasFood = true
	s.food = entity.Food{Position: p}
}

// State returns the current state
func (s *Session) State() state.GameState {
	return s.state
}

// Score returns the current score
func (s *Session) Score() int {
	return s.score
}

// FoodEaten returns how many foods were eaten this session
func (s *Session) FoodEaten() int {
	return s.foodEaten
}

// Snake returns the snake (read-only use)
func (s *Session) Snake() *entity.Snake {
	return s.snake
}

// Food returns the food and whether one is on the board
func (s *Session) Food() (entity.Food, bool) {
	return s.food, s.hasFood
}

// Grid returns the playfield
func (s *Session) Grid() entity.Grid {
	return s.grid
}

// MoveInterval returns the current step interval
func (s *Session) MoveInterval() time.Duration {
	return s.clock.Interval()
}

// PlayTime returns the time spent in the playing state
func (s *Session) PlayTime() time.Duration {
	return s.playTime
}
