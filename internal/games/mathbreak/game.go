// Package mathbreak implements Math Breakout: a brick breaker where every
// destroyed brick pauses play for a timed arithmetic question.
package mathbreak

import (
	"github.com/vovakirdan/mathbreak/internal/config"
	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/quiz"
)

// Game states
const (
	StatePlaying  = "playing"  // Ball in play
	StateQuiz     = "quiz"     // Physics frozen, question on screen
	StateLevel    = "level"    // Next level generated, banner shown
	StateGameOver = "gameover" // No lives left, final score shown
)

// QuizEvent is the payload of core.EventQuizResolved.
type QuizEvent struct {
	Level  int
	Result quiz.Result
}

// Game implements the Math Breakout game logic.
type Game struct {
	// Game objects
	paddle   *Paddle
	ball     *Ball
	bricks   []*Brick
	powerups *PowerUpManager
	session  *quiz.Session // Active question, nil outside StateQuiz

	// Game state
	state      string
	score      int
	lives      int
	level      int
	answerTime float64 // Seconds allowed per question on this level
	tickCount  int
	holdTicks  int // Countdown for the level banner and game-over screen
	finished   bool
	events     []core.Event

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.Config
	rng     *core.RNG

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "mathbreak"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Math Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.rng = core.NewRNG(runtime.Seed)

	g.minScreenW = 40
	g.minScreenH = 16
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	field := g.cfg.Field
	pc := g.cfg.Paddle
	g.paddle = &Paddle{
		Rect: core.NewRect(field.Width/2-pc.Width/2, field.Height-pc.BottomOffset, pc.Width, pc.Height),
	}

	bc := g.cfg.Ball
	g.ball = &Ball{
		Rect: core.NewRect(0, 0, bc.Size, bc.Size),
		VX:   bc.SpeedX,
		VY:   bc.SpeedY,
	}
	g.recenterBall()

	g.powerups = NewPowerUpManager(g.cfg.PowerUps, g.rng)
	g.session = nil

	// Initialize game state
	g.state = StatePlaying
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.answerTime = g.cfg.Gameplay.AnswerTime
	g.tickCount = 0
	g.holdTicks = 0
	g.finished = false

	g.createBricks()
}

// Resize records a new terminal size. The play field is logical, so only the
// projection changes; the simulation pauses while the terminal is too small.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// createBricks replaces the brick field with a freshly generated grid.
func (g *Game) createBricks() {
	g.bricks = CreateBricks(g.cfg.Bricks, g.cfg.Field.Width, g.rng, g.cfg.Gameplay.MaxOperand)
}

// recenterBall puts the ball back in the middle of the field, keeping its velocity.
func (g *Game) recenterBall() {
	g.ball.CenterOn(g.cfg.Field.Width/2, g.cfg.Field.Height/2)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// A release lands in whatever state is current, so the paddle is still
	// at rest when play resumes after a quiz, banner or pause.
	if in.Has(core.ActionStop) {
		g.paddle.VX = 0
	}

	if g.screenTooSmall || g.finished {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch g.state {
	case StatePlaying:
		g.stepPlaying(in)
	case StateQuiz:
		g.stepQuiz(in)
	case StateLevel:
		g.holdTicks--
		if g.holdTicks <= 0 {
			g.state = StatePlaying
		}
	case StateGameOver:
		g.holdTicks--
		if g.holdTicks <= 0 {
			g.finished = true
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// stepPlaying runs one tick of physics.
func (g *Game) stepPlaying(in core.InputFrame) {
	field := g.cfg.Field

	// Power-ups: collect, then advance
	if n := g.powerups.Collect(g.paddle.Rect); n > 0 {
		for range n {
			g.paddle.Widen(g.cfg.PowerUps.WidenAmount, g.cfg.PowerUps.MaxPaddleWidth, field.Width)
		}
		g.emit(core.EventPowerUpCollected, g.paddle.W)
	}
	g.powerups.Update(field.Height)

	g.updatePaddleVelocity(in)

	g.paddle.Move(field.Width)
	g.ball.Move()

	g.ball.BounceWalls(field.Width)
	if g.ball.Missed(field.Height) {
		g.loseLife()
		if g.lives == 0 {
			g.enterGameOver()
			return
		}
		g.recenterBall()
		return
	}

	// Paddle bounce only while the ball is moving down
	if g.ball.VY > 0 && g.ball.Touches(g.paddle.Rect) {
		g.ball.Bounce(AxisY)
	}

	if i := firstHit(g.bricks, g.ball.Rect); i >= 0 {
		g.hitBrick(i)
	}
}

// updatePaddleVelocity handles paddle movement. Releases are applied in
// Step before this runs, so a press in the same frame as a release wins.
func (g *Game) updatePaddleVelocity(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed

	if in.Has(core.ActionLeft) {
		g.paddle.VX = -speed
	}
	if in.Has(core.ActionRight) {
		g.paddle.VX = speed
	}
}

// hitBrick removes the brick at i and starts its question.
func (g *Game) hitBrick(i int) {
	brick := g.bricks[i]
	g.ball.Bounce(AxisY)
	g.bricks = removeBrick(g.bricks, i)

	cx, cy := brick.Center()
	g.powerups.TrySpawn(cx, cy)

	g.emit(core.EventBrickHit, brick.Challenge)

	g.session = quiz.NewSession(brick.Challenge, g.answerTime, g.runtime.TickRate)
	g.state = StateQuiz
}

// stepQuiz feeds input to the active question and applies its outcome.
func (g *Game) stepQuiz(in core.InputFrame) {
	if g.session == nil {
		g.state = StatePlaying
		return
	}
	if !g.session.Step(in).Resolved() {
		return
	}

	res := g.session.Result()
	g.session = nil
	g.emit(core.EventQuizResolved, QuizEvent{Level: g.level, Result: res})

	if res.Outcome == quiz.Correct {
		g.score += g.cfg.Gameplay.PointsPerAnswer
	} else {
		g.loseLife()
	}

	switch {
	case g.lives == 0:
		g.enterGameOver()
	case g.BricksRemaining() == 0:
		g.enterLevel()
	default:
		g.state = StatePlaying
	}
}

// loseLife takes one life. Lives never go below zero.
func (g *Game) loseLife() {
	if g.lives == 0 {
		return
	}
	g.lives--
	g.emit(core.EventLifeLost, g.lives)
}

// enterLevel applies the level transition and shows the banner.
func (g *Game) enterLevel() {
	gp := g.cfg.Gameplay

	g.level++
	g.answerTime = max(gp.MinAnswerTime, g.answerTime-gp.AnswerTimeStep)
	g.createBricks()
	g.recenterBall()
	g.powerups.Clear()

	g.emit(core.EventLevelUp, g.level)

	g.holdTicks = g.runtime.Ticks(gp.LevelBannerSeconds)
	if g.holdTicks <= 0 {
		g.state = StatePlaying
		return
	}
	g.state = StateLevel
}

// enterGameOver switches to the terminal state.
func (g *Game) enterGameOver() {
	g.state = StateGameOver
	g.emit(core.EventGameOver, g.score)

	g.holdTicks = g.runtime.Ticks(g.cfg.Gameplay.GameOverSeconds)
	if g.holdTicks <= 0 {
		g.finished = true
	}
}

func (g *Game) emit(t core.EventType, data any) {
	g.events = append(g.events, core.Event{Type: t, Tick: g.tickCount, Data: data})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Finished: g.finished,
	}
}

// Phase returns the current state name.
func (g *Game) Phase() string {
	return g.state
}

// AnswerTime returns the seconds allowed per question on the current level.
func (g *Game) AnswerTime() float64 {
	return g.answerTime
}

// BricksRemaining returns the number of bricks still in the field.
func (g *Game) BricksRemaining() int {
	return len(g.bricks)
}
