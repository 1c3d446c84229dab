package mathbreak

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick         uint64
	State        string
	Score        int
	Lives        int
	Level        int
	AnswerMillis int // Per-question budget on this level
	HoldTicks    int
	Finished     bool

	PaddleX, PaddleW, PaddleVX int
	BallX, BallY, BallVX, BallVY int

	// Brick states, 5 ints each: X, Y, A, B, Op
	BrickData []int

	// Power-up states, 3 ints each: X, Y, VY
	PowerUpData []int

	// Active question, zero when not in StateQuiz
	QuizResult  int
	QuizElapsed int
	QuizAnswer  string

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, len(g.bricks)*5)
	for _, b := range g.bricks {
		brickData = append(brickData, b.X, b.Y, b.Challenge.A, b.Challenge.B, int(b.Challenge.Op))
	}

	powerUpData := make([]int, 0, len(g.powerups.PowerUps)*3)
	for _, p := range g.powerups.PowerUps {
		powerUpData = append(powerUpData, p.X, p.Y, p.VY)
	}

	snap := Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:        g.state,
		Score:        g.score,
		Lives:        g.lives,
		Level:        g.level,
		AnswerMillis: int(g.answerTime * 1000),
		HoldTicks:    g.holdTicks,
		Finished:     g.finished,

		PaddleX:  g.paddle.X,
		PaddleW:  g.paddle.W,
		PaddleVX: g.paddle.VX,
		BallX:    g.ball.X,
		BallY:    g.ball.Y,
		BallVX:   g.ball.VX,
		BallVY:   g.ball.VY,

		BrickData:   brickData,
		PowerUpData: powerUpData,
		RNGState:    g.rng.State(),
	}

	if g.session != nil {
		res := g.session.Result()
		snap.QuizResult = res.Challenge.Result
		snap.QuizElapsed = res.ElapsedTicks
		snap.QuizAnswer = res.Given
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	fields := []int{
		snap.Score, snap.Lives, snap.Level, snap.AnswerMillis, snap.HoldTicks,
		snap.PaddleX, snap.PaddleW, snap.PaddleVX,
		snap.BallX, snap.BallY, snap.BallVX, snap.BallVY,
		len(snap.BrickData), len(snap.PowerUpData),
		snap.QuizResult, snap.QuizElapsed,
	}
	if snap.Finished {
		fields = append(fields, 1)
	}
	for _, v := range fields {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.PowerUpData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, r := range snap.QuizAnswer {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
