package mathbreak

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/mathbreak/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '═'
	BallChar    = '●'
	BrickChar   = '█'
	PowerUpChar = 'W'
	BorderHoriz = '─'
)

// hudRows is the number of terminal rows above the play field.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	switch g.Phase() {
	case StateQuiz:
		// The question owns the whole screen
		g.renderQuiz(dst)
		return
	case StateGameOver:
		g.renderGameOver(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPowerUps(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)

	if g.state == StateLevel {
		g.drawCenteredBox(dst,
			fmt.Sprintf("LEVEL %d", g.level),
			fmt.Sprintf("%g seconds per answer", g.answerTime))
	}
}

// project maps a play-field rectangle onto terminal cells below the HUD.
// Every visible entity covers at least one cell.
func (g *Game) project(dst *core.Screen, r core.Rect) core.Rect {
	cols := dst.Width()
	rows := dst.Height() - hudRows
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height

	x0 := r.X * cols / fw
	x1 := r.Right() * cols / fw
	y0 := r.Y * rows / fh
	y1 := r.Bottom() * rows / fh
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+hudRows, x1-x0, y1-y0)
}

// renderHUD draws lives, level and score.
func (g *Game) renderHUD(dst *core.Screen) {
	// Lives on left
	dst.DrawTextColored(1, 0, fmt.Sprintf("Lives: %d", g.lives), core.ColorRed)

	// Level in center
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d", g.level))

	// Score on right
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(scoreText)-1, 0, scoreText, core.ColorYellow)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderBricks draws all remaining bricks, striped by row.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.bricks {
		color := core.RowColors[b.Row%len(core.RowColors)]
		dst.DrawRectColored(g.project(dst, b.Rect), BrickChar, color)
	}
}

// renderPowerUps draws falling power-ups.
func (g *Game) renderPowerUps(dst *core.Screen) {
	for _, p := range g.powerups.PowerUps {
		r := g.project(dst, p.Rect)
		dst.SetColored(r.X, r.Y, PowerUpChar, core.ColorBlue)
	}
}

// renderPaddle draws the player's paddle on a single row.
func (g *Game) renderPaddle(dst *core.Screen) {
	r := g.project(dst, g.paddle.Rect)
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, PaddleChar, core.ColorBrightWhite)
	}
}

// renderBall draws the ball at the cell holding its center.
func (g *Game) renderBall(dst *core.Screen) {
	cx, cy := g.ball.Center()
	r := g.project(dst, core.NewRect(cx, cy, 0, 0))
	dst.SetColored(r.X, r.Y, BallChar, core.ColorRed)
}

// renderQuiz draws the question, remaining time and answer buffer.
func (g *Game) renderQuiz(dst *core.Screen) {
	if g.session == nil {
		return
	}
	mid := dst.Height() / 2

	dst.DrawTextCenteredColored(mid-2, "Solve: "+g.session.Challenge().Question(), core.ColorRed)
	dst.DrawTextCentered(mid, fmt.Sprintf("Time left: %d", g.session.Remaining()))
	dst.DrawTextCenteredColored(mid+2, "Answer: "+g.session.Answer()+"_", core.ColorRed)
	dst.DrawTextCenteredColored(dst.Height()-1, "Type the answer, Enter to confirm", core.ColorGray)
}

// renderGameOver draws the final score.
func (g *Game) renderGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-1, "Game Over!", core.ColorRed)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d", g.score))
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorCyan)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
