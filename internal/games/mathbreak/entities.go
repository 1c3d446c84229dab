package mathbreak

import (
	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/quiz"
)

// Axis selects a velocity component for Ball.Bounce.
type Axis int

const (
	AxisX Axis = iota // Horizontal
	AxisY             // Vertical
)

// Paddle is the player's paddle. Its velocity is horizontal only.
type Paddle struct {
	core.Rect
	VX int // Units per tick, set by input
}

// Move applies the velocity and keeps the paddle fully inside [0, fieldW].
func (p *Paddle) Move(fieldW int) {
	p.X += p.VX
	p.clamp(fieldW)
}

// Widen grows the paddle to the right by amount, capped at maxW and fieldW,
// then clamps it back into the field.
func (p *Paddle) Widen(amount, maxW, fieldW int) {
	p.W = core.Min(p.W+amount, core.Min(maxW, fieldW))
	p.clamp(fieldW)
}

func (p *Paddle) clamp(fieldW int) {
	p.X = core.Clamp(p.X, 0, core.Max(fieldW-p.W, 0))
}

// Ball is the bouncing ball. Neither velocity component is ever zero:
// bounces negate, they never zero.
type Ball struct {
	core.Rect
	VX, VY int
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Bounce negates the velocity component on the given axis.
func (b *Ball) Bounce(axis Axis) {
	switch axis {
	case AxisX:
		b.VX = -b.VX
	case AxisY:
		b.VY = -b.VY
	}
}

// CenterOn places the ball centered on (cx, cy) without touching velocity.
func (b *Ball) CenterOn(cx, cy int) {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
}

// BounceWalls handles left, right and top wall contact. The ball is pushed
// back inside the field and the component is negated only while it still
// moves toward the wall, so a ball never sticks to a wall.
func (b *Ball) BounceWalls(fieldW int) {
	if b.X < 0 {
		b.X = 0
		if b.VX < 0 {
			b.Bounce(AxisX)
		}
	}
	if b.Right() > fieldW {
		b.X = fieldW - b.W
		if b.VX > 0 {
			b.Bounce(AxisX)
		}
	}
	if b.Y < 0 {
		b.Y = 0
		if b.VY < 0 {
			b.Bounce(AxisY)
		}
	}
}

// Missed reports whether the ball has dropped past the bottom edge.
func (b *Ball) Missed(fieldH int) bool {
	return b.Bottom() > fieldH
}

// Brick is a destructible brick carrying the challenge it triggers.
type Brick struct {
	core.Rect
	Row, Col  int
	Challenge quiz.Challenge
}

// PowerUp is a falling pickup that widens the paddle.
type PowerUp struct {
	core.Rect
	VY int // Fall speed, positive = down
}

// Move translates the power-up downward.
func (p *PowerUp) Move() {
	p.Y += p.VY
}
