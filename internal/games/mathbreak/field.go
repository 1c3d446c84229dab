package mathbreak

import (
	"github.com/vovakirdan/mathbreak/internal/config"
	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/quiz"
)

// CreateBricks builds a fresh rows×cols grid, centered horizontally in the
// field, each brick with an independently generated challenge. Bricks are
// returned in row-major order, which is also the collision order.
func CreateBricks(cfg config.BrickConfig, fieldW int, rng *core.RNG, maxOperand int) []*Brick {
	left := core.Max((fieldW-cfg.GridWidth())/2, 0)

	bricks := make([]*Brick, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			bricks = append(bricks, &Brick{
				Rect: core.NewRect(
					left+col*(cfg.Width+cfg.GapX),
					cfg.Top+row*(cfg.Height+cfg.GapY),
					cfg.Width,
					cfg.Height,
				),
				Row:       row,
				Col:       col,
				Challenge: quiz.Generate(rng, maxOperand),
			})
		}
	}
	return bricks
}

// firstHit returns the index of the first brick the ball touches, or -1.
func firstHit(bricks []*Brick, ball core.Rect) int {
	for i, b := range bricks {
		if ball.Touches(b.Rect) {
			return i
		}
	}
	return -1
}

// removeBrick deletes the brick at i, preserving order.
func removeBrick(bricks []*Brick, i int) []*Brick {
	copy(bricks[i:], bricks[i+1:])
	bricks[len(bricks)-1] = nil
	return bricks[:len(bricks)-1]
}
