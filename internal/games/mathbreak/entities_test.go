package mathbreak

import (
	"testing"

	"github.com/vovakirdan/mathbreak/internal/config"
	"github.com/vovakirdan/mathbreak/internal/core"
)

func TestPaddleMoveStaysInField(t *testing.T) {
	const fieldW = 800
	for x := -50; x <= fieldW+50; x += 25 {
		for _, vx := range []int{-5, 0, 5, 500, -500} {
			p := Paddle{Rect: core.NewRect(x, 550, 100, 20), VX: vx}
			p.Move(fieldW)
			if p.X < 0 || p.Right() > fieldW {
				t.Errorf("x=%d vx=%d: paddle at [%d, %d] outside [0, %d]", x, vx, p.X, p.Right(), fieldW)
			}
		}
	}
}

func TestPaddleWiden(t *testing.T) {
	p := Paddle{Rect: core.NewRect(750, 550, 100, 20)}

	p.Widen(50, 300, 800)
	if p.W != 150 || p.Right() > 800 {
		t.Errorf("after widen: x=%d w=%d, expected w=150 inside field", p.X, p.W)
	}

	for i := 0; i < 10; i++ {
		p.Widen(50, 300, 800)
	}
	if p.W != 300 {
		t.Errorf("width = %d, expected cap 300", p.W)
	}

	p.Widen(50, 1000, 250)
	if p.W != 250 || p.X != 0 {
		t.Errorf("x=%d w=%d, expected paddle capped to field width", p.X, p.W)
	}
}

func TestBallBounceTwiceRestores(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY} {
		b := Ball{VX: 3, VY: -3}
		b.Bounce(axis)
		b.Bounce(axis)
		if b.VX != 3 || b.VY != -3 {
			t.Errorf("axis %d: velocity (%d, %d) after double bounce", axis, b.VX, b.VY)
		}
	}

	b := Ball{VX: 3, VY: -3}
	b.Bounce(AxisX)
	if b.VX != -3 || b.VY != -3 {
		t.Errorf("horizontal bounce gave (%d, %d)", b.VX, b.VY)
	}
}

func TestBallBounceWalls(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   int
		wantX, wantY   int
		wantVX, wantVY int
	}{
		{"left wall", -2, 100, -3, 3, 0, 100, 3, 3},
		{"left wall moving away", -2, 100, 3, 3, 0, 100, 3, 3},
		{"right wall", 790, 100, 3, 3, 780, 100, -3, 3},
		{"top wall", 100, -1, 3, -3, 100, 0, 3, 3},
		{"corner", -1, -1, -3, -3, 0, 0, 3, 3},
		{"open field", 100, 100, 3, -3, 100, 100, 3, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Ball{Rect: core.NewRect(tc.x, tc.y, 20, 20), VX: tc.vx, VY: tc.vy}
			b.BounceWalls(800)
			if b.X != tc.wantX || b.Y != tc.wantY {
				t.Errorf("position (%d, %d), expected (%d, %d)", b.X, b.Y, tc.wantX, tc.wantY)
			}
			if b.VX != tc.wantVX || b.VY != tc.wantVY {
				t.Errorf("velocity (%d, %d), expected (%d, %d)", b.VX, b.VY, tc.wantVX, tc.wantVY)
			}
		})
	}
}

func TestBallMissed(t *testing.T) {
	b := Ball{Rect: core.NewRect(0, 580, 20, 20)}
	if b.Missed(600) {
		t.Error("ball resting on the bottom edge counted as a miss")
	}
	b.Y++
	if !b.Missed(600) {
		t.Error("ball past the bottom edge not counted as a miss")
	}
}

func TestCreateBricks(t *testing.T) {
	cfg := config.DefaultConfig()
	rng := core.NewRNG(99)

	bricks := CreateBricks(cfg.Bricks, cfg.Field.Width, rng, cfg.Gameplay.MaxOperand)
	if len(bricks) != 50 {
		t.Fatalf("got %d bricks, expected 50", len(bricks))
	}

	rows := make(map[int]int)
	for i, a := range bricks {
		rows[a.Row]++
		if a.X < 0 || a.Right() > cfg.Field.Width || a.Y < 0 {
			t.Errorf("brick %d at %+v outside the field", i, a.Rect)
		}
		if a.Challenge.Op.Apply(a.Challenge.A, a.Challenge.B) != a.Challenge.Result {
			t.Errorf("brick %d carries a wrong answer: %+v", i, a.Challenge)
		}
		for j := i + 1; j < len(bricks); j++ {
			if a.Touches(bricks[j].Rect) {
				t.Errorf("bricks %d and %d overlap", i, j)
			}
		}
	}
	if len(rows) != 5 {
		t.Errorf("got %d rows, expected 5", len(rows))
	}
	for row, n := range rows {
		if n != 10 {
			t.Errorf("row %d has %d bricks, expected 10", row, n)
		}
	}

	// Grid is centered
	if left, right := bricks[0].X, cfg.Field.Width-bricks[9].Right(); left != right {
		t.Errorf("grid margins %d and %d differ", left, right)
	}
}

func TestRemoveBrickKeepsOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	bricks := CreateBricks(cfg.Bricks, cfg.Field.Width, core.NewRNG(1), 10)
	second := bricks[1]

	bricks = removeBrick(bricks, 0)
	if len(bricks) != 49 || bricks[0] != second {
		t.Errorf("removeBrick broke order: len=%d", len(bricks))
	}
}

func TestPowerUpManager(t *testing.T) {
	cfg := config.DefaultConfig().PowerUps

	t.Run("spawn chance", func(t *testing.T) {
		cfg := cfg
		cfg.SpawnChance = 0
		pm := NewPowerUpManager(cfg, core.NewRNG(1))
		for i := 0; i < 100; i++ {
			if pm.TrySpawn(100, 100) {
				t.Fatal("spawned with zero chance")
			}
		}

		cfg.SpawnChance = 100
		pm = NewPowerUpManager(cfg, core.NewRNG(1))
		if !pm.TrySpawn(100, 100) {
			t.Fatal("did not spawn with full chance")
		}
		if p := pm.PowerUps[0]; p.X != 90 || p.Y != 90 || p.W != 20 {
			t.Errorf("power-up at %+v, expected centered on (100, 100)", p.Rect)
		}
	})

	t.Run("falls and leaves field", func(t *testing.T) {
		pm := NewPowerUpManager(cfg, core.NewRNG(1))
		pm.PowerUps = append(pm.PowerUps,
			&PowerUp{Rect: core.NewRect(100, 100, 20, 20), VY: 3},
			&PowerUp{Rect: core.NewRect(200, 598, 20, 20), VY: 3},
		)
		pm.Update(600)
		if len(pm.PowerUps) != 1 || pm.PowerUps[0].Y != 103 {
			t.Errorf("after update: %d power-ups", len(pm.PowerUps))
		}
	})

	t.Run("collect", func(t *testing.T) {
		pm := NewPowerUpManager(cfg, core.NewRNG(1))
		pm.PowerUps = append(pm.PowerUps,
			&PowerUp{Rect: core.NewRect(360, 535, 20, 20), VY: 3},
			&PowerUp{Rect: core.NewRect(10, 535, 20, 20), VY: 3},
		)
		paddle := core.NewRect(350, 550, 100, 20)
		if n := pm.Collect(paddle); n != 1 {
			t.Errorf("collected %d, expected 1", n)
		}
		if len(pm.PowerUps) != 1 || pm.PowerUps[0].X != 10 {
			t.Error("wrong power-up removed")
		}

		pm.Clear()
		if len(pm.PowerUps) != 0 {
			t.Error("Clear left power-ups behind")
		}
	})
}
