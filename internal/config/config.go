// Package config provides YAML-based configuration loading and difficulty
// presets for Math Breakout.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Field    FieldConfig    `yaml:"field"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Bricks   BrickConfig    `yaml:"bricks"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Input    InputConfig    `yaml:"input"`
}

// FieldConfig defines the logical play field. Rendering scales it onto
// whatever terminal size is available.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines the player's paddle.
type PaddleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	BottomOffset int `yaml:"bottom_offset"` // Distance from the field bottom to the paddle top
	Speed        int `yaml:"speed"`
}

// BallConfig defines the ball size and its initial velocity.
type BallConfig struct {
	Size   int `yaml:"size"`
	SpeedX int `yaml:"speed_x"`
	SpeedY int `yaml:"speed_y"`
}

// BrickConfig defines the brick grid.
type BrickConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	GapX   int `yaml:"gap_x"`
	GapY   int `yaml:"gap_y"`
	Top    int `yaml:"top"`
}

// GameplayConfig defines lives, scoring and quiz timing.
type GameplayConfig struct {
	Lives              int     `yaml:"lives"`
	PointsPerAnswer    int     `yaml:"points_per_answer"`
	AnswerTime         float64 `yaml:"answer_time"`      // Seconds to answer on level 1
	AnswerTimeStep     float64 `yaml:"answer_time_step"` // Seconds removed per level
	MinAnswerTime      float64 `yaml:"min_answer_time"`
	MaxOperand         int     `yaml:"max_operand"`
	LevelBannerSeconds float64 `yaml:"level_banner_seconds"`
	GameOverSeconds    float64 `yaml:"game_over_seconds"`
}

// PowerUpConfig defines the widen power-up.
type PowerUpConfig struct {
	SpawnChance    int `yaml:"spawn_chance"` // Percent chance per destroyed brick
	FallSpeed      int `yaml:"fall_speed"`
	Size           int `yaml:"size"`
	WidenAmount    int `yaml:"widen_amount"`
	MaxPaddleWidth int `yaml:"max_paddle_width"`
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	// ReleaseAfterSeconds is how long an arrow key counts as held after its
	// last press or repeat. Terminals do not report key releases.
	ReleaseAfterSeconds float64 `yaml:"release_after_seconds"`
}

// GridWidth returns the total width of the brick grid.
func (b BrickConfig) GridWidth() int {
	if b.Cols <= 0 {
		return 0
	}
	return b.Cols*b.Width + (b.Cols-1)*b.GapX
}

// GridHeight returns the total height of the brick grid.
func (b BrickConfig) GridHeight() int {
	if b.Rows <= 0 {
		return 0
	}
	return b.Rows*b.Height + (b.Rows-1)*b.GapY
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %dx%d", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Speed <= 0 {
		errs = append(errs, fmt.Errorf("paddle speed must be positive, got %d", c.Paddle.Speed))
	}
	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle width %d exceeds field width %d", c.Paddle.Width, c.Field.Width))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball size must be positive, got %d", c.Ball.Size))
	}
	if c.Ball.SpeedX == 0 || c.Ball.SpeedY == 0 {
		errs = append(errs, errors.New("ball speed components must be non-zero"))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("brick grid must have rows and cols, got %dx%d", c.Bricks.Rows, c.Bricks.Cols))
	}
	if c.Bricks.GapX <= 0 || c.Bricks.GapY <= 0 {
		errs = append(errs, errors.New("brick gaps must be positive so bricks never touch"))
	}
	if c.Bricks.GridWidth() > c.Field.Width {
		errs = append(errs, fmt.Errorf("brick grid width %d exceeds field width %d", c.Bricks.GridWidth(), c.Field.Width))
	}
	if c.Bricks.Top+c.Bricks.GridHeight() >= c.Field.Height-c.Paddle.BottomOffset {
		errs = append(errs, errors.New("brick grid overlaps the paddle row"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.MinAnswerTime <= 0 {
		errs = append(errs, fmt.Errorf("min answer time must be positive, got %g", c.Gameplay.MinAnswerTime))
	}
	if c.Gameplay.AnswerTime < c.Gameplay.MinAnswerTime {
		errs = append(errs, fmt.Errorf("answer time %g is below the minimum %g", c.Gameplay.AnswerTime, c.Gameplay.MinAnswerTime))
	}
	if c.Gameplay.MaxOperand < 1 {
		errs = append(errs, fmt.Errorf("max operand must be at least 1, got %d", c.Gameplay.MaxOperand))
	}
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 100 {
		errs = append(errs, fmt.Errorf("power-up spawn chance must be 0-100, got %d", c.PowerUps.SpawnChance))
	}
	if c.PowerUps.FallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("power-up fall speed must be positive, got %d", c.PowerUps.FallSpeed))
	}
	if c.PowerUps.Size <= 0 {
		errs = append(errs, fmt.Errorf("power-up size must be positive, got %d", c.PowerUps.Size))
	}
	if c.PowerUps.WidenAmount <= 0 {
		errs = append(errs, fmt.Errorf("power-up widen amount must be positive, got %d", c.PowerUps.WidenAmount))
	}
	if c.PowerUps.MaxPaddleWidth < c.Paddle.Width {
		errs = append(errs, fmt.Errorf("max paddle width %d is below the paddle width %d", c.PowerUps.MaxPaddleWidth, c.Paddle.Width))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
