package config

import (
	_ "embed"
)

//go:embed defaults/mathbreak.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/mathbreak.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomOffset: 50,
			Speed:        5,
		},
		Ball: BallConfig{
			Size:   20,
			SpeedX: 3,
			SpeedY: -3,
		},
		Bricks: BrickConfig{
			Rows:   5,
			Cols:   10,
			Width:  70,
			Height: 30,
			GapX:   8,
			GapY:   10,
			Top:    50,
		},
		Gameplay: GameplayConfig{
			Lives:              5,
			PointsPerAnswer:    100,
			AnswerTime:         15,
			AnswerTimeStep:     5,
			MinAnswerTime:      3,
			MaxOperand:         10,
			LevelBannerSeconds: 1.5,
			GameOverSeconds:    3,
		},
		PowerUps: PowerUpConfig{
			SpawnChance:    15,
			FallSpeed:      3,
			Size:           20,
			WidenAmount:    50,
			MaxPaddleWidth: 300,
		},
		Input: InputConfig{
			ReleaseAfterSeconds: 0.45,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
