package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	if got, want := Embedded(), DefaultConfig(); got != want {
		t.Errorf("embedded YAML drifted from DefaultConfig:\n got  %+v\n want %+v", got, want)
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultGridFitsField(t *testing.T) {
	cfg := DefaultConfig()
	if w := cfg.Bricks.GridWidth(); w != 772 {
		t.Errorf("GridWidth() = %d, expected 772", w)
	}
	if h := cfg.Bricks.GridHeight(); h != 190 {
		t.Errorf("GridHeight() = %d, expected 190", h)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero field", func(c *Config) { c.Field.Width = 0 }, "field size"},
		{"wide paddle", func(c *Config) { c.Paddle.Width = 900 }, "paddle width"},
		{"still ball", func(c *Config) { c.Ball.SpeedX = 0 }, "ball speed"},
		{"touching bricks", func(c *Config) { c.Bricks.GapX = 0 }, "brick gaps"},
		{"grid too wide", func(c *Config) { c.Bricks.Cols = 20 }, "grid width"},
		{"grid too tall", func(c *Config) { c.Bricks.Rows = 20 }, "paddle row"},
		{"no lives", func(c *Config) { c.Gameplay.Lives = 0 }, "lives"},
		{"short answer time", func(c *Config) { c.Gameplay.AnswerTime = 1 }, "below the minimum"},
		{"bad chance", func(c *Config) { c.PowerUps.SpawnChance = 101 }, "spawn chance"},
		{"still paddle", func(c *Config) { c.Paddle.Speed = 0 }, "paddle speed"},
		{"floating power-ups", func(c *Config) { c.PowerUps.FallSpeed = 0 }, "fall speed"},
		{"rising power-ups", func(c *Config) { c.PowerUps.FallSpeed = -3 }, "fall speed"},
		{"empty power-up", func(c *Config) { c.PowerUps.Size = 0 }, "power-up size"},
		{"no widening", func(c *Config) { c.PowerUps.WidenAmount = 0 }, "widen amount"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "gameplay:\n  lives: 9\n  answer_time: 20\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Gameplay.Lives != 9 || cfg.Gameplay.AnswerTime != 20 {
		t.Errorf("overrides not applied: %+v", cfg.Gameplay)
	}
	if cfg.Paddle.Width != 100 || cfg.Gameplay.PointsPerAnswer != 100 {
		t.Errorf("unset keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	floating := filepath.Join(dir, "floating.yaml")
	if err := os.WriteFile(floating, []byte("powerups:\n  fall_speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(floating); err == nil {
		t.Error("expected error for power-ups that never fall")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("gameplay:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestPresetsParse(t *testing.T) {
	for _, p := range Presets {
		got, err := ParsePreset(strings.ToUpper(string(p)))
		if err != nil || got != p {
			t.Errorf("ParsePreset(%q) = %q, %v", p, got, err)
		}
	}
	if got := PresetNames(); got != "easy, normal, hard" {
		t.Errorf("PresetNames() = %q", got)
	}
	if _, err := ParsePreset("insane"); err == nil || !strings.Contains(err.Error(), PresetNames()) {
		t.Errorf("unknown preset error = %v, expected it to list the presets", err)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		lives      int
		answerTime float64
		maxOperand int
	}{
		{DifficultyEasy, 7, 20, 5},
		{DifficultyNormal, 5, 15, 10},
		{DifficultyHard, 3, 10, 15},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Gameplay.AnswerTime != tc.answerTime {
				t.Errorf("AnswerTime = %g, expected %g", cfg.Gameplay.AnswerTime, tc.answerTime)
			}
			if cfg.Gameplay.MaxOperand != tc.maxOperand {
				t.Errorf("MaxOperand = %d, expected %d", cfg.Gameplay.MaxOperand, tc.maxOperand)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}
