package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/quiz"
	"github.com/vovakirdan/mathbreak/internal/storage"
)

func TestLoadSummary(t *testing.T) {
	store, runID := openJournal(t)

	results := []quiz.Result{
		{Challenge: quiz.Challenge{A: 2, B: 3, Op: quiz.OpAdd, Result: 5}, Outcome: quiz.Correct, Given: "5", ElapsedTicks: 60, TickRate: 60},
		{Challenge: quiz.Challenge{A: 9, B: 4, Op: quiz.OpSub, Result: 5}, Outcome: quiz.Incorrect, Given: "4", ElapsedTicks: 180, TickRate: 60},
	}
	for _, r := range results {
		if _, err := store.SaveAnswer(storage.NewAnswerEntry(runID, 1, r)); err != nil {
			t.Fatalf("save answer: %v", err)
		}
	}

	out := Outcome{State: core.GameState{Score: 100, Level: 1, Lives: 4}}
	s, err := LoadSummary(store, runID, out)
	if err != nil {
		t.Fatalf("load summary: %v", err)
	}
	if s.Stats == nil || s.Stats.Answers != 2 || s.Stats.Correct != 1 {
		t.Fatalf("stats = %+v", s.Stats)
	}
	if len(s.Operators) != 2 {
		t.Fatalf("operators = %d, want 2", len(s.Operators))
	}
	if s.Run == nil || s.Run.Difficulty != "normal" {
		t.Fatalf("run = %+v", s.Run)
	}
	if len(s.Recent) != 2 || s.Recent[0].Operator != "sub" {
		t.Fatalf("recent = %+v, want sub answer first", s.Recent)
	}

	text := RenderSummary(s)
	for _, want := range []string{
		"GAME OVER", "Final score", "100", "50%", "2.0s", "+", "-",
		"normal (seed 1)", "Last answers", "✓ 2 + 3 = 5", "✗ 9 - 4 = 5 (you said 4)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestLoadSummaryUnknownRun(t *testing.T) {
	store, _ := openJournal(t)

	s, err := LoadSummary(store, "", Outcome{State: core.GameState{Level: 1}})
	if err != nil {
		t.Fatalf("load summary: %v", err)
	}
	if s.Run != nil || s.Stats != nil || len(s.Recent) != 0 {
		t.Errorf("summary for unknown run = %+v, want empty", s)
	}
}

func TestAnswerLine(t *testing.T) {
	tests := []struct {
		outcome string
		given   string
		want    string
	}{
		{"correct", "12", "✓ 3 × 4 = 12"},
		{"incorrect", "11", "✗ 3 × 4 = 12 (you said 11)"},
		{"timeout", "", "✗ 3 × 4 = 12 (time ran out)"},
	}
	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			e := storage.AnswerEntry{Question: "3 × 4 = ?", Expected: 12, Given: tt.given, Outcome: tt.outcome}
			if got := answerLine(e); !strings.Contains(got, tt.want) {
				t.Errorf("answerLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSummaryWithoutAnswers(t *testing.T) {
	s, err := LoadSummary(nil, "", Outcome{State: core.GameState{Level: 1}, Aborted: true})
	if err != nil {
		t.Fatalf("load summary: %v", err)
	}

	text := RenderSummary(s)
	if !strings.Contains(text, "GAME ABANDONED") {
		t.Error("expected abandoned title")
	}
	if !strings.Contains(text, "No questions answered.") {
		t.Error("expected empty notice")
	}
}

func TestStateLine(t *testing.T) {
	got := StateLine(core.GameState{Score: 700, Level: 3, Lives: 2})
	if want := "score=700 level=3 lives=2"; got != want {
		t.Errorf("StateLine = %q, want %q", got, want)
	}
}
