package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathbreak/internal/config"
	"github.com/vovakirdan/mathbreak/internal/core"
	"github.com/vovakirdan/mathbreak/internal/games/mathbreak"
	"github.com/vovakirdan/mathbreak/internal/platform/tui"
	"github.com/vovakirdan/mathbreak/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Math Breakout.

Controls:
  Left/Right  - Move the paddle
  0-9, -      - Type an answer
  Backspace   - Erase
  Enter       - Submit the answer
  Esc/Ctrl+C  - Quit

Difficulty options:
  easy   - More lives, more time, smaller numbers
  normal - Values from the config as they are
  hard   - Fewer lives, less time, bigger numbers

Examples:
  mathbreak play
  mathbreak play --difficulty hard
  mathbreak play --seed 7 --fps 30
  mathbreak play --config ./my-mathbreak.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Info("config loaded", "source", source, "difficulty", preset)

	runtime := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	if flagFPS > 0 {
		runtime.TickRate = flagFPS
	}
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	// The journal lives only for this process
	journal, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("answer journal disabled", "error", err)
		journal = nil
	}
	journal, runID := startRun(journal, runtime.Seed, string(preset), logger)
	if journal != nil {
		defer journal.Close()
	}

	game := mathbreak.New(cfg)
	outcome, err := tui.Run(game, tui.Options{
		Journal:      journal,
		RunID:        runID,
		Logger:       logger,
		ReleaseAfter: cfg.Input.ReleaseAfterSeconds,
	}, runtime)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	finishRun(journal, runID, outcome, logger)

	summary, err := tui.LoadSummary(journal, runID, outcome)
	if err != nil {
		logger.Warn("could not load run statistics", "error", err)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(tui.RenderSummary(summary))
	} else {
		fmt.Println(tui.StateLine(outcome.State))
	}
	return nil
}

// startRun begins a run in the journal. A journal that cannot record the run
// is closed and dropped, so answers never land under an empty run ID.
func startRun(journal *storage.Store, seed int64, difficulty string, logger *log.Logger) (*storage.Store, string) {
	if journal == nil {
		return nil, ""
	}
	runID, err := journal.StartRun(seed, difficulty)
	if err != nil {
		logger.Warn("answer journal disabled", "error", err)
		journal.Close()
		return nil, ""
	}
	return journal, runID
}

// finishRun records how the run ended. A quit before game over is stored as
// aborted.
func finishRun(journal *storage.Store, runID string, outcome tui.Outcome, logger *log.Logger) {
	if journal == nil {
		return
	}
	if err := journal.FinishRun(runID, outcome.State.Score, outcome.State.Level, outcome.Aborted); err != nil {
		logger.Warn("could not finish run", "error", err)
	}
}

// newLogger builds the process logger. With a log file everything down to
// debug goes there; otherwise only warnings reach stderr so the game screen
// stays clean.
func newLogger(path string) (*log.Logger, func(), error) {
	var (
		w     io.Writer = os.Stderr
		level           = log.WarnLevel
		done            = func() {}
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		level = log.DebugLevel
		done = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathbreak",
		Level:           level,
	})
	return logger, done, nil
}
