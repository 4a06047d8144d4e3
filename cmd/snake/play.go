package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/input"
	"github.com/vovakirdan/termsnake/internal/platform/keymap"
	"github.com/vovakirdan/termsnake/internal/platform/term"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
	"github.com/vovakirdan/termsnake/internal/render"
	"github.com/vovakirdan/termsnake/internal/session"
	"github.com/vovakirdan/termsnake/internal/snake"
)

const (
	uiTea = "tea"
	uiRaw = "raw"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game sized to the current terminal.

Controls:
  A          - Turn left
  D          - Turn right
  W          - Keep going
  Arrows     - Head up, down, left or right
  Esc/Q      - Quit

The snake moves one cell every half second. Hold or tap a key at any time
during the tick; the strongest key pressed wins.

Examples:
  snake play
  snake play --seed 42
  snake play --ui raw --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	out, err := play()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if out.GameOver() {
		fmt.Println("GAME OVER")
		fmt.Printf("Score: %d\n", out.Score)
	}
}

// play sets up one session on the chosen backend and runs it to the end.
func play() (session.Outcome, error) {
	if flagUI != uiTea && flagUI != uiRaw {
		return session.Outcome{}, fmt.Errorf("unknown --ui %q (want %s or %s)", flagUI, uiTea, uiRaw)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return session.Outcome{}, err
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return session.Outcome{}, err
	}

	reserved := 0
	if flagUI == uiTea {
		reserved = tui.ChromeRows
	}
	grid, err := term.GridFromTerminal(int(os.Stdout.Fd()), cfg.Grid, reserved)
	if err != nil {
		return session.Outcome{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("config loaded", "grid", grid, "seed", seed, "ui", flagUI)

	rc := cfg.Runtime(grid, seed)
	game, err := snake.New(rc)
	if err != nil {
		return session.Outcome{}, err
	}

	tracker := input.NewTracker(cfg.Timing.KeyHold)
	keys := keymap.Default()

	if flagUI == uiRaw {
		return playRaw(rc, cfg.Grid.CellWidth, game, tracker, keys, logger)
	}
	return playTea(rc, cfg.Grid.CellWidth, game, tracker, keys, logger)
}

func playTea(rc core.RuntimeConfig, cellWidth int, game *snake.Game, tracker *input.Tracker, keys keymap.KeyMap, logger *log.Logger) (session.Outcome, error) {
	sampler, err := input.FromConfig(tracker, rc)
	if err != nil {
		return session.Outcome{}, err
	}

	styles := render.NewLipglossStyles(lipgloss.DefaultRenderer(), cellWidth)
	s := session.New(game, sampler, render.New(styles), logger)
	return tui.Run(s, tracker, keys)
}

func playRaw(rc core.RuntimeConfig, cellWidth int, game *snake.Game, tracker *input.Tracker, keys keymap.KeyMap, logger *log.Logger) (session.Outcome, error) {
	terminal, err := term.MakeRaw(os.Stdin)
	if err != nil {
		return session.Outcome{}, fmt.Errorf("raw mode: %w", err)
	}
	defer func() {
		//nolint:errcheck // Best-effort restore, nothing else to do on failure
		terminal.Restore()
	}()

	kb, err := term.NewKeyboard(os.Stdin, os.Getenv("TERM"), tracker, keys)
	if err != nil {
		return session.Outcome{}, fmt.Errorf("keyboard: %w", err)
	}
	kb.Start()
	defer kb.Stop()

	sampler, err := input.FromConfig(kb, rc)
	if err != nil {
		return session.Outcome{}, err
	}

	display := term.NewDisplay(os.Stdout)
	defer func() {
		//nolint:errcheck // Best-effort cursor restore
		display.Close()
	}()

	s := session.New(game, sampler, render.New(render.NewANSIStyles(cellWidth)), logger)
	return s.Run(display)
}
