package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagPreset string
	flagRows   int
	flagCols   int
	flagTarget int
	flagMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - Play again (after a game ends)
  Esc               - Exit (after a game ends)
  Q/Ctrl+C          - Quit
  ?                 - Toggle help

Board sizes are clamped to 4..12 in each dimension.

Examples:
  t2048 play
  t2048 play --preset quick
  t2048 play --rows 6 --cols 6 --target 8192
  t2048 play --menu --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset: "+strings.Join(t2048.PresetNames(), ", "))
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (4-12)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (4-12)")
	playCmd.Flags().IntVar(&flagTarget, "target", 0, "Winning tile value")
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Choose a preset from a menu before playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := terminalSize()

	// Open result storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results database unavailable", "path", cfg.Storage.DBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	preset := flagPreset
	if flagMenu {
		sel, err := tui.RunSetupMenu(setupItems(cfg, store), width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User quit the menu
		if sel == nil {
			return
		}
		preset = sel.Name
	}

	overrides := boardFlags{
		Preset: preset,
		Rows:   flagRows,
		Cols:   flagCols,
		Target: flagTarget,
	}
	if err := applyBoardFlags(&cfg, overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, w := range cfg.Validate() {
		logger.Warn("config", "warning", w)
	}

	opts := []t2048.SessionOption{t2048.WithLogger(logger)}
	if store != nil {
		opts = append(opts, t2048.WithOnFinish(recordResult(store, logger)))
	}
	game := t2048.New(cfg.SessionConfig(), opts...)

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger.Info("starting game", "rows", cfg.Board.Rows, "cols", cfg.Board.Columns,
		"target", cfg.WinTarget, "seed", flagSeed)

	if err := tui.Run(game, rc, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// boardFlags are the board settings given on the command line.
// Zero values mean "not set".
type boardFlags struct {
	Preset string
	Rows   int
	Cols   int
	Target int
}

// applyBoardFlags applies the preset first so explicit sizes can refine it.
func applyBoardFlags(cfg *config.Config, f boardFlags) error {
	if f.Preset != "" {
		if err := config.ApplyPreset(cfg, f.Preset); err != nil {
			return err
		}
	}
	if f.Rows > 0 {
		cfg.Board.Rows = f.Rows
	}
	if f.Cols > 0 {
		cfg.Board.Columns = f.Cols
	}
	if f.Target > 0 {
		cfg.WinTarget = f.Target
	}
	return nil
}

// setupItems lists every preset with the best tile reached at its size.
func setupItems(cfg config.Config, store *storage.Store) []tui.SetupItem {
	names := cfg.PresetNames()
	items := make([]tui.SetupItem, 0, len(names))

	for _, name := range names {
		c := cfg
		if err := config.ApplyPreset(&c, name); err != nil {
			continue
		}

		title := fmt.Sprintf("%s (%dx%d to %d)", name, c.Board.Rows, c.Board.Columns, c.WinTarget)
		if _, custom := cfg.Presets[name]; !custom {
			if p, err := t2048.LookupPreset(name); err == nil {
				title = p.Title
			}
		}

		item := tui.SetupItem{Name: name, Title: title}
		if store != nil {
			rows := core.Clamp(c.Board.Rows, t2048.MinSize, t2048.MaxSize)
			cols := core.Clamp(c.Board.Columns, t2048.MinSize, t2048.MaxSize)
			if best, err := store.BestTile(rows, cols); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}
	return items
}

// recordResult saves every finished game. Failures are logged, never fatal.
func recordResult(store *storage.Store, logger *log.Logger) func(t2048.Summary) {
	return func(s t2048.Summary) {
		if err := store.SaveSummary(s); err != nil {
			logger.Warn("could not record result", "error", err)
			return
		}
		logger.Debug("result recorded", "outcome", s.Outcome, "max_tile", s.MaxTile)
	}
}
