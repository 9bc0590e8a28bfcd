// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play a game (default 4x4 to 2048)
//	t2048 play --menu        - Pick a board preset first
//	t2048 history            - Show finished games
//	t2048 config show        - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.t2048/config.yaml)
//	--seed <value>      - RNG seed for reproducible games
//	--db <path>         - Results database (default: ~/.t2048/results.db)
//	--log-file <path>   - Log file, "-" for stderr
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with the arrow keys, WASD or HJKL. Equal tiles merge
when they collide. Reach the target tile to win; fill the board with
no merges left and the game is over.

Available commands:
  play     - Play a game
  history  - Show finished games
  config   - Inspect configuration

Examples:
  t2048 play
  t2048 play --preset large
  t2048 play --rows 5 --cols 7 --target 4096
  t2048 play --menu
  t2048 history --limit 50`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file, "-" for stderr (overrides config)`)
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyGlobalFlags(&cfg, flagDBPath, flagLogFile, flagLogLevel)
	return cfg, nil
}

func applyGlobalFlags(cfg *config.Config, dbPath, logFile, logLevel string) {
	if dbPath != "" {
		cfg.Storage.DBPath = dbPath
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
}

// newLogger builds the file logger described by cfg.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	file := cfg.Log.File
	if file != logging.Stderr {
		file = config.ExpandHome(file)
	}
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		File:   file,
		Prefix: "t2048",
	})
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
