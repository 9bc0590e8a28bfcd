// Package config provides YAML-based configuration loading for the 2048
// game: board size, win target, spawn odds, presets, storage and logging.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// Config contains all configuration for t2048.
type Config struct {
	Board            BoardConfig             `yaml:"board"`
	StartTiles       int                     `yaml:"start_tiles"`
	WinTarget        int                     `yaml:"win_target"`
	SpawnFourPercent int                     `yaml:"spawn_four_percent"`
	Presets          map[string]PresetConfig `yaml:"presets,omitempty"`
	Storage          StorageConfig           `yaml:"storage"`
	Log              LogConfig               `yaml:"log"`
}

// BoardConfig defines the grid dimensions. Values outside 4..12 are clamped
// when the board is built.
type BoardConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// PresetConfig is a user-defined preset. It overrides a built-in preset
// of the same name.
type PresetConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Target  int `yaml:"target"`
}

// StorageConfig defines where finished games are recorded.
type StorageConfig struct {
	DBPath string `yaml:"db_path"` // "~" expands to the home directory
}

// LogConfig defines the log level and destination file.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// SessionConfig converts the config into session parameters.
func (c Config) SessionConfig() t2048.SessionConfig {
	return t2048.SessionConfig{
		Rows:             c.Board.Rows,
		Cols:             c.Board.Columns,
		StartTiles:       c.StartTiles,
		WinTarget:        c.WinTarget,
		SpawnFourPercent: c.SpawnFourPercent,
	}
}

// ApplyPreset overwrites board size and target with the named preset.
// User presets from the config file take precedence over built-in ones.
func ApplyPreset(cfg *Config, name string) error {
	p, ok := cfg.Presets[name]
	preset := t2048.Preset{Name: name, Rows: p.Rows, Cols: p.Columns, Target: p.Target}
	if !ok {
		var err error
		if preset, err = t2048.LookupPreset(name); err != nil {
			return err
		}
	}

	sc := preset.Apply(cfg.SessionConfig())
	cfg.Board.Rows = sc.Rows
	cfg.Board.Columns = sc.Cols
	cfg.WinTarget = sc.WinTarget
	return nil
}

// PresetNames lists built-in presets followed by user presets not
// shadowing a built-in name.
func (c Config) PresetNames() []string {
	names := t2048.PresetNames()
	for name := range c.Presets {
		if _, err := t2048.LookupPreset(name); err != nil {
			names = append(names, name)
		}
	}
	return names
}

// Validate reports settings that will be adjusted at runtime. None of
// them are fatal.
func (c Config) Validate() []string {
	var warnings []string

	if r, cols := c.Board.Rows, c.Board.Columns; r < t2048.MinSize || r > t2048.MaxSize ||
		cols < t2048.MinSize || cols > t2048.MaxSize {
		warnings = append(warnings, fmt.Sprintf("board %dx%d will be clamped to %d..%d", r, cols, t2048.MinSize, t2048.MaxSize))
	}
	if t := c.WinTarget; t > 0 && t&(t-1) != 0 {
		warnings = append(warnings, fmt.Sprintf("win_target %d is not a power of two and can never be reached", t))
	}
	if p := c.SpawnFourPercent; p < 0 || p > 100 {
		warnings = append(warnings, fmt.Sprintf("spawn_four_percent %d will be clamped to 0..100", p))
	}
	if c.StartTiles > c.Board.Rows*c.Board.Columns && c.Board.Rows > 0 {
		warnings = append(warnings, fmt.Sprintf("start_tiles %d exceeds the number of cells", c.StartTiles))
	}
	for name, p := range c.Presets {
		if p.Target > 0 && p.Target&(p.Target-1) != 0 {
			warnings = append(warnings, fmt.Sprintf("preset %s: target %d is not a power of two", name, p.Target))
		}
	}
	return warnings
}
