package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows:    4,
			Columns: 4,
		},
		StartTiles:       2,
		WinTarget:        t2048.DefaultWinTarget,
		SpawnFourPercent: t2048.DefaultSpawnFourPercent,
		Storage: StorageConfig{
			DBPath: "~/.t2048/results.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
