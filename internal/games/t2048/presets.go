// Package t2048 implements the 2048 sliding-tile puzzle: the board, the
// slide-and-merge move engine and the session lifecycle.
package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by LookupPreset for an unregistered name.
var ErrUnknownPreset = errors.New("t2048: unknown preset")

// Preset is a named board size and target.
type Preset struct {
	Name   string
	Title  string
	Rows   int
	Cols   int
	Target int
}

// Presets lists the built-in presets, smallest first.
// Larger boards get higher targets so a game lasts about as long.
var Presets = []Preset{
	{Name: "quick", Title: "Quick (4x4 to 512)", Rows: 4, Cols: 4, Target: 512},
	{Name: "classic", Title: "Classic (4x4 to 2048)", Rows: 4, Cols: 4, Target: 2048},
	{Name: "wide", Title: "Wide (4x6 to 4096)", Rows: 4, Cols: 6, Target: 4096},
	{Name: "large", Title: "Large (6x6 to 8192)", Rows: 6, Cols: 6, Target: 8192},
	{Name: "huge", Title: "Huge (8x8 to 65536)", Rows: 8, Cols: 8, Target: 65536},
}

// LookupPreset returns the preset with the given name (case-insensitive).
func LookupPreset(name string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q (have %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
}

// PresetNames returns the names of all presets.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// Apply copies the preset's size and target into cfg.
// A zero Target keeps the target already in cfg.
func (p Preset) Apply(cfg SessionConfig) SessionConfig {
	cfg.Rows = p.Rows
	cfg.Cols = p.Cols
	if p.Target > 0 {
		cfg.WinTarget = p.Target
	}
	return cfg
}
