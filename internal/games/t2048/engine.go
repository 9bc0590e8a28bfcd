package t2048

import (
	"fmt"
	"slices"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move direction.
var Directions = []Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "UP" to a Direction.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// horizontal reports whether the move operates on rows.
func (d Direction) horizontal() bool {
	return d == DirLeft || d == DirRight
}

// towardEnd reports whether the merge edge is the high-index end of a line.
func (d Direction) towardEnd() bool {
	return d == DirRight || d == DirDown
}

const (
	// DefaultWinTarget is the tile value that wins the game.
	DefaultWinTarget = 2048
	// DefaultSpawnFourPercent is the chance, in percent, that a spawn is a 4.
	DefaultSpawnFourPercent = 10
)

// Reduce slides and merges one line toward index 0.
// It returns a new line and whether anything moved; line is not modified.
//
// A tile that was produced by a merge in this pass cannot merge again, so
// [4 4 4] reduces to [8 4 0].
func Reduce(line []int) (out []int, changed bool) {
	out = slices.Clone(line)
	lastMerge := -1

	for i := 1; i < len(out); i++ {
		if out[i] == 0 {
			continue
		}

		pos := i
		for pos > 0 && out[pos-1] == 0 {
			out[pos-1] = out[pos]
			out[pos] = 0
			pos--
			changed = true
		}

		if pos > 0 && out[pos-1] == out[pos] && lastMerge != pos-1 {
			out[pos-1] *= 2
			out[pos] = 0
			lastMerge = pos - 1
			changed = true
		}
	}

	return out, changed
}

// Move slides every line of the board in the given direction.
// Only lines that changed are written back. Returns true iff the board changed.
func Move(b *Board, dir Direction) bool {
	moved := false

	count := b.cols
	if dir.horizontal() {
		count = b.rows
	}

	for i := range count {
		var line []int
		if dir.horizontal() {
			line = b.rowValues(i)
		} else {
			line = b.columnValues(i)
		}

		if dir.towardEnd() {
			slices.Reverse(line)
		}

		reduced, changed := Reduce(line)
		if !changed {
			continue
		}

		if dir.towardEnd() {
			slices.Reverse(reduced)
		}

		if dir.horizontal() {
			b.setRowValues(i, reduced)
		} else {
			b.setColumnValues(i, reduced)
		}
		moved = true
	}

	return moved
}

// SpawnRandomCells places count new tiles on random empty cells.
// Each tile is a 4 with probability fourPercent/100, otherwise a 2.
// Empty cells are recomputed per tile so one batch never reuses a cell;
// when the board is full the remaining spawns are skipped.
// Returns the cells that were written.
func SpawnRandomCells(b *Board, rng Random, count, fourPercent int) []Cell {
	var spawned []Cell

	for range count {
		empty := b.EmptyCells()
		if len(empty) == 0 {
			continue
		}

		cell := empty[rng.Intn(len(empty))]
		cell.Value = 2
		if rng.Intn(100) < fourPercent {
			cell.Value = 4
		}

		b.cells[b.index(cell.Row, cell.Col)] = cell.Value
		spawned = append(spawned, cell)
	}

	return spawned
}

// IsWon returns true if any cell holds exactly target.
func IsWon(b *Board, target int) bool {
	return slices.Contains(b.cells, target)
}

// IsLost returns true when the board is full and no two orthogonally
// adjacent cells are equal.
func IsLost(b *Board) bool {
	return !CanMove(b)
}

// CanMove returns true if at least one direction would change the board.
// Each cell is compared with its right and below neighbours, which covers
// every adjacent pair once.
func CanMove(b *Board) bool {
	for r := range b.rows {
		for c := range b.cols {
			val := b.at(r, c)
			if val == 0 {
				return true
			}
			if c+1 < b.cols && b.at(r, c+1) == val {
				return true
			}
			if r+1 < b.rows && b.at(r+1, c) == val {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b *Board) int {
	return slices.Max(b.cells)
}
