package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Board dimension limits. Requested sizes outside this range are clamped.
const (
	MinSize = 4
	MaxSize = 12
)

var (
	// ErrOutOfBounds is returned for a row or column index outside the board.
	ErrOutOfBounds = errors.New("t2048: coordinate out of bounds")
	// ErrLineLength is returned when a written row/column has the wrong length.
	ErrLineLength = errors.New("t2048: line length does not match board dimension")
)

// Cell is a snapshot of one board position. Coordinates are derived from
// the position in the grid; a Cell is never a handle into the board.
type Cell struct {
	Row   int
	Col   int
	Value int
}

// Board is a rows x cols grid of tile values. Zero means empty.
// Cells are stored row-major in a single slice.
type Board struct {
	rows  int
	cols  int
	cells []int
}

// NewBoard creates an empty board. Dimensions are clamped into
// [MinSize, MaxSize].
func NewBoard(rows, cols int) *Board {
	rows = core.Clamp(rows, MinSize, MaxSize)
	cols = core.Clamp(cols, MinSize, MaxSize)
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]int, rows*cols),
	}
}

// NewBoardFromValues builds a board from a grid of values. The board is
// sized like NewBoard(len(values), longest row) so short fixtures are padded
// with empty cells.
func NewBoardFromValues(values [][]int) (*Board, error) {
	cols := 0
	for _, row := range values {
		cols = core.Max(cols, len(row))
	}

	b := NewBoard(len(values), cols)
	for r, row := range values {
		for c, v := range row {
			if err := b.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

// at reads a cell without bounds checking.
func (b *Board) at(row, col int) int {
	return b.cells[b.index(row, col)]
}

// Get returns the value at (row, col).
func (b *Board) Get(row, col int) (int, error) {
	if !b.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	return b.at(row, col), nil
}

// Set stores value at (row, col).
func (b *Board) Set(row, col, value int) error {
	if !b.inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols)
	}
	b.cells[b.index(row, col)] = value
	return nil
}

// RowValues returns a copy of the values in row.
func (b *Board) RowValues(row int) ([]int, error) {
	if row < 0 || row >= b.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, row, b.rows)
	}
	return b.rowValues(row), nil
}

func (b *Board) rowValues(row int) []int {
	start := b.index(row, 0)
	line := make([]int, b.cols)
	copy(line, b.cells[start:start+b.cols])
	return line
}

// ColumnValues returns a copy of the values in col, top to bottom.
func (b *Board) ColumnValues(col int) ([]int, error) {
	if col < 0 || col >= b.cols {
		return nil, fmt.Errorf("%w: column %d of %d", ErrOutOfBounds, col, b.cols)
	}
	return b.columnValues(col), nil
}

func (b *Board) columnValues(col int) []int {
	line := make([]int, b.rows)
	for r := range b.rows {
		line[r] = b.at(r, col)
	}
	return line
}

// SetRowValues overwrites row with values. Nothing is written on error.
func (b *Board) SetRowValues(row int, values []int) error {
	if row < 0 || row >= b.rows {
		return fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, row, b.rows)
	}
	if len(values) != b.cols {
		return fmt.Errorf("%w: got %d values for %d columns", ErrLineLength, len(values), b.cols)
	}
	b.setRowValues(row, values)
	return nil
}

func (b *Board) setRowValues(row int, values []int) {
	copy(b.cells[b.index(row, 0):], values)
}

// SetColumnValues overwrites col with values, top to bottom.
// Nothing is written on error.
func (b *Board) SetColumnValues(col int, values []int) error {
	if col < 0 || col >= b.cols {
		return fmt.Errorf("%w: column %d of %d", ErrOutOfBounds, col, b.cols)
	}
	if len(values) != b.rows {
		return fmt.Errorf("%w: got %d values for %d rows", ErrLineLength, len(values), b.rows)
	}
	b.setColumnValues(col, values)
	return nil
}

func (b *Board) setColumnValues(col int, values []int) {
	for r, v := range values {
		b.cells[b.index(r, col)] = v
	}
}

// EmptyCells returns all zero-valued cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	empty := make([]Cell, 0, len(b.cells))
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, Cell{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return empty
}

// Values returns a deep copy of the grid as rows of values.
func (b *Board) Values() [][]int {
	out := make([][]int, b.rows)
	for r := range b.rows {
		out[r] = b.rowValues(r)
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{rows: b.rows, cols: b.cols, cells: cells}
}

// Equal reports whether both boards have the same size and values.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}
