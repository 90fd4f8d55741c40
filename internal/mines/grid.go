package mines

import (
	"fmt"
	"io"
	"strings"
)

// MineValue is stored in [Cell.Value] for mined cells. Any other value is
// the number of mines among the cell's neighbors.
const MineValue int8 = -1

const (
	HiddenGlyph = '-'
	MineGlyph   = '@'
)

type CellStatus int8

const (
	Hidden CellStatus = iota
	Exposed
)

func (s CellStatus) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Exposed:
		return "exposed"
	default:
		return "!"
	}
}

type Cell struct {
	Value  int8
	Status CellStatus
}

func (c Cell) IsMine() bool {
	return c.Value == MineValue
}

func (c Cell) Glyph() rune {
	switch {
	case c.Status == Hidden:
		return HiddenGlyph
	case c.IsMine():
		return MineGlyph
	default:
		return rune('0' + c.Value)
	}
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Board is a square grid stored row by row.
type Board struct {
	size  int
	mines int
	cells []Cell
}

func newBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) Mines() int {
	return b.mines
}

// SafeCells is the number of cells that must be exposed to win.
func (b *Board) SafeCells() int {
	return len(b.cells) - b.mines
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.size && 0 <= col && col < b.size
}

func (b *Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b *Board) index(row, col int) int {
	return row*b.size + col
}

func (b *Board) point(i int) (row, col int) {
	return i / b.size, i % b.size
}

// Neighbors returns the in-bounds cells around row:col in row-major order.
func (b *Board) Neighbors(row, col int) []Point {
	points := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.InBounds(row+dr, col+dc) {
				points = append(points, Point{row + dr, col + dc})
			}
		}
	}
	return points
}

// openings lists the indices of all cells with no adjacent mines.
func (b *Board) openings() []int {
	var res []int
	for i, c := range b.cells {
		if c.Value == 0 {
			res = append(res, i)
		}
	}
	return res
}

func (b *Board) Render(w io.Writer) error {
	_, err := io.WriteString(w, b.String())
	return err
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.size {
		for col := range b.size {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(b.cells[b.index(row, col)].Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
