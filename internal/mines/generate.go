package mines

import (
	"fmt"
	"math/rand/v2"
)

// MaxSize bounds the board edge so that a typo on the command line cannot
// allocate an enormous grid.
const MaxSize = 1024

type GameParams struct {
	Size, MineCount int
}

func (p GameParams) Unpack() (size int, mineCount int) {
	return p.Size, p.MineCount
}

// GameParams implements [fmt.Stringer]
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Size, p.Size, p.MineCount)
}

func (p GameParams) Validate() error {
	size, mineCount := p.Unpack()
	switch {
	case size <= 0:
		return fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidParams, size)
	case size > MaxSize:
		return fmt.Errorf("%w: board size must be at most %d, got %d", ErrInvalidParams, MaxSize, size)
	case mineCount < 0:
		return fmt.Errorf("%w: mine count must not be negative, got %d", ErrInvalidParams, mineCount)
	case mineCount >= size*size:
		return fmt.Errorf(
			"%w: mine count must be less than %d for a %dx%d board, got %d",
			ErrInvalidParams, size*size, size, size, mineCount,
		)
	}
	return nil
}

// Place builds a board with p.MineCount mines at uniformly random cells.
func Place(p GameParams, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(p.Size)

	/*
	 * Write down every cell as a candidate, then draw mines off the
	 * list, moving the last live candidate into the drawn slot.
	 */
	candidates := make([]int, len(b.cells))
	for i := range candidates {
		candidates[i] = i
	}
	k := len(candidates)
	for range p.MineCount {
		i := r.IntN(k)
		b.placeMine(candidates[i])
		k--
		candidates[i] = candidates[k]
	}

	return b, nil
}

// PlaceMines builds a board with mines at exactly the given points.
func PlaceMines(size int, mines []Point) (*Board, error) {
	p := GameParams{Size: size, MineCount: len(mines)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := newBoard(size)
	for _, m := range mines {
		if !b.InBounds(m.Row, m.Col) {
			return nil, fmt.Errorf("%w: mine %s outside %dx%d board", ErrInvalidParams, m, size, size)
		}
		i := b.index(m.Row, m.Col)
		if b.cells[i].IsMine() {
			return nil, fmt.Errorf("%w: duplicate mine %s", ErrInvalidParams, m)
		}
		b.placeMine(i)
	}
	return b, nil
}

func (b *Board) placeMine(i int) {
	if b.cells[i].IsMine() {
		panic(AssertionError{"mine placed twice"})
	}
	b.cells[i].Value = MineValue
	b.mines++
	row, col := b.point(i)
	for _, n := range b.Neighbors(row, col) {
		c := &b.cells[b.index(n.Row, n.Col)]
		if !c.IsMine() {
			c.Value++
		}
	}
}
