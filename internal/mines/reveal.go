package mines

import "fmt"

type OutcomeKind int8

const (
	RevealAlreadyExposed OutcomeKind = iota
	RevealExposed
	RevealMineHit
)

func (k OutcomeKind) String() string {
	switch k {
	case RevealAlreadyExposed:
		return "already exposed"
	case RevealExposed:
		return "exposed"
	case RevealMineHit:
		return "mine hit"
	default:
		return "!"
	}
}

// Outcome reports what a single reveal did. Count is the number of cells
// that went from hidden to exposed and is zero unless Kind is
// [RevealExposed].
type Outcome struct {
	Kind  OutcomeKind
	Count int
}

// Outcome implements [fmt.Stringer]
func (o Outcome) String() string {
	if o.Kind == RevealExposed {
		return fmt.Sprintf("%s(%d)", o.Kind, o.Count)
	}
	return o.Kind.String()
}

// Reveal exposes row:col. A cell without adjacent mines also exposes all
// its neighbors, and so on through the connected empty region.
//
// panics [AssertionError] when row:col is outside the board
func (b *Board) Reveal(row, col int) Outcome {
	if !b.InBounds(row, col) {
		panic(AssertionError{fmt.Sprintf("reveal outside board: %d:%d", row, col)})
	}
	start := b.index(row, col)
	switch {
	case b.cells[start].Status == Exposed:
		return Outcome{Kind: RevealAlreadyExposed}
	case b.cells[start].IsMine():
		b.cells[start].Status = Exposed
		return Outcome{Kind: RevealMineHit}
	}

	count := 0
	todo := []int{start}
	for len(todo) > 0 {
		i := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		c := &b.cells[i]
		if c.Status == Exposed {
			continue
		}
		c.Status = Exposed
		count++
		if c.Value != 0 {
			continue
		}

		/* an empty cell never borders a mine, so nothing pushed here can explode */
		r, cc := b.point(i)
		for _, n := range b.Neighbors(r, cc) {
			j := b.index(n.Row, n.Col)
			if b.cells[j].Status == Hidden {
				todo = append(todo, j)
			}
		}
	}

	return Outcome{Kind: RevealExposed, Count: count}
}
