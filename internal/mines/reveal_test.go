package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exposedPoints(b *Board) map[Point]bool {
	res := make(map[Point]bool)
	for i, c := range b.cells {
		if c.Status == Exposed {
			row, col := b.point(i)
			res[Point{row, col}] = true
		}
	}
	return res
}

// expectedRegion walks the empty region containing start the slow way.
func expectedRegion(b *Board, start Point) map[Point]bool {
	res := map[Point]bool{start: true}
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if b.At(p.Row, p.Col).Value != 0 {
			continue
		}
		for _, n := range b.Neighbors(p.Row, p.Col) {
			if !res[n] {
				res[n] = true
				queue = append(queue, n)
			}
		}
	}
	return res
}

func TestRevealCornerNextToMine(t *testing.T) {
	for _, corner := range []Point{{0, 0}, {0, 2}, {2, 0}, {2, 2}} {
		b, err := PlaceMines(3, []Point{{1, 1}})
		require.NoError(t, err)
		assert.Equal(t, Outcome{Kind: RevealExposed, Count: 1}, b.Reveal(corner.Row, corner.Col))
		assert.Len(t, exposedPoints(b), 1)
	}
}

func TestRevealCascadeClearsBoard(t *testing.T) {
	b, err := PlaceMines(4, []Point{{0, 3}})
	require.NoError(t, err)

	res := b.Reveal(3, 0)
	assert.Equal(t, Outcome{Kind: RevealExposed, Count: 15}, res)
	assert.Equal(t, Hidden, b.At(0, 3).Status)
	assert.Equal(t, "0 0 1 -\n0 0 1 1\n0 0 0 0\n0 0 0 0\n", b.String())
}

func TestRevealCascadeStopsAtNumbers(t *testing.T) {
	wall := []Point{{2, 0}, {2, 1}, {2, 2}, {2, 3}, {2, 4}}
	b, err := PlaceMines(5, wall)
	require.NoError(t, err)

	res := b.Reveal(0, 0)
	assert.Equal(t, Outcome{Kind: RevealExposed, Count: 10}, res)
	for col := range 5 {
		assert.Equal(t, Exposed, b.At(0, col).Status)
		assert.Equal(t, Exposed, b.At(1, col).Status)
		for row := 2; row < 5; row++ {
			assert.Equal(t, Hidden, b.At(row, col).Status)
		}
	}
}

func TestRevealMine(t *testing.T) {
	b, err := PlaceMines(3, []Point{{1, 1}})
	require.NoError(t, err)

	assert.Equal(t, Outcome{Kind: RevealMineHit}, b.Reveal(1, 1))
	assert.Equal(t, Exposed, b.At(1, 1).Status)
	assert.Len(t, exposedPoints(b), 1)
}

func TestRevealAlreadyExposed(t *testing.T) {
	b, err := PlaceMines(5, []Point{{4, 4}})
	require.NoError(t, err)

	first := b.Reveal(0, 0)
	require.Equal(t, RevealExposed, first.Kind)
	before := b.String()

	for _, p := range []Point{{0, 0}, {1, 1}, {3, 3}} {
		assert.Equal(t, Outcome{Kind: RevealAlreadyExposed}, b.Reveal(p.Row, p.Col))
	}
	assert.Equal(t, before, b.String())
}

func TestRevealOutsideBoardPanics(t *testing.T) {
	b := newBoard(2)
	assert.Panics(t, func() { b.Reveal(2, 0) })
	assert.Panics(t, func() { b.Reveal(0, -1) })
}

// Random boards, random clicks: exposure never reverses, cascades cover
// exactly the empty region, and counts add up.
func TestRevealRandomBoards(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(3, 4))
	for _, params := range []GameParams{
		{Size: 5, MineCount: 3},
		{Size: 9, MineCount: 10},
		{Size: 16, MineCount: 40},
		{Size: 20, MineCount: 120},
	} {
		t.Run(params.String(), func(t *testing.T) {
			for range 10 {
				b, err := Place(params, r)
				require.NoError(t, err)

				total := 0
				for range params.Size * params.Size {
					row, col := r.IntN(params.Size), r.IntN(params.Size)
					if b.At(row, col).IsMine() {
						continue
					}
					before := exposedPoints(b)
					wasHidden := b.At(row, col).Status == Hidden

					res := b.Reveal(row, col)
					after := exposedPoints(b)

					for p := range before {
						assert.True(t, after[p], "cell %s was hidden again", p)
					}
					if !wasHidden {
						assert.Equal(t, Outcome{Kind: RevealAlreadyExposed}, res)
						continue
					}
					require.Equal(t, RevealExposed, res.Kind)
					assert.Equal(t, len(after)-len(before), res.Count)
					total += res.Count

					if b.At(row, col).Value == 0 {
						for p := range expectedRegion(b, Point{row, col}) {
							assert.True(t, after[p], "cell %s not exposed", p)
						}
					}
					for p := range after {
						assert.False(t, b.At(p.Row, p.Col).IsMine(), "mine %s exposed", p)
					}
				}
				assert.Equal(t, len(exposedPoints(b)), total)
			}
		})
	}
}
