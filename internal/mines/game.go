package mines

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

const maxPlacementAttempts = 100

type State int8

const (
	Setup State = iota
	FirstMove
	Playing
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case FirstMove:
		return "first move"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "!"
	}
}

func (s State) Over() bool {
	return s == Won || s == Lost
}

// CoordinateReader supplies the player's next move. Implementations keep
// asking until they get a point inside a size×size board, or fail.
type CoordinateReader interface {
	ReadCoordinate(ctx context.Context, size int) (Point, error)
}

// Session owns a single game from mine placement to win or loss.
type Session struct {
	params  GameParams
	board   *Board
	r       *rand.Rand
	state   State
	exposed int
}

// NewSession places mines for params. Placement is repeated when the
// board has no empty cell to open with; if that keeps happening the
// parameters are rejected with [ErrNoOpening].
func NewSession(params GameParams, r *rand.Rand) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	/*
	 * An empty cell needs itself and every neighbor free of mines.
	 * The smallest such neighborhood is a corner, four cells.
	 */
	size, mineCount := params.Unpack()
	if size > 1 && size*size-mineCount < 4 {
		return nil, fmt.Errorf("%w: %s", ErrNoOpening, params)
	}

	for attempt := 1; attempt <= maxPlacementAttempts; attempt++ {
		board, err := Place(params, r)
		if err != nil {
			return nil, err
		}
		if len(board.openings()) > 0 {
			Log.WithFields(logrus.Fields{
				"params":  params.String(),
				"attempt": attempt,
			}).Debug("mines placed")
			return &Session{params: params, board: board, r: r, state: FirstMove}, nil
		}
		Log.WithField("attempt", attempt).Debug("board has no opening, placing again")
	}

	return nil, fmt.Errorf("%w: %s after %d attempts", ErrNoOpening, params, maxPlacementAttempts)
}

// NewSessionWithBoard starts a session on an already placed board.
func NewSessionWithBoard(board *Board, r *rand.Rand) (*Session, error) {
	params := GameParams{Size: board.Size(), MineCount: board.Mines()}
	if len(board.openings()) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoOpening, params)
	}
	return &Session{params: params, board: board, r: r, state: FirstMove}, nil
}

func (s *Session) Params() GameParams {
	return s.params
}

func (s *Session) Board() *Board {
	return s.board
}

func (s *Session) State() State {
	return s.state
}

// Exposed is the number of safe cells exposed so far.
func (s *Session) Exposed() int {
	return s.exposed
}

func (s *Session) setState(state State) {
	Log.WithFields(logrus.Fields{
		"from":    s.state.String(),
		"to":      state.String(),
		"exposed": s.exposed,
	}).Debug("state changed")
	s.state = state
}

func (s *Session) cleared() bool {
	return s.exposed == s.board.SafeCells()
}

// Start makes the opening move on a random empty cell, which can never be
// a mine and always cascades.
func (s *Session) Start() (Outcome, error) {
	if s.state != FirstMove {
		return Outcome{}, fmt.Errorf("%w: state is %s", ErrAlreadyStarted, s.state)
	}

	openings := s.board.openings()
	if len(openings) == 0 {
		return Outcome{}, fmt.Errorf("%w: %s", ErrNoOpening, s.params)
	}
	row, col := s.board.point(openings[s.r.IntN(len(openings))])

	res := s.board.Reveal(row, col)
	if res.Kind != RevealExposed {
		panic(AssertionError{"opening move did not expose a safe cell"})
	}
	s.exposed += res.Count
	Log.WithFields(logrus.Fields{
		"point":   Point{row, col}.String(),
		"outcome": res.String(),
	}).Debug("opening move")

	if s.cleared() {
		s.setState(Won)
	} else {
		s.setState(Playing)
	}
	return res, nil
}

func (s *Session) Open(row, col int) (Outcome, error) {
	switch s.state {
	case Setup, FirstMove:
		return Outcome{}, ErrNotStarted
	case Won, Lost:
		return Outcome{}, fmt.Errorf("%w: %s", ErrGameOver, s.state)
	}
	if !s.board.InBounds(row, col) {
		return Outcome{}, fmt.Errorf(
			"%w: %d:%d on %dx%d board", ErrOutOfBounds, row, col, s.params.Size, s.params.Size,
		)
	}

	res := s.board.Reveal(row, col)
	Log.WithFields(logrus.Fields{
		"point":   Point{row, col}.String(),
		"outcome": res.String(),
	}).Debug("move")

	switch res.Kind {
	case RevealMineHit:
		s.setState(Lost)
	case RevealExposed:
		s.exposed += res.Count
		if s.cleared() {
			s.setState(Won)
		}
	}
	return res, nil
}

// Play runs the game to completion, drawing the board to out after every
// move. It returns early only when in fails or ctx is done.
func (s *Session) Play(ctx context.Context, in CoordinateReader, out io.Writer) error {
	if _, err := s.Start(); err != nil {
		return err
	}
	if err := s.board.Render(out); err != nil {
		return err
	}

	for s.state == Playing {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := in.ReadCoordinate(ctx, s.params.Size)
		if err != nil {
			return fmt.Errorf("unable to read move: %w", err)
		}
		if _, err := s.Open(p.Row, p.Col); err != nil {
			return err
		}
		if err := s.board.Render(out); err != nil {
			return err
		}
	}

	var err error
	switch s.state {
	case Won:
		_, err = fmt.Fprintln(out, "WIN!")
	case Lost:
		_, err = fmt.Fprintln(out, "GAME OVER")
	}
	Log.WithFields(logrus.Fields{
		"params":  s.params.String(),
		"state":   s.state.String(),
		"exposed": s.exposed,
	}).Info("game finished")
	return err
}
