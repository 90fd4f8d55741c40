// Package term reads moves from a line-oriented terminal.
package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var Log = logrus.New()

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadCoordinate asks for a row and then a column. Bad input is reported
// and the same field asked again until a valid number arrives.
//
// [Prompter] implements [mines.CoordinateReader]
func (p *Prompter) ReadCoordinate(ctx context.Context, size int) (mines.Point, error) {
	row, err := p.readField(ctx, "row", size)
	if err != nil {
		return mines.Point{}, err
	}
	col, err := p.readField(ctx, "column", size)
	if err != nil {
		return mines.Point{}, err
	}
	return mines.Point{Row: row, Col: col}, nil
}

func (p *Prompter) readField(ctx context.Context, name string, size int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if _, err := fmt.Fprintf(p.out, "%s (0 to %d): ", name, size-1); err != nil {
			return 0, err
		}
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		line := strings.TrimSpace(p.scanner.Text())
		v, err := strconv.Atoi(line)
		if err == nil && 0 <= v && v < size {
			return v, nil
		}

		Log.WithFields(logrus.Fields{
			"field": name,
			"input": line,
		}).Debug("rejected coordinate")
		if _, err := fmt.Fprintf(p.out, "coordinate must be a number between 0 and %d\n", size-1); err != nil {
			return 0, err
		}
	}
}
