package config

import (
	"errors"
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper-cli/internal/mines"
)

var ErrUsage = errors.New("usage error")

var argNames = []string{"board_size", "mines"}

type args struct {
	BoardSize int `schema:"board_size,required"`
	Mines     int `schema:"mines,required"`
}

// DecodeArgs turns the positional arguments `board_size mines` into game
// parameters. Only the shape of the input is checked here; use
// [mines.GameParams.Validate] for the values.
func DecodeArgs(positional []string) (mines.GameParams, error) {
	if len(positional) != len(argNames) {
		return mines.GameParams{}, fmt.Errorf(
			"%w: expected %d arguments, got %d", ErrUsage, len(argNames), len(positional),
		)
	}

	src := make(map[string][]string, len(argNames))
	for i, name := range argNames {
		src[name] = []string{positional[i]}
	}

	decoder := schema.NewDecoder()
	var a args
	if err := decoder.Decode(&a, src); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return mines.GameParams{Size: a.BoardSize, MineCount: a.Mines}, nil
}
