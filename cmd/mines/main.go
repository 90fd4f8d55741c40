package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-cli/internal/config"
	"github.com/vancomm/minesweeper-cli/internal/mines"
	"github.com/vancomm/minesweeper-cli/internal/term"
)

var (
	log = logrus.New()

	seed    uint64
	verbose bool
)

func init() {
	flag.Uint64Var(&seed, "seed", 0, "random seed, 0 picks one (overrides MINES_SEED)")
	flag.BoolVar(&verbose, "v", false, "log at debug level")
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "usage: %s [flags] board_size mines\n\n", os.Args[0])
		fmt.Fprintln(w, "Play minesweeper on a board_size x board_size board.")
		fmt.Fprintln(w)
		flag.PrintDefaults()
	}
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupLogging(cfg config.App) error {
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	logger, err := config.NewLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	log = logger
	mines.Log = logger
	term.Log = logger
	return nil
}

// run plays one game and returns the process exit code. Interrupts keep
// their default behavior since the game spends its time blocked on stdin.
func run(ctx context.Context) int {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 1
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := setupLogging(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 1
	}
	log.WithFields(cfg.Fields()).Debug("config")

	params, err := config.DecodeArgs(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "mines:", err)
		flag.Usage()
		return 2
	}

	session, err := mines.NewSession(params, createRand(cfg.Seed))
	if err != nil {
		log.WithError(err).Error("unable to set up game")
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 1
	}

	err = session.Play(ctx, term.NewPrompter(os.Stdin, os.Stdout), os.Stdout)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, io.EOF):
		log.WithField("state", session.State().String()).Info("game abandoned")
		fmt.Fprintln(os.Stdout)
		return 1
	default:
		log.WithError(err).Error("game failed")
		fmt.Fprintln(os.Stderr, "mines:", err)
		return 1
	}
}

func main() {
	os.Exit(run(context.Background()))
}
