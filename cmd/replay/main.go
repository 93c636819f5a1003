package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"termpong/internal/config"
	"termpong/internal/session"
	"termpong/internal/wire"
)

// Re-simulates a recorded match without a terminal and prints the outcome.
// Two replays of the same file always print the same digest.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: replay <replay file> [config]")
		os.Exit(2)
	}
	if len(os.Args) > 2 {
		config.LoadConfig(os.Args[2])
	} else {
		config.LoadConfig("")
	}
	slog.SetLogLoggerLevel(slog.Level(config.Config.LogLevel))

	if err := run(os.Args[1], os.Stdout); err != nil {
		slog.Error("replay failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := wire.NewReplayReader(f)
	if err != nil {
		return err
	}

	sess := session.New(session.Options{
		ID:    r.Header.SessionID,
		Field: r.Header.Field,
		Seed:  r.Header.Seed,
		Rules: r.Header.Rules,
	}, nil, nil)

	for {
		in, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("after %d frames: %w", sess.Frames(), err)
		}
		if _, err := sess.Tick(in); err != nil {
			return err
		}
	}

	state := sess.State()
	fmt.Fprintf(out, "session %s\n", sess.ID)
	fmt.Fprintf(out, "frames  %d\n", sess.Frames())
	fmt.Fprintf(out, "score   %d - %d\n", state.Score.Player1, state.Score.Player2)
	fmt.Fprintf(out, "digest  %x\n", sha256.Sum256(wire.EncodeState(state)))
	return nil
}
