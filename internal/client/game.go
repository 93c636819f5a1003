package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"termpong/internal/ansii"
	"termpong/internal/config"
	"termpong/internal/pong"
	"termpong/internal/renderer"
	"termpong/internal/session"
	"termpong/internal/wire"
)

// Game plays a local two player match in the current terminal until someone
// quits, ctx is cancelled or the win score is reached.
func Game(ctx context.Context, cfg config.Configuration) (score pong.Score, err error) {
	rules, err := cfg.Rules()
	if err != nil {
		return score, err
	}

	ctx, quit := context.WithCancel(ctx)
	defer quit()

	keyboard := NewKeyboard(DefaultHold)
	sess := session.New(session.Options{
		Field:    cfg.Field(),
		FPS:      cfg.FPS,
		Seed:     cfg.Seed,
		Rules:    rules,
		WinScore: cfg.WinScore,
	}, keyboard, renderer.NewTerminal(os.Stdout))

	if cfg.ReplayPath != "" {
		f, createErr := os.Create(cfg.ReplayPath)
		if createErr != nil {
			return score, fmt.Errorf("creating replay: %w", createErr)
		}
		defer f.Close()

		rw, headerErr := wire.NewReplayWriter(f, sess.Header())
		if headerErr != nil {
			return score, headerErr
		}
		defer func() {
			err = errors.Join(err, rw.Flush())
		}()
		sess.SetRecorder(rw)
	}

	prev, err := ansii.MakeTermRaw()
	if err != nil {
		return score, fmt.Errorf("failed to make terminal raw: %w", err)
	}
	defer ansii.RestoreTerm(prev)

	os.Stdout.WriteString(string(ansii.Screen.HideCursor))
	defer os.Stdout.WriteString(string(ansii.Screen.ShowCursor) + string(ansii.Screen.ClearScreen))

	// Input handler
	go readInput(os.Stdin, keyboard, quit)

	return sess.Run(ctx)
}

// readInput feeds key presses into the keyboard until quit is requested or
// the reader fails. Either way it calls quit.
func readInput(r io.Reader, keyboard *Keyboard, quit func()) {
	defer quit()

	buf := make([]byte, 32)
	for {
		n, err := r.Read(buf)
		if err != nil {
			slog.Debug("stopped reading input", slog.Any("error", err))
			return
		}

		now := time.Now()
		for _, action := range renderer.ProcessInput(buf[:n]) {
			if action == renderer.Quit {
				return
			}
			keyboard.Press(action, now)
		}
	}
}
