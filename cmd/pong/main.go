package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"termpong/internal/ansii"
	"termpong/internal/client"
	"termpong/internal/config"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}
	cfg := config.Config

	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)})))
	} else {
		slog.SetLogLoggerLevel(slog.Level(cfg.LogLevel))
	}

	if !ansii.IsTerminal() {
		fmt.Fprintln(os.Stderr, "termpong needs an interactive terminal")
		os.Exit(1)
	}

	fmt.Println("Welcome to termpong! Player 1: w/s, player 2: arrows or i/k, q to quit.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	score, err := client.Game(ctx, cfg)
	if err != nil {
		slog.Error("game ended with an error", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Sorry, the game crashed:", err)
		return
	}

	fmt.Printf("Final score %d - %d\n", score.Player1, score.Player2)
	if cfg.ReplayPath != "" {
		fmt.Println("Replay saved to", cfg.ReplayPath)
	}
}
