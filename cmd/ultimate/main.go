package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe/internal/cli"
)

// main - runs a two-player game of ultimate tic-tac-toe on stdin/stdout.
func main() {
	noColor := flag.Bool("no-color", false, "disable colored marks")
	debug := flag.Bool("debug", false, "log rejected input to stderr")
	flag.Parse()

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := cli.NewSession(logger, os.Stdin, os.Stdout, !*noColor)
	if err := session.Run(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "ultimate: %v\n", err)
		os.Exit(1)
	}
}
