package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blox/internal/app"
	"blox/internal/config"
	"blox/pkg/log"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "blox: %v\n", err)
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	log.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := app.New(cfg)
	err = a.Run(ctx)

	stop()
	a.Close()
	if err != nil {
		logger.Error("server stopped", "error", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
