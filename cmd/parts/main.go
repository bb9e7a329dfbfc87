package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vhsenna/parts-unlimited/internal/app"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ parts service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		return err
	}

	return a.Run(ctx)
}
