// cmd/storefront/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajesh-kayal-dev/jubili-web-public/internal/config"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/infrastructure/storage"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/interfaces/cli"
	"github.com/rajesh-kayal-dev/jubili-web-public/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)

	// Session records (file by default, redis when configured)
	records, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open session storage: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(cfg, records, logg, os.Stdout)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}
