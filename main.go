package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"

	"lml-server/config"
	"lml-server/di"
	"lml-server/models"
	services "lml-server/service"
)

type Args struct {
	Env     string `arg:"--env,env:APP_ENV" default:"prod" help:"Runtime environment. Anything but prod serves the bundled gigs fixture and keeps Redis in memory."`
	Date    string `arg:"--date" help:"Day to show on startup (YYYY-MM-DD). Defaults to today in the city's timezone."`
	EnvFile string `arg:"--env-file" default:".env" help:"Optional dotenv file read before the environment."`
}

func (Args) Description() string {
	return "Serves live music gigs for one city, grouped by venue, for a selected day."
}

func main() {
	var args Args
	arg.MustParse(&args)

	var startDay models.Day
	if args.Date != "" {
		day, err := models.ParseDay(args.Date)
		if err != nil {
			log.Fatalf("Invalid --date: %v", err)
		}
		startDay = day
	}

	cfg, err := config.Load(args.EnvFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, err := di.NewContainer(args.Env, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go loadInitialDay(ctx, container.GigsService, startDay)

	log.Printf("starting server on %s", cfg.ListenAddr())
	if err := container.GigMapHttpServer.Run(ctx); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	log.Println("server stopped")
}

// loadInitialDay performs the fetch the page shows on first load.
func loadInitialDay(ctx context.Context, gigsService *services.GigsService, day models.Day) {
	var err error
	if day.IsZero() {
		_, err = gigsService.Today(ctx)
	} else {
		_, err = gigsService.SelectDate(ctx, day)
	}
	if err != nil && !errors.Is(err, services.ErrFetchSuperseded) {
		log.Printf("[main] Initial load failed: %v", err)
	}
}
