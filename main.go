package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/campushub/campus-client/client"
	"github.com/campushub/campus-client/client/api"
)

func main() {
	cfgPath := flag.String("config", "config.toml", "path to the config file")
	flag.Parse()

	cfg, err := client.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}
	client.SetupLogger(cfg)
	slog.Info("Starting campus client", slog.String("config", cfg.String()))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tokens := api.NewTokenSource(ctx, cfg.API,
		os.Getenv("CAMPUS_ACCESS_TOKEN"),
		os.Getenv("CAMPUS_REFRESH_TOKEN"),
	)
	app := client.New(cfg, tokens)

	if !app.API.IsAuthenticated() {
		slog.Warn("No valid access token, requests will be unauthenticated")
	}

	clubs := app.Clubs()
	if err = clubs.Load(ctx, true); err != nil {
		slog.Error("Failed to load clubs", slog.Any("err", err))
	} else {
		slog.Info("Loaded clubs",
			slog.Int("count", len(clubs.Clubs())),
			slog.Any("categories", clubs.Categories()),
		)
	}

	events := app.Events()
	if err = events.Load(ctx, true); err != nil {
		slog.Error("Failed to load events", slog.Any("err", err))
	} else {
		slog.Info("Loaded events",
			slog.Int("count", len(events.Events())),
			slog.Any("filter_counts", events.FilterCounts()),
		)
	}

	notifications := app.Notifications()
	if err = notifications.Load(ctx, true); err != nil {
		slog.Error("Failed to load notifications", slog.Any("err", err))
	} else {
		slog.Info("Loaded notifications",
			slog.Int("count", len(notifications.Notifications())),
			slog.Int("unread", notifications.UnreadCount()),
		)
	}
}
