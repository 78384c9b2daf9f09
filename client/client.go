// Package client wires the campus backend API client together with the
// per-screen state controllers.
package client

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/campushub/campus-client/client/api"
	"github.com/campushub/campus-client/client/screen"
)

func New(cfg Config, tokens oauth2.TokenSource) *App {
	httpClient := &http.Client{
		Timeout: time.Duration(cfg.API.Timeout),
	}
	return &App{
		cfg: cfg,
		API: api.New(cfg.API, httpClient, tokens),
	}
}

type App struct {
	cfg Config
	API *api.Client
}

// Clubs creates a fresh clubs screen controller. Each screen mount gets its
// own instance; the canonical list is not shared across screens.
func (a *App) Clubs() *screen.ClubsController {
	return screen.NewClubsController(a.API)
}

func (a *App) Events() *screen.EventsController {
	return screen.NewEventsController(a.API)
}

func (a *App) Notifications() *screen.NotificationsController {
	return screen.NewNotificationsController(a.API)
}
