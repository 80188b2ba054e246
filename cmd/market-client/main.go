package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reloved-market-client/internal/adapters/rest"
	"reloved-market-client/internal/adapters/storage"
	"reloved-market-client/internal/app"
	"reloved-market-client/internal/config"
)

func main() {

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	initLogging(cfg)

	log.Info().Msg("Starting Reloved market client...")

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout*4)
	defer cancel()

	// Persisted session store and the one session context every view reads
	store, err := storage.NewStore(storage.StoreParams{Config: cfg, Logger: log.Logger})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open session storage")
	}

	sessionCtx := app.NewSessionContext(app.SessionContextParams{Store: store, Logger: log.Logger})
	log.Info().Bool("logged_in", sessionCtx.Current().IsLoggedIn).Msg("Session resolved")

	// REST gateway to the marketplace backend
	gateway := rest.NewClient(rest.ClientParams{Config: cfg, Logger: log.Logger})
	navigator := &logNavigator{logger: log.Logger}

	shell := app.NewNavShell(app.NavShellParams{
		Session:         sessionCtx,
		Logger:          log.Logger,
		ScrollThreshold: cfg.Views.ScrollThreshold,
	})
	log.Info().Int("actions", len(shell.Actions())).Msg("Navigation shell initialized")

	browse := app.NewBrowseView(app.BrowseViewParams{
		Gateway:      gateway,
		Logger:       log.Logger,
		ItemsPerPage: cfg.Views.ItemsPerPage,
	})

	if err := browse.LoadPage(ctx, 1); err != nil {
		log.Error().Err(err).Msg("Shop listing unavailable")
	} else if _, page, _ := browse.Results(); page != nil {
		log.Info().
			Int("items", len(page.Items)).
			Int("last_page", page.LastPage).
			Msg("Shop listing loaded")
	}

	// With an item uuid argument, walk the detail flow as well
	if len(os.Args) > 1 {
		itemID, err := uuid.Parse(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("arg", os.Args[1]).Msg("Invalid item uuid")
		}

		detail := app.NewProductDetailView(app.ProductDetailViewParams{
			Gateway:   gateway,
			Session:   sessionCtx,
			Navigator: navigator,
			Logger:    log.Logger,
			ItemID:    itemID,
		})

		if err := detail.Load(ctx); err != nil {
			log.Error().Err(err).Msg("Product detail unavailable")
		} else if price, ok := detail.Price(); ok {
			log.Info().
				Str("total", price.Total).
				Bool("struck", price.Struck).
				Str("offer", price.OfferAmount).
				Msg("Product detail loaded")
		}
	}

	log.Info().Msg("Done")
}

// logNavigator records navigations; route rendering belongs to the host UI
type logNavigator struct {
	logger zerolog.Logger
}

func (n *logNavigator) Navigate(route string) {
	n.logger.Info().Str("route", route).Msg("Navigate")
}

func (n *logNavigator) Redirect(url string) {
	n.logger.Info().Str("url", url).Msg("Redirect")
}

func initLogging(cfg *config.Config) {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set log format
	if cfg.Logging.Format == "json" {
		// JSON format (default)
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Console format for development
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set global logger
	zerolog.DefaultContextLogger = &log.Logger
}
