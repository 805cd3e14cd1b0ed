// Package app wires config, storage, services and the HTTP server together.
package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/NejeNejeNeje/ropa-sub001/config"
	"github.com/NejeNejeNeje/ropa-sub001/internal/api"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/circle"
	karmarepo "github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/karma"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/listing"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/match"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/swipe"
	"github.com/NejeNejeNeje/ropa-sub001/internal/db/repositories/user"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/circles"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/karma"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/swipes"
	"github.com/NejeNejeNeje/ropa-sub001/internal/services/users"
)

func Run() error {
	cfg := config.LoadConfigOrPanic()

	if level, err := log.ParseLevel(cfg.AppConfig.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.WithField("version", cfg.AppConfig.Version).Info("starting ropa core")

	database, err := db.NewDB(cfg.DBConfig)
	if err != nil {
		return err
	}

	userRepo := user.NewUserRepository(database)
	listingRepo := listing.NewListingRepository(database)
	swipeRepo := swipe.NewSwipeRepository(database)
	matchRepo := match.NewMatchRepository(database)
	karmaRepo := karmarepo.NewKarmaRepository(database)
	circleRepo := circle.NewCircleRepository(database)

	karmaService := karma.New(database, userRepo, karmaRepo)
	swipeService := swipes.New(database, listingRepo, swipeRepo, matchRepo, karmaService)
	circleService := circles.New(database, circleRepo, karmaService)
	userService := users.New(database, userRepo, karmaService)

	handlers := api.NewHandlers(swipeService, circleService, karmaService, userService)
	server := api.NewServer(cfg.HTTPConfig, api.NewRouter(handlers))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
