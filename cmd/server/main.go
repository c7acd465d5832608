package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spacex-launch-dashboard/internal/adapters/launchsource"
	"spacex-launch-dashboard/internal/api"
	"spacex-launch-dashboard/internal/charts"
	"spacex-launch-dashboard/internal/config"
	"spacex-launch-dashboard/internal/platform/obs"
	"spacex-launch-dashboard/internal/services"
	"spacex-launch-dashboard/internal/web"

	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It loads the launch records once, wires the query engine behind the HTTP
// router and serves until interrupted. A failed load stops the process before
// it listens.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	obs.EnableTiming(cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := launchsource.Open(cfg.DataSource)
	if err != nil {
		log.Fatal(err)
	}

	store, err := services.LoadStore(ctx, source, services.StoreOptions{
		Sites:      cfg.LaunchSites,
		SliderStep: cfg.SliderStep,
	})
	// The record set is resident after load; the source is not needed again.
	if cerr := closeSource(); cerr != nil {
		log.Printf("close source=%s err=%v", source.Name(), cerr)
	}
	if err != nil {
		log.Fatal(err)
	}

	b := store.Bounds()
	log.Printf("Loaded launch records source=%s records=%d sites=%d payload_min=%g payload_max=%g",
		store.Source(), store.Records().Len(), len(store.Sites()), b.Low, b.High)

	templates, err := web.Templates()
	if err != nil {
		log.Fatal(err)
	}

	engine := services.NewQueryEngine(store.Records())
	router := api.NewRouter(store, engine, charts.NewRenderer(store.Sites()), templates)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Server listening addr=:%s debug=%t", cfg.Port, cfg.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Println("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
