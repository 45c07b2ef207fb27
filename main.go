package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"auracash/config"
	"auracash/database"
	"auracash/logger"
	"auracash/router"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// @title AuraCash API
// @version 1.0
// @description Personal finance: accounts, transactions, categories, goals, materials and shared accounts.
// @BasePath /

const version = "1.0.0"

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 8080 or :8080")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print the version")
	flag.BoolVar(&showVersion, "v", false, "print the version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("AuraCash v" + version)
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log)

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Info().Str("port", port).Msg("port overridden from command line")
	}

	config.PrintConfig()

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	log.Info().Msg("server exited")
}

func run(cfg *config.Config) error {
	db, err := database.Open(cfg)
	if err != nil {
		return fmt.Errorf("database initialization: %w", err)
	}
	store := database.NewStore(db)
	defer store.Close()

	r := router.SetupRouter(cfg, router.NewServices(cfg, store))
	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", "http://localhost"+cfg.Server.Port).
			Str("swagger", "http://localhost"+cfg.Server.Port+"/swagger/index.html").
			Msg("AuraCash started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
