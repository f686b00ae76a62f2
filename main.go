package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "hotelbooking/internal/config"
	router "hotelbooking/internal/http"
	"hotelbooking/internal/http/handlers"
	"hotelbooking/internal/repositories"
	"hotelbooking/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	store, ping, err := openStore(env)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", env.DBDriver, err)
	}
	defer intconfig.CloseDB()

	hd := handlers.New(store, services.BookingOptions{
		BookingNumberMaxAttempts: env.BookingNumberMaxAttempts,
	})
	hd.Driver = env.DBDriver
	hd.Ping = ping

	if env.SeedOnStart {
		seedIfEmpty(hd.Data)
	}

	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s (store=%s)", env.AppAddr, env.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

// openStore returns the configured store and, for MySQL, a connectivity probe.
func openStore(env intconfig.Env) (services.Store, func(context.Context) error, error) {
	if env.DBDriver == intconfig.DriverMemory {
		return repositories.NewMemoryStore(), nil, nil
	}

	db, err := intconfig.ConnectDB(env)
	if err != nil {
		return nil, nil, err
	}
	store := repositories.NewMySQLStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, nil, err
	}
	return store, intconfig.PingDB, nil
}

func seedIfEmpty(data services.DataService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := data.Stats(ctx)
	if err != nil {
		log.Printf("warning: seed skipped, stats failed: %v", err)
		return
	}
	if stats.Hotels > 0 || stats.Bookings > 0 {
		log.Printf("seed skipped: store already has %d hotels", stats.Hotels)
		return
	}
	if _, err := data.Seed(ctx); err != nil {
		log.Printf("warning: seed failed: %v", err)
	}
}
