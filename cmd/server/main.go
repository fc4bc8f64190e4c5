package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ignite/spamguard/internal/api"
	"github.com/ignite/spamguard/internal/config"
	"github.com/ignite/spamguard/internal/metrics"
	"github.com/ignite/spamguard/internal/repository/postgres"
	redisrepo "github.com/ignite/spamguard/internal/repository/redis"
	"github.com/ignite/spamguard/internal/service/antispam"
	"github.com/ignite/spamguard/internal/service/bannedlist"
	"github.com/ignite/spamguard/internal/service/identity"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("spamguard server starting (cmd/server/main.go)")

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics
	var recorder metrics.Recorder = metrics.Nop{}
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		recorder = metrics.NewCollector(registry)
		metricsHandler = metrics.Handler(registry)
	}

	// Banned-list store backend
	var repo bannedlist.Repository
	switch cfg.BannedList.Backend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("Failed to open postgres: %v", err)
		}
		defer db.Close()
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			pingCancel()
			log.Fatalf("Cannot connect to postgres: %v", err)
		}
		pingCancel()
		log.Printf("[store] postgres backend ready")
		repo = postgres.NewBannedListRepo(db)
	default:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			pingCancel()
			log.Fatalf("Cannot connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		pingCancel()
		log.Printf("[store] redis backend ready (addr=%s key=%s)", cfg.Redis.Addr, cfg.BannedList.Key)
		repo = redisrepo.NewBannedListRepo(client, cfg.BannedList.Key)
	}

	// Wire services
	listService := bannedlist.NewService(repo, recorder)
	gate := antispam.NewGate(repo, recorder)
	validator := identity.NewValidator(gate)

	handlers := api.NewHandlers(listService, gate, validator)
	router := api.SetupRoutes(handlers, cfg.Server.AllowedOrigins, metricsHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Listening on http://%s:%d", host, port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received, draining...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
