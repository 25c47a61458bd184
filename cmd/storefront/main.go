package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	cartcache "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/cache"
	cartrepo "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/repository"
	cartsvc "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/cart/service"
	catalogrepo "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/catalog/repository"
	checkoutsvc "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/checkout/service"
	h "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/http"
	ordersstore "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/orders/store"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/pkg/latency"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/roster"
	sessionsvc "github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/service"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/session/slot"
	"github.com/victorhenriqueoliveira-ai/ecommerce-prototype-next/internal/tracking"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	RedisPassword   string
	CatalogDBPath   string
	MigrationsPath  string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	// Artificial delays standing in for real backends
	LoginDelay    time.Duration
	CheckoutDelay time.Duration
	StatusDelay   time.Duration
	TrackingDelay time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		CatalogDBPath:   getEnv("CATALOG_DB_PATH", "storefront.db"),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "internal/catalog/repository/migrations"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LoginDelay:      getEnvDuration("LOGIN_DELAY", time.Second),
		CheckoutDelay:   getEnvDuration("CHECKOUT_DELAY", 2*time.Second),
		StatusDelay:     getEnvDuration("STATUS_DELAY", time.Second),
		TrackingDelay:   getEnvDuration("TRACKING_DELAY", 1500*time.Millisecond),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("invalid duration for %s: %v", key, err)
	}
	return d
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	// Product catalog (sqlite)
	catalog, err := catalogrepo.NewRepository(cfg.CatalogDBPath)
	if err != nil {
		log.Fatalf("Failed to open catalog database: %v", err)
	}
	defer catalog.Close()
	if err := catalog.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run catalog migrations: %v", err)
	}
	log.Printf("Catalog ready at %s", cfg.CatalogDBPath)

	// Redis backs the cart cache and the session slots
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	// Stores
	cartService := cartsvc.NewCartService(cartrepo.NewMemoryRepository(), cartcache.NewRedisCache(redisClient))
	sessionManager := sessionsvc.NewManager(roster.New(), slot.NewRedisSlot(redisClient), latency.Fixed(cfg.LoginDelay))
	orderStore := ordersstore.NewMemoryStore()

	// Simulated integrations
	processor := checkoutsvc.NewProcessor(
		latency.Fixed(cfg.CheckoutDelay),
		latency.Fixed(cfg.StatusDelay),
		checkoutsvc.TimeRandomIDs{},
		checkoutsvc.RandomStatus{},
	)
	tracker := tracking.NewService(latency.Fixed(cfg.TrackingDelay))

	// Gateway
	router := h.NewRouter(h.RouterConfig{
		Auth:           h.NewAuthHandler(sessionManager, cfg.RequestTimeout),
		Products:       h.NewProductHandler(catalog, cfg.RequestTimeout),
		Cart:           h.NewCartHandler(cartService, catalog, cfg.RequestTimeout),
		Checkout:       h.NewCheckoutHandler(processor, cartService, orderStore, cfg.RequestTimeout),
		Orders:         h.NewOrdersHandler(processor, orderStore, sessionManager, cfg.RequestTimeout),
		Admin:          h.NewAdminHandler(orderStore, cfg.RequestTimeout),
		Tracking:       h.NewTrackingHandler(tracker, cfg.RequestTimeout),
		Sessions:       sessionManager,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront API starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
