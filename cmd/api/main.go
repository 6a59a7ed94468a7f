package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"digital-menu/internal/cart"
	"digital-menu/internal/checkout"
	"digital-menu/internal/config"
	"digital-menu/internal/db"
	"digital-menu/internal/httpserver"
	"digital-menu/internal/kitchen"
	"digital-menu/internal/notify"
	productrepo "digital-menu/internal/repository/product"
	staffrepo "digital-menu/internal/repository/staff"
	authsvc "digital-menu/internal/service/auth"
	catalogsvc "digital-menu/internal/service/catalog"
	"digital-menu/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("connect to redis: %v", err)
	}

	persister := storage.NewRedisPersister(redisClient, cfg.CartSessionKey, logger)
	cartStore := cart.NewStore(ctx, persister, logger)

	notifications := notify.NewBuffer(50)
	sink := notify.Multi{notify.NewLogSink(logger), notifications}

	kitchenClient := kitchen.NewClient(cfg.KitchenBaseURL, cfg.KitchenTimeout, logger)
	orchestrator := checkout.New(cartStore, kitchenClient, sink, logger)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(productRepo)
	staffRepo := staffrepo.NewPostgres(dbpool, logger)
	authService := authsvc.New(staffRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:       catalogService,
		Cart:          cartStore,
		Checkout:      orchestrator,
		Auth:          authService,
		Notifications: notifications,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
