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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tiendaweb/tienda/internal/config"
	"github.com/tiendaweb/tienda/internal/httpserver"
	"github.com/tiendaweb/tienda/internal/logging"
	authmw "github.com/tiendaweb/tienda/internal/middleware/auth"
	"github.com/tiendaweb/tienda/internal/mykafka"
	"github.com/tiendaweb/tienda/internal/repo"
	"github.com/tiendaweb/tienda/internal/service"
	"github.com/tiendaweb/tienda/pkg/db"
	loggingmw "github.com/tiendaweb/tienda/pkg/middleware/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(cfg.DBUser, "DB_USER")
	config.MustNonEmpty(cfg.DBName, "DB_NAME")
	config.MustNonEmptyBytes(cfg.SessionSecret, "SESSION_SECRET")

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseDSN())
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var prod *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		prod, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	store := repo.New(database)
	authSvc := &service.AuthService{Repo: store, SessionSecret: cfg.SessionSecret, Producer: prod}
	cartSvc := &service.CartService{Repo: store, Producer: prod}
	catalogSvc := &service.CatalogService{Repo: store}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Svc: authSvc},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
		RequireLogin:   authmw.RequireLogin(authSvc, cfg.SessionSecret),
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if prod != nil {
		if err := prod.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
