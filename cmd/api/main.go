package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/quickbite/storefront/internal/catalog"
	"github.com/quickbite/storefront/internal/config"
	"github.com/quickbite/storefront/internal/httpx"
	"github.com/quickbite/storefront/internal/session"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Session store + eviction janitor
	store := session.NewStore(cfg.SessionTTL, cfg.SweepInterval, cfg.ToastTTL, logger)
	store.Start(ctx)

	// Catalog is static for the process lifetime
	menu := catalog.Seed()

	router := httpx.NewRouter()
	sh := &httpx.StorefrontHandler{
		Catalog:  menu,
		Sessions: store,
		Service:  cfg.ServiceName,
		Log:      logger,
	}
	sh.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		logger.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr), zap.Int("menu_items", len(menu)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	store.Close()      // stop janitor, release session timers
	cancel()           // stop any remaining background work
	store.WaitClosed() // drain
}
