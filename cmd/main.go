package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warung/internal/catalog"
	"warung/internal/config"
	httpapi "warung/internal/http"
	"warung/internal/ratelimit"
	"warung/internal/repository"
	"warung/internal/service"

	_ "warung/docs"
)

// @title Warung Storefront API
// @version 1.0
// @description In-memory storefront core: catalog, cart and WhatsApp checkout.
// @BasePath /api/v1

func main() {
	cfg := config.Load()

	categories, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	store := repository.NewMemoryStore(categories)
	cartRepo := repository.NewMemoryCart(store)
	ordersRepo := repository.NewMemoryOrders(store)
	tx := repository.NewMemoryTx(store)

	catalogSvc := service.NewCatalogService(store)
	cartSvc := service.NewCartService(store, cartRepo)
	limiter := ratelimit.New(cfg.OrderAttempts, cfg.OrderWindow)
	checkoutSvc := service.NewCheckoutService(
		cartRepo, ordersRepo, tx, limiter, service.NewOrderComposer(), cfg.WhatsAppNumber,
	)

	srv := httpapi.NewServer(catalogSvc, cartSvc, checkoutSvc)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
