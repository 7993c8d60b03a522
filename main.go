package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/wearloom/storefront-api/api"
	"github.com/wearloom/storefront-api/catalog"
	"github.com/wearloom/storefront-api/config"
	"github.com/wearloom/storefront-api/store"
	"github.com/wearloom/storefront-api/tryon"
	"github.com/wearloom/storefront-api/utils"
)

func main() {
	config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Catalog: built-in products unless an override file is configured.
	cat := catalog.Default()
	if config.CatalogPath != "" {
		cat, err = catalog.LoadFile(config.CatalogPath)
		if err != nil {
			logger.Fatal("Failed to load catalog file", zap.Error(err))
		}
	}

	generator, err := tryon.NewGeminiGenerator(context.Background(), config.GeminiAPIKey, config.GeminiModel)
	if err != nil {
		logger.Fatal("Failed to create generation client", zap.Error(err))
	}

	handler := &api.Handler{
		Catalog:  cat,
		Sessions: store.NewManager(cat),
		Pipeline: tryon.NewPipeline(generator, logger),
		Fetcher:  tryon.NewRelayFetcher(config.ImageRelayURL),
		Logger:   logger,
	}

	// CORS Middleware
	corsMiddleware := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next(w, r)
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", corsMiddleware(handler.HealthHandler))
	mux.HandleFunc("/products", corsMiddleware(handler.ProductsHandler))
	mux.HandleFunc("/products/", corsMiddleware(handler.ProductsHandler))
	mux.HandleFunc("/cart", corsMiddleware(handler.CartHandler))
	mux.HandleFunc("/cart/add", corsMiddleware(handler.CartAddHandler))
	mux.HandleFunc("/cart/update", corsMiddleware(handler.CartUpdateHandler))
	mux.HandleFunc("/cart/remove", corsMiddleware(handler.CartRemoveHandler))
	mux.HandleFunc("/cart/clear", corsMiddleware(handler.CartClearHandler))
	mux.HandleFunc("/wishlist", corsMiddleware(handler.WishlistHandler))
	mux.HandleFunc("/wishlist/toggle", corsMiddleware(handler.WishlistToggleHandler))
	mux.HandleFunc("/try-on", corsMiddleware(handler.TryOnHandler))

	addr := ":" + config.Port
	logger.Info("Server starting", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, utils.LatencyMiddleware(logger, mux)); err != nil {
		logger.Fatal("Server failed to start", zap.Error(err))
	}
}
