package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bloomlavka/bloom_api/internal/bot"
	"github.com/bloomlavka/bloom_api/internal/config"
	"github.com/bloomlavka/bloom_api/internal/handler"
	"github.com/bloomlavka/bloom_api/internal/middleware"
	"github.com/bloomlavka/bloom_api/internal/repository"
	"github.com/bloomlavka/bloom_api/internal/service"
	"github.com/bloomlavka/bloom_api/internal/worker"
)

// main is the application entrypoint for the Bloom Lavka storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting bloom lavka api")

	// 3. Open the catalog. A fresh deploy gets an empty catalog file; a
	// malformed one is fatal rather than failing on every request.
	flowerRepo := repository.NewFlowerRepository(cfg.Catalog.File)
	if err := flowerRepo.Init(); err != nil {
		log.Error().Err(err).Msg("catalog initialization failed")
		fmt.Fprintf(os.Stderr, "catalog initialization failed: %v\n", err)
		os.Exit(1)
	}
	if _, err := flowerRepo.ReadAll(); err != nil {
		log.Error().Err(err).Msg("catalog startup check failed")
		fmt.Fprintf(os.Stderr, "catalog startup check failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Str("file", cfg.Catalog.File).Msg("catalog loaded")

	// 4. Initialize services
	catalogSvc := service.NewCatalogService(flowerRepo, cfg.Shop.MinQuantity)

	// 5. Initialize the Telegram bot (order notifications + operator commands)
	sessions := bot.NewSessionStore()
	addFlow := bot.NewAddFlowerFlow(sessions, catalogSvc)
	tgBot, err := bot.New(cfg.Telegram.BotToken, cfg.Telegram.AdminChatID, catalogSvc, addFlow)
	if err != nil {
		log.Error().Err(err).Msg("telegram bot initialization failed")
		fmt.Fprintf(os.Stderr, "telegram bot initialization failed: %v\n", err)
		os.Exit(1)
	}
	orderSvc := service.NewOrderService(tgBot)

	// 6. Initialize handlers
	flowerHandler := handler.NewFlowerHandler(catalogSvc)
	orderHandler := handler.NewOrderHandler(orderSvc)

	// 7. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, flowerHandler, orderHandler)

	// 8. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 9. Start the bot and the catalog guard
	go tgBot.Start(ctx)
	go worker.NewCatalogCheckWorker(flowerRepo, cfg.Catalog.CheckInterval).Start(ctx)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Cancel context to stop the bot and workers
	cancel()

	// 13. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, flowerHandler *handler.FlowerHandler, orderHandler *handler.OrderHandler) {
	api := router.Group("/api")
	{
		api.GET("/flowers", flowerHandler.GetFlowers)
		api.GET("/flowers/:id/quote", flowerHandler.GetQuote)
		api.POST("/order", orderHandler.CreateOrder)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
