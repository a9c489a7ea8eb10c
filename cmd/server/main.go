package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alansi2025/inventory-management/config"
	"github.com/Alansi2025/inventory-management/internal/advisor"
	"github.com/Alansi2025/inventory-management/internal/api"
	"github.com/Alansi2025/inventory-management/internal/broker"
	"github.com/Alansi2025/inventory-management/internal/catalog"
	"github.com/Alansi2025/inventory-management/internal/clock"
	"github.com/Alansi2025/inventory-management/internal/prefs"
	"github.com/Alansi2025/inventory-management/internal/query"
	"github.com/Alansi2025/inventory-management/internal/service"
	"github.com/Alansi2025/inventory-management/internal/util"
	"github.com/Alansi2025/inventory-management/internal/worker"

	"github.com/gin-gonic/gin"
)

func main() {

	cfg := config.Load()

	if err := util.InitLogger(cfg.Server.Env); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()

	logger := util.GetLogger()
	logger.Info("Starting inventory service")

	tp, err := util.InitTracer("inventory-service", cfg.Observ.JaegerEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	store := catalog.NewStore(clock.NewRealClock())
	if cfg.Inventory.SeedSampleData {
		seeded := catalog.Seed(store)
		log.Printf("Sample catalog seeded: %d products", len(seeded))
	}

	var prefStore prefs.Store
	redisPrefs, err := prefs.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Inventory.DefaultDarkMode)
	if err != nil {
		log.Printf("Failed to connect to Redis, using in-memory preferences: %v", err)
		prefStore = prefs.NewMemoryStore(cfg.Inventory.DefaultDarkMode)
	} else {
		prefStore = redisPrefs
		log.Println("Redis connected")
	}
	defer prefStore.Close()

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.TopicProducts)
	defer producer.Close()
	log.Println("Kafka producer initialized")

	eventPublisher := broker.NewEventPublisher(producer)

	advisorClient := advisor.NewClient(
		cfg.Advisor.BaseURL,
		cfg.Advisor.APIKey,
		time.Duration(cfg.Advisor.TimeoutSeconds)*time.Second,
	)

	inventoryService := service.NewInventoryService(store, query.NewTableView(), eventPublisher)
	advisorService := service.NewAdvisorService(advisorClient, store)

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	stockConsumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.TopicProducts, cfg.Kafka.ConsumerGroup)
	stockWatcher := worker.NewStockWatcher(stockConsumer, store, eventPublisher)
	go func() {
		if err := stockWatcher.Start(workerCtx); err != nil {
			log.Printf("Stock watcher error: %v", err)
		}
	}()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	handler := api.NewHandler(inventoryService, advisorService, prefStore)
	handler.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	workerCancel()
	stockWatcher.Stop()

	log.Println("Server exited")
}
