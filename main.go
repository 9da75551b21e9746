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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"hotel-backend/config"
	"hotel-backend/controllers"
	"hotel-backend/routes"
	"hotel-backend/services"
	"hotel-backend/storage"
	"hotel-backend/utils"
)

func openStore(cfg config.Config, logger *zap.Logger) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMySQL:
		db, err := config.ConnectDatabase(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db, logger)
	case config.DriverMemory:
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewJSONStore(cfg.DataDir, logger)
	}
}

// bootstrap restores the registry from the store. Sample data is seeded
// only when the store loaded cleanly and holds nothing.
func bootstrap(ctx context.Context, store storage.Store, hotel *services.HotelService, seed bool, logger *zap.Logger) error {
	snap, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load saved data: %w", err)
	}
	stats := hotel.Restore(snap)
	logger.Info("registry loaded",
		zap.Int("rooms", stats.Rooms),
		zap.Int("reservations", stats.Reservations),
		zap.Int("services", stats.Services),
		zap.Int("employees", stats.Employees),
		zap.Int("skipped", stats.Skipped),
	)

	if snap.Empty() && seed {
		if err := services.SeedSampleData(hotel); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
		logger.Info("sample data seeded")
	}
	return nil
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := utils.InitLogger(cfg.AppEnv, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rawStore, err := openStore(cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	store := storage.Guard(rawStore)
	defer store.Close()

	hotel := services.NewHotelService(cfg.HotelName, logger)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	err = bootstrap(loadCtx, store, hotel, cfg.SeedSampleData, logger)
	cancelLoad()
	if err != nil {
		logger.Error("starting with an empty registry; saving is disabled until restart",
			zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	reservationService := services.NewReservationService(hotel)
	reportService := services.NewReportService(hotel)

	router := routes.SetupRouter(
		controllers.NewRoomController(hotel),
		controllers.NewReservationController(hotel, reservationService),
		controllers.NewServiceController(hotel),
		controllers.NewEmployeeController(hotel),
		controllers.NewReportController(reportService, reservationService),
		controllers.NewStorageController(hotel, store),
		cfg.CORSOrigins,
		logger,
	)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("hotel", hotel.Name))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	if err := store.Save(ctx, hotel.Snapshot()); errors.Is(err, storage.ErrNotLoaded) {
		logger.Warn("skipping save on shutdown", zap.Error(err))
	} else if err != nil {
		logger.Error("save on shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped gracefully")
}
