package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"forklift-backend/internal/archive"
	"forklift-backend/internal/cache"
	"forklift-backend/internal/config"
	"forklift-backend/internal/database"
	"forklift-backend/internal/db"
	"forklift-backend/internal/handlers"
	"forklift-backend/internal/health"
	h "forklift-backend/internal/http"
	"forklift-backend/internal/middleware"
	"forklift-backend/internal/monitoring"
	"forklift-backend/internal/repositories"
	"forklift-backend/internal/services"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := pool.Ping(ctx); err != nil {
		cancel()
		log.Fatalf("database unreachable: %v", err)
	}
	cancel()
	log.Println("[DB] Connected successfully")

	migrator := database.NewMigrator(pool)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	// Cache is optional; the fleet summary just recomputes when it is down
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	} else {
		log.Println("[Cache] Connected successfully")
	}

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	forkliftRepo := repositories.NewForkliftRepository(pool)
	checklistRepo := repositories.NewChecklistItemRepository(pool)
	inspectionRepo := repositories.NewInspectionRepository(pool)

	// Services
	userService := services.NewUserService(userRepo)
	forkliftService := services.NewForkliftService(forkliftRepo)
	checklistService := services.NewChecklistItemService(checklistRepo)
	inspectionService := services.NewInspectionService(inspectionRepo, forkliftRepo, userRepo, checklistRepo)
	fleetStatusService := services.NewFleetStatusService(forkliftRepo, inspectionRepo)
	reportService := services.NewReportService(inspectionService, fleetStatusService)

	if cfg.ArchiveEnabled() {
		uploader, err := archive.NewUploader(cfg)
		if err != nil {
			log.Printf("[Archive] Disabled: %v", err)
		} else {
			reportService.SetUploader(uploader)
			log.Println("[Archive] Report archiving enabled")
		}
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	forkliftHandler := handlers.NewForkliftHandler(forkliftService)
	checklistHandler := handlers.NewChecklistItemHandler(checklistService)
	inspectionHandler := handlers.NewInspectionHandler(inspectionService)
	fleetStatusHandler := handlers.NewFleetStatusHandler(fleetStatusService)
	reportHandler := handlers.NewReportHandler(reportService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	router := h.NewRouter(
		authHandler,
		userHandler,
		forkliftHandler,
		checklistHandler,
		inspectionHandler,
		fleetStatusHandler,
		reportHandler,
		healthHandler,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	// Ops stats server on its own port
	monitoringServer := monitoring.NewServer(pool, cfg.Monitoring.Port)
	go monitoringServer.Start()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
