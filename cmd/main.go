package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/siren_dashboard/internal/config"
	v1 "github.com/shenikar/siren_dashboard/internal/handler/http/v1"
	"github.com/shenikar/siren_dashboard/internal/repository"
	"github.com/shenikar/siren_dashboard/internal/service"
	"github.com/shenikar/siren_dashboard/internal/webhook"
	"github.com/shenikar/siren_dashboard/pkg/logger"
	redisclient "github.com/shenikar/siren_dashboard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/siren_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Siren Dashboard API
// @version 1.0
// @description Backend-for-frontend of the road accident dashboard: video analysis jobs and incident triage.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Издатель событий разбора и воркер доставки на вебхук
	triagePublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// HTTP-клиент внешних сервисов и кеш горячих точек
	backendClient := repository.NewBackendClient(cfg)
	hotspotCache := repository.NewHotspotCache(redisClient, cfg.HotspotCacheTTL)

	// Инициализация сервисов
	hotspotService := service.NewHotspotService(backendClient, hotspotCache, logger.WithComponent(log, "hotspot"))
	registry := service.NewSessionRegistry(service.Deps{
		Analysis:  backendClient,
		Incidents: backendClient,
		Hotspots:  hotspotService,
		Publisher: triagePublisher,
		Scheduler: service.NewWallClockScheduler(),
		StageDelays: service.StageDelays{
			Stage1: cfg.Stage1Delay,
			Stage2: cfg.Stage2Delay,
		},
		UpdateTimeout: cfg.StatusUpdateTimeout,
		Logger:        log,
	})

	// Периодическое обновление списков инцидентов и завершение простаивающих сессий
	refresher := service.NewRefresher(registry, cfg.IncidentRefreshInterval, cfg.SessionIdleTimeout, logger.WithComponent(log, "refresher"))
	refresher.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(registry, hotspotService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправленных PATCH-запросов, чтобы решения операторов не потерялись
	registry.Wait()
	cancel()

	log.Info("Server gracefully stopped")
}
