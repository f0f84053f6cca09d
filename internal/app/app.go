package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"techindia_backend/internal/config"
	"techindia_backend/internal/handlers"
	"techindia_backend/internal/logger"
	"techindia_backend/internal/middleware"
	"techindia_backend/internal/repositories"
	"techindia_backend/internal/routes"
	"techindia_backend/internal/services"
	"techindia_backend/internal/store"
	"techindia_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Недоступное хранилище - не причина не стартовать: приложение
	// продолжает работать в деградированном режиме, /test остается
	// доступным для операторов.
	st, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		logger.Warn("Document store unavailable, starting degraded", "error", err)
		st = nil
	} else {
		logger.Info("Document store connected", "database", st.Name())
	}

	ginRouter := SetupRouter(cfg, st)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		logger.Error("Document store disconnect error", "error", err)
	}
}

// SetupRouter собирает полный gin.Engine: слои store -> repository ->
// service -> handler связываются явно, без глобального состояния.
// Отдельная функция, чтобы тесты могли поднять сервер на своем Store.
func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	serviceContainer := initializeServices(cfg, st)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, st *store.Store) *services.ServiceContainer {
	gigRepo := repositories.NewGigRepository(st)

	return &services.ServiceContainer{
		GigService:    services.NewGigService(gigRepo),
		SystemService: services.NewSystemService(cfg, st),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		GigHandler:    handlers.NewGigHandler(baseHandler, container.GigService),
		SystemHandler: handlers.NewSystemHandler(baseHandler, container.SystemService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
