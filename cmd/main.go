package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vapeshop/config"
	"vapeshop/controllers"
	"vapeshop/database"
	"vapeshop/logger"
	"vapeshop/middleware"
	"vapeshop/repository"
	"vapeshop/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	// Without a connection string the API still serves / and /test; data
	// routes answer with a store-unavailable error.
	var store repository.DocumentStore
	conn, err := database.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
	switch {
	case errors.Is(err, database.ErrNoURL):
		log.Warn("DATABASE_URL not set, running without a database")
	case err != nil:
		log.Error("Database unavailable, running without a database", zap.Error(err))
	default:
		log.Info("✅ MongoDB client ready", zap.String("database", cfg.DatabaseName))
		store = repository.NewMongoStore(conn.DB)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())
	r.SetTrustedProxies(nil)

	ctrl := routes.New(controllers.Deps{
		Store:   repository.NewHandle(store),
		Log:     log,
		Timeout: cfg.DBTimeout,
	}, cfg.HasDatabaseURL())
	routes.RegisterRoutes(r, ctrl)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Vape Shop API starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down Vape Shop API...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if conn != nil {
		if err := conn.Close(ctx); err != nil {
			log.Error("Failed to close MongoDB", zap.Error(err))
		}
	}

	log.Info("Vape Shop API stopped")
}
