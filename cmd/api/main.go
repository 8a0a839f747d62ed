package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/VetCareServices/vetclinic-api/internal/config"
	dbpkg "github.com/VetCareServices/vetclinic-api/internal/db"
	"github.com/VetCareServices/vetclinic-api/internal/logger"
	"github.com/VetCareServices/vetclinic-api/internal/middleware"
	"github.com/VetCareServices/vetclinic-api/internal/routes"
)

func main() {

	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel, cfg.Env); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.L().Sync()

	db := dbpkg.NewDB(cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	routes.RegisterRoutes(r, db, cfg)

	logger.L().Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
