// Package main is the entry point for the community scheduler backend.
//
//	@title			Community Scheduler API
//	@version		1.0
//	@description	Scheduling backend for community tasks: roles, obstacles, conflicts and weekly schedule generation.
//	@BasePath		/api
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "community-scheduler-backend/docs" // This is needed for swag
	"community-scheduler-backend/internal/api/routes"
	"community-scheduler-backend/internal/config"
	"community-scheduler-backend/internal/database"
	"community-scheduler-backend/internal/logger"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	setupLogging(cfg)
	log := logger.New().WithField("component", "server")

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter(db, cfg, log.Entry)

	log.WithField("port", cfg.Port).Info("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func setupLogging(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
