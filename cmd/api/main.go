package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"eldercare-backend/internal/config"
	"eldercare-backend/internal/handlers"
	"eldercare-backend/internal/routes"
	"eldercare-backend/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	log := newLogger(cfg.LogLevel)

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect database")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.WithError(err).Fatal("Failed to create upload directory")
	}

	var pusher *utils.Pusher
	if cfg.FirebaseCredentials != "" {
		pusher, err = utils.NewPusher(cfg.FirebaseCredentials, log)
		if err != nil {
			log.WithError(err).Warn("Push notifications disabled")
		}
	}

	r := gin.Default()
	h := handlers.New(db, cfg, log, pusher)
	routes.SetupRoutes(r, h)

	log.WithField("port", cfg.Port).Info("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stdout)
	return log
}
