package main

import (
	"encoding/json"
	"time"

	"logicore-tms-api-server/config"
	"logicore-tms-api-server/internal/api/routes"
	"logicore-tms-api-server/internal/auth"
	"logicore-tms-api-server/internal/metrics"
	"logicore-tms-api-server/internal/s3"
	"logicore-tms-api-server/internal/socket"
	"logicore-tms-api-server/internal/store"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is for local development; a missing file is fine.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		logrus.WithError(err).Fatal("could not load config")
	}

	lifetime := time.Duration(0)
	if cfg.JWT.Expiration != "" {
		lifetime, err = time.ParseDuration(cfg.JWT.Expiration)
		if err != nil {
			logrus.WithError(err).Fatal("invalid jwt expiration")
		}
	}
	auth.Configure(cfg.JWT.Secret, lifetime)

	snap, err := store.SeedDemo(time.Now())
	if err != nil {
		logrus.WithError(err).Fatal("failed to seed demo data")
	}

	// Proof images resolve to raw object keys unless a bucket is configured.
	var presigner *s3.Presigner
	if cfg.S3.Bucket != "" {
		presigner, err = s3.NewPresigner(cfg.S3)
		if err != nil {
			logrus.WithError(err).Fatal("failed to initialize S3 presigner")
		}
	}

	wsHub := socket.NewHub()
	stop := make(chan struct{})
	defer close(stop)

	interval := time.Duration(cfg.Dashboard.RefreshSeconds) * time.Second
	go wsHub.RunStatsTicker(interval, func(now time.Time) ([]byte, error) {
		return json.Marshal(metrics.Compute(snap, now))
	}, stop)

	router := routes.SetupRouter(cfg, snap, presigner, wsHub)

	logrus.WithField("port", cfg.Server.Port).Info("starting API server")
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logrus.WithError(err).Fatal("failed to run server")
	}
}
