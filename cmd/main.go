package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wargital/api/cache"
	"github.com/wargital/api/config"
	"github.com/wargital/api/database"
	"github.com/wargital/api/server"
)

const shutdownTimeOut = 10 * time.Second

func main() {
	config.Init()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	if err := database.ConnectAndMigrate(); err != nil {
		logrus.Panicf("failed to initialize database, error: %v", err)
	}
	logrus.Println("migration is successful")

	if err := cache.Init(); err != nil {
		logrus.Warnf("redis unavailable, token revocation disabled: %v", err)
	}

	svr := server.SetupRoutes()
	go func() {
		if err := svr.Run(":" + config.Port); err != nil && err != http.ErrServerClosed {
			logrus.Panicf("server stopped, error: %v", err)
		}
	}()
	logrus.Printf("listening on :%s", config.Port)

	<-done

	logrus.Info("shutting down...")
	if err := svr.Shutdown(shutdownTimeOut); err != nil {
		logrus.WithError(err).Error("failed to stop server cleanly!")
	}
	if err := cache.Shutdown(); err != nil {
		logrus.WithError(err).Error("failed to close redis connection!")
	}
	if err := database.Shutdown(); err != nil {
		logrus.WithError(err).Error("failed to close database connection!")
	}

	logrus.Info("system is shut ..zzz")
}
