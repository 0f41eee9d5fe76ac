package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vchernov/minesweeper-classic/internal/app"
	"github.com/vchernov/minesweeper-classic/internal/config"
	"github.com/vchernov/minesweeper-classic/internal/game"
	"github.com/vchernov/minesweeper-classic/migrations"
)

func newLogger() *logrus.Logger {
	log := logrus.New()

	if config.Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if logFile := config.LogFile(); logFile != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.WithError(err).Fatal("unable to create rotating log file")
		}
		log.AddHook(hook)
	}

	return log
}

func main() {
	log := newLogger()
	game.Log = log

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a := app.New(log, migrations.FS)
	if err := a.Start(ctx); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
